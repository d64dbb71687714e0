package apperror

import "errors"

var (
	ErrInvalidSize         = errors.New("game grid size must be > 0")
	ErrInvalidWinCondition = errors.New("winning sequence length must be > 1")
	ErrInvalidPlayerID     = errors.New("player id must be integer > 0")
	ErrUnknownPlayer       = errors.New("unknown player")

	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")

	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")

	ErrInputClosed              = errors.New("input stream closed")
	ErrBoardTooLargeForKeyInput = errors.New("board too large for single key input")
)

var (
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrUnknownInputMode   = errors.New("unknown input mode")
)
