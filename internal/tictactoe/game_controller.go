package tictactoe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"unicode"

	"github.com/rocketscienceinc/streaktactoe/internal/apperror"
	"github.com/rocketscienceinc/streaktactoe/internal/entity"
)

// playerOrder fixes the order in which win conditions are checked.
var playerOrder = []int{entity.PlayerOneID, entity.PlayerTwoID}

type Option func(*Game)

func WithInput(r io.Reader) Option {
	return func(that *Game) {
		that.input = r
	}
}

func WithOutput(w io.Writer) Option {
	return func(that *Game) {
		that.out = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(that *Game) {
		that.logger = logger
	}
}

func WithInputMode(mode InputMode) Option {
	return func(that *Game) {
		that.inputMode = mode
	}
}

// Game drives one match between two local players sharing a single input stream.
type Game struct {
	logger    *slog.Logger
	input     io.Reader
	out       io.Writer
	inputMode InputMode
	reader    *MoveReader

	board   *entity.Board
	players map[int]*entity.Player

	size          int
	winCondition  int
	currentPlayer int
	moves         int
	maxMoves      int
	status        string
}

func NewGame(size, winCondition int, opts ...Option) (*Game, error) {
	board, err := entity.NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	if winCondition <= 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidWinCondition, winCondition)
	}

	playerOne, err := entity.NewPlayer(entity.PlayerOneID, entity.PlayerOneToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	playerTwo, err := entity.NewPlayer(entity.PlayerTwoID, entity.PlayerTwoToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	game := &Game{
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		input:     os.Stdin,
		out:       os.Stdout,
		inputMode: InputModeLine,

		board:   board,
		players: map[int]*entity.Player{
			playerOne.ID: playerOne,
			playerTwo.ID: playerTwo,
		},

		size:          size,
		winCondition:  winCondition,
		currentPlayer: entity.PlayerOneID,
		maxMoves:      size * size,
		status:        StatusNotStarted,
	}

	for _, opt := range opts {
		opt(game)
	}

	if game.inputMode == InputModeKey && game.maxMoves > maxKeyInputCells {
		return nil, fmt.Errorf("%w: %d cells", apperror.ErrBoardTooLargeForKeyInput, game.maxMoves)
	}

	game.reader = NewMoveReader(game.input, game.inputMode)
	game.logger = game.logger.With("component", "game")

	return game, nil
}

func (that *Game) Size() int {
	return that.size
}

func (that *Game) WinCondition() int {
	return that.winCondition
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) CurrentPlayer() int {
	return that.currentPlayer
}

func (that *Game) Moves() int {
	return that.moves
}

func (that *Game) MaxMoves() int {
	return that.maxMoves
}

func (that *Game) Board() *entity.Board {
	return that.board
}

// Player returns the player with the given id, or nil.
func (that *Game) Player(id int) *entity.Player {
	return that.players[id]
}

func (that *Game) IsFinished() bool {
	return that.status == StatusWon || that.status == StatusDraw
}

// Initialize prepares the board and renders it. It may run only once per game.
func (that *Game) Initialize() error {
	if that.status != StatusNotStarted {
		return apperror.ErrGameAlreadyStarted
	}

	that.board.Initialize()
	that.currentPlayer = entity.PlayerOneID
	that.status = StatusInProgress

	that.logger.Debug("game initialized", "size", that.size, "win_condition", that.winCondition)

	return that.Render()
}

func (that *Game) Render() error {
	if err := that.board.Render(that.out); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	return nil
}

// Start runs the turn loop until a player wins or the board is full.
// ctx is only checked between turns; a pending read is never interrupted.
func (that *Game) Start(ctx context.Context) (Outcome, error) {
	if err := that.Initialize(); err != nil {
		return Outcome{}, fmt.Errorf("failed to initialize game: %w", err)
	}

	for {
		outcome := that.EvaluateOutcome()
		if outcome.IsFinal() {
			that.announce(outcome)
			return outcome, nil
		}

		if err := ctx.Err(); err != nil {
			return outcome, fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.playTurn(); err != nil {
			return outcome, err
		}
	}
}

func (that *Game) playTurn() error {
	playerID := that.currentPlayer

	move, err := that.RequestMove(playerID)
	if err != nil {
		return fmt.Errorf("failed to request move: %w", err)
	}

	if err = that.ApplyMove(playerID, move); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.SwitchPlayer()

	return that.Render()
}

// EvaluateOutcome checks players in ascending id order for a winning streak, then the move limit.
func (that *Game) EvaluateOutcome() Outcome {
	for _, id := range playerOrder {
		player := that.players[id]
		if player.Streak >= that.winCondition {
			player.HasWon = true
			that.status = StatusWon

			return Outcome{Kind: OutcomeWin, PlayerID: id}
		}
	}

	if that.moves >= that.maxMoves {
		that.status = StatusDraw

		return Outcome{Kind: OutcomeDraw}
	}

	return Outcome{Kind: OutcomeInProgress}
}

// RequestMove keeps prompting the player until a valid cell is entered, then records the move.
// Invalid attempts are reported on the output and never returned as errors.
func (that *Game) RequestMove(playerID int) (entity.Position, error) {
	log := that.logger.With("method", "RequestMove", "player", playerID)

	player, err := that.player(playerID)
	if err != nil {
		return entity.Position{}, err
	}

	if err = that.confirmOngoing(); err != nil {
		return entity.Position{}, err
	}

	for {
		that.printf("Player %d - Choose a field to place your token\n", playerID)

		raw, err := that.reader.Next()
		if err != nil {
			return entity.Position{}, err
		}

		result := that.resolveMove(raw)
		if !result.Ok() {
			log.Debug("move rejected", "input", raw, "reason", result.Reason.String())
			that.printf("Invalid input: %s\n", raw)

			continue
		}

		that.UpdateStreak(playerID, result.Position)
		player.History = append(player.History, result.Position)
		that.moves++

		return result.Position, nil
	}
}

func (that *Game) resolveMove(raw string) MoveResult {
	if !isDigits(raw) {
		return invalidMove(ReasonNotNumeric)
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		return invalidMove(ReasonNotNumeric)
	}

	if index < 0 || index >= that.maxMoves {
		return invalidMove(ReasonOutOfRange)
	}

	pos := entity.PositionFromIndex(index, that.size)
	if !that.board.IsFree(pos) {
		return invalidMove(ReasonOccupied)
	}

	return validMove(pos)
}

// ApplyMove places the player's token on the board.
func (that *Game) ApplyMove(playerID int, pos entity.Position) error {
	player, err := that.player(playerID)
	if err != nil {
		return err
	}

	if err = that.confirmOngoing(); err != nil {
		return err
	}

	if err = that.board.SetCell(pos, player.Token); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	that.logger.Debug("move applied", "player", playerID, "row", pos.Row, "col", pos.Col, "moves", that.moves)

	return nil
}

// UpdateStreak grows the player's streak when move touches any earlier move of that player.
// The first move always resets the streak to one. It does not record move in the history.
func (that *Game) UpdateStreak(playerID int, move entity.Position) {
	player, ok := that.players[playerID]
	if !ok {
		return
	}

	if player.NumMoves() == 0 {
		player.Streak = 1
		return
	}

	if player.HasNeighbor(move) {
		player.Streak++
		that.printf("Streak of %d extended by 1. Now %d\n", playerID, player.Streak)
	}
}

func (that *Game) SwitchPlayer() {
	if that.currentPlayer == entity.PlayerOneID {
		that.currentPlayer = entity.PlayerTwoID
	} else {
		that.currentPlayer = entity.PlayerOneID
	}
}

func (that *Game) announce(outcome Outcome) {
	switch outcome.Kind {
	case OutcomeWin:
		that.printf("Player %d has won the game!\n", outcome.PlayerID)
	case OutcomeDraw:
		that.printf("It's a draw\n")
	case OutcomeInProgress:
		return
	}

	that.logger.Info("game finished", "outcome", outcome.String(), "moves", that.moves)
}

// confirmOngoing rejects moves before Initialize and after the game has ended.
func (that *Game) confirmOngoing() error {
	switch that.status {
	case StatusNotStarted:
		return apperror.ErrGameIsNotStarted
	case StatusWon, StatusDraw:
		return apperror.ErrGameFinished
	default:
		return nil
	}
}

// isDigits accepts only unsigned base-10 numbers, so "+4" or "-1" never reach a cell.
func isDigits(raw string) bool {
	if raw == "" {
		return false
	}

	for _, r := range raw {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

func (that *Game) player(id int) (*entity.Player, error) {
	player, ok := that.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, id)
	}

	return player, nil
}

func (that *Game) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
