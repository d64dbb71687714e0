package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/streaktactoe/internal/entity"
)

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

type OutcomeKind int

const (
	OutcomeInProgress OutcomeKind = iota
	OutcomeWin
	OutcomeDraw
)

func (that OutcomeKind) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Outcome is the result of evaluating the game. PlayerID is set only for OutcomeWin.
type Outcome struct {
	Kind     OutcomeKind
	PlayerID int
}

func (that Outcome) IsFinal() bool {
	return that.Kind != OutcomeInProgress
}

func (that Outcome) String() string {
	if that.Kind == OutcomeWin {
		return fmt.Sprintf("player %d wins", that.PlayerID)
	}

	return that.Kind.String()
}

type InvalidReason int

const (
	ReasonNone InvalidReason = iota
	ReasonNotNumeric
	ReasonOutOfRange
	ReasonOccupied
)

func (that InvalidReason) String() string {
	switch that {
	case ReasonNotNumeric:
		return "not a number"
	case ReasonOutOfRange:
		return "out of range"
	case ReasonOccupied:
		return "cell occupied"
	default:
		return "ok"
	}
}

// MoveResult is either a valid position or the reason a raw attempt was rejected.
type MoveResult struct {
	Position entity.Position
	Reason   InvalidReason
}

func (that MoveResult) Ok() bool {
	return that.Reason == ReasonNone
}

func validMove(pos entity.Position) MoveResult {
	return MoveResult{Position: pos, Reason: ReasonNone}
}

func invalidMove(reason InvalidReason) MoveResult {
	return MoveResult{Reason: reason}
}
