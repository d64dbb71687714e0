package entity

import (
	"fmt"

	"github.com/rocketscienceinc/streaktactoe/internal/apperror"
)

const (
	PlayerOneID = 1
	PlayerTwoID = 2

	PlayerOneToken = "X"
	PlayerTwoToken = "#"
)

type Player struct {
	ID      int        `json:"id"`
	Token   string     `json:"token"`
	Streak  int        `json:"streak"`
	History []Position `json:"history"`
	HasWon  bool       `json:"has_won"`
}

func NewPlayer(id int, token string) (*Player, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayerID, id)
	}

	return &Player{
		ID:      id,
		Token:   token,
		History: []Position{},
	}, nil
}

// NumMoves returns how many moves the player has made.
func (that *Player) NumMoves() int {
	return len(that.History)
}

// HasNeighbor reports whether any move in the player's history is adjacent to pos.
func (that *Player) HasNeighbor(pos Position) bool {
	for _, previous := range that.History {
		if IsNeighbor(pos, previous) {
			return true
		}
	}

	return false
}
