package entity

import "time"

const (
	ResultWin  = "win"
	ResultDraw = "draw"
)

// Result summarizes a finished game for the archive.
type Result struct {
	ID           string    `json:"id"`
	Size         int       `json:"size"`
	WinCondition int       `json:"win_condition"`
	Outcome      string    `json:"outcome"`
	WinnerID     int       `json:"winner_id,omitempty"`
	Moves        int       `json:"moves"`
	Players      []*Player `json:"players"`
	FinishedAt   time.Time `json:"finished_at"`
}

func (that *Result) IsDraw() bool {
	return that.Outcome == ResultDraw
}
