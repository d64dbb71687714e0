package entity

// Position addresses a single cell on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromIndex converts a row-major linear index into a position.
func PositionFromIndex(index, size int) Position {
	row := index / size

	return Position{Row: row, Col: index - row*size}
}

// Index returns the row-major linear index of the position.
func (that Position) Index(size int) int {
	return that.Row*size + that.Col
}

// IsNeighbor reports whether two positions touch horizontally, vertically or diagonally.
func IsNeighbor(a, b Position) bool {
	dRow, dCol := abs(a.Row-b.Row), abs(a.Col-b.Col)

	// same row, adjacent column
	if dRow == 0 && dCol == 1 {
		return true
	}

	// same column, adjacent row
	if dCol == 0 && dRow == 1 {
		return true
	}

	return dRow == 1 && dCol == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
