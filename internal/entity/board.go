package entity

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/streaktactoe/internal/apperror"
)

const (
	cellSpacer  = "     |"
	cellPadding = "     "
	cellDivider = "------"
)

// Board is a Size×Size grid. Free cells hold their row-major index as a placeholder label,
// occupied cells hold a player token.
type Board struct {
	Size  int        `json:"size"`
	Cells [][]string `json:"cells"`
}

func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	cells := make([][]string, size)
	for row := range cells {
		cells[row] = make([]string, size)
	}

	return &Board{Size: size, Cells: cells}, nil
}

// Initialize fills every cell with its placeholder label.
func (that *Board) Initialize() {
	for row := 0; row < that.Size; row++ {
		for col := 0; col < that.Size; col++ {
			that.Cells[row][col] = placeholder(Position{Row: row, Col: col}, that.Size)
		}
	}
}

func (that *Board) InRange(pos Position) bool {
	return pos.Row >= 0 && pos.Row < that.Size && pos.Col >= 0 && pos.Col < that.Size
}

// IsFree reports whether the cell still holds its placeholder.
func (that *Board) IsFree(pos Position) bool {
	if !that.InRange(pos) {
		return false
	}

	return that.Cells[pos.Row][pos.Col] == placeholder(pos, that.Size)
}

func (that *Board) CellContent(pos Position) (string, error) {
	if !that.InRange(pos) {
		return "", fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, pos.Row, pos.Col)
	}

	return that.Cells[pos.Row][pos.Col], nil
}

func (that *Board) SetCell(pos Position, token string) error {
	if !that.InRange(pos) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, pos.Row, pos.Col)
	}

	if !that.IsFree(pos) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, pos.Row, pos.Col)
	}

	that.Cells[pos.Row][pos.Col] = token

	return nil
}

// Render writes the grid to w.
func (that *Board) Render(w io.Writer) error {
	spacer := strings.Repeat(cellSpacer, that.Size-1) + cellPadding

	var sb strings.Builder
	sb.WriteString("\n")

	for row := 0; row < that.Size; row++ {
		sb.WriteString(spacer + "\n")

		labels := make([]string, that.Size)
		for col := range labels {
			labels[col] = "  " + that.Cells[row][col] + "  "
		}
		sb.WriteString(strings.Join(labels, "|") + "\n")

		sb.WriteString(spacer + "\n")

		if row != that.Size-1 {
			sb.WriteString(strings.Repeat(cellDivider, that.Size) + "\n")
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func placeholder(pos Position, size int) string {
	return strconv.Itoa(pos.Index(size))
}
