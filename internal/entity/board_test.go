package entity

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/rocketscienceinc/streaktactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Creates a board for any positive size", func(t *testing.T) {
		for size := 1; size <= 6; size++ {
			// When: a board is created
			board, err := NewBoard(size)

			// Then: it has Size×Size cells
			require.NoError(t, err)
			require.Len(t, board.Cells, size)
			for _, row := range board.Cells {
				assert.Len(t, row, size)
			}
		}
	})

	t.Run("Rejects non-positive size", func(t *testing.T) {
		for _, size := range []int{0, -1, -10} {
			// When: a board is created with an invalid size
			board, err := NewBoard(size)

			// Then: ErrInvalidSize is returned
			require.ErrorIs(t, err, apperror.ErrInvalidSize)
			assert.Nil(t, board)
		}
	})
}

func TestBoard_Initialize(t *testing.T) {
	// Given: a 4x4 board
	board, err := NewBoard(4)
	require.NoError(t, err)

	// When: the board is initialized
	board.Initialize()

	// Then: every cell holds its distinct row-major index
	seen := make(map[string]bool)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			pos := Position{Row: row, Col: col}
			content, err := board.CellContent(pos)
			require.NoError(t, err)

			assert.Equal(t, strconv.Itoa(row*4+col), content)
			assert.True(t, board.IsFree(pos))
			assert.NotEqual(t, PlayerOneToken, content)
			assert.NotEqual(t, PlayerTwoToken, content)
			seen[content] = true
		}
	}
	assert.Len(t, seen, 16)
}

func TestBoard_SetCell(t *testing.T) {
	t.Run("Sets token on a free cell", func(t *testing.T) {
		// Given: an initialized board
		board, err := NewBoard(3)
		require.NoError(t, err)
		board.Initialize()

		// When: a token is placed on a free cell
		err = board.SetCell(Position{Row: 1, Col: 2}, PlayerOneToken)

		// Then: the cell holds the token
		require.NoError(t, err)
		content, err := board.CellContent(Position{Row: 1, Col: 2})
		require.NoError(t, err)
		assert.Equal(t, PlayerOneToken, content)
		assert.False(t, board.IsFree(Position{Row: 1, Col: 2}))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell (0, 0) is taken by player one
		board, err := NewBoard(3)
		require.NoError(t, err)
		board.Initialize()
		require.NoError(t, board.SetCell(Position{Row: 0, Col: 0}, PlayerOneToken))

		// When: player two tries the same cell
		err = board.SetCell(Position{Row: 0, Col: 0}, PlayerTwoToken)

		// Then: ErrCellOccupied is returned and the cell is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		content, err := board.CellContent(Position{Row: 0, Col: 0})
		require.NoError(t, err)
		assert.Equal(t, PlayerOneToken, content)
	})

	t.Run("Error on cell out of range", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)
		board.Initialize()

		for _, pos := range []Position{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}} {
			assert.ErrorIs(t, board.SetCell(pos, PlayerOneToken), apperror.ErrInvalidCell)
		}
	})
}

func TestBoard_CellContent(t *testing.T) {
	board, err := NewBoard(2)
	require.NoError(t, err)
	board.Initialize()

	_, err = board.CellContent(Position{Row: 2, Col: 0})
	assert.ErrorIs(t, err, apperror.ErrInvalidCell)
}

func TestBoard_Render(t *testing.T) {
	// Given: a 2x2 board with one token placed
	board, err := NewBoard(2)
	require.NoError(t, err)
	board.Initialize()
	require.NoError(t, board.SetCell(Position{Row: 1, Col: 0}, PlayerTwoToken))

	// When: the board is rendered
	var out bytes.Buffer
	require.NoError(t, board.Render(&out))

	// Then: the layout matches the fixed-width grid
	expected := "\n" +
		"     |     \n" +
		"  0  |  1  \n" +
		"     |     \n" +
		"------------\n" +
		"     |     \n" +
		"  #  |  3  \n" +
		"     |     \n"
	assert.Equal(t, expected, out.String())

	// Then: rendering does not mutate the board
	content, err := board.CellContent(Position{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, "1", content)
}
