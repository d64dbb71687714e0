package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/rocketscienceinc/streaktactoe/internal/entity"
	"github.com/rocketscienceinc/streaktactoe/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResult(id string) *entity.Result {
	return &entity.Result{
		ID:           id,
		Size:         3,
		WinCondition: 3,
		Outcome:      entity.ResultWin,
		WinnerID:     entity.PlayerOneID,
		Moves:        5,
		Players: []*entity.Player{
			{ID: 1, Token: "X", Streak: 3, HasWon: true, History: []entity.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}},
			{ID: 2, Token: "#", Streak: 1, History: []entity.Position{{Row: 2, Col: 0}, {Row: 2, Col: 2}}},
		},
		FinishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestResultRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	resultRepo := NewResultRepository(st.Storage)

	// Given: a finished game result
	result := newResult("123")

	// When: Save is called
	err := resultRepo.Save(ctx, result)

	// Then: no error should be returned and the id is indexed
	require.NoError(t, err)

	ids, err := st.Storage.LRange(ctx, resultIndexKey, 0, -1).Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, ids)
}

func TestResultRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: a stored result
		result := newResult("123")
		require.NoError(t, resultRepo.Save(ctx, result))

		// When: GetByID is called with the existing ID
		retrieved, err := resultRepo.GetByID(ctx, result.ID)

		// Then: the retrieved result matches the saved one
		require.NoError(t, err)
		assert.Equal(t, result, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// When: GetByID is called with a non-existent ID
		retrieved, err := resultRepo.GetByID(ctx, "9999999")

		// Then: ErrResultNotFound is returned
		require.ErrorIs(t, err, ErrResultNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestResultRepository_ListRecent(t *testing.T) {
	ctx, st := suite.New(t)

	resultRepo := NewResultRepository(st.Storage)

	// Given: three stored results
	for i := 1; i <= 3; i++ {
		require.NoError(t, resultRepo.Save(ctx, newResult(fmt.Sprintf("game-%d", i))))
	}

	// When: the two most recent are listed
	results, err := resultRepo.ListRecent(ctx, 2)

	// Then: they are returned newest first
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "game-3", results[0].ID)
	assert.Equal(t, "game-2", results[1].ID)

	// Then: a non-positive limit returns nothing
	results, err = resultRepo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}
