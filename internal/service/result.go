package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/streaktactoe/internal/entity"
	"github.com/rocketscienceinc/streaktactoe/internal/tictactoe"
)

var ErrGameNotFinished = errors.New("game is not finished")

type ResultService interface {
	Record(ctx context.Context, game *tictactoe.Game, outcome tictactoe.Outcome) (*entity.Result, error)
	Recent(ctx context.Context, limit int64) ([]*entity.Result, error)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	ListRecent(ctx context.Context, limit int64) ([]*entity.Result, error)
}

type resultService struct {
	logger     *slog.Logger
	resultRepo resultRepo
	now        func() time.Time
}

func NewResultService(logger *slog.Logger, resultRepo resultRepo) ResultService {
	return &resultService{
		logger:     logger,
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

// Record stores a summary of a finished game.
func (that *resultService) Record(ctx context.Context, game *tictactoe.Game, outcome tictactoe.Outcome) (*entity.Result, error) {
	if !outcome.IsFinal() {
		return nil, ErrGameNotFinished
	}

	result := &entity.Result{
		ID:           uuid.NewString(),
		Size:         game.Size(),
		WinCondition: game.WinCondition(),
		Outcome:      entity.ResultDraw,
		Moves:        game.Moves(),
		Players:      []*entity.Player{game.Player(entity.PlayerOneID), game.Player(entity.PlayerTwoID)},
		FinishedAt:   that.now().UTC(),
	}

	if outcome.Kind == tictactoe.OutcomeWin {
		result.Outcome = entity.ResultWin
		result.WinnerID = outcome.PlayerID
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	that.logger.Info("result recorded", "method", "Record", "resultID", result.ID, "outcome", result.Outcome)

	return result, nil
}

func (that *resultService) Recent(ctx context.Context, limit int64) ([]*entity.Result, error) {
	results, err := that.resultRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve recent results: %w", err)
	}

	return results, nil
}
