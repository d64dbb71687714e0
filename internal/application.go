package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/streaktactoe/internal/config"
	"github.com/rocketscienceinc/streaktactoe/internal/repository"
	"github.com/rocketscienceinc/streaktactoe/internal/repository/storage"
	"github.com/rocketscienceinc/streaktactoe/internal/service"
	"github.com/rocketscienceinc/streaktactoe/internal/tictactoe"
)

const recentResultsLimit = 5

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	inputMode, err := tictactoe.ParseInputMode(conf.Game.InputMode)
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	game, err := tictactoe.NewGame(conf.Game.Size, conf.Game.WinCondition,
		tictactoe.WithInput(in),
		tictactoe.WithOutput(out),
		tictactoe.WithInputMode(inputMode),
		tictactoe.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	var results service.ResultService
	if conf.Archive.Enabled {
		client, err := openArchive(ctx, conf.Archive.Redis)
		if err != nil {
			return err
		}

		defer func() {
			if err := client.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		results = service.NewResultService(logger, repository.NewResultRepository(client))
	}

	return playAndRecord(ctx, logger, game, results, out)
}

func openArchive(ctx context.Context, conf config.Redis) (*redis.Client, error) {
	addr := conf.GetRedisAddr()
	if conf.Host == "" {
		return nil, ErrAddrNotFound
	}

	client, err := storage.New(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return client, nil
}

type gameResult struct {
	outcome tictactoe.Outcome
	err     error
}

// playAndRecord runs the game and, when results is set, archives the outcome.
// An archive failure is logged and does not fail the finished game.
func playAndRecord(ctx context.Context, logger *slog.Logger, game *tictactoe.Game, results service.ResultService, out io.Writer) error {
	log := logger.With("component", "app", "method", "playAndRecord")

	// the game blocks on input, so it runs aside from the signal-aware select
	doneCh := make(chan gameResult, 1)
	go func() {
		outcome, err := game.Start(ctx)
		doneCh <- gameResult{outcome: outcome, err: err}
	}()

	var finished gameResult
	select {
	case finished = <-doneCh:
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}

	if finished.err != nil {
		return fmt.Errorf("game failed: %w", finished.err)
	}

	if results == nil {
		return nil
	}

	if _, err := results.Record(ctx, game, finished.outcome); err != nil {
		log.Error("could not record result", "error", err)
		return nil
	}

	recent, err := results.Recent(ctx, recentResultsLimit)
	if err != nil {
		log.Error("could not load recent results", "error", err)
		return nil
	}

	printRecent(out, recent, log)

	return nil
}
