package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/transport/cli"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

// RunApp - runs the application.
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

	sessionID := uuid.NewString()

	var publisher *redis.Client
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		publisher = redis.New(redisStorage.Connection, conf.Redis.Channel)
		log.Info("Publishing game state", "channel", publisher.Channel(sessionID))
	}

	session := newSession(logger, sessionID, conf, publisher)
	terminal := cli.New(logger, session, os.Stdin, os.Stdout, !conf.NoColor)

	// run terminal
	terminalErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game", "session_id", sessionID)
		terminalErrCh <- terminal.Run(ctx)
	}()

	select {
	case err := <-terminalErrCh:
		if err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}

		log.Info("Game finished, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newSession - a nil *redis.Client must not reach the session as a non-nil interface.
func newSession(logger *slog.Logger, id string, conf *config.Config, publisher *redis.Client) *usecase.Session {
	if publisher == nil {
		return usecase.NewSession(logger, id, conf.Players.First, conf.Players.Second, nil)
	}

	return usecase.NewSession(logger, id, conf.Players.First, conf.Players.Second, publisher)
}
