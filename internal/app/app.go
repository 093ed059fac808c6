package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sahanavr/trivia-api/internal/category"
	"github.com/sahanavr/trivia-api/internal/config"
	"github.com/sahanavr/trivia-api/internal/db/repository"
	"github.com/sahanavr/trivia-api/internal/logging"
	"github.com/sahanavr/trivia-api/internal/question"
	"github.com/sahanavr/trivia-api/internal/quiz"
	"github.com/sahanavr/trivia-api/internal/server"
)

// Application aggregates shared infrastructure (DB pool, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool *pgxpool.Pool
	http *http.Server
}

// New bootstraps config, logger, Postgres and the HTTP server. Every
// dependency is constructed here and passed down explicitly; there are
// no package-level handles.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	pool, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	questionRepo := repository.NewQuestionRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)

	questionSvc := question.NewService(questionRepo)
	categorySvc := category.NewService(categoryRepo)
	selector := quiz.NewSelector(questionRepo)

	handlers := server.Handlers{
		Questions:  question.NewHandlers(questionSvc, categorySvc, cfg.API.QuestionsPerPage, logger),
		Categories: category.NewHandlers(categorySvc, logger),
		Quiz:       quiz.NewHandlers(selector, logger),
	}

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		http:   server.NewHTTPServer(cfg, logger, pool, handlers),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.pool.Close()

	a.logger.Info().Msg("shutdown complete")
	return nil
}
