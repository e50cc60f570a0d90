package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/snippets/internal/config"
	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/logging"
	"github.com/dmitrijs2005/snippets/internal/models"
	"github.com/dmitrijs2005/snippets/internal/repositories/repomanager"
	"github.com/dmitrijs2005/snippets/internal/services"
	"github.com/google/uuid"
)

// SnippetStore is the part of services.SnippetService the commands use.
type SnippetStore interface {
	Put(ctx context.Context, name, snippet string, hide, unhide bool) (*models.PutResult, error)
	Get(ctx context.Context, name string) (string, bool, error)
	Catalog(ctx context.Context) ([]string, error)
	Search(ctx context.Context, term string) ([]*models.Snippet, error)
}

// App is everything one invocation needs; Close releases it.
type App struct {
	config  *config.Config
	logger  logging.Logger
	store   SnippetStore
	closers []io.Closer
}

// AppFactory builds the App once configuration is resolved.
type AppFactory func(ctx context.Context, cfg *config.Config, command string) (*App, error)

// NewApp opens the log file and the database and wires the snippet service.
func NewApp(ctx context.Context, cfg *config.Config, command string) (*App, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	fileLogger, logCloser, err := logging.OpenFile(cfg.LogFile, level)
	if err != nil {
		return nil, err
	}
	logger := fileLogger.With("run_id", uuid.NewString(), "command", command)

	logger.Debug(ctx, "connecting to PostgreSQL")
	db, err := dbx.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "database connection failed", "error", err)
		_ = logCloser.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}
	logger.Debug(ctx, "database connection established")

	s := services.NewSnippetService(db, repomanager.NewPostgresRepositoryManager(), logger)

	return &App{
		config:  cfg,
		logger:  logger,
		store:   s,
		closers: []io.Closer{db, logCloser},
	}, nil
}

// Close releases the database connection, then the log file. Failures
// before the log file is closed are also logged as warnings.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			if a.logger != nil {
				a.logger.Warn(context.Background(), "releasing resource failed", "error", err)
			}
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
