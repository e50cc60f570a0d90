// Package services contains the snippet store: each operation runs its
// queries through the repository inside its own transaction.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/snippets/internal/common"
	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/logging"
	"github.com/dmitrijs2005/snippets/internal/models"
	"github.com/dmitrijs2005/snippets/internal/repositories/repomanager"
)

// SnippetService implements put, get, catalog and search against the
// snippets table.
type SnippetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

// NewSnippetService constructs a SnippetService. The caller owns db and
// closes it when done.
func NewSnippetService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *SnippetService {
	return &SnippetService{
		db:          db,
		repomanager: m,
		logger:      logger,
	}
}

// Put stores snippet under name, then applies the visibility flags in order:
// hide first, unhide second, so unhide wins when both are set. Every write
// commits in its own transaction.
func (s *SnippetService) Put(ctx context.Context, name, snippet string, hide, unhide bool) (*models.PutResult, error) {
	s.logger.Info(ctx, "storing snippet", "keyword", name, "message", snippet)

	var created bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		created, err = s.repomanager.Snippets(tx).Upsert(ctx, name, snippet)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "storing snippet failed", err, "keyword", name)
		return nil, fmt.Errorf("put snippet: %w", err)
	}

	if hide {
		if err := s.setHidden(ctx, name, true); err != nil {
			return nil, err
		}
	}
	if unhide {
		if err := s.setHidden(ctx, name, false); err != nil {
			return nil, err
		}
	}

	s.logger.Debug(ctx, "snippet stored successfully", "keyword", name, "created", created)
	return &models.PutResult{Keyword: name, Message: snippet, Created: created}, nil
}

func (s *SnippetService) setHidden(ctx context.Context, name string, hidden bool) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Snippets(tx).SetHidden(ctx, name, hidden)
	})
	if err != nil {
		s.logFailure(ctx, "changing visibility failed", err, "keyword", name, "hidden", hidden)
		return fmt.Errorf("set hidden=%t: %w", hidden, err)
	}
	s.logger.Debug(ctx, "visibility changed", "keyword", name, "hidden", hidden)
	return nil
}

// Get returns the message stored under name, hidden or not. found is false
// when there is no such keyword.
func (s *SnippetService) Get(ctx context.Context, name string) (message string, found bool, err error) {
	s.logger.Info(ctx, "fetching snippet", "keyword", name)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		m, err := s.repomanager.Snippets(tx).GetMessage(ctx, name)
		if errors.Is(err, common.ErrorNotFound) {
			// a miss is a normal result, the transaction still commits
			return nil
		}
		if err != nil {
			return err
		}
		message, found = m, true
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "fetching snippet failed", err, "keyword", name)
		return "", false, fmt.Errorf("get snippet: %w", err)
	}

	if !found {
		s.logger.Debug(ctx, "snippet not found", "keyword", name)
		return "", false, nil
	}
	s.logger.Debug(ctx, "snippet fetched successfully", "keyword", name)
	return message, true, nil
}

// Catalog returns the visible keywords in ascending order.
func (s *SnippetService) Catalog(ctx context.Context) ([]string, error) {
	s.logger.Info(ctx, "fetching keyword catalog")

	var keywords []string
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		keywords, err = s.repomanager.Snippets(tx).ListVisibleKeywords(ctx)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "fetching keyword catalog failed", err)
		return nil, fmt.Errorf("catalog: %w", err)
	}

	s.logger.Debug(ctx, "keyword catalog fetched successfully", "count", len(keywords))
	return keywords, nil
}

// Search returns the visible snippets whose message contains term. '%' and
// '_' in term are LIKE wildcards, not literals.
func (s *SnippetService) Search(ctx context.Context, term string) ([]*models.Snippet, error) {
	s.logger.Info(ctx, "searching snippets", "term", term)

	var matches []*models.Snippet
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		matches, err = s.repomanager.Snippets(tx).SearchVisible(ctx, term)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "searching snippets failed", err, "term", term)
		return nil, fmt.Errorf("search: %w", err)
	}

	s.logger.Debug(ctx, "matches fetched successfully", "count", len(matches))
	return matches, nil
}

func (s *SnippetService) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	args = append(args, dbx.PgErrorAttrs(err)...)
	s.logger.Error(ctx, msg, args...)
}
