// Package snippets provides the PostgreSQL-backed repository for the
// snippets table.
package snippets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/snippets/internal/common"
	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/models"
)

// PostgresRepository implements snippet storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert stores message under keyword, replacing the message of an existing
// row. The hidden flag of an existing row is left untouched. It reports true
// when a new row was inserted.
func (r *PostgresRepository) Upsert(ctx context.Context, keyword, message string) (bool, error) {
	query := `
		INSERT INTO snippets (keyword, message)
		VALUES ($1, $2)
		ON CONFLICT (keyword)
		DO UPDATE SET message = EXCLUDED.message
		RETURNING (xmax = 0) AS inserted
	`
	var inserted bool
	if err := r.db.QueryRowContext(ctx, query, keyword, message).Scan(&inserted); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return inserted, nil
}

// SetHidden sets the hidden flag for keyword. A missing keyword is not an error.
func (r *PostgresRepository) SetHidden(ctx context.Context, keyword string, hidden bool) error {
	query := `UPDATE snippets SET hidden = $1 WHERE keyword = $2`
	if _, err := r.db.ExecContext(ctx, query, hidden, keyword); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetMessage returns the message stored under keyword regardless of its
// hidden flag, or common.ErrorNotFound.
func (r *PostgresRepository) GetMessage(ctx context.Context, keyword string) (string, error) {
	query := `SELECT message FROM snippets WHERE keyword = $1`

	var message string
	err := r.db.QueryRowContext(ctx, query, keyword).Scan(&message)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return message, nil
}

// ListVisibleKeywords returns the keywords of all non-hidden rows in byte order.
func (r *PostgresRepository) ListVisibleKeywords(ctx context.Context) ([]string, error) {
	query := `SELECT keyword FROM snippets WHERE NOT hidden ORDER BY keyword COLLATE "C"`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select keywords: %w", err)
	}
	defer rows.Close()

	keywords := make([]string, 0)
	for rows.Next() {
		var keyword string
		if err := rows.Scan(&keyword); err != nil {
			return nil, err
		}
		keywords = append(keywords, keyword)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keywords, nil
}

// SearchVisible returns non-hidden rows whose message contains term.
// term goes into a LIKE pattern as is, so '%' and '_' act as wildcards.
func (r *PostgresRepository) SearchVisible(ctx context.Context, term string) ([]*models.Snippet, error) {
	query := `
		SELECT keyword, message FROM snippets
		WHERE NOT hidden AND message LIKE '%' || $1 || '%'
		ORDER BY keyword COLLATE "C"
	`
	rows, err := r.db.QueryContext(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search snippets: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Snippet, 0)
	for rows.Next() {
		var item models.Snippet
		if err := rows.Scan(&item.Keyword, &item.Message); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
