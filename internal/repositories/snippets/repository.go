package snippets

import (
	"context"

	"github.com/dmitrijs2005/snippets/internal/models"
)

type Repository interface {
	Upsert(ctx context.Context, keyword, message string) (bool, error)
	SetHidden(ctx context.Context, keyword string, hidden bool) error
	GetMessage(ctx context.Context, keyword string) (string, error)
	ListVisibleKeywords(ctx context.Context) ([]string, error)
	SearchVisible(ctx context.Context, term string) ([]*models.Snippet, error)
}
