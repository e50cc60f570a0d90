package repomanager

import (
	"github.com/dmitrijs2005/snippets/internal/dbx"
	"github.com/dmitrijs2005/snippets/internal/repositories/snippets"
)

// RepositoryManager vends repositories bound to a DBTX, so services can hand
// them either the shared handle or an open transaction.
type RepositoryManager interface {
	Snippets(db dbx.DBTX) snippets.Repository
}
