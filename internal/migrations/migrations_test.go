package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db
}

func TestMigrations_EmbedsSnippetsSchema(t *testing.T) {
	b, err := fs.ReadFile(Migrations, "00001_create_snippets.sql")
	if err != nil {
		t.Fatalf("read embedded migration: %v", err)
	}
	sql := string(b)
	for _, want := range []string{"-- +goose Up", "CREATE TABLE IF NOT EXISTS snippets", "keyword text PRIMARY KEY", "hidden  boolean NOT NULL DEFAULT false"} {
		if !strings.Contains(sql, want) {
			t.Fatalf("migration lacks %q:\n%s", want, sql)
		}
	}
}

func TestApply_Success(t *testing.T) {
	db := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	if err := Apply(context.Background(), db); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
}

func TestApply_Error(t *testing.T) {
	db := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	if err := Apply(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
