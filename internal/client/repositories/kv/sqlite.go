package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/investprofile/internal/client/migrations"
	"github.com/dmitrijs2005/investprofile/internal/common"
	"github.com/dmitrijs2005/investprofile/internal/dbx"
	"github.com/dmitrijs2005/investprofile/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// RunMigrations applies the embedded schema to db. Safe to call repeatedly.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the SQLite file at path and migrates it.
// The pool is limited to one connection: SQLite has a single writer anyway,
// and it keeps ":memory:" databases from splitting across connections.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return db, nil
}

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to get kv[%s]: %w", common.ErrStorageRead, key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, s.db, key, value)
}

func (s *SQLiteStore) SetMany(ctx context.Context, values map[string][]byte) error {
	return s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		for k, v := range values {
			if err := set(ctx, tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Delete(ctx context.Context, keys ...string) error {
	switch len(keys) {
	case 0:
		return nil
	case 1:
		return del(ctx, s.db, keys[0])
	}

	return s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if err := del(ctx, tx, k); err != nil {
				return err
			}
		}
		return nil
	})
}

// inTx runs fn in a transaction; begin/commit failures count as write failures.
func (s *SQLiteStore) inTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	err := dbx.WithTx(ctx, s.db, fn)
	if err != nil && !errors.Is(err, common.ErrStorageWrite) {
		return fmt.Errorf("%w: %w", common.ErrStorageWrite, err)
	}
	return err
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: failed to set kv[%s]: %w", common.ErrStorageWrite, key, err)
	}
	return nil
}

func del(ctx context.Context, db dbx.DBTX, key string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%w: failed to delete kv[%s]: %w", common.ErrStorageWrite, key, err)
	}
	return nil
}
