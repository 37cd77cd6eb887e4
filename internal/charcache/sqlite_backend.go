package charcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"holocron/internal/swapi"
)

// sqliteSchemaVersion is stored in PRAGMA user_version. Bump it when the
// table layout changes; older files are then rejected as unreadable.
const sqliteSchemaVersion = 1

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS entries (
    name           TEXT PRIMARY KEY,
    character_json TEXT NOT NULL,
    cached_at      TEXT NOT NULL
)`

type sqliteBackend struct{}

func (sqliteBackend) name() string { return "sqlite" }

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragma busy_timeout: %w", err)
	}
	return db, nil
}

func (sqliteBackend) read(ctx context.Context, path string) (Cache, error) {
	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return nil, fmt.Errorf("read schema version: %w", err)
	}
	if version != sqliteSchemaVersion {
		return nil, fmt.Errorf("schema version mismatch: file has %d, expected %d", version, sqliteSchemaVersion)
	}

	rows, err := db.QueryContext(ctx, "SELECT name, character_json, cached_at FROM entries")
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	cache := Cache{}
	for rows.Next() {
		var (
			name      string
			payload   string
			timestamp string
		)
		if err := rows.Scan(&name, &payload, &timestamp); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		var character swapi.Character
		if err := json.Unmarshal([]byte(payload), &character); err != nil {
			return nil, fmt.Errorf("decode entry %q: %w", name, err)
		}
		cachedAt, err := time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			return nil, fmt.Errorf("parse cached_at for %q: %w", name, err)
		}
		cache[name] = Entry{Character: character, CachedAt: cachedAt}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return cache, nil
}

func (sqliteBackend) write(ctx context.Context, path string, cache Cache) (err error) {
	db, err := openSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err = tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", sqliteSchemaVersion)); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return fmt.Errorf("truncate entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO entries (name, character_json, cached_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for name, entry := range cache {
		payload, marshalErr := json.Marshal(entry.Character)
		if marshalErr != nil {
			err = fmt.Errorf("encode entry %q: %w", name, marshalErr)
			return err
		}
		if _, err = stmt.ExecContext(ctx, name, string(payload), entry.CachedAt.Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("insert entry %q: %w", name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (sqliteBackend) remove(path string) (bool, error) {
	return removeFiles(path, path+"-journal", path+"-wal", path+"-shm")
}
