package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS questions (
		position       INTEGER PRIMARY KEY,
		id             TEXT NOT NULL UNIQUE,
		question       TEXT NOT NULL,
		options        TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		image          TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// openSQLite opens the database at dsn and applies pragmas and the schema.
func openSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return db, nil
}

// LoadSQLite reads a bank from a SQLite database. Questions keep the order
// of their position column.
func LoadSQLite(ctx context.Context, dsn string) (*Bank, error) {
	db, err := openSQLite(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, question, options, correct_answer, image FROM questions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var (
			q       Question
			options string
		)
		if err := rows.Scan(&q.ID, &q.Text, &options, &q.CorrectAnswer, &q.Image); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("decode options of %s: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	meta, err := loadMeta(ctx, db)
	if err != nil {
		return nil, err
	}

	b, err := New(questions)
	if err != nil {
		return nil, err
	}
	return b.withMeta(meta), nil
}

func loadMeta(ctx context.Context, db *sql.DB) (map[string]any, error) {
	rows, err := db.QueryContext(ctx, `SELECT key, value FROM meta`)
	if err != nil {
		return nil, fmt.Errorf("query meta: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]any)
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("scan meta: %w", err)
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("decode meta %q: %w", key, err)
		}
		meta[key] = v
	}
	return meta, rows.Err()
}

// WriteSQLite replaces the contents of the SQLite bank at dsn with b.
func WriteSQLite(ctx context.Context, dsn string, b *Bank) error {
	db, err := openSQLite(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM questions`, `DELETE FROM meta`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear bank: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO questions (position, id, question, options, correct_answer, image) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for i, q := range b.Questions() {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("encode options of %s: %w", q.ID, err)
		}
		if _, err := insert.ExecContext(ctx, i, q.ID, q.Text, string(options), q.CorrectAnswer, q.Image); err != nil {
			return fmt.Errorf("insert %s: %w", q.ID, err)
		}
	}

	meta := b.Meta()
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, err := json.Marshal(meta[k])
		if err != nil {
			return fmt.Errorf("encode meta %q: %w", k, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, k, string(v)); err != nil {
			return fmt.Errorf("insert meta %q: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
