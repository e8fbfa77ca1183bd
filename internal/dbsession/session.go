// Package dbsession is the thin collaborator this library treats as an
// external dependency (spec.md §1: "the underlying database client/driver"
// is explicitly out of scope) — it owns nothing about the query algebra or
// migration diffing, only the mechanics of opening a connection, selecting a
// namespace/database, and shuttling a raw query string plus bound
// parameters to the driver and back.
//
// Grounded on the teacher's internal/storage/surrealdb.go (Connect/Close) and
// surrealdb_query_helper.go (the query/QueryResult dispatch), with the
// embedded-vs-remote dual backend collapsed: this package only ever talks to
// github.com/surrealdb/surrealdb.go, since the embedded-library branch
// (surrealdb-embedded-golang, the llama/tree-sitter extraction machinery) is
// out of this spec's domain (see DESIGN.md "Dropped teacher code").
package dbsession

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/surrealdb/surrealdb.go"
)

// Config mirrors the teacher's ConnectionConfig, trimmed to the fields a
// query-builder/migration library actually needs.
type Config struct {
	URL       string
	Username  string
	Password  string
	Namespace string
	Database  string
}

// Session wraps one surrealdb.go connection, namespaced/databased on Open.
type Session struct {
	db  *surrealdb.DB
	cfg Config
}

// Open connects and selects the configured namespace/database, matching the
// teacher's SurrealDBStorage.Connect remote-backend branch.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.Namespace == "" {
		cfg.Namespace = "test"
	}
	if cfg.Database == "" {
		cfg.Database = "test"
	}

	db, err := surrealdb.New(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dbsession: connect to %q: %w", cfg.URL, err)
	}

	if cfg.Username != "" && cfg.Password != "" {
		if _, err := db.SignIn(map[string]any{"user": cfg.Username, "pass": cfg.Password}); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("dbsession: sign in: %w", err)
		}
	}

	if err := db.Use(cfg.Namespace, cfg.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("dbsession: use %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}

	slog.Debug("dbsession: connected", "url", cfg.URL, "ns", cfg.Namespace, "db", cfg.Database)
	return &Session{db: db, cfg: cfg}, nil
}

// OpenMemory opens an isolated in-memory instance scoped to a private
// namespace/database pair, the two-isolated-databases primitive the
// migration engine (pkg/migrator) builds its left/right snapshots on top of.
func OpenMemory(ctx context.Context, namespace, database string) (*Session, error) {
	return Open(ctx, Config{URL: "memory", Namespace: namespace, Database: database})
}

// Close releases the underlying driver connection.
func (s *Session) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// QueryResult mirrors the shape the driver returns per statement in a
// (possibly multi-statement) query, grounded on the teacher's QueryResult.
type QueryResult struct {
	Status string
	Time   string
	Result []map[string]any
}

// Query runs sql with the given bound parameters and returns one
// QueryResult per semicolon-terminated statement, unflattened so callers can
// inspect per-statement status (the migration engine must know exactly
// which statement in a batch failed).
func (s *Session) Query(ctx context.Context, sql string, vars map[string]any) ([]QueryResult, error) {
	raw, err := surrealdb.Query[[]map[string]any](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("dbsession: query: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	out := make([]QueryResult, 0, len(*raw))
	for _, qr := range *raw {
		out = append(out, QueryResult{Status: qr.Status, Time: qr.Time, Result: qr.Result})
	}
	return out, nil
}

// QueryFlat is Query, with every OK statement's rows flattened into one
// slice and SurrealDB's RecordID wire shapes normalized via decode.go —
// the common case for introspection queries like "INFO FOR DB".
func (s *Session) QueryFlat(ctx context.Context, sql string, vars map[string]any) ([]map[string]any, error) {
	results, err := s.Query(ctx, sql, vars)
	if err != nil {
		return nil, err
	}

	flat := make([]map[string]any, 0)
	for _, r := range results {
		if r.Status != "OK" {
			return nil, fmt.Errorf("dbsession: statement failed: %s", r.Status)
		}
		flat = append(flat, r.Result...)
	}
	return normalizeRows(flat), nil
}

// Exec runs sql for its side effects only, returning an error if any
// statement in the batch did not report "OK".
func (s *Session) Exec(ctx context.Context, sql string, vars map[string]any) error {
	results, err := s.Query(ctx, sql, vars)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Status != "OK" {
			return fmt.Errorf("dbsession: statement failed: %s", r.Status)
		}
	}
	return nil
}
