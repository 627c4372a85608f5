// Package pgstore is the Postgres-backed store.Store implementation: it
// persists parsed comments across CLI runs the same way the teacher persists
// deployed schema state in its target database, via the same driver family
// (github.com/jackc/pgx/v5) the teacher's dbops.go already type-switches on
// for its stdlib *stdlib.Driver path.
//
// Selection between pgstore and store.MemStore happens one layer up, in
// cli/cmd/store.go: presence of a configured DSN picks pgstore, its absence
// picks the in-memory default -- the same shape as dbops.go's switch between
// *mssql.Driver and *stdlib.Driver, just keyed on configuration rather than
// on a live driver value, since docwiki only ever has one SQL backend.
package pgstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vippsas/docwiki/wikidoc"
)

// PGStore implements store.Store over a pgxpool.Pool. It satisfies
// store.Store structurally; this package does not import the store package.
type PGStore struct {
	pool *pgxpool.Pool
}

// Open connects to Postgres at dsn and returns a ready PGStore. Callers are
// expected to run EnsureSchema once before first use, the same two-step
// "connect, then deploy" sequence the teacher drives from dbops.go.
func Open(ctx context.Context, dsn string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgstore: connecting: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgstore: ping: %w", err)
	}
	return &PGStore{pool: pool}, nil
}

func (s *PGStore) Close() {
	s.pool.Close()
}

// EnsureSchema creates the cache table if it does not already exist. It is
// intentionally a single idempotent statement rather than a migration chain:
// the cache has no history to preserve across versions, unlike the teacher's
// own deployable schema objects (deployable.go).
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS docwiki_comment_cache (
	content_key text PRIMARY KEY,
	payload     jsonb NOT NULL,
	updated_at  timestamptz NOT NULL DEFAULT now()
)`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("pgstore: ensuring schema: %w", err)
	}
	return nil
}

func (s *PGStore) Get(ctx context.Context, key string) (wikidoc.Comment, bool, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM docwiki_comment_cache WHERE content_key = $1`, key,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return wikidoc.Comment{}, false, nil
		}
		return wikidoc.Comment{}, false, fmt.Errorf("pgstore: get %s: %w", key, err)
	}

	var w wireComment
	if err := json.Unmarshal(payload, &w); err != nil {
		return wikidoc.Comment{}, false, fmt.Errorf("pgstore: decoding %s: %w", key, err)
	}
	return decodeComment(w), true, nil
}

func (s *PGStore) Put(ctx context.Context, key string, c wikidoc.Comment) error {
	payload, err := json.Marshal(encodeComment(c))
	if err != nil {
		return fmt.Errorf("pgstore: encoding %s: %w", key, err)
	}

	_, err = s.pool.Exec(ctx, `
INSERT INTO docwiki_comment_cache (content_key, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (content_key) DO UPDATE SET payload = $2, updated_at = now()`,
		key, payload)
	if err != nil {
		return fmt.Errorf("pgstore: put %s: %w", key, err)
	}
	return nil
}
