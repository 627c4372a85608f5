// Package store is the documentation-comment cache: parsed comments are kept
// under a content hash of their raw text, the same role the teacher's
// schema-deployment machinery gives a content hash of the generated SQL
// batch (preprocess.go's SchemaSuffixFromHash), just applied to a parsed
// wikidoc.Comment instead of a deployable schema. The `cache` command fills
// it after a full scan; scanning does not consult it, so every comment is
// parsed on every run.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/vippsas/docwiki/wikidoc"
)

// Store persists parsed comments keyed by ContentKey(raw comment text). It
// has no opinion on backend: Get/Put are the entire contract, mirroring the
// teacher's own narrow DB interface (dbintf.go's DB) rather than exposing a
// full SQL-shaped API to callers that only ever need these two operations.
type Store interface {
	Get(ctx context.Context, key string) (wikidoc.Comment, bool, error)
	Put(ctx context.Context, key string, c wikidoc.Comment) error
}

// ContentKey hashes raw comment text into a cache key. Like the teacher's
// SchemaSuffixFromHash, the full digest is unnecessary: collisions across a
// single run's comment set are astronomically unlikely even truncated, and a
// shorter key keeps log lines and debug dumps readable.
func ContentKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:12])
}
