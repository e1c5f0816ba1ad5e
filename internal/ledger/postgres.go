package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/outreach-agent/internal/types"
)

// PGStore is the Postgres ledger backend for shared deployments. It
// implements both Store and BatchStore.
//
// Schema:
//
//	CREATE TABLE feedback_entries (
//	    id         BIGSERIAL PRIMARY KEY,
//	    scope      TEXT NOT NULL,
//	    kind       TEXT NOT NULL,
//	    text       TEXT,
//	    ranking    JSONB,
//	    ts         TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX feedback_entries_scope_ts ON feedback_entries (scope, ts);
//
//	CREATE TABLE variant_batches (
//	    scope      TEXT PRIMARY KEY,
//	    drafts     JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PGStore struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a pooled connection and verifies it.
func ConnectPG(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &StoreError{Op: "connect", Cause: err}
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &StoreError{Op: "connect", Cause: err}
	}
	return &PGStore{pool: pool}, nil
}

// Append inserts one entry. Append-only by construction: no UPDATE or
// DELETE statements exist against feedback_entries.
func (s *PGStore) Append(ctx context.Context, entry types.FeedbackEntry) error {
	var ranking []byte
	if len(entry.Ranking) > 0 {
		data, err := json.Marshal(entry.Ranking)
		if err != nil {
			return &StoreError{Op: "append", Cause: err}
		}
		ranking = data
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO feedback_entries (scope, kind, text, ranking, ts)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.Scope, string(entry.Kind), entry.Text, ranking, entry.Timestamp,
	)
	if err != nil {
		return &StoreError{Op: "append", Cause: err}
	}
	return nil
}

// List returns entries for the scopes in chronological order, insertion
// order breaking timestamp ties.
func (s *PGStore) List(ctx context.Context, scopes ...string) ([]types.FeedbackEntry, error) {
	lowered := make([]string, len(scopes))
	for i, scope := range scopes {
		lowered[i] = strings.ToLower(scope)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT scope, kind, COALESCE(text, ''), ranking, ts
		 FROM feedback_entries
		 WHERE LOWER(scope) = ANY($1)
		 ORDER BY ts ASC, id ASC`,
		lowered,
	)
	if err != nil {
		return nil, &StoreError{Op: "list", Cause: err}
	}
	defer rows.Close()

	var entries []types.FeedbackEntry
	for rows.Next() {
		var entry types.FeedbackEntry
		var kind string
		var ranking []byte
		if err := rows.Scan(&entry.Scope, &kind, &entry.Text, &ranking, &entry.Timestamp); err != nil {
			return nil, &StoreError{Op: "list", Cause: err}
		}
		entry.Kind = types.FeedbackKind(kind)
		if len(ranking) > 0 {
			if err := json.Unmarshal(ranking, &entry.Ranking); err != nil {
				return nil, &StoreError{Op: "list", Cause: fmt.Errorf("corrupt ranking payload: %w", err)}
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list", Cause: err}
	}
	return entries, nil
}

// Close releases the connection pool.
func (s *PGStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// SaveBatch upserts the latest variant batch for a scope.
func (s *PGStore) SaveBatch(ctx context.Context, scope string, drafts []types.EmailDraft) error {
	data, err := json.Marshal(drafts)
	if err != nil {
		return &StoreError{Op: "save batch", Cause: err}
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO variant_batches (scope, drafts, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (scope) DO UPDATE SET drafts = $2, updated_at = NOW()`,
		strings.ToLower(scope), data,
	)
	if err != nil {
		return &StoreError{Op: "save batch", Cause: err}
	}
	return nil
}

// GetDraft resolves a draft id within a scope's stored batch.
func (s *PGStore) GetDraft(ctx context.Context, scope, draftID string) (types.EmailDraft, bool, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT drafts FROM variant_batches WHERE scope = $1`,
		strings.ToLower(scope),
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.EmailDraft{}, false, nil
		}
		return types.EmailDraft{}, false, &StoreError{Op: "get draft", Cause: err}
	}

	var drafts []types.EmailDraft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return types.EmailDraft{}, false, &StoreError{Op: "get draft", Cause: err}
	}
	for _, draft := range drafts {
		if draft.ID == draftID {
			return draft, true, nil
		}
	}
	return types.EmailDraft{}, false, nil
}
