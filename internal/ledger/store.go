// Package ledger is the durable, append-only record of reviewer feedback
// and the projection that turns it into an adjustment context for the next
// generation. Only Record mutates state; Derive is a pure fold over history.
package ledger

import (
	"context"
	"fmt"

	"github.com/jonathan/outreach-agent/internal/types"
)

// Store persists feedback entries. Implementations must treat the log as
// append-only: entries are never rewritten or deleted.
type Store interface {
	// Append durably adds one entry. Must be atomic with respect to
	// concurrent appenders.
	Append(ctx context.Context, entry types.FeedbackEntry) error
	// List returns every entry whose scope is in scopes, in chronological
	// order (ties resolved by append order).
	List(ctx context.Context, scopes ...string) ([]types.FeedbackEntry, error)
	Close() error
}

// BatchStore persists the most recent variant batch per scope so ranking
// feedback can resolve draft ids back to draft content.
type BatchStore interface {
	SaveBatch(ctx context.Context, scope string, drafts []types.EmailDraft) error
	// GetDraft resolves a draft id within a scope's last batch. The second
	// return value is false when the id is unknown.
	GetDraft(ctx context.Context, scope, draftID string) (types.EmailDraft, bool, error)
}

// StoreError indicates a ledger backend failure.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("ledger %s failed: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
