package ledger

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/jonathan/outreach-agent/internal/types"
)

const (
	feedbackLogName = "feedback.jsonl"
	batchDirName    = "batches"
)

// FileStore is the default ledger backend: one JSON object per line in an
// append-only log, with variant batches as sibling JSON files. Suitable for
// the single-host CLI; Postgres (PGStore) covers shared deployments.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore opens (creating if needed) a file-backed ledger rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, batchDirName), 0o755); err != nil {
		return nil, &StoreError{Op: "init", Cause: err}
	}
	return &FileStore{dir: dir}, nil
}

// Append writes one entry as a JSON line and syncs before returning, so an
// acknowledged record survives a crash.
func (s *FileStore) Append(_ context.Context, entry types.FeedbackEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return &StoreError{Op: "append", Cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(filepath.Join(s.dir, feedbackLogName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &StoreError{Op: "append", Cause: err}
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return &StoreError{Op: "append", Cause: err}
	}
	if err := f.Sync(); err != nil {
		return &StoreError{Op: "append", Cause: err}
	}
	return nil
}

// List reads the full log and filters by scope. Malformed lines (a torn
// final write after a crash) are skipped rather than failing the read.
func (s *FileStore) List(_ context.Context, scopes ...string) ([]types.FeedbackEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(filepath.Join(s.dir, feedbackLogName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StoreError{Op: "list", Cause: err}
	}
	defer func() { _ = f.Close() }()

	wanted := make(map[string]bool, len(scopes))
	for _, scope := range scopes {
		wanted[strings.ToLower(scope)] = true
	}

	var entries []types.FeedbackEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry types.FeedbackEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if len(wanted) == 0 || wanted[strings.ToLower(entry.Scope)] {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &StoreError{Op: "list", Cause: err}
	}
	return entries, nil
}

// Close is a no-op; the log file is opened per append.
func (s *FileStore) Close() error { return nil }

// SaveBatch replaces the stored batch for a scope. Batches, unlike feedback
// entries, are snapshots: only the most recent run is rankable.
func (s *FileStore) SaveBatch(_ context.Context, scope string, drafts []types.EmailDraft) error {
	data, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return &StoreError{Op: "save batch", Cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.batchPath(scope)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &StoreError{Op: "save batch", Cause: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &StoreError{Op: "save batch", Cause: err}
	}
	return nil
}

// GetDraft resolves a draft id within a scope's stored batch.
func (s *FileStore) GetDraft(_ context.Context, scope, draftID string) (types.EmailDraft, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.batchPath(scope))
	if err != nil {
		if os.IsNotExist(err) {
			return types.EmailDraft{}, false, nil
		}
		return types.EmailDraft{}, false, &StoreError{Op: "get draft", Cause: err}
	}

	var drafts []types.EmailDraft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return types.EmailDraft{}, false, &StoreError{Op: "get draft", Cause: fmt.Errorf("corrupt batch for scope %q: %w", scope, err)}
	}
	for _, draft := range drafts {
		if draft.ID == draftID {
			return draft, true, nil
		}
	}
	return types.EmailDraft{}, false, nil
}

var unsafePathChars = regexp.MustCompile(`[^a-z0-9._-]+`)

func (s *FileStore) batchPath(scope string) string {
	slug := unsafePathChars.ReplaceAllString(strings.ToLower(scope), "_")
	return filepath.Join(s.dir, batchDirName, slug+".json")
}
