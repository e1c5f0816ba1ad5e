package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/outreach-agent/internal/types"
)

// directiveAxes groups directive keywords by the stylistic axis they pull
// on. Two directives on the same axis conflict; the most recent one wins
// during folding. Directives matching no axis are kept verbatim.
var directiveAxes = map[string][]string{
	"length":   {"concise", "shorter", "brief", "tighter", "longer", "more detail", "expand"},
	"warmth":   {"warmer", "friendlier", "more personal", "colder", "more formal", "more professional"},
	"jargon":   {"buzzword", "jargon", "plain language", "simpler words"},
	"urgency":  {"more direct", "softer", "less pushy", "stronger ask"},
	"evidence": {"more specific", "more data", "fewer claims", "less salesy"},
}

// Ledger couples an entry store with the variant-batch store needed to
// resolve ranking feedback into exemplars.
type Ledger struct {
	store   Store
	batches BatchStore

	mu     sync.Mutex
	lastTS time.Time
}

// New returns a Ledger over the given backends. batches may equal store
// when one backend implements both.
func New(store Store, batches BatchStore) *Ledger {
	return &Ledger{store: store, batches: batches}
}

// Record validates and appends one feedback entry. Timestamps are assigned
// monotonically: an entry never sorts before one recorded earlier in this
// process, even on clock regression.
func (l *Ledger) Record(ctx context.Context, entry types.FeedbackEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	l.mu.Lock()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if !entry.Timestamp.After(l.lastTS) {
		entry.Timestamp = l.lastTS.Add(time.Microsecond)
	}
	l.lastTS = entry.Timestamp
	l.mu.Unlock()

	return l.store.Append(ctx, entry)
}

// SaveVariantBatch persists the drafts of a variant run so a later ranking
// entry can reference them by id.
func (l *Ledger) SaveVariantBatch(ctx context.Context, scope string, drafts []types.EmailDraft) error {
	return l.batches.SaveBatch(ctx, scope, drafts)
}

// Derive folds all entries for the scope, plus the global scope, in
// chronological order into the current AdjustmentContext. It is idempotent
// and side-effect-free: calling it twice with no intervening Record yields
// identical results.
func (l *Ledger) Derive(ctx context.Context, scope string) (types.AdjustmentContext, error) {
	scopes := []string{types.GlobalScope}
	if scope != "" && scope != types.GlobalScope {
		scopes = append(scopes, scope)
	}

	entries, err := l.store.List(ctx, scopes...)
	if err != nil {
		return types.AdjustmentContext{}, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	result := types.AdjustmentContext{Scope: scope}
	for _, entry := range entries {
		switch entry.Kind {
		case types.FeedbackFreeText:
			result.Directives = foldDirective(result.Directives, entry.Text)
		case types.FeedbackRanking:
			if exemplar := l.resolveExemplar(ctx, entry); exemplar != nil {
				result.Exemplar = exemplar
			}
		}
	}
	return result, nil
}

// foldDirective appends a directive, dropping any earlier directive it
// duplicates (case-insensitive) or conflicts with (same axis).
func foldDirective(directives []string, text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return directives
	}
	axis := axisOf(text)

	kept := directives[:0:len(directives)]
	for _, existing := range directives {
		if strings.EqualFold(existing, text) {
			continue
		}
		if axis != "" && axisOf(existing) == axis {
			continue
		}
		kept = append(kept, existing)
	}
	return append(kept, text)
}

func axisOf(directive string) string {
	lowered := strings.ToLower(directive)
	for axis, keywords := range directiveAxes {
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				return axis
			}
		}
	}
	return ""
}

// resolveExemplar promotes the top-ranked draft of a ranking entry. A
// ranking that references an unknown batch is skipped, not an error: the
// history stays intact and later rankings can still land.
func (l *Ledger) resolveExemplar(ctx context.Context, entry types.FeedbackEntry) *types.Exemplar {
	var topID string
	best := 0
	for _, rd := range entry.Ranking {
		if rd.Rank <= 0 {
			continue
		}
		if topID == "" || rd.Rank < best {
			topID = rd.DraftID
			best = rd.Rank
		}
	}
	if topID == "" {
		return nil
	}

	draft, ok, err := l.batches.GetDraft(ctx, entry.Scope, topID)
	if err != nil || !ok {
		return nil
	}
	exemplar := BuildExemplar(&draft)
	return &exemplar
}

func validateEntry(entry types.FeedbackEntry) error {
	if entry.Scope == "" {
		return fmt.Errorf("feedback entry has no scope")
	}
	switch entry.Kind {
	case types.FeedbackFreeText:
		if strings.TrimSpace(entry.Text) == "" {
			return fmt.Errorf("free-text feedback entry has no text")
		}
	case types.FeedbackRanking:
		if len(entry.Ranking) == 0 {
			return fmt.Errorf("ranking feedback entry has no ranked drafts")
		}
	default:
		return fmt.Errorf("unknown feedback kind %q", entry.Kind)
	}
	return nil
}
