// Package taxonomy loads the versioned industry taxonomy and adjacency table
// used for classification and expertise matching. The data lives in an
// embedded YAML asset so matching behavior is editable without code changes.
package taxonomy

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var taxonomyYAML []byte

// Industry is one taxonomy node. Depth is derived from the parent chain;
// deeper terms are more specific.
type Industry struct {
	Term     string   `yaml:"term"`
	Parent   string   `yaml:"parent"`
	Keywords []string `yaml:"keywords"`
}

// Taxonomy is the parsed data asset. Read-only after Load.
type Taxonomy struct {
	Version    int                 `yaml:"version"`
	Fallback   string              `yaml:"fallback"`
	Industries []Industry          `yaml:"industries"`
	Adjacency  map[string][]string `yaml:"adjacency"`
	SpamProne  []string            `yaml:"spam_prone"`

	byTerm map[string]*Industry
	depths map[string]int
}

var (
	loadOnce sync.Once
	loaded   *Taxonomy
	loadErr  error
)

// Load parses and validates the embedded taxonomy. The result is cached for
// the process lifetime.
func Load() (*Taxonomy, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(taxonomyYAML)
	})
	return loaded, loadErr
}

// MustLoad is Load for callers that treat a broken embedded asset as a
// programming error.
func MustLoad() *Taxonomy {
	t, err := Load()
	if err != nil {
		panic(fmt.Sprintf("taxonomy: %v", err))
	}
	return t
}

func parse(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy YAML: %w", err)
	}
	if t.Fallback == "" {
		return nil, fmt.Errorf("taxonomy has no fallback term")
	}

	t.byTerm = make(map[string]*Industry, len(t.Industries))
	for i := range t.Industries {
		ind := &t.Industries[i]
		key := strings.ToLower(ind.Term)
		if _, dup := t.byTerm[key]; dup {
			return nil, fmt.Errorf("duplicate taxonomy term: %s", ind.Term)
		}
		t.byTerm[key] = ind
	}
	if _, ok := t.byTerm[strings.ToLower(t.Fallback)]; !ok {
		return nil, fmt.Errorf("fallback term %q is not in the taxonomy", t.Fallback)
	}

	// Parents and adjacency targets must reference known terms.
	for _, ind := range t.Industries {
		if ind.Parent != "" {
			if _, ok := t.byTerm[strings.ToLower(ind.Parent)]; !ok {
				return nil, fmt.Errorf("term %q has unknown parent %q", ind.Term, ind.Parent)
			}
		}
	}
	for from, targets := range t.Adjacency {
		if _, ok := t.byTerm[strings.ToLower(from)]; !ok {
			return nil, fmt.Errorf("adjacency source %q is not in the taxonomy", from)
		}
		for _, to := range targets {
			if _, ok := t.byTerm[strings.ToLower(to)]; !ok {
				return nil, fmt.Errorf("adjacency target %q (from %q) is not in the taxonomy", to, from)
			}
		}
	}

	t.depths = make(map[string]int, len(t.Industries))
	for _, ind := range t.Industries {
		depth, err := t.depthOf(ind.Term, 0)
		if err != nil {
			return nil, err
		}
		t.depths[strings.ToLower(ind.Term)] = depth
	}

	return &t, nil
}

func (t *Taxonomy) depthOf(term string, hops int) (int, error) {
	if hops > len(t.Industries) {
		return 0, fmt.Errorf("parent cycle at term %q", term)
	}
	ind, ok := t.byTerm[strings.ToLower(term)]
	if !ok {
		return 0, fmt.Errorf("unknown term %q", term)
	}
	if ind.Parent == "" {
		return 0, nil
	}
	parentDepth, err := t.depthOf(ind.Parent, hops+1)
	if err != nil {
		return 0, err
	}
	return parentDepth + 1, nil
}

// Canonical returns the taxonomy's spelling for term, or "" if unknown.
func (t *Taxonomy) Canonical(term string) string {
	if ind, ok := t.byTerm[strings.ToLower(strings.TrimSpace(term))]; ok {
		return ind.Term
	}
	return ""
}

// Depth returns the specificity of a term (0 = broadest). Unknown terms
// report -1.
func (t *Taxonomy) Depth(term string) int {
	if d, ok := t.depths[strings.ToLower(term)]; ok {
		return d
	}
	return -1
}

// Adjacent returns the adjacency targets for term, most-preferred first.
func (t *Taxonomy) Adjacent(term string) []string {
	for from, targets := range t.Adjacency {
		if strings.EqualFold(from, term) {
			return targets
		}
	}
	return nil
}

// IsSpamProne reports whether any of the tags belongs to a sector on the
// mass-outreach denylist.
func (t *Taxonomy) IsSpamProne(tags []string) bool {
	for _, tag := range tags {
		for _, prone := range t.SpamProne {
			if strings.EqualFold(tag, prone) {
				return true
			}
		}
	}
	return false
}

type keywordHit struct {
	term    string
	keyword string
}

// Classify maps free text to taxonomy terms, ordered most-specific first.
// Keyword matching is case-insensitive with a longest-match-first tie-break;
// if nothing matches, the single fallback term is returned.
func (t *Taxonomy) Classify(text string) []string {
	lowered := strings.ToLower(text)

	var hits []keywordHit
	seen := make(map[string]bool)
	for _, ind := range t.Industries {
		candidates := append([]string{ind.Term}, ind.Keywords...)
		for _, kw := range candidates {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" || !strings.Contains(lowered, kw) {
				continue
			}
			if !seen[strings.ToLower(ind.Term)] {
				seen[strings.ToLower(ind.Term)] = true
				hits = append(hits, keywordHit{term: ind.Term, keyword: kw})
			} else {
				// Keep the longest matched keyword per term for tie-breaking.
				for i := range hits {
					if strings.EqualFold(hits[i].term, ind.Term) && len(kw) > len(hits[i].keyword) {
						hits[i].keyword = kw
					}
				}
			}
		}
	}

	if len(hits) == 0 {
		return []string{t.Canonical(t.Fallback)}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		di, dj := t.Depth(hits[i].term), t.Depth(hits[j].term)
		if di != dj {
			return di > dj
		}
		return len(hits[i].keyword) > len(hits[j].keyword)
	})

	tags := make([]string, 0, len(hits))
	for _, h := range hits {
		tags = append(tags, h.term)
	}
	return tags
}
