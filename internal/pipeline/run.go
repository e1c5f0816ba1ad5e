// Package pipeline provides the high-level orchestration for the outreach
// generation process: load scraped companies, normalize each one, pick an
// angle, apply accumulated feedback, and generate validated drafts.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/outreach-agent/internal/advisor"
	"github.com/jonathan/outreach-agent/internal/dataset"
	"github.com/jonathan/outreach-agent/internal/generate"
	"github.com/jonathan/outreach-agent/internal/hook"
	"github.com/jonathan/outreach-agent/internal/ledger"
	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/match"
	"github.com/jonathan/outreach-agent/internal/normalize"
	"github.com/jonathan/outreach-agent/internal/observability"
	"github.com/jonathan/outreach-agent/internal/taxonomy"
	"github.com/jonathan/outreach-agent/internal/types"
	"github.com/jonathan/outreach-agent/internal/variants"
)

// defaultWorkers bounds concurrent company pipelines. Retries for one
// company stay sequential; only distinct companies run in parallel.
const defaultWorkers = 4

// RunOptions holds configuration for running the pipeline.
type RunOptions struct {
	DatasetPath string // Explicit CSV; when empty, the latest in DataDir is used
	DataDir     string
	ProfilePath string
	OutDir      string
	// CompanyFilter restricts the run to companies whose name contains the
	// filter, case-insensitively. Empty means all.
	CompanyFilter string

	Config       types.GenerationConfig
	VariantCount int // 0 = single draft per company

	Workers int
	Verbose bool

	// Client is the oracle client; required. The caller owns Close.
	Client llm.Client
	// Feedback is the ledger used to derive adjustment contexts and store
	// variant batches; required.
	Feedback *ledger.Ledger
}

// CompanyResult is the outcome for one company in a run.
type CompanyResult struct {
	Company string             `json:"company"`
	Drafts  []types.EmailDraft `json:"drafts"`
	BatchID string             `json:"batch_id,omitempty"`
	Err     string             `json:"error,omitempty"`
}

// Summary aggregates a run's outcomes.
type Summary struct {
	Companies int             `json:"companies"`
	Clean     int             `json:"clean_drafts"`
	Flagged   int             `json:"flagged_drafts"`
	Failed    int             `json:"failed_companies"`
	Results   []CompanyResult `json:"results"`
}

// Run executes the full outreach pipeline and returns the run summary.
// Individual company failures are recorded in the summary, not fatal; only
// setup failures (profile, dataset, taxonomy) abort the run.
func Run(ctx context.Context, opts RunOptions) (*Summary, error) {
	printer := observability.NewPrinter(os.Stdout)

	caps, err := advisor.LoadFile(opts.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("advisor profile: %w", err)
	}

	tax, err := taxonomy.Load()
	if err != nil {
		return nil, fmt.Errorf("industry taxonomy: %w", err)
	}

	datasetPath := opts.DatasetPath
	if datasetPath == "" {
		datasetPath, err = dataset.FindLatest(opts.DataDir)
		if err != nil {
			return nil, err
		}
	}
	fmt.Printf("Loading scraped data from: %s\n", datasetPath)

	records, err := dataset.LoadRecords(datasetPath)
	if err != nil {
		return nil, err
	}
	if opts.CompanyFilter != "" {
		filtered := records[:0]
		for _, record := range records {
			if strings.Contains(strings.ToLower(record.CompanyName), strings.ToLower(opts.CompanyFilter)) {
				filtered = append(filtered, record)
			}
		}
		records = filtered
		if len(records) == 0 {
			return nil, fmt.Errorf("no company in %s matches %q", datasetPath, opts.CompanyFilter)
		}
	}
	fmt.Printf("Generating outreach for %d companies...\n\n", len(records))

	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	normalizer := normalize.New(tax)
	matcher := match.New(tax)
	gen := generate.NewGenerator(opts.Client)

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	results := make([]CompanyResult, len(records))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, record := range records {
		g.Go(func() error {
			result := runCompany(gCtx, opts, record, caps, tax, normalizer, matcher, gen, printer)
			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := summarize(results)
	if opts.OutDir != "" {
		if err := writeSummary(opts.OutDir, summary); err != nil {
			fmt.Printf("Warning: failed to write run summary: %v\n", err)
		}
	}
	printer.PrintRunSummary(summary.Companies, summary.Clean, summary.Flagged, summary.Failed)
	return summary, nil
}

func runCompany(
	ctx context.Context,
	opts RunOptions,
	record types.RawCompanyRecord,
	caps *types.AdvisorCapabilities,
	tax *taxonomy.Taxonomy,
	normalizer *normalize.Normalizer,
	matcher *match.Matcher,
	gen *generate.Generator,
	printer *observability.Printer,
) CompanyResult {
	profile := normalizer.Normalize(record)
	result := CompanyResult{Company: profile.DisplayName}
	if result.Company == "" {
		result.Company = record.CompanyName
	}

	if opts.Verbose {
		printer.PrintCompanyProfile(&profile)
	}

	matchResult := matcher.Match(caps, &profile)
	selected := hook.Select(&profile)
	if opts.Verbose {
		printer.PrintAngle(selected, &matchResult)
	}

	adjustment, err := opts.Feedback.Derive(ctx, profile.DisplayName)
	if err != nil {
		// A broken ledger must not block outreach; generate without it.
		fmt.Printf("Warning: feedback unavailable for %s: %v\n", result.Company, err)
	} else if opts.Verbose {
		printer.PrintAdjustments(&adjustment)
	}

	config := opts.Config
	config.AntiSpamMode = config.AntiSpamMode || tax.IsSpamProne(profile.IndustryTags)

	req := &generate.Request{
		Profile:      &profile,
		Capabilities: caps,
		Hook:         selected,
		Match:        &matchResult,
		Adjustment:   &adjustment,
		Config:       config,
	}

	if opts.VariantCount > 1 {
		batch, err := variants.Generate(ctx, gen, req, opts.VariantCount)
		if err != nil {
			result.Err = err.Error()
		}
		if batch != nil {
			result.BatchID = batch.ID
			result.Drafts = batch.Drafts
			if err := opts.Feedback.SaveVariantBatch(ctx, batch.Scope, batch.Drafts); err != nil {
				fmt.Printf("Warning: failed to save variant batch for %s: %v\n", result.Company, err)
			}
		}
	} else {
		draft, err := gen.Generate(ctx, req)
		if err != nil && draft == nil {
			result.Err = err.Error()
		}
		if draft != nil {
			if err != nil {
				result.Err = err.Error()
			}
			result.Drafts = []types.EmailDraft{*draft}
		}
	}

	for i := range result.Drafts {
		printer.PrintDraft(&result.Drafts[i])
		if opts.OutDir != "" {
			if err := writeDraft(opts.OutDir, result.Company, &result.Drafts[i], caps.SignatureBlock); err != nil {
				fmt.Printf("Warning: failed to write draft for %s: %v\n", result.Company, err)
			}
		}
	}
	return result
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

func draftFilename(company string, draft *types.EmailDraft) string {
	slug := unsafeFileChars.ReplaceAllString(strings.ToLower(company), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		slug = "company"
	}
	if draft.ID != "" && strings.HasPrefix(draft.ID, "v") && len(draft.ID) <= 3 {
		return fmt.Sprintf("%s_%s.json", slug, draft.ID)
	}
	return slug + ".json"
}

// writeDraft persists a ready-to-send copy: the advisor's signature is
// appended here, never generated into the body, so validation word counts
// stay signature-free.
func writeDraft(dir, company string, draft *types.EmailDraft, signature string) error {
	out := *draft
	if signature != "" && out.Body != "" {
		out.Body = out.Body + "\n\n" + signature
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, draftFilename(company, draft)), data, 0644)
}

func writeSummary(dir string, summary *Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "run_summary.json"), data, 0644)
}

func summarize(results []CompanyResult) *Summary {
	summary := &Summary{Companies: len(results), Results: results}
	for _, result := range results {
		if result.Err != "" && len(result.Drafts) == 0 {
			summary.Failed++
			continue
		}
		failed := true
		for _, draft := range result.Drafts {
			if draft.Clean() {
				summary.Clean++
				failed = false
			} else {
				summary.Flagged++
				if !hasOracleFailure(&draft) {
					failed = false
				}
			}
		}
		if failed && len(result.Drafts) > 0 {
			summary.Failed++
		}
	}
	return summary
}

func hasOracleFailure(draft *types.EmailDraft) bool {
	for _, flag := range draft.ValidationFlags {
		if flag == types.ViolationOracleFailure {
			return true
		}
	}
	return false
}
