package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-agent/internal/types"
)

var rankCommand = &cobra.Command{
	Use:   "rank --scope <company> <draft-id>...",
	Short: "Rank a company's variant drafts, best first",
	Long: `Records a ranking over the last variant batch generated for a company.
Draft ids are listed best first; the top-ranked draft becomes the style
exemplar for that company's future drafts.

Example:
  outreach_agent rank --scope "Summit Plastics" v2 v1 v3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRankCmd,
}

var (
	rankScope       string
	rankStateDir    string
	rankDatabaseURL string
)

func init() {
	rankCommand.Flags().StringVarP(&rankScope, "scope", "s", "", "Company display name whose variants are being ranked (required)")
	rankCommand.Flags().StringVar(&rankStateDir, "state-dir", "", "Directory for the feedback ledger (default \".outreach\")")
	rankCommand.Flags().StringVar(&rankDatabaseURL, "db-url", "", "PostgreSQL ledger backend (optional, defaults to DATABASE_URL env var)")
	_ = rankCommand.MarkFlagRequired("scope")

	rootCmd.AddCommand(rankCommand)
}

func runRankCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	seen := make(map[string]bool, len(args))
	ranking := make([]types.RankedDraft, 0, len(args))
	for i, draftID := range args {
		if seen[draftID] {
			return fmt.Errorf("draft id %q listed twice", draftID)
		}
		seen[draftID] = true
		ranking = append(ranking, types.RankedDraft{DraftID: draftID, Rank: i + 1})
	}

	feedback, closeLedger, err := openLedger(ctx, rankDatabaseURL, rankStateDir)
	if err != nil {
		return fmt.Errorf("failed to open feedback ledger: %w", err)
	}
	defer closeLedger()

	entry := types.FeedbackEntry{
		Scope:   rankScope,
		Kind:    types.FeedbackRanking,
		Ranking: ranking,
	}
	if err := feedback.Record(ctx, entry); err != nil {
		return err
	}

	fmt.Printf("Recorded ranking for %q: %v\n", rankScope, args)
	return nil
}
