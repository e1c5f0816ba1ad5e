package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-agent/internal/types"
)

var feedbackCommand = &cobra.Command{
	Use:   "feedback [note]",
	Short: "Record free-text feedback that adjusts future drafts",
	Long: `Appends a free-text directive to the feedback ledger. Global feedback
applies to every company; use --scope to target one company's drafts.

Examples:
  outreach_agent feedback "keep drafts under 180 words"
  outreach_agent feedback --scope "Summit Plastics" "lead with the facility expansion"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFeedbackCmd,
}

var (
	feedbackScope       string
	feedbackStateDir    string
	feedbackDatabaseURL string
)

func init() {
	feedbackCommand.Flags().StringVarP(&feedbackScope, "scope", "s", types.GlobalScope, "Company display name this feedback applies to (default: all companies)")
	feedbackCommand.Flags().StringVar(&feedbackStateDir, "state-dir", "", "Directory for the feedback ledger (default \".outreach\")")
	feedbackCommand.Flags().StringVar(&feedbackDatabaseURL, "db-url", "", "PostgreSQL ledger backend (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(feedbackCommand)
}

func runFeedbackCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	note := strings.TrimSpace(strings.Join(args, " "))
	if note == "" {
		return fmt.Errorf("feedback note is empty")
	}

	feedback, closeLedger, err := openLedger(ctx, feedbackDatabaseURL, feedbackStateDir)
	if err != nil {
		return fmt.Errorf("failed to open feedback ledger: %w", err)
	}
	defer closeLedger()

	entry := types.FeedbackEntry{
		Scope: feedbackScope,
		Kind:  types.FeedbackFreeText,
		Text:  note,
	}
	if err := feedback.Record(ctx, entry); err != nil {
		return err
	}

	fmt.Printf("Recorded feedback for scope %q: %s\n", feedbackScope, note)
	return nil
}
