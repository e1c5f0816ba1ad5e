package main

import (
	"context"
	"os"

	"github.com/jonathan/outreach-agent/internal/ledger"
)

// openLedger builds the feedback ledger on the configured backend: Postgres
// when a database URL is set (flag, config, or DATABASE_URL), otherwise
// JSONL files under stateDir.
func openLedger(ctx context.Context, databaseURL, stateDir string) (*ledger.Ledger, func(), error) {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		store, err := ledger.ConnectPG(ctx, databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return ledger.New(store, store), func() { _ = store.Close() }, nil
	}

	if stateDir == "" {
		stateDir = os.Getenv("OUTREACH_LEDGER")
	}
	if stateDir == "" {
		stateDir = ".outreach"
	}
	store, err := ledger.NewFileStore(stateDir)
	if err != nil {
		return nil, nil, err
	}
	return ledger.New(store, store), func() { _ = store.Close() }, nil
}
