package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-agent/internal/config"
	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/pipeline"
	"github.com/jonathan/outreach-agent/internal/types"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate outreach drafts for every company in the scraped dataset",
	Long: `Loads the most recent scraped dataset (or an explicit one), normalizes each
company, selects an opening hook, matches advisor expertise, applies accumulated
feedback, and generates validated email drafts.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath  string
	genDataset     string
	genDataDir     string
	genProfile     string
	genOutDir      string
	genStateDir    string
	genMinWords    int
	genMaxWords    int
	genTone        string
	genAttempts    int
	genTemperature float64
	genVariants    int
	genWorkers     int
	genCompany     string
	genTimeout     time.Duration
	genAPIKey      string
	genDatabaseURL string
	genVerbose     bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genDataset, "dataset", "d", "", "Path to a scraped_companies CSV (defaults to the newest in --data-dir)")
	generateCommand.Flags().StringVar(&genDataDir, "data-dir", "", "Directory searched for scraped datasets (default \"output\")")
	generateCommand.Flags().StringVarP(&genProfile, "profile", "p", "", "Path to the advisor profile text file")
	generateCommand.Flags().StringVarP(&genOutDir, "out", "o", "", "Directory for drafts and the run summary (default \"drafts\")")
	generateCommand.Flags().StringVar(&genStateDir, "state-dir", "", "Directory for the feedback ledger (default \".outreach\")")

	generateCommand.Flags().IntVar(&genMinWords, "min-words", 0, "Minimum body word count")
	generateCommand.Flags().IntVar(&genMaxWords, "max-words", 0, "Maximum body word count")
	generateCommand.Flags().StringVar(&genTone, "tone", "", "Tone directive for generation")
	generateCommand.Flags().IntVar(&genAttempts, "attempts", 0, "Generation attempts per draft (1-5)")
	generateCommand.Flags().Float64Var(&genTemperature, "temperature", 0, "Oracle sampling temperature")
	generateCommand.Flags().IntVar(&genVariants, "variants", 0, "Generate N ranked-review variants per company instead of one draft")
	generateCommand.Flags().IntVar(&genWorkers, "workers", 0, "Concurrent company pipelines")
	generateCommand.Flags().StringVar(&genCompany, "company", "", "Only process companies whose name contains this text")
	generateCommand.Flags().DurationVar(&genTimeout, "timeout", 0, "Per-request oracle timeout (e.g. 90s)")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	generateCommand.Flags().StringVar(&genDatabaseURL, "db-url", "", "PostgreSQL ledger backend (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// CLI overrides: only apply flags that were explicitly set.
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset = genDataset
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = genDataDir
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = genProfile
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = genOutDir
	}
	if cmd.Flags().Changed("state-dir") {
		cfg.StateDir = genStateDir
	}
	if cmd.Flags().Changed("min-words") {
		cfg.MinWords = genMinWords
	}
	if cmd.Flags().Changed("max-words") {
		cfg.MaxWords = genMaxWords
	}
	if cmd.Flags().Changed("tone") {
		cfg.Tone = genTone
	}
	if cmd.Flags().Changed("attempts") {
		cfg.MaxAttempts = genAttempts
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Temperature = genTemperature
	}
	if cmd.Flags().Changed("variants") {
		cfg.Variants = genVariants
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = genWorkers
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = genDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	genDefaults := types.DefaultGenerationConfig()
	cfg = cfg.MergeWithDefaults(config.Config{
		DataDir:     "output",
		OutDir:      "drafts",
		StateDir:    ".outreach",
		MinWords:    genDefaults.MinWords,
		MaxWords:    genDefaults.MaxWords,
		Tone:        genDefaults.Tone,
		MaxAttempts: genDefaults.MaxAttempts,
		Temperature: float64(genDefaults.Temperature),
	})

	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required (via flag or config)")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	llmConfig := llm.DefaultConfig()
	if genTimeout > 0 {
		llmConfig.DefaultTimeout = genTimeout
	}
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create oracle client: %w", err)
	}
	defer func() { _ = client.Close() }()

	feedback, closeLedger, err := openLedger(ctx, cfg.DatabaseURL, cfg.StateDir)
	if err != nil {
		return fmt.Errorf("failed to open feedback ledger: %w", err)
	}
	defer closeLedger()

	genConfig := types.GenerationConfig{
		MinWords:    cfg.MinWords,
		MaxWords:    cfg.MaxWords,
		Tone:        cfg.Tone,
		MaxAttempts: cfg.MaxAttempts,
		Temperature: float32(cfg.Temperature),
	}

	_, err = pipeline.Run(ctx, pipeline.RunOptions{
		DatasetPath:   cfg.Dataset,
		DataDir:       cfg.DataDir,
		ProfilePath:   cfg.Profile,
		OutDir:        cfg.OutDir,
		CompanyFilter: genCompany,
		Config:        genConfig,
		VariantCount:  cfg.Variants,
		Workers:       cfg.Workers,
		Verbose:       cfg.Verbose,
		Client:        client,
		Feedback:      feedback,
	})
	return err
}
