package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/batch"
	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/observability"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Score many candidates against one job posting",
	Long: `Scores every candidate in the input file against one job posting, in
parallel, and prints the ranked results. Each pair is scored independently; a
malformed candidate record is reported and skipped, never aborting the batch.`,
	RunE: runBatchCmd,
}

var (
	batchJobPath          string
	batchCandidatesPath   string
	batchInteractionsPath string
	batchConcurrency      int
	batchPersist          bool
)

func init() {
	batchCommand.Flags().StringVarP(&batchJobPath, "job", "o", "", "Path to job posting JSON file (required)")
	batchCommand.Flags().StringVarP(&batchCandidatesPath, "candidates", "c", "", "Path to JSON array of candidate profiles (required)")
	batchCommand.Flags().StringVarP(&batchInteractionsPath, "interactions", "i", "", "Path to interaction-log fixture JSON file (optional)")
	batchCommand.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum pairs scored in parallel (default: number of CPUs)")
	batchCommand.Flags().BoolVar(&batchPersist, "persist", false, "Store all results in the database")
	_ = batchCommand.MarkFlagRequired("job")
	_ = batchCommand.MarkFlagRequired("candidates")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := getConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stdout sync failure is not actionable

	job, err := loadJob(batchJobPath)
	if err != nil {
		return err
	}
	candidates, err := loadCandidates(batchCandidatesPath)
	if err != nil {
		return err
	}

	opts := []matching.Option{matching.WithLogger(log)}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		opts = append(opts, matching.WithInteractionStore(database))
	}
	if batchInteractionsPath != "" {
		store, err := loadInteractions(batchInteractionsPath)
		if err != nil {
			return err
		}
		opts = append(opts, matching.WithInteractionStore(store))
	}

	engine, err := matching.NewEngine(cfg.Matching, opts...)
	if err != nil {
		return err
	}

	scorer := batch.NewScorer(engine,
		batch.WithLogger(log),
		batch.WithConcurrency(batchConcurrency))

	results, failures := scorer.ScoreCandidates(ctx, job, candidates)
	ranked := batch.SortByScore(results)

	if batchPersist {
		if database == nil {
			return fmt.Errorf("--persist requires a database URL")
		}
		for _, result := range ranked {
			if err := database.UpsertMatchScore(ctx, result); err != nil {
				return err
			}
		}
	}

	for _, failure := range failures {
		log.Warn("candidate skipped", zap.Error(failure))
	}
	observability.NewPrinter(os.Stdout).PrintRankedMatches(ranked)
	return nil
}
