package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/observability"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against one job posting",
	Long: `Scores a single (candidate, job) pair and prints the overall score,
sub-scores, confidence, match reasons and improvement suggestions.

An optional interactions fixture enables the collaborative signal; with
--database-url the result is also stored.`,
	RunE: runScoreCmd,
}

var (
	scoreCandidatePath    string
	scoreJobPath          string
	scoreInteractionsPath string
	scorePersist          bool
)

func init() {
	scoreCommand.Flags().StringVarP(&scoreCandidatePath, "candidate", "c", "", "Path to candidate profile JSON file (required)")
	scoreCommand.Flags().StringVarP(&scoreJobPath, "job", "o", "", "Path to job posting JSON file (required)")
	scoreCommand.Flags().StringVarP(&scoreInteractionsPath, "interactions", "i", "", "Path to interaction-log fixture JSON file (optional)")
	scoreCommand.Flags().BoolVar(&scorePersist, "persist", false, "Store the result in the database")
	_ = scoreCommand.MarkFlagRequired("candidate")
	_ = scoreCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
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

	candidate, err := loadCandidate(scoreCandidatePath)
	if err != nil {
		return err
	}
	job, err := loadJob(scoreJobPath)
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
	if scoreInteractionsPath != "" {
		store, err := loadInteractions(scoreInteractionsPath)
		if err != nil {
			return err
		}
		opts = append(opts, matching.WithInteractionStore(store))
	}

	engine, err := matching.NewEngine(cfg.Matching, opts...)
	if err != nil {
		return err
	}

	result, err := engine.Compute(ctx, candidate, job)
	if err != nil {
		return err
	}

	if scorePersist {
		if database == nil {
			return fmt.Errorf("--persist requires a database URL")
		}
		if err := database.UpsertMatchScore(ctx, result); err != nil {
			return err
		}
	}

	observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	return nil
}
