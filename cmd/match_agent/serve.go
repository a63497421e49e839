package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the match scoring HTTP API server",
	Long: `Starts the REST API: POST /v1/match scores one pair, POST /v1/match/batch
ranks many candidates against a job, GET /v1/jobs/{id}/matches lists stored
scores. A database is optional; without one the server scores without
persistence and without the collaborative signal.`,
	RunE: runServeCmd,
}

func init() {
	serveCommand.Flags().Int("port", 8080, "Port to listen on")
	_ = viper.BindPFlag("port", serveCommand.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stdout sync failure is not actionable

	opts := []matching.Option{matching.WithLogger(log)}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		opts = append(opts, matching.WithInteractionStore(database))
	}

	engine, err := matching.NewEngine(cfg.Matching, opts...)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port, DatabaseURL: cfg.DatabaseURL}, engine, database, log)
	return srv.Start()
}
