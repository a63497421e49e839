package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/logger"
	"github.com/jonathan/talent-match/internal/matching"
)

const app = "match_agent"

// Config is the CLI configuration, loadable from a YAML file and overridable
// by flags and environment variables.
type Config struct {
	DatabaseURL string          `mapstructure:"database-url"`
	Port        int             `mapstructure:"port"`
	Debug       bool            `mapstructure:"debug"`
	JSONLog     bool            `mapstructure:"json"`
	Matching    matching.Config `mapstructure:"matching"`
}

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talent-match scores candidates against job postings",
		Long:  "talent-match is the hybrid job-matching engine: it scores candidate profiles against job postings using skill, experience, location, salary, content-similarity and collaborative signals, and explains each score in plain text.",
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is match_agent.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("database-url", rootCmd.PersistentFlags().Lookup("database-url"))
	_ = viper.BindEnv("database-url", "DATABASE_URL")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Config file is optional; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}

// getConfig unmarshals the merged configuration over the engine defaults, so
// a partial config file tunes only what it names.
func getConfig() (*Config, error) {
	config := &Config{
		Port:     8080,
		Matching: matching.DefaultConfig(),
	}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return config, nil
}

// newLogger builds the zap logger from the merged configuration.
func newLogger(cfg *Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLog, cfg.Debug)
}
