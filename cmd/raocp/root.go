package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/raocp/config"
	"github.com/katalvlaran/raocp/scenario"
)

// defaultScenario is used when --config is not given.
const defaultScenario = `
transition:
  - [0.1, 0.8, 0.1]
  - [0.4, 0.6, 0]
  - [0, 0.3, 0.7]
initial: [0.5, 0.5, 0]
horizon: 4
stopping_time: 3
risk:
  type: AVaR
  alpha: 0.5
`

// envConfig holds flag defaults taken from the environment.
type envConfig struct {
	Config   string `env:"RAOCP_CONFIG"`
	LogLevel string `env:"RAOCP_LOG_LEVEL" envDefault:"warn"`
}

// loadEnv parses the environment into an envConfig.
func loadEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "raocp",
	Short: "Scenario trees, cone projections and risk ambiguity sets",
	Long: `raocp builds Markov-chain scenario trees from a YAML scenario document,
prints the AVaR ambiguity sets of their non-leaf nodes, renders them as
Mermaid or SVG, and projects vectors onto elementary convex cones.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, _ := cmd.Flags().GetString("log-level")
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(lvl))); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", lvl, err)
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg, err := loadEnv()
	if err != nil {
		cfg = envConfig{LogLevel: "warn"}
	}
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", cfg.Config, "Scenario document (YAML); a built-in example is used when empty [$RAOCP_CONFIG]")
	rootCmd.PersistentFlags().String("log-level", cfg.LogLevel, "Log level: debug, info, warn or error [$RAOCP_LOG_LEVEL]")
}

// loadScenario reads the document named by --config.
func loadScenario(cmd *cobra.Command) (*config.Scenario, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Parse([]byte(defaultScenario))
	}
	logger.Debug("loading scenario", "path", path)
	return config.Load(path)
}

// buildTree loads the scenario and builds its tree.
func buildTree(cmd *cobra.Command) (*config.Scenario, *scenario.Tree, error) {
	sc, err := loadScenario(cmd)
	if err != nil {
		return nil, nil, err
	}
	f, err := sc.Factory(scenario.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	tree, err := f.Create()
	if err != nil {
		return nil, nil, err
	}
	return sc, tree, nil
}
