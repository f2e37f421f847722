package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tx-address/internal/address"
	"github.com/tx-address/internal/config"
	"github.com/tx-address/internal/db"
	"github.com/tx-address/internal/engine"
	"github.com/tx-address/internal/logging"
	"github.com/tx-address/internal/match"
	"github.com/tx-address/internal/property"
)

var (
	configFile string
	debugFlag  bool

	cfg    *config.Config
	logger = zap.NewNop()
	parser = address.NewParser()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "addrmatch",
		Short: "Texas property address parser and matcher",
		Long:  `Parses free-form Texas property addresses, scores them against each other and searches a property store for the records an address refers to`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(); err != nil {
				return fmt.Errorf("failed to load .env: %w", err)
			}

			var err error
			if cfg, err = config.Load(configFile); err != nil {
				return err
			}
			if debugFlag {
				cfg.Features.Debug = true
			}

			if logger, err = logging.New(cfg.Features.Debug); err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			logging.Install(logger)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Trace each parsing and scoring step")

	rootCmd.AddCommand(createParseCmd())
	rootCmd.AddCommand(createCompareCmd())
	rootCmd.AddCommand(createNormalizeCmd())
	rootCmd.AddCommand(createTermsCmd())
	rootCmd.AddCommand(createValidateCmd())
	rootCmd.AddCommand(createSearchCmd())
	rootCmd.AddCommand(createImportCmd())
	rootCmd.AddCommand(createReindexCmd())
	rootCmd.AddCommand(createServeCmd())

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// newScorer builds a scorer using the configured tier thresholds
func newScorer() *match.Scorer {
	return match.NewScorerWithConfig(match.DefaultWeights(), &match.MatchTiers{
		Confident: cfg.Matching.MinMatchScore,
		Tentative: cfg.Matching.FuzzyMatchScore,
	})
}

// openStore connects to the configured database and makes sure the
// property table exists
func openStore(ctx context.Context) (*db.Connection, *property.Store, error) {
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	store := property.NewStore(conn.DB, parser)
	if err := store.EnsureSchema(ctx); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, store, nil
}

func newSearcher(store *property.Store) *engine.AddressSearcher {
	return engine.NewAddressSearcher(store, parser, newScorer(), cfg.Matching.CandidateLimit, logger)
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
