package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tx-address/internal/address"
	"github.com/tx-address/internal/config"
	"github.com/tx-address/internal/db"
	"github.com/tx-address/internal/engine"
	"github.com/tx-address/internal/logging"
	"github.com/tx-address/internal/match"
	"github.com/tx-address/internal/property"
	"github.com/tx-address/internal/web"
)

func main() {
	configFile := flag.String("config", "", "YAML config file")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.Features.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logging.Install(logger)()

	fmt.Println("=== Texas Address Matching API ===")
	fmt.Printf("Server: http://%s\n", cfg.Server.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	parser := address.NewParser()
	scorer := match.NewScorerWithConfig(match.DefaultWeights(), &match.MatchTiers{
		Confident: cfg.Matching.MinMatchScore,
		Tentative: cfg.Matching.FuzzyMatchScore,
	})

	var searcher *engine.AddressSearcher
	if cfg.Database.URL != "" {
		conn, err := db.NewConnection(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer conn.Close()

		store := property.NewStore(conn.DB, parser)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal("Failed to prepare property table", zap.Error(err))
		}
		searcher = engine.NewAddressSearcher(store, parser, scorer, cfg.Matching.CandidateLimit, logger)
		fmt.Printf("Database: %s\n", cfg.Database.Driver)
	}

	fmt.Println("\nFeatures enabled:")
	fmt.Printf("  • Property search: %v\n", searcher != nil)
	fmt.Printf("  • Debug tracing: %v\n", cfg.Features.Debug)
	fmt.Println()

	if err := web.NewServer(cfg, parser, scorer, searcher, logger).Start(ctx); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
