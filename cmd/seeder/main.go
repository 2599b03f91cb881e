// Command seeder builds the pronunciation dictionary from the CMU
// Pronouncing Dictionary, the bilingual emergency-phrase dictionary and a
// curated overrides file. It is run offline, not as part of the server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse datasets without writing
//	--seeder-config  path to seeder YAML config file
//	--target         sqlite or postgres (default: the configured lexicon driver)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/transkana/internal/adapter/postgres"
	"github.com/heartmarshall/transkana/internal/adapter/postgres/word"
	"github.com/heartmarshall/transkana/internal/adapter/sqlite"
	"github.com/heartmarshall/transkana/internal/app"
	"github.com/heartmarshall/transkana/internal/app/seeder"
	"github.com/heartmarshall/transkana/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse datasets without writing")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	targetFlag := flag.String("target", "", "sqlite or postgres (default: lexicon driver)")
	flag.Parse()

	// Load app config (for the target store).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	target := strings.ToLower(*targetFlag)
	if target == "" {
		target = strings.ToLower(appCfg.Lexicon.Driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var repo seeder.WordWriter
	switch target {
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, appCfg.Lexicon.Path)
		if err != nil {
			logger.Error("open sqlite", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Error("create schema", slog.String("error", err.Error()))
			os.Exit(1)
		}
		repo = store

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
		repo = word.New(pool, postgres.NewTxManager(pool))

	default:
		logger.Error("unsupported seeder target", slog.String("target", target))
		os.Exit(1)
	}

	logger.Info("seeding", slog.String("target", target), slog.Bool("dry_run", seederCfg.DryRun))

	pipeline := seeder.NewPipeline(logger, repo, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
