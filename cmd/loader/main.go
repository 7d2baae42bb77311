// Command loader fills the catalog from Open Library bulk dumps: first every
// author, then a bounded prefix of the works dump with author names resolved.
//
// Flags:
//
//	-config   path to a YAML config file (default: environment only)
//	-phase    comma-separated phases to run: authors, works (default: from config)
//	-dry-run  parse and resolve without writing to the store
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bookloader/internal/config"
	"bookloader/internal/dump"
	"bookloader/internal/ingest"
	"bookloader/internal/logging"
	"bookloader/internal/platform/objectstore"
)

func main() {
	os.Exit(run())
}

func run() int {
	configFlag := flag.String("config", "", "path to YAML config file")
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: from config)")
	dryRunFlag := flag.Bool("dry-run", false, "parse dumps without writing to the store")
	flag.Parse()

	cfg, phases, err := loadConfig(*configFlag, *phaseFlag, *dryRunFlag)
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := logging.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Error("connect to store", slog.String("backend", cfg.Store.Backend), slog.String("error", err.Error()))
		return 1
	}
	defer st.close()

	var objects dump.ObjectGetter
	if dump.IsS3(cfg.Dump.AuthorPath) || dump.IsS3(cfg.Dump.WorksPath) {
		client, err := objectstore.NewS3Client(ctx, cfg.Dump.AWSRegion)
		if err != nil {
			logger.Error("create s3 client", slog.String("error", err.Error()))
			return 1
		}
		objects = client
	}

	driver := ingest.NewDriver(logger, dump.NewOpener(objects), st.authors, st.works, st.runs, ingest.Config{
		AuthorDumpPath:   cfg.Dump.AuthorPath,
		WorksDumpPath:    cfg.Dump.WorksPath,
		AuthorsLineLimit: cfg.Dump.AuthorsLineLimit,
		WorksLineLimit:   cfg.Dump.WorksLineLimit,
		WritesPerSecond:  cfg.Dump.WritesPerSecond,
		DryRun:           cfg.Dump.DryRun,
	})

	results := driver.Run(ctx, phases)
	if results.HasErrors() {
		logger.Warn("load completed with errors")
		return 1
	}
	logger.Info("load completed successfully")
	return 0
}

// loadConfig reads the config, applies the -phase and -dry-run flags and only
// then validates, so a dump path is required only for the phases that run.
func loadConfig(path, phaseFlag string, dryRun bool) (*config.Config, ingest.Phases, error) {
	cfg, err := config.Read(path)
	if err != nil {
		return nil, ingest.Phases{}, err
	}

	phases, err := parsePhases(phaseFlag, cfg.Dump)
	if err != nil {
		return nil, ingest.Phases{}, fmt.Errorf("parse phases: %w", err)
	}
	cfg.Dump.LoadAuthors = phases.Authors
	cfg.Dump.LoadWorks = phases.Works
	if dryRun {
		cfg.Dump.DryRun = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, ingest.Phases{}, err
	}
	return cfg, phases, nil
}
