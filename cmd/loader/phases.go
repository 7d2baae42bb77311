package main

import (
	"fmt"
	"strings"

	"bookloader/internal/config"
	"bookloader/internal/ingest"
)

// parsePhases turns the -phase flag into the phases to run. An empty flag
// falls back to LOAD_AUTHORS / LOAD_WORKS.
func parsePhases(flagValue string, cfg config.DumpConfig) (ingest.Phases, error) {
	if strings.TrimSpace(flagValue) == "" {
		return ingest.Phases{Authors: cfg.LoadAuthors, Works: cfg.LoadWorks}, nil
	}

	var phases ingest.Phases
	for _, p := range strings.Split(flagValue, ",") {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case ingest.PhaseAuthors:
			phases.Authors = true
		case ingest.PhaseWorks:
			phases.Works = true
		case "":
		default:
			return ingest.Phases{}, fmt.Errorf("unknown phase %q (want %s or %s)", p, ingest.PhaseAuthors, ingest.PhaseWorks)
		}
	}
	return phases, nil
}
