package main

import (
	"fmt"

	"bookloader/internal/config"
)

// target is where migrations run: the loader's postgres store.
type target struct {
	dsn string
	dir string
}

func loadTarget() (target, error) {
	cfg, err := config.LoadStore()
	if err != nil {
		return target{}, err
	}
	if cfg.Backend != "postgres" {
		return target{}, fmt.Errorf("STORE_BACKEND is %q: migrations only apply to postgres", cfg.Backend)
	}
	return target{dsn: cfg.DSN, dir: cfg.MigrationsDir}, nil
}
