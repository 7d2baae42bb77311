package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"bookloader/internal/platform/postgres"
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	tgt, err := loadTarget()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var db *sql.DB
	if *command != "create" {
		pool, err := postgres.NewPool(context.Background(), tgt.dsn, 0)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		db = stdlib.OpenDBFromPool(pool)
		defer db.Close()
	}

	msg, err := migrate(db, tgt.dir, *command, *name)
	if err != nil {
		log.Fatalf("Migration %s failed: %v", *command, err)
	}
	if msg != "" {
		fmt.Println(msg)
	}
}

// migrate runs one goose command against dir. db may be nil for "create".
func migrate(db *sql.DB, dir, command, name string) (string, error) {
	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return "", err
	}

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return "", err
		}
		return "Migrations applied successfully", nil
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return "", err
		}
		return "Migrations rolled back successfully", nil
	case "status":
		return "", goose.Status(db, dir)
	case "create":
		if name == "" {
			return "", errors.New("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, name, "sql"); err != nil {
			return "", err
		}
		return fmt.Sprintf("Migration created: %s", name), nil
	default:
		return "", fmt.Errorf("%w %q: use up, down, status, create", errUnknownCommand, command)
	}
}
