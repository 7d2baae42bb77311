package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoMigrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file lives in cmd/migrate/, so repo root is ../..
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "db", "migrations")
}

func TestCollectMigrations_ParsesMigrationsDir(t *testing.T) {
	migrations, err := goose.CollectMigrations(repoMigrationsDir(t), 0, goose.MaxVersion)
	require.NoError(t, err)
	assert.NotEmpty(t, migrations)
}

func TestMigrations_CreateLoaderTables(t *testing.T) {
	dir := repoMigrationsDir(t)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var all strings.Builder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		s := string(b)
		assert.Contains(t, s, "-- +goose Up", e.Name())
		assert.Contains(t, s, "-- +goose Down", e.Name())
		all.WriteString(s)
	}

	schema := all.String()
	for _, table := range []string{"authors", "works", "ingest_runs"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	for _, column := range []string{"personal_name", "author_names", "cover_ids", "published_date", "parsed", "dropped"} {
		assert.Contains(t, schema, column)
	}
}

func TestMigrate_Create(t *testing.T) {
	dir := t.TempDir()

	msg, err := migrate(nil, dir, "create", "add_editions")
	require.NoError(t, err)
	assert.Equal(t, "Migration created: add_editions", msg)

	files, err := filepath.Glob(filepath.Join(dir, "*_add_editions.sql"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestMigrate_CreateRequiresName(t *testing.T) {
	_, err := migrate(nil, t.TempDir(), "create", "")
	assert.ErrorContains(t, err, "name is required")
}

func TestMigrate_UnknownCommand(t *testing.T) {
	_, err := migrate(nil, t.TempDir(), "redo-all", "")
	assert.ErrorIs(t, err, errUnknownCommand)
}
