package main

import (
	"context"
	"path/filepath"
	"testing"

	"bookloader/internal/catalog"
	"bookloader/internal/dump"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPayloads(t *testing.T, path string) []string {
	t.Helper()
	rc, err := dump.NewOpener(nil).Open(context.Background(), path)
	require.NoError(t, err)
	defer rc.Close()

	var payloads []string
	for line, err := range dump.Lines(rc) {
		require.NoError(t, err)
		payload, err := dump.ExtractPayload(line)
		require.NoError(t, err)
		payloads = append(payloads, payload)
	}
	return payloads
}

func TestWriteDump_AuthorsParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authors.txt")
	require.NoError(t, writeDump(path, newGenerator(1).authorLines(25)))

	payloads := readPayloads(t, path)
	require.Len(t, payloads, 25)
	for i, p := range payloads {
		a, err := catalog.ParseAuthor(p)
		require.NoError(t, err)
		assert.Equal(t, authorID(i), a.ID)
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.PersonalName)
	}
}

func TestWriteDump_WorksParseGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "works.txt.gz")
	require.NoError(t, writeDump(path, newGenerator(2).workLines(30, 10)))

	payloads := readPayloads(t, path)
	require.Len(t, payloads, 30)

	withoutAuthors := 0
	for i, p := range payloads {
		w, err := catalog.ParseWork(p)
		require.NoError(t, err)
		assert.Equal(t, workID(i), w.Work.ID)
		assert.NotNil(t, w.Work.PublishedDate)
		if !w.HasAuthors {
			withoutAuthors++
			continue
		}
		assert.NotEmpty(t, w.Work.AuthorIDs)
	}
	assert.Equal(t, 3, withoutAuthors)
}

func TestGenerator_Deterministic(t *testing.T) {
	collect := func() []string {
		var out []string
		for line := range newGenerator(7).workLines(5, 5) {
			payload, err := dump.ExtractPayload(line)
			require.NoError(t, err)
			out = append(out, payload)
		}
		return out
	}
	assert.Equal(t, collect(), collect())
}

func TestWriteDump_BadPath(t *testing.T) {
	err := writeDump(filepath.Join(t.TempDir(), "missing", "x.txt"), func(yield func(string) bool) {})
	assert.Error(t, err)
}

