package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"bookloader/internal/catalog"

	"github.com/klauspost/compress/gzip"
)

// AuthorLine formats an author record the way the Open Library dump does:
// type, key, revision, last_modified, then the JSON payload, tab-separated.
func AuthorLine(id, payload string) string {
	return fmt.Sprintf("/type/author\t/authors/%s\t1\t2008-04-01T03:28:50.625462\t%s", id, payload)
}

// WorkLine formats a work record in dump layout.
func WorkLine(id, payload string) string {
	return fmt.Sprintf("/type/work\t/works/%s\t3\t2010-04-28T06:54:19.472104\t%s", id, payload)
}

// WriteDump writes lines to a temp file and returns its path. A name ending
// in .gz produces a gzip-compressed dump.
func WriteDump(t testing.TB, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create dump: %v", err)
	}
	defer f.Close()

	body := strings.Join(lines, "\n")
	if len(lines) > 0 {
		body += "\n"
	}

	if strings.HasSuffix(name, ".gz") {
		zw := gzip.NewWriter(f)
		if _, err := zw.Write([]byte(body)); err != nil {
			t.Fatalf("write dump: %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("close gzip: %v", err)
		}
		return path
	}
	if _, err := f.WriteString(body); err != nil {
		t.Fatalf("write dump: %v", err)
	}
	return path
}

// MemStore is an in-memory author and work store keyed by id.
type MemStore struct {
	mu      sync.Mutex
	Authors map[string]catalog.Author
	Works   map[string]catalog.Work
	// WorkOrder lists work ids in the order they were first saved.
	WorkOrder []string
}

func NewMemStore() *MemStore {
	return &MemStore{
		Authors: make(map[string]catalog.Author),
		Works:   make(map[string]catalog.Work),
	}
}

func (s *MemStore) SaveAuthor(_ context.Context, a catalog.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Authors[a.ID] = a
	return nil
}

func (s *MemStore) FindAuthorByID(_ context.Context, id string) (catalog.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.Authors[id]
	if !ok {
		return catalog.Author{}, catalog.ErrNotFound
	}
	return a, nil
}

func (s *MemStore) SaveWork(_ context.Context, w catalog.Work) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Works[w.ID]; !ok {
		s.WorkOrder = append(s.WorkOrder, w.ID)
	}
	s.Works[w.ID] = w
	return nil
}

func (s *MemStore) FindWorkByID(_ context.Context, id string) (catalog.Work, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.Works[id]
	if !ok {
		return catalog.Work{}, catalog.ErrNotFound
	}
	return w, nil
}
