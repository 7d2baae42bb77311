package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"iter"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

const createdLayout = "2006-01-02T15:04:05.000000"

var (
	firstNames = []string{"Jane", "John", "Ada", "Leo", "Mira", "Omar", "Yuki", "Ines", "Tomas", "Priya"}
	lastNames  = []string{"Doe", "Roe", "Lovelace", "Tolstoy", "Okafor", "Tanaka", "Silva", "Novak", "Rao", "Berg"}
	words      = []string{"River", "Shadow", "Garden", "Winter", "Machine", "Letters", "Harbor", "Silence", "Empire", "Orchard"}
)

type generator struct {
	rnd *rand.Rand
}

func newGenerator(seed int64) *generator {
	return &generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *generator) pick(xs []string) string {
	return xs[g.rnd.Intn(len(xs))]
}

func authorID(i int) string { return fmt.Sprintf("OL%dA", i+1) }
func workID(i int) string   { return fmt.Sprintf("OL%dW", i+1) }

func (g *generator) authorLines(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range n {
			id := authorID(i)
			first, last := g.pick(firstNames), g.pick(lastNames)
			payload := map[string]any{
				"key":           "/authors/" + id,
				"name":          first + " " + last,
				"personal_key":  strings.ToLower(first),
				"type":          map[string]string{"key": "/type/author"},
				"revision":      1,
				"last_modified": map[string]string{"type": "/type/datetime", "value": g.timestamp()},
			}
			if !yield(dumpLine("/type/author", "/authors/"+id, payload)) {
				return
			}
		}
	}
}

// workLines references author ids up to authorCount+authorCount/10 so that
// some lookups miss. Every tenth work has no authors array.
func (g *generator) workLines(n, authorCount int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range n {
			id := workID(i)
			payload := map[string]any{
				"key":   "/works/" + id,
				"title": fmt.Sprintf("The %s of %s", g.pick(words), g.pick(words)),
				"created": map[string]string{
					"type":  "/type/datetime",
					"value": g.timestamp(),
				},
			}
			if g.rnd.Intn(2) == 0 {
				payload["description"] = map[string]string{
					"type":  "/type/text",
					"value": fmt.Sprintf("A novel about %s.", strings.ToLower(g.pick(words))),
				}
			}
			covers := make([]int, g.rnd.Intn(3))
			for c := range covers {
				covers[c] = 1000000 + g.rnd.Intn(9000000)
			}
			payload["covers"] = covers

			if i%10 != 9 && authorCount > 0 {
				span := authorCount + authorCount/10
				refs := make([]map[string]any, 1+g.rnd.Intn(2))
				for r := range refs {
					refs[r] = map[string]any{
						"type":   map[string]string{"key": "/type/author_role"},
						"author": map[string]string{"key": "/authors/" + authorID(g.rnd.Intn(span))},
					}
				}
				payload["authors"] = refs
			}

			if !yield(dumpLine("/type/work", "/works/"+id, payload)) {
				return
			}
		}
	}
}

func (g *generator) timestamp() string {
	start := time.Date(2008, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := time.Duration(g.rnd.Int63n(int64(15 * 365 * 24 * time.Hour)))
	return start.Add(offset).Format(createdLayout)
}

func dumpLine(typ, key string, payload map[string]any) string {
	b, _ := json.Marshal(payload)
	return fmt.Sprintf("%s\t%s\t1\t%s\t%s", typ, key, time.Now().UTC().Format(createdLayout), b)
}

// writeDump writes lines to path, gzip-compressed when path ends in .gz.
func writeDump(path string, lines iter.Seq[string]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w *bufio.Writer
	if strings.HasSuffix(path, ".gz") {
		zw := gzip.NewWriter(f)
		defer func() {
			if cerr := zw.Close(); err == nil {
				err = cerr
			}
		}()
		w = bufio.NewWriter(zw)
	} else {
		w = bufio.NewWriter(f)
	}

	for line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
