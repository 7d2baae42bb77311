// Command seed writes synthetic author and works dumps in Open Library line
// format, for exercising the loader without the multi-gigabyte originals.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"
)

func main() {
	var (
		outDir  = flag.String("out", "testdata", "directory to write the dumps into")
		authors = flag.Int("authors", 1000, "number of author lines")
		works   = flag.Int("works", 200, "number of work lines")
		gz      = flag.Bool("gzip", false, "gzip the dumps (.txt.gz)")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *outDir, err)
	}

	ext := ".txt"
	if *gz {
		ext = ".txt.gz"
	}
	authorPath := filepath.Join(*outDir, "ol_dump_authors"+ext)
	worksPath := filepath.Join(*outDir, "ol_dump_works"+ext)

	gen := newGenerator(*seed)

	log.Printf("Generating %d authors...", *authors)
	if err := writeDump(authorPath, gen.authorLines(*authors)); err != nil {
		log.Fatalf("Failed to write authors: %v", err)
	}

	log.Printf("Generating %d works...", *works)
	if err := writeDump(worksPath, gen.workLines(*works, *authors)); err != nil {
		log.Fatalf("Failed to write works: %v", err)
	}

	log.Printf("Wrote %s and %s", authorPath, worksPath)
	log.Printf("Load them with: AUTHOR_DUMP_PATH=%s WORKS_DUMP_PATH=%s go run ./cmd/loader", authorPath, worksPath)
}
