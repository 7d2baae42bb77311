package ingest

import (
	"time"
)

const (
	PhaseAuthors = "authors"
	PhaseWorks   = "works"
)

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Run is the bookkeeping row for one phase over one dump.
type Run struct {
	ID         string
	Phase      string
	DumpPath   string
	LineLimit  int
	DryRun     bool
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     string // RUNNING, COMPLETED, FAILED
	LinesRead  int
	Persisted  int
	Parsed     int
	Skipped    int
	Dropped    int
	Failed     int
	Error      string
}

// Outcome is what a single dump line did to the store.
type Outcome int

const (
	// Persisted: the entity was saved.
	Persisted Outcome = iota
	// Parsed: the entity was built but not saved (dry run).
	Parsed
	// Skipped: no payload, malformed JSON or a missing required field.
	Skipped
	// Dropped: a work without an authors array.
	Dropped
	// Failed: the store rejected a lookup or a save.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Persisted:
		return "persisted"
	case Parsed:
		return "parsed"
	case Skipped:
		return "skipped"
	case Dropped:
		return "dropped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// PhaseResult holds the outcome of a single phase.
type PhaseResult struct {
	Phase     string
	LinesRead int
	Persisted int
	Parsed    int
	Skipped   int
	Dropped   int
	Failed    int
	Duration  time.Duration
	// Err is set when the phase was aborted (dump unavailable or unreadable).
	Err error
}

func (r *PhaseResult) record(o Outcome) {
	switch o {
	case Persisted:
		r.Persisted++
	case Parsed:
		r.Parsed++
	case Skipped:
		r.Skipped++
	case Dropped:
		r.Dropped++
	case Failed:
		r.Failed++
	}
}

type Results []PhaseResult

// HasErrors reports whether any phase aborted or had failed lines.
func (rs Results) HasErrors() bool {
	for _, r := range rs {
		if r.Err != nil || r.Failed > 0 {
			return true
		}
	}
	return false
}
