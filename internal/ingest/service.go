package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"bookloader/internal/catalog"
	"bookloader/internal/dump"
)

// ErrAuthorsNotLoaded is returned by LoadWorks when it is called without the
// barrier produced by LoadAuthors or SkipAuthors.
var ErrAuthorsNotLoaded = errors.New("works phase started before authors phase returned")

type Config struct {
	AuthorDumpPath   string
	WorksDumpPath    string
	AuthorsLineLimit int // 0 = whole file
	WorksLineLimit   int // 0 = whole file
	WritesPerSecond  int // 0 = unthrottled
	DryRun           bool
}

// DumpOpener opens a dump for sequential reading.
type DumpOpener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// AuthorsLoaded is the stage barrier between the two phases. Only LoadAuthors
// and SkipAuthors produce a usable value, so works cannot be resolved against
// an author table that is still being written.
type AuthorsLoaded struct {
	ok bool
}

// SkipAuthors is the barrier for runs that rely on authors loaded earlier.
func SkipAuthors() AuthorsLoaded {
	return AuthorsLoaded{ok: true}
}

type Phases struct {
	Authors bool
	Works   bool
}

// Driver runs the two-phase load: every author line, then a bounded prefix of
// the works dump. Lines are handled one at a time in file order.
type Driver struct {
	log      *slog.Logger
	dumps    DumpOpener
	authors  catalog.AuthorRepository
	works    catalog.WorkRepository
	runs     Repository
	resolver *catalog.Resolver
	limiter  *rate.Limiter
	cfg      Config
}

func NewDriver(log *slog.Logger, dumps DumpOpener, authors catalog.AuthorRepository, works catalog.WorkRepository, runs Repository, cfg Config) *Driver {
	if runs == nil {
		runs = NopRepository{}
	}
	var limiter *rate.Limiter
	if cfg.WritesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.WritesPerSecond), 1)
	}
	return &Driver{
		log:      log,
		dumps:    dumps,
		authors:  authors,
		works:    works,
		runs:     runs,
		resolver: catalog.NewResolver(authors),
		limiter:  limiter,
		cfg:      cfg,
	}
}

// Run executes the enabled phases, authors first. A phase that cannot read its
// dump is reported in its result; the other phase still runs.
func (d *Driver) Run(ctx context.Context, phases Phases) Results {
	var results Results

	barrier := SkipAuthors()
	if phases.Authors {
		var res PhaseResult
		barrier, res = d.LoadAuthors(ctx)
		results = append(results, res)
	}
	if phases.Works {
		results = append(results, d.LoadWorks(ctx, barrier))
	}

	d.log.Info("load completed", slog.Int("phases_run", len(results)), slog.Bool("has_errors", results.HasErrors()))
	return results
}

// LoadAuthors streams the author dump and saves one Author per valid line.
func (d *Driver) LoadAuthors(ctx context.Context) (AuthorsLoaded, PhaseResult) {
	res := d.runPhase(ctx, PhaseAuthors, d.cfg.AuthorDumpPath, d.cfg.AuthorsLineLimit, d.loadAuthorLine)
	return AuthorsLoaded{ok: true}, res
}

// LoadWorks streams the works dump up to the configured line limit, resolves
// author names and saves each work that has an authors array.
func (d *Driver) LoadWorks(ctx context.Context, authors AuthorsLoaded) PhaseResult {
	if !authors.ok {
		return PhaseResult{Phase: PhaseWorks, Err: ErrAuthorsNotLoaded}
	}
	return d.runPhase(ctx, PhaseWorks, d.cfg.WorksDumpPath, d.cfg.WorksLineLimit, d.loadWorkLine)
}

type lineFunc func(ctx context.Context, line string) (Outcome, error)

func (d *Driver) runPhase(ctx context.Context, phase, path string, limit int, handle lineFunc) (res PhaseResult) {
	start := time.Now()
	res.Phase = phase
	log := d.log.With(slog.String("phase", phase))
	log.Info("starting phase", slog.String("dump", path), slog.Int("line_limit", limit))

	run := &Run{
		ID:        uuid.NewString(),
		Phase:     phase,
		DumpPath:  path,
		LineLimit: limit,
		DryRun:    d.cfg.DryRun,
		Status:    StatusRunning,
		StartedAt: start,
	}
	if err := d.runs.CreateRun(ctx, run); err != nil {
		log.Warn("failed to record ingest run", slog.String("error", err.Error()))
	}

	defer func() {
		res.Duration = time.Since(start)
		d.finishRun(ctx, run, res)

		if res.Err != nil {
			log.Error("phase failed",
				slog.String("error", res.Err.Error()),
				slog.Int("lines_read", res.LinesRead),
				slog.Duration("duration", res.Duration),
			)
			return
		}
		log.Info("phase completed",
			slog.Int("lines_read", res.LinesRead),
			slog.Int("persisted", res.Persisted),
			slog.Int("parsed", res.Parsed),
			slog.Int("skipped", res.Skipped),
			slog.Int("dropped", res.Dropped),
			slog.Int("failed", res.Failed),
			slog.Duration("duration", res.Duration),
		)
	}()

	rc, err := d.dumps.Open(ctx, path)
	if err != nil {
		res.Err = err
		return res
	}
	defer rc.Close()

	for line, err := range dump.Limit(dump.Lines(rc), limit) {
		if err != nil && !errors.Is(err, dump.ErrLineTooLong) {
			res.Err = fmt.Errorf("read %s: %w", path, err)
			return res
		}
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}

		res.LinesRead++
		outcome := Skipped
		if err == nil {
			outcome, err = handle(ctx, line)
		}
		res.record(outcome)
		if err != nil {
			log.Warn("line not persisted",
				slog.Int("line", res.LinesRead),
				slog.String("outcome", outcome.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return res
}

func (d *Driver) finishRun(ctx context.Context, run *Run, res PhaseResult) {
	now := time.Now()
	run.FinishedAt = &now
	run.LinesRead = res.LinesRead
	run.Persisted = res.Persisted
	run.Parsed = res.Parsed
	run.Skipped = res.Skipped
	run.Dropped = res.Dropped
	run.Failed = res.Failed
	run.Status = StatusCompleted
	if res.Err != nil {
		run.Status = StatusFailed
		run.Error = res.Err.Error()
	}
	if err := d.runs.UpdateRun(context.WithoutCancel(ctx), run); err != nil {
		d.log.Warn("failed to update ingest run", slog.String("run_id", run.ID), slog.String("error", err.Error()))
	}
}

func (d *Driver) loadAuthorLine(ctx context.Context, line string) (Outcome, error) {
	payload, err := dump.ExtractPayload(line)
	if err != nil {
		return Skipped, err
	}
	author, err := catalog.ParseAuthor(payload)
	if err != nil {
		return Skipped, err
	}
	if d.cfg.DryRun {
		return Parsed, nil
	}

	d.log.Debug("saving author", slog.String("id", author.ID), slog.String("name", author.Name))
	if err := d.throttle(ctx); err != nil {
		return Failed, err
	}
	if err := d.authors.SaveAuthor(ctx, author); err != nil {
		return Failed, fmt.Errorf("author %s: %w", author.ID, err)
	}
	return Persisted, nil
}

func (d *Driver) loadWorkLine(ctx context.Context, line string) (Outcome, error) {
	payload, err := dump.ExtractPayload(line)
	if err != nil {
		return Skipped, err
	}
	parsed, err := catalog.ParseWork(payload)
	if err != nil {
		return Skipped, err
	}
	if !parsed.HasAuthors {
		d.log.Debug("dropping work without authors", slog.String("id", parsed.Work.ID))
		return Dropped, nil
	}

	work := parsed.Work
	work.AuthorNames, err = d.resolver.Names(ctx, work.AuthorIDs)
	if err != nil {
		return Failed, fmt.Errorf("work %s: %w", work.ID, err)
	}
	if d.cfg.DryRun {
		return Parsed, nil
	}

	d.log.Debug("saving work", slog.String("id", work.ID), slog.String("title", work.Title))
	if err := d.throttle(ctx); err != nil {
		return Failed, err
	}
	if err := d.works.SaveWork(ctx, work); err != nil {
		return Failed, fmt.Errorf("work %s: %w", work.ID, err)
	}
	return Persisted, nil
}

func (d *Driver) throttle(ctx context.Context) error {
	if d.limiter == nil {
		return nil
	}
	return d.limiter.Wait(ctx)
}
