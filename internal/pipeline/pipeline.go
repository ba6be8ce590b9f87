// Package pipeline runs the parse-then-calculate pass over pace-note text.
//
// A Runner holds only immutable settings, so one instance can serve
// concurrent callers; every Run starts from a fresh reporter and fresh
// calculator state and never leaks anything into the next run.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rtcalc/internal/diag"
	"rtcalc/internal/logging"
	"rtcalc/internal/pacenote"
	"rtcalc/internal/rally"
)

// Observer receives a summary of each run. *metrics.Collector implements it.
type Observer interface {
	ObserveRun(inputBytes, records, rows int, diagnostics []diag.Diagnostic, took time.Duration)
}

// Options configures a Runner.
type Options struct {
	Numbering pacenote.Numbering
	Logger    *slog.Logger
	Observer  Observer
}

// Runner executes pipeline runs.
type Runner struct {
	numbering pacenote.Numbering
	logger    *slog.Logger
	observer  Observer
}

// Result is everything a renderer needs from one run.
type Result struct {
	RunID       string
	Records     []pacenote.Record
	Rows        []rally.Row
	Diagnostics []diag.Diagnostic
	message     string
}

// HasError reports whether any diagnostic was raised during the run.
func (r Result) HasError() bool { return len(r.Diagnostics) > 0 }

// ErrorMessage returns the last diagnostic message, or "".
func (r Result) ErrorMessage() string { return r.message }

// New builds a Runner. Zero options give compact numbering and no logging.
func New(opts Options) *Runner {
	numbering := opts.Numbering
	if numbering == "" {
		numbering = pacenote.NumberingCompact
	}
	return &Runner{
		numbering: numbering,
		logger:    logging.NewComponentLogger(opts.Logger, "pipeline"),
		observer:  opts.Observer,
	}
}

// Run parses text and calculates the timing table.
func (r *Runner) Run(ctx context.Context, text string) Result {
	started := time.Now()
	runID := uuid.NewString()
	logger := logging.WithContext(logging.WithRunID(ctx, runID), r.logger)

	rep := diag.NewReporter()
	rep.Clear()

	records := pacenote.Parse(text, pacenote.ParseOptions{Numbering: r.numbering}, rep)
	rows := rally.Calculate(records, rep)

	result := Result{
		RunID:       runID,
		Records:     records,
		Rows:        rows,
		Diagnostics: rep.Diagnostics(),
		message:     rep.Message(),
	}
	took := time.Since(started)

	for _, d := range result.Diagnostics {
		logger.Debug("pace note problem",
			logging.Int(logging.FieldLine, d.Line+1),
			logging.String(logging.FieldDiagnostic, d.Kind.String()),
			logging.String("message", d.Message()),
		)
	}
	level := slog.LevelDebug
	if result.HasError() {
		level = slog.LevelInfo
	}
	logger.Log(ctx, level, "pipeline run finished",
		logging.Int("records", len(records)),
		logging.Int("rows", len(rows)),
		logging.Int("diagnostics", len(result.Diagnostics)),
		logging.Duration("took", took),
	)

	if r.observer != nil {
		r.observer.ObserveRun(len(text), len(records), len(rows), result.Diagnostics, took)
	}
	return result
}
