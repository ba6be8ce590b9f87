package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"rtcalc/internal/diag"
	"rtcalc/internal/logging"
	"rtcalc/internal/pacenote"
	"rtcalc/internal/pipeline"
)

type observerStub struct {
	runs        int
	inputBytes  int
	records     int
	rows        int
	diagnostics int
}

func (o *observerStub) ObserveRun(inputBytes, records, rows int, diagnostics []diag.Diagnostic, _ time.Duration) {
	o.runs++
	o.inputBytes = inputBytes
	o.records = records
	o.rows = rows
	o.diagnostics = len(diagnostics)
}

func TestRunProducesRowsAndLastError(t *testing.T) {
	runner := pipeline.New(pipeline.Options{})
	result := runner.Run(context.Background(), "0\n...\nx 60\n10 y\n===\n===\n")

	if !result.HasError() {
		t.Fatal("expected errors")
	}
	if len(result.Diagnostics) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(result.Diagnostics))
	}
	if got, want := result.ErrorMessage(), "Error line 6. RT segment not started"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(result.Rows))
	}
	if result.RunID == "" {
		t.Fatal("expected run id")
	}
}

func TestRunWithoutErrors(t *testing.T) {
	result := pipeline.New(pipeline.Options{}).Run(context.Background(), "...\n10 60\n20\n===")
	if result.HasError() || result.ErrorMessage() != "" {
		t.Fatalf("unexpected error %q", result.ErrorMessage())
	}
	if result.Rows[1].ElapsedSeconds != 600 {
		t.Fatalf("expected 600s, got %v", result.Rows[1].ElapsedSeconds)
	}
}

func TestRunIsIndependentPerInvocation(t *testing.T) {
	runner := pipeline.New(pipeline.Options{})
	text := "1\n...\n2 50\n3\nbad\n...\n"

	first := runner.Run(context.Background(), text)
	clean := runner.Run(context.Background(), "5")
	second := runner.Run(context.Background(), text)

	if clean.HasError() {
		t.Fatalf("state leaked into clean run: %q", clean.ErrorMessage())
	}
	if !reflect.DeepEqual(first.Rows, second.Rows) {
		t.Fatalf("rows differ:\n%+v\n%+v", first.Rows, second.Rows)
	}
	if !reflect.DeepEqual(first.Diagnostics, second.Diagnostics) || first.ErrorMessage() != second.ErrorMessage() {
		t.Fatal("error state differs between identical runs")
	}
	if first.RunID == second.RunID {
		t.Fatal("expected distinct run ids")
	}
}

func TestRunSourceNumbering(t *testing.T) {
	runner := pipeline.New(pipeline.Options{Numbering: pacenote.NumberingSource})
	result := runner.Run(context.Background(), "1\n\n\nbad")
	if got, want := result.ErrorMessage(), "Error line 4. Cannot parse distance: bad"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRunNotifiesObserver(t *testing.T) {
	obs := &observerStub{}
	runner := pipeline.New(pipeline.Options{Observer: obs})
	runner.Run(context.Background(), "1\n1 2 3\n2")

	if obs.runs != 1 || obs.records != 3 || obs.rows != 2 || obs.diagnostics != 1 {
		t.Fatalf("unexpected observation: %+v", obs)
	}
	if obs.inputBytes != len("1\n1 2 3\n2") {
		t.Fatalf("unexpected input size %d", obs.inputBytes)
	}
}

func TestRunLogsDiagnosticsWithRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pipeline.log")
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New logger: %v", err)
	}
	result := pipeline.New(pipeline.Options{Logger: logger}).Run(context.Background(), "1 2 3")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(content)
	for _, want := range []string{`"diagnostic":"unparseable_line"`, `"run_id":"` + result.RunID + `"`, `"component":"pipeline"`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %s in log:\n%s", want, text)
		}
	}
}
