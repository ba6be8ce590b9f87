package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"rtcalc/internal/diag"
	"rtcalc/internal/metrics"
)

func TestObserveRun(t *testing.T) {
	c := metrics.NewCollector()

	c.ObserveRun(12, 4, 3, nil, time.Millisecond)
	c.ObserveRun(20, 5, 2, []diag.Diagnostic{
		{Line: 1, Kind: diag.UnparseableSpeed},
		{Line: 3, Kind: diag.UnparseableSpeed},
		{Line: 4, Kind: diag.SegmentNotStarted},
	}, time.Millisecond)

	if got := testutil.ToFloat64(c.Runs); got != 2 {
		t.Fatalf("runs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.RunsWithErr); got != 1 {
		t.Fatalf("runs with errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.Rows); got != 5 {
		t.Fatalf("rows = %v, want 5", got)
	}
	if got := testutil.ToFloat64(c.Records); got != 9 {
		t.Fatalf("records = %v, want 9", got)
	}
	if got := testutil.ToFloat64(c.Diagnostics.WithLabelValues("unparseable_speed")); got != 2 {
		t.Fatalf("speed diagnostics = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.Diagnostics.WithLabelValues("segment_already_started")); got != 0 {
		t.Fatalf("expected pre-created zero series, got %v", got)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *metrics.Collector
	c.ObserveRun(1, 1, 1, nil, time.Second)
	c.ObserveRequest("calculate", http.StatusOK)
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := metrics.NewCollector()
	c.ObserveRequest("calculate", http.StatusOK)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"rtcalc_runs_total", `rtcalc_http_requests_total{code="200",handler="calculate"} 1`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, body)
		}
	}
}
