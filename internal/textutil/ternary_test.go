package textutil_test

import (
	"testing"

	"rtcalc/internal/textutil"
)

func TestTernary(t *testing.T) {
	if got := textutil.Ternary(true, "a", "b"); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := textutil.Ternary(false, 1, 2); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
