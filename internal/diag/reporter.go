package diag

import "fmt"

// Kind classifies a diagnostic.
type Kind int

const (
	UnparseableDistance Kind = iota + 1
	UnparseableSpeed
	UnparseableLine
	SegmentAlreadyStarted
	SegmentNotStarted
)

// String returns the stable identifier used in logs, metrics and JSON.
func (k Kind) String() string {
	switch k {
	case UnparseableDistance:
		return "unparseable_distance"
	case UnparseableSpeed:
		return "unparseable_speed"
	case UnparseableLine:
		return "unparseable_line"
	case SegmentAlreadyStarted:
		return "segment_already_started"
	case SegmentNotStarted:
		return "segment_not_started"
	default:
		return "unknown"
	}
}

// Kinds lists every diagnostic kind in declaration order.
func Kinds() []Kind {
	return []Kind{UnparseableDistance, UnparseableSpeed, UnparseableLine, SegmentAlreadyStarted, SegmentNotStarted}
}

// Diagnostic is one reported problem. Line is 0-based.
type Diagnostic struct {
	Line   int
	Kind   Kind
	Detail string
}

// Message renders the diagnostic the way it is shown to users.
func (d Diagnostic) Message() string {
	return fmt.Sprintf("Error line %d. %s", d.Line+1, d.text())
}

func (d Diagnostic) text() string {
	switch d.Kind {
	case UnparseableDistance:
		return "Cannot parse distance: " + d.Detail
	case UnparseableSpeed:
		return "Cannot parse speed: " + d.Detail
	case UnparseableLine:
		return "Cannot parse text: " + d.Detail
	case SegmentAlreadyStarted:
		return "RT segment already started"
	case SegmentNotStarted:
		return "RT segment not started"
	default:
		if d.Detail != "" {
			return d.Detail
		}
		return "unknown problem"
	}
}

// Reporter accumulates diagnostics for a single pass. The zero value is ready
// to use. A Reporter is not safe for concurrent use.
type Reporter struct {
	items []Diagnostic
}

// NewReporter returns an empty reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report records a diagnostic for the 0-based line.
func (r *Reporter) Report(line int, kind Kind, detail string) {
	r.items = append(r.items, Diagnostic{Line: line, Kind: kind, Detail: detail})
}

// Clear forgets everything reported so far.
func (r *Reporter) Clear() {
	r.items = nil
}

// HasError reports whether anything was reported since the last Clear.
func (r *Reporter) HasError() bool {
	return len(r.items) > 0
}

// Count returns the number of diagnostics reported since the last Clear.
func (r *Reporter) Count() int {
	return len(r.items)
}

// Last returns the most recently reported diagnostic.
func (r *Reporter) Last() (Diagnostic, bool) {
	if len(r.items) == 0 {
		return Diagnostic{}, false
	}
	return r.items[len(r.items)-1], true
}

// Message returns the most recent message, or "" when nothing was reported.
func (r *Reporter) Message() string {
	last, ok := r.Last()
	if !ok {
		return ""
	}
	return last.Message()
}

// Diagnostics returns a copy of every diagnostic in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	if len(r.items) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(r.items))
	copy(out, r.items)
	return out
}
