package pacenote

import (
	"fmt"
	"strings"

	"rtcalc/internal/diag"
)

// Numbering selects how record line indices relate to the raw text.
type Numbering string

const (
	// NumberingCompact counts only the lines that survive the empty-line
	// filter, so an empty line shifts the numbers of every later line.
	NumberingCompact Numbering = "compact"
	// NumberingSource keeps the 0-based position in the raw text.
	NumberingSource Numbering = "source"
)

// ParseNumbering validates a configured numbering mode. Empty means compact.
func ParseNumbering(value string) (Numbering, error) {
	switch Numbering(strings.ToLower(strings.TrimSpace(value))) {
	case "", NumberingCompact:
		return NumberingCompact, nil
	case NumberingSource:
		return NumberingSource, nil
	default:
		return "", fmt.Errorf("unsupported line numbering %q (want compact or source)", value)
	}
}

// ParseOptions tunes Parse.
type ParseOptions struct {
	Numbering Numbering
}

// Parse classifies every line of text in order. Lines of zero length are
// dropped before trimming; whitespace-only lines survive and become blank
// records. Parse does not clear rep.
func Parse(text string, opts ParseOptions, rep *diag.Reporter) []Record {
	lines := strings.Split(text, "\n")
	records := make([]Record, 0, len(lines))
	retained := 0
	for pos, raw := range lines {
		if len(raw) == 0 {
			continue
		}
		index := retained
		if opts.Numbering == NumberingSource {
			index = pos
		}
		retained++
		records = append(records, Classify(strings.TrimSpace(raw), index, rep))
	}
	return records
}
