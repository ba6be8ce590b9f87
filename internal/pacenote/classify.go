package pacenote

import (
	"regexp"

	"rtcalc/internal/diag"
)

const (
	segmentStartToken = "..."
	segmentEndToken   = "==="
)

var fieldSeparator = regexp.MustCompile(`[, \t]+`)

// Classify maps one trimmed line to a record. Numeric failures are reported
// to rep and kept as Invalid numbers; the record kind does not change.
func Classify(line string, index int, rep *diag.Reporter) Record {
	rec := Record{Line: index, Text: line}

	switch line {
	case "":
		rec.Kind = KindBlank
		return rec
	case segmentStartToken:
		rec.Kind = KindSegmentStart
		return rec
	case segmentEndToken:
		rec.Kind = KindSegmentEnd
		return rec
	}

	fields := fieldSeparator.Split(line, -1)
	switch len(fields) {
	case 1:
		rec.Kind = KindWaypoint
		rec.Distance = parseField(fields[0], index, diag.UnparseableDistance, rep)
	case 2:
		rec.Kind = KindWaypoint
		rec.Distance = parseField(fields[0], index, diag.UnparseableDistance, rep)
		rec.Speed = parseField(fields[1], index, diag.UnparseableSpeed, rep)
	default:
		rec.Kind = KindMalformed
		report(rep, index, diag.UnparseableLine, line)
	}
	return rec
}

func parseField(field string, index int, kind diag.Kind, rep *diag.Reporter) Number {
	n := ParseNumber(field)
	if !n.OK() {
		report(rep, index, kind, field)
	}
	return n
}

func report(rep *diag.Reporter, index int, kind diag.Kind, detail string) {
	if rep == nil {
		return
	}
	rep.Report(index, kind, detail)
}
