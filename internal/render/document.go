package render

import (
	"math"
	"strconv"

	"rtcalc/internal/pacenote"
	"rtcalc/internal/pipeline"
	"rtcalc/internal/rally"
)

// Float is a float64 that encodes NaN and infinities as JSON null.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

// Document is the machine-readable form of a pipeline result.
type Document struct {
	RunID       string          `json:"run_id"`
	Rows        []RowDoc        `json:"rows"`
	HasError    bool            `json:"has_error"`
	Error       string          `json:"error,omitempty"`
	Diagnostics []DiagnosticDoc `json:"diagnostics"`
}

// RowDoc is one output row. Elapsed is the formatted time, empty when the
// time does not apply.
type RowDoc struct {
	Line           int    `json:"line"`
	InSegment      bool   `json:"in_segment"`
	DistanceKm     Float  `json:"distance_km"`
	DeltaKm        Float  `json:"delta_km"`
	DistanceMiles  Float  `json:"distance_miles"`
	SpeedKmh       Float  `json:"speed_kmh"`
	ElapsedSeconds Float  `json:"elapsed_seconds"`
	Elapsed        string `json:"elapsed,omitempty"`
}

// DiagnosticDoc is one reported problem. Line is 1-based.
type DiagnosticDoc struct {
	Line    int    `json:"line"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// RecordDoc is one classified input line.
type RecordDoc struct {
	Line     int    `json:"line"`
	Kind     string `json:"kind"`
	Distance *Float `json:"distance,omitempty"`
	Speed    *Float `json:"speed,omitempty"`
	Text     string `json:"text"`
}

// NewDocument converts a pipeline result.
func NewDocument(result pipeline.Result) Document {
	doc := Document{
		RunID:       result.RunID,
		Rows:        make([]RowDoc, 0, len(result.Rows)),
		HasError:    result.HasError(),
		Error:       result.ErrorMessage(),
		Diagnostics: make([]DiagnosticDoc, 0, len(result.Diagnostics)),
	}
	for _, row := range result.Rows {
		doc.Rows = append(doc.Rows, newRowDoc(row))
	}
	for _, d := range result.Diagnostics {
		doc.Diagnostics = append(doc.Diagnostics, DiagnosticDoc{
			Line:    d.Line + 1,
			Kind:    d.Kind.String(),
			Message: d.Message(),
		})
	}
	return doc
}

func newRowDoc(row rally.Row) RowDoc {
	doc := RowDoc{
		Line:           row.Line + 1,
		InSegment:      row.InSegment,
		DistanceKm:     Float(row.DistanceKm),
		DeltaKm:        Float(row.DeltaKm),
		DistanceMiles:  Float(row.DistanceMiles),
		SpeedKmh:       Float(row.SpeedKmh),
		ElapsedSeconds: Float(row.ElapsedSeconds),
	}
	if row.ElapsedSeconds > 0 {
		doc.Elapsed = rally.FormatElapsed(row.ElapsedSeconds)
	}
	return doc
}

func newRecordDocs(records []pacenote.Record) []RecordDoc {
	out := make([]RecordDoc, 0, len(records))
	for _, rec := range records {
		out = append(out, RecordDoc{
			Line:     rec.DisplayLine(),
			Kind:     rec.Kind.String(),
			Distance: numberDoc(rec.Distance),
			Speed:    numberDoc(rec.Speed),
			Text:     rec.Text,
		})
	}
	return out
}

// numberDoc keeps absent fields out of the JSON; invalid ones encode as null.
func numberDoc(n pacenote.Number) *Float {
	if n.State == pacenote.Absent {
		return nil
	}
	f := Float(n.Float())
	return &f
}
