package render

import (
	"math"
	"strconv"

	"rtcalc/internal/rally"
	"rtcalc/internal/textutil"
)

// RowHeaders names the columns produced by Cells.
var RowHeaders = []string{"Distance (km)", "Delta (km)", "Distance (mi)", "Speed (km/h)", "Time"}

// Cells formats a row for display. Speed and time are blank when they do not
// apply, which is any value that is not strictly positive.
func Cells(row rally.Row) []string {
	return []string{
		Fixed(row.DistanceKm),
		Fixed(row.DeltaKm),
		Fixed(row.DistanceMiles),
		textutil.Ternary(row.SpeedKmh > 0, Fixed(row.SpeedKmh), ""),
		textutil.Ternary(row.ElapsedSeconds > 0, rally.FormatElapsed(row.ElapsedSeconds), ""),
	}
}

// Fixed formats v with two decimals. Non-finite values are spelled out.
func Fixed(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
