package rally

import (
	"fmt"
	"math"
)

// FormatElapsed renders seconds as MM:SS, or HH:MM:SS from one hour up,
// after rounding to the nearest whole second. Non-finite values render as
// NaN or Infinity.
func FormatElapsed(seconds float64) string {
	switch {
	case math.IsNaN(seconds):
		return "NaN"
	case math.IsInf(seconds, 1):
		return "Infinity"
	case math.IsInf(seconds, -1):
		return "-Infinity"
	}
	total := int64(math.Round(seconds))
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	hours := total / 3600
	minutes := total / 60 % 60
	secs := total % 60
	if hours == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, minutes, secs)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, secs)
}
