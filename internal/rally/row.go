package rally

// KmPerMile converts kilometers to statute miles.
const KmPerMile = 1.609

// Row is one line of the timing table. A zero SpeedKmh or ElapsedSeconds
// means the column does not apply to this waypoint.
type Row struct {
	Line           int
	InSegment      bool
	DistanceKm     float64
	DeltaKm        float64
	DistanceMiles  float64
	SpeedKmh       float64
	ElapsedSeconds float64
}

func newRow(line int, inSegment bool, distance, delta, speed, elapsed float64) Row {
	return Row{
		Line:           line,
		InSegment:      inSegment,
		DistanceKm:     distance,
		DeltaKm:        delta,
		DistanceMiles:  distance / KmPerMile,
		SpeedKmh:       speed,
		ElapsedSeconds: elapsed,
	}
}
