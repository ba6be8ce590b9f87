package pacenote

// Kind identifies what a line of pace notes means.
type Kind int

const (
	KindBlank Kind = iota
	KindSegmentStart
	KindSegmentEnd
	KindWaypoint
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindSegmentStart:
		return "segment_start"
	case KindSegmentEnd:
		return "segment_end"
	case KindWaypoint:
		return "waypoint"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Record is one classified input line. Only waypoints carry numbers.
type Record struct {
	Line     int
	Kind     Kind
	Distance Number
	Speed    Number
	Text     string
}

// DisplayLine returns the 1-based line number shown to users.
func (r Record) DisplayLine() int { return r.Line + 1 }
