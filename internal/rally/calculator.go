package rally

import (
	"rtcalc/internal/diag"
	"rtcalc/internal/pacenote"
)

type segmentState int

const (
	outside segmentState = iota
	inside
)

// calculator holds the running state of one pass.
type calculator struct {
	state        segmentState
	justStarted  bool
	prevDistance float64
	prevSpeed    float64
	elapsed      float64

	rep  *diag.Reporter
	rows []Row
}

// Calculate turns records into table rows, one per waypoint, in input order.
// Marker problems are reported to rep; rep may be nil.
func Calculate(records []pacenote.Record, rep *diag.Reporter) []Row {
	c := &calculator{rep: rep, rows: make([]Row, 0, len(records))}
	for _, rec := range records {
		c.step(rec)
	}
	return c.rows
}

func (c *calculator) step(rec pacenote.Record) {
	switch rec.Kind {
	case pacenote.KindSegmentStart:
		c.start(rec.Line)
	case pacenote.KindSegmentEnd:
		c.end(rec.Line)
	case pacenote.KindWaypoint:
		if c.state == inside {
			c.segmentWaypoint(rec)
		} else {
			c.openWaypoint(rec)
		}
	}
}

func (c *calculator) start(line int) {
	if c.state == inside {
		c.report(line, diag.SegmentAlreadyStarted)
	}
	c.state = inside
	c.justStarted = true
	c.elapsed = 0
}

func (c *calculator) end(line int) {
	if c.state == outside {
		c.report(line, diag.SegmentNotStarted)
	}
	c.state = outside
	c.elapsed = 0
}

func (c *calculator) openWaypoint(rec pacenote.Record) {
	distance := rec.Distance.Float()
	c.rows = append(c.rows, newRow(rec.Line, false, distance, distance-c.prevDistance, 0, 0))
	c.prevDistance = distance
	c.elapsed = 0
}

func (c *calculator) segmentWaypoint(rec pacenote.Record) {
	distance := rec.Distance.Float()
	speed := rec.Speed.Float()
	if !rec.Speed.OK() {
		speed = c.prevSpeed
	}

	var delta, elapsed float64
	if c.justStarted {
		c.prevSpeed = speed
	} else {
		delta = distance - c.prevDistance
		c.elapsed += 3600 * delta / c.prevSpeed
		elapsed = c.elapsed
	}

	c.prevDistance = distance
	c.prevSpeed = speed
	c.justStarted = false
	c.rows = append(c.rows, newRow(rec.Line, true, distance, delta, speed, elapsed))
}

func (c *calculator) report(line int, kind diag.Kind) {
	if c.rep != nil {
		c.rep.Report(line, kind, "")
	}
}
