// Package pacenote turns raw pace-note text into classified records.
//
// Each retained input line becomes exactly one Record: a blank line, a
// Regularity Trial start ("...") or end ("===") marker, a waypoint with a
// distance and optional speed, or a malformed line. Numeric fields that fail
// to parse are kept as Invalid numbers rather than dropped, and the failure is
// reported to the caller's diag.Reporter, so later arithmetic sees the same
// not-a-number the user typed.
package pacenote
