// Package rally computes the timing table for classified pace notes.
//
// Calculate walks the records once, in order. Outside a Regularity Trial it
// only tracks distances. Inside one it carries the last target speed forward
// to waypoints that omit it and accumulates the time needed to cover each leg
// at that speed. Markers out of order are reported but never stop the pass.
package rally
