// Package diag collects the non-fatal problems found while turning pace notes
// into a timing table.
//
// A Reporter is created fresh for every pipeline run and threaded through the
// parser and the calculator. Every problem is kept in order, HasError stays
// true once anything was reported, and Message returns only the most recent
// line so callers that show a single banner behave consistently.
package diag
