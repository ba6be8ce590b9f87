// Package render turns pipeline results into text for people and programs.
//
// Tabular formats (table, markdown, csv, html) go through go-pretty so every
// surface lays the columns out the same way; json uses a Document that the
// HTTP API returns verbatim.
package render
