// Package server exposes the pace-note pipeline over HTTP.
//
// POST /api/calculate accepts the raw text (or a JSON {"text": ...} body) and
// answers with the same document the CLI prints for --format json. Pace-note
// problems are part of a successful response; only transport problems map to
// HTTP error codes. /metrics serves Prometheus data when enabled.
package server
