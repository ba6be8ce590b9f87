// Package main hosts the rtcalc CLI entrypoint and command graph.
//
// The Cobra command tree reads pace-note text from a file or stdin, runs the
// parse-and-calculate pipeline and renders the timing table. It also serves the
// same pipeline over HTTP and scaffolds configuration files.
//
// Keep this package lean: behaviour belongs in the internal packages and is
// surfaced here through commands and flags.
package main
