// Package output renders the HTTP response to the console: the status line,
// an optional verbose block with headers and timing, and the body block with
// JSON pretty-printing.
package output
