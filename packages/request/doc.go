// Package request resolves the request to send from one of two inputs: the
// command-line flag set or a JSON descriptor file. Resolution covers method
// and header validation, so a Spec produced by this package is safe to hand
// to the HTTP client as-is.
package request
