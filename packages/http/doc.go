// Package http sends the single resolved request over the network.
//
// It wraps the standard library's http package with:
//   - A per-invocation client carrying a default timeout
//   - Pre-send URL validation
//   - Response handling and body reading
package http
