// Package requestid tags every HTTP request with an identifier that is echoed in the
// X-Request-ID response header and attached to server-side log records, so a client
// visible failure can be matched with its diagnostics.
package requestid
