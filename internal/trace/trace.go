// Package trace - request correlation identifiers
package trace

import "github.com/google/uuid"

// Header carries the trace id on requests and responses
const Header = "X-Request-Id"

// Resolve returns the caller-supplied trace id unchanged, or generates
// a fresh UUIDv4 when none was propagated.
func Resolve(headerValue string) string {
	if headerValue != "" {
		return headerValue
	}
	return uuid.NewString()
}
