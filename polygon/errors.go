package polygon

import (
	"errors"
	"fmt"
)

// ErrInvalidPolygon is the sentinel identity for every ingest rejection.
// Callers should branch with errors.Is(err, ErrInvalidPolygon); the wrapped
// message carries the specific reason for diagnostics.
//
// Usage: if errors.Is(err, ErrInvalidPolygon) { /* reject the input shape */ }
var ErrInvalidPolygon = errors.New("polygon: invalid polygon")

// ErrHoleOutsideOuter indicates a hole ring is not strictly contained by
// the outer ring.
//
// Usage: if errors.Is(err, ErrHoleOutsideOuter) { /* reject malformed part */ }
var ErrHoleOutsideOuter = errors.New("polygon: hole lies outside outer ring")

// ErrHolesTouch indicates two holes of the same polygon touch each other.
//
// Usage: if errors.Is(err, ErrHolesTouch) { /* reject malformed part */ }
var ErrHolesTouch = errors.New("polygon: holes touch each other")

// invalidf wraps ErrInvalidPolygon with a human-readable reason, prefixing
// the wrapped sentinel with the originating method name.
func invalidf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidPolygon)
}
