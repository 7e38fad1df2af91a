// Package nestlog presents the engine facade's string-event logging
// contract on top of structured logging: a *zap.Logger is passed in by
// the caller, and a nil Logger defaults to zap.NewNop() rather than
// requiring every call site to nil-check.
package nestlog
