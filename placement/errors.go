package placement

import "errors"

// ErrNoStrategy indicates a Worker was run with a nil Strategy.
//
// Usage: if errors.Is(err, ErrNoStrategy) { /* misconfigured worker */ }
var ErrNoStrategy = errors.New("placement: worker has no strategy configured")

// ErrNoCache indicates a Worker was run with a nil NFP cache.
//
// Usage: if errors.Is(err, ErrNoCache) { /* misconfigured worker */ }
var ErrNoCache = errors.New("placement: worker has no nfp cache configured")
