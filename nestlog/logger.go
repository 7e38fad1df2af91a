package nestlog

import "go.uber.org/zap"

// Logger is the engine facade's internal structured-logging sink. A
// nil *Logger is not valid; use New(nil) for a safe no-op logger.
type Logger struct {
	z *zap.Logger
}

// New wraps z, defaulting to zap.NewNop() when z is nil so call sites
// never need to nil-check before logging.
func New(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// Event logs one structured occurrence at info level. It is also the
// basis of Callback, which adapts Event to the plain string-event
// contract external Logger collaborators expect: the engine emits
// events as strings and never formats machine-readable output.
func (l *Logger) Event(msg string, fields ...zap.Field) {
	l.z.Info(msg, fields...)
}

// Callback returns a func(string) suitable for wiring into any
// component that only knows how to emit an unstructured event string,
// routing it through the same structured sink at info level.
func (l *Logger) Callback() func(string) {
	return func(event string) { l.z.Info(event) }
}

// Generation logs one completed GA generation's best fitness.
func (l *Logger) Generation(n int, bestFitness float64) {
	l.Event("generation advanced", zap.Int("generation", n), zap.Float64("best_fitness", bestFitness))
}

// CacheStats logs the NFP cache's cumulative hit/miss counts.
func (l *Logger) CacheStats(hits, misses int64) {
	l.Event("nfp cache stats", zap.Int64("hits", hits), zap.Int64("misses", misses))
}

// PartUnplaced logs that a part instance could not be placed on any
// sheet in a given individual's evaluation.
func (l *Logger) PartUnplaced(source string) {
	l.Event("part unplaced", zap.String("source", source))
}

// Cancelled logs that a run was stopped via context cancellation.
func (l *Logger) Cancelled() {
	l.Event("run cancelled")
}

// Sync flushes any buffered log entries. Callers should call Sync before
// exit for any zap-backed logger.
func (l *Logger) Sync() error {
	return l.z.Sync()
}
