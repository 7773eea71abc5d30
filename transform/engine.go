package transform

import "log"

// Engine runs dataset transforms and routes their non-fatal diagnostics.
// Fatal conditions are returned as errors; recoverable ones (a dropped
// join row, differing descriptions on append, a no-op recode) go through
// Warnf and the operation continues with its documented fallback.
type Engine struct {
	// Warnf receives non-fatal diagnostics. Nil disables them.
	Warnf func(format string, args ...any)
}

// New returns an Engine that reports diagnostics through the standard
// library logger.
func New() *Engine {
	return &Engine{Warnf: log.Printf}
}

func (e *Engine) warnf(format string, args ...any) {
	if e.Warnf != nil {
		e.Warnf(format, args...)
	}
}
