package calculation

import "log"

// Logger is a minimal logging interface for the engine and its callers.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StdLogger writes level-prefixed lines through the standard log package.
// Debug lines are dropped unless Verbose is set.
type StdLogger struct {
	L       *log.Logger // nil uses the package-level logger
	Verbose bool
}

func (s StdLogger) printf(level, format string, args ...any) {
	if s.L != nil {
		s.L.Printf(level+": "+format, args...)
		return
	}
	log.Printf(level+": "+format, args...)
}

// Debugf logs at DEBUG when Verbose is set.
func (s StdLogger) Debugf(format string, args ...any) {
	if s.Verbose {
		s.printf("DEBUG", format, args...)
	}
}

// Infof logs at INFO.
func (s StdLogger) Infof(format string, args ...any) { s.printf("INFO", format, args...) }

// Warnf logs at WARN.
func (s StdLogger) Warnf(format string, args ...any) { s.printf("WARN", format, args...) }

// Errorf logs at ERROR.
func (s StdLogger) Errorf(format string, args ...any) { s.printf("ERROR", format, args...) }
