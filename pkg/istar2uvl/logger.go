package istar2uvl

// Logger provides a pluggable logging interface for istar2uvl operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs per-stage diagnostics: dictionary load counts, object
	// classification decisions. Emitted only when --verbose is set.
	Verbose(format string, args ...interface{})

	// Info logs progress messages regardless of verbose mode.
	Info(format string, args ...interface{})

	// Error logs failures, typically right before a non-zero exit.
	Error(format string, args ...interface{})
}
