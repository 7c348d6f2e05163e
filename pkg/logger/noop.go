package logger

// NoopLogger discards all log output. Intended for tests.
type NoopLogger struct{}

// Noop returns a logger that discards everything.
func Noop() Logger {
	return NoopLogger{}
}

func (NoopLogger) Debug(string, ...Field) {}

func (NoopLogger) Info(string, ...Field) {}

func (NoopLogger) Warn(string, ...Field) {}

func (NoopLogger) Error(string, ...Field) {}

func (n NoopLogger) Named(string) Logger { return n }

func (n NoopLogger) With(...Field) Logger { return n }
