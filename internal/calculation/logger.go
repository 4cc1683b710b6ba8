package calculation

// Logger receives progress from ComparisonEngine.Run: a debug line with the
// shaped return inputs and an info line with the final balances and leader.
// internal/logging backs it with a logrus entry carrying the run_id.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger is what NewComparisonEngine installs; a comparison run used as a
// library call stays silent.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// loggerOrNop lets a zero-value ComparisonEngine or a nil logger run.
func loggerOrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
