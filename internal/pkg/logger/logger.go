package logger

// Logger is the logging contract shared by all sinks. Fatal exits the
// process and Panic panics after logging.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
