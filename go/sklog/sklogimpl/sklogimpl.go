// Package sklogimpl holds the interface between the sklog logging functions
// and whatever backend actually emits the log lines.
package sklogimpl

// Severity identifies the log level of a single message.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	// Fatal messages cause the backend to exit the program after logging.
	Fatal
)

// Logger is implemented by logging backends.
type Logger interface {
	// Log emits a single message. depth is the number of stack frames between
	// Log and the original logging call site, for backends that record source
	// locations. If format is empty the args are rendered in the manner of
	// fmt.Sprint, otherwise fmt.Sprintf.
	Log(depth int, severity Severity, format string, args ...interface{})

	// Flush blocks until any buffered messages have been written.
	Flush()
}

var logger Logger

// SetLogger installs the backend used by all subsequent Log calls. It must be
// called before any logging happens; the sklog package does this from an init
// function.
func SetLogger(l Logger) {
	logger = l
}

// Log forwards one message to the installed backend.
func Log(depth int, severity Severity, format string, args ...interface{}) {
	logger.Log(depth+1, severity, format, args...)
}

// Flush flushes the installed backend.
func Flush() {
	logger.Flush()
}
