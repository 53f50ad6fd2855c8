package terminal

import "fmt"

// LogLevel is the level of a terminal log
type LogLevel string

// set of supported log levels
const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Log is a terminal status message. Data output goes through the output
// serializer to stdout; logs are user-facing messaging written to stderr.
type Log struct {
	Level   LogLevel
	Message string
}

// NewTextLog creates a new info log with a text message
func NewTextLog(format string, args ...interface{}) Log {
	return Log{LogLevelInfo, fmt.Sprintf(format, args...)}
}

// NewWarningLog creates a new warning log
func NewWarningLog(format string, args ...interface{}) Log {
	return Log{LogLevelWarn, fmt.Sprintf(format, args...)}
}

// NewErrorLog creates a new error log
func NewErrorLog(err error) Log {
	return Log{LogLevelError, err.Error()}
}

// NewFollowupLog creates a log suggesting a next command to run
func NewFollowupLog(suggestions ...string) []Log {
	logs := make([]Log, 0, len(suggestions))
	for _, suggestion := range suggestions {
		logs = append(logs, Log{LogLevelInfo, "hint: " + suggestion})
	}
	return logs
}
