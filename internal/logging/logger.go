package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String creates a field with a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a field with an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a field with a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a field with a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Dur creates a field with a duration value.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates a field carrying an error under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is a thin facade over a zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger writing structured JSON entries to w.
func New(w io.Writer) Logger {
	return Logger{zl: zerolog.New(w).With().Timestamp().Logger()}
}

// NewConsole creates a Logger with zerolog's human-readable console output,
// used when the application runs interactively.
func NewConsole(w io.Writer) Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return Logger{zl: zerolog.New(cw).With().Timestamp().Logger()}
}

// SetVerbose switches the global level between Debug and Info.
func SetVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Debug logs a message at debug level.
func (l Logger) Debug(msg string, fields ...Field) {
	applyFields(l.zl.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (l Logger) Info(msg string, fields ...Field) {
	applyFields(l.zl.Info(), fields).Msg(msg)
}

// Warn logs a message at warn level.
func (l Logger) Warn(msg string, fields ...Field) {
	applyFields(l.zl.Warn(), fields).Msg(msg)
}

// Error logs a message at error level.
func (l Logger) Error(msg string, fields ...Field) {
	applyFields(l.zl.Error(), fields).Msg(msg)
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case time.Duration:
			e = e.Dur(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}
