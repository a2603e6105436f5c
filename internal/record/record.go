// Package record defines the structured representation of a single
// CMTrace log line and its severity levels.
package record

import "time"

// Level is the numeric severity carried in a log line's type attribute.
type Level int

const (
	LevelInfo  Level = 1
	LevelWarn  Level = 2
	LevelError Level = 3
)

// Name returns the display name for the level. Unknown values report as Info,
// matching the parser's default.
func (l Level) Name() string {
	switch l {
	case LevelWarn:
		return "Warn"
	case LevelError:
		return "Error"
	default:
		return "Info"
	}
}

// Valid reports whether l is one of the three recognized severities.
func (l Level) Valid() bool {
	return l >= LevelInfo && l <= LevelError
}

// Record is the parsed form of one log line. A Record is built once by the
// parser and never mutated afterwards; filters and renderers only read it.
//
// Optional string fields use "" for absent. The two timestamps are either
// both set or both nil; they describe the same instant in different zones.
type Record struct {
	TimestampUTC   *time.Time `json:"timestamp_utc,omitempty"`
	TimestampLocal *time.Time `json:"timestamp_local,omitempty"`
	DateRaw        string     `json:"date_raw,omitempty"`
	Component      string     `json:"component,omitempty"`
	Level          Level      `json:"level"`
	LevelName      string     `json:"level_name"`
	Thread         string     `json:"thread,omitempty"`
	SourceFile     string     `json:"source_file,omitempty"`
	SourceLine     string     `json:"source_line,omitempty"`
	Message        string     `json:"message"`
	Raw            string     `json:"raw"`
}
