package logger

import "strings"

// Level is the level at which a logger is configured. All messages sent
// to a level which is below the current level are filtered.
type Level uint32

// Level constants.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

// levelNames holds, per level, the tag printed in log lines followed by
// the long name accepted on the command line.
var levelNames = [...][2]string{
	LevelTrace:    {"TRC", "trace"},
	LevelDebug:    {"DBG", "debug"},
	LevelInfo:     {"INF", "info"},
	LevelWarn:     {"WRN", "warn"},
	LevelError:    {"ERR", "error"},
	LevelCritical: {"CRT", "critical"},
	LevelOff:      {"OFF", "off"},
}

// LevelFromString returns the level named s, by either its tag or its long
// name. Unknown names yield the info level and false.
func LevelFromString(s string) (l Level, ok bool) {
	s = strings.ToLower(s)
	for level, names := range levelNames {
		if s == strings.ToLower(names[0]) || s == names[1] {
			return Level(level), true
		}
	}
	return LevelInfo, false
}

// String returns the tag of the level used in log lines.
func (l Level) String() string {
	if l >= LevelOff {
		return levelNames[LevelOff][0]
	}
	return levelNames[l][0]
}
