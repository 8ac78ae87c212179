package ferrite

import "github.com/rs/zerolog"

// ZerologLogger adapts a [zerolog.Logger] to this package's [Logger]
// interface, so a host process already standardized on zerolog (as the
// rest of this family's services are, via the logiface/zerolog adapter)
// can route ferrite's diagnostics through its existing sink instead of
// DefaultLogger's bare text format.
type ZerologLogger struct {
	Z zerolog.Logger
}

// NewZerologLogger wraps z.
func NewZerologLogger(z zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{Z: z}
}

// IsEnabled implements [Logger].
func (l *ZerologLogger) IsEnabled(level LogLevel) bool {
	return l.Z.GetLevel() <= zerologLevel(level)
}

// Log implements [Logger].
func (l *ZerologLogger) Log(entry LogEntry) {
	ev := l.Z.WithLevel(zerologLevel(entry.Level)).
		Str("category", entry.Category).
		Stringer("stage", entry.Stage).
		Time("timestamp", entry.Timestamp)
	if entry.VarName != "" {
		ev = ev.Str("var", entry.VarName)
	}
	if entry.Err != nil {
		ev = ev.Err(entry.Err)
	}
	ev.Msg(entry.Message)
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}
