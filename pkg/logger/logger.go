package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm/logger"
)

// New builds a zerolog logger writing to w and installs it as the global
// logger. Unknown levels fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	log.Logger = l
	return l
}

// Gorm adapts l for gorm's SQL logging. SQL statements are only logged at debug.
func Gorm(l zerolog.Logger) logger.Interface {
	sqlLevel := logger.Warn
	if l.GetLevel() <= zerolog.DebugLevel {
		sqlLevel = logger.Info
	}

	return logger.New(gormWriter{l: l, level: sqlLevel}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  sqlLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type gormWriter struct {
	l     zerolog.Logger
	level logger.LogLevel
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	e := w.l.Warn()
	if w.level == logger.Info {
		e = w.l.Debug()
	}
	e.Str("component", "gorm").Msgf(format, args...)
}
