package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level はログレベルを表します。
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Config はロガーの設定です。
type Config struct {
	Level Level
	// Pretty が true の場合は人が読みやすい形式で出力します。
	Pretty bool
	// Output が nil の場合は os.Stderr に出力します。
	Output io.Writer
}

// New は設定に従った zerolog.Logger を生成します。
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(toZerologLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

func toZerologLevel(lvl Level) zerolog.Level {
	switch lvl {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
