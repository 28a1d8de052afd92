package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/forecourt/forecourt-cli/pkg/files"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Init points the global zerolog logger at a rotated file under
// .forecourt/. The TUI owns the terminal, so nothing may ever log to
// stdout or stderr.
func Init() {
	lj := &lumberjack.Logger{
		Filename:   files.LogPath(),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}
	log.Logger = zerolog.New(lj).With().Timestamp().Logger()
}

// InitTest silences the global logger for tests.
func InitTest() {
	log.Logger = zerolog.New(io.Discard)
}
