package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Config struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

var log zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitGlobalLogger configures the process-wide logger. Safe to call once at startup;
// packages use the package-level helpers afterwards.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var w = os.Stderr
	if cfg.Pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()

		return
	}

	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func Debug(msg string, keyvals ...interface{}) {
	log.Debug().Fields(keyvals).Msg(msg)
}

func Info(msg string, keyvals ...interface{}) {
	log.Info().Fields(keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...interface{}) {
	log.Warn().Fields(keyvals).Msg(msg)
}

func Error(msg string, keyvals ...interface{}) {
	log.Error().Fields(keyvals).Msg(msg)
}
