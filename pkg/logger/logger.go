package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// New builds the console's root logger. Output goes to stderr so it never
// interleaves with rendered tables on stdout.
func New() zerolog.Logger {
	return NewWithConfig(Config{Level: "warn", Pretty: true})
}

func NewWithConfig(config Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stderr
	if config.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}

	logger := zerolog.New(out).With().
		Timestamp().
		Str("service", "vsadmin").
		Logger()

	log.Logger = logger
	return logger
}
