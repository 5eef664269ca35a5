package logger

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"todonotes/config"
)

// InitLogger routes all logging to standard error so standard output only
// carries prompts and notes.
func InitLogger() {
	InitLoggerTo(colorable.NewColorableStderr())
}

func InitLoggerTo(out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// WithRunID stamps a fresh run identifier on the global logger and returns it.
func WithRunID() string {
	runID := uuid.NewString()
	log.Logger = log.With().Str("run_id", runID).Logger()

	return runID
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.App.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no valid log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
