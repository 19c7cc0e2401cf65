package plog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZeroLogger adapts *zerolog.Logger to the Logger interface, the way
// teranode's ulogger.ZLoggerWrapper adapts zerolog for its services —
// trimmed here to plain level methods with no service-discovery or
// Sentry wiring, since a synchronous library has no deployment
// topology for either.
type ZeroLogger struct {
	log zerolog.Logger
}

// NewZeroLogger builds a ZeroLogger writing to w (os.Stderr if nil).
func NewZeroLogger(w io.Writer) *ZeroLogger {
	if w == nil {
		w = os.Stderr
	}
	return &ZeroLogger{
		log: zerolog.New(w).With().Timestamp().Logger(),
	}
}

func (z *ZeroLogger) Debugf(format string, args ...interface{}) {
	z.log.Debug().Msgf(format, args...)
}

func (z *ZeroLogger) Infof(format string, args ...interface{}) {
	z.log.Info().Msgf(format, args...)
}

func (z *ZeroLogger) Warnf(format string, args ...interface{}) {
	z.log.Warn().Msgf(format, args...)
}

func (z *ZeroLogger) Errorf(format string, args ...interface{}) {
	z.log.Error().Msgf(format, args...)
}
