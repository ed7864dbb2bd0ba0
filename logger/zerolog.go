package logger

import (
	"github.com/rs/zerolog"
)

type zeroLog struct {
	log zerolog.Logger
}

var _ Logger = &zeroLog{}

// NewZerolog adapts a zerolog.Logger to the Logger interface.
func NewZerolog(log zerolog.Logger) Logger {
	return &zeroLog{log: log}
}

func (z *zeroLog) Debugf(format string, args ...any) {
	z.log.Debug().Msgf(format, args...)
}

func (z *zeroLog) Infof(format string, args ...any) {
	z.log.Info().Msgf(format, args...)
}

func (z *zeroLog) Warnf(format string, args ...any) {
	z.log.Warn().Msgf(format, args...)
}

func (z *zeroLog) Errorf(format string, args ...any) {
	z.log.Error().Msgf(format, args...)
}
