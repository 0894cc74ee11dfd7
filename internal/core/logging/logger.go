// Package logging holds the zerolog helpers shared by services and views.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Failure starts an error event tagged with the error's kind. Views log
// through it so a collapsed "Error: ..." line on screen can still be traced
// back to its cause.
func Failure(l *zerolog.Logger, err error, kind string) *zerolog.Event {
	return l.Error().Err(err).Str("kind", kind)
}
