// Package feedback carries structured diagnostics out of the data layer.
//
// Stores never fail loudly on I/O: persistence problems are reported to a
// Sink and the in-memory state stays authoritative for the session.
package feedback

import (
	"os"

	"github.com/rs/zerolog"
)

// Issue is one reportable diagnostic.
type Issue struct {
	Title       string
	Description string
	Source      string
}

// Sink receives issues from the stores.
type Sink interface {
	Report(issue Issue)
}

// NewLogger returns a zerolog.Logger tagged with the originating component.
func NewLogger(component string) zerolog.Logger {
	return zerolog.New(os.Stderr).With().
		Str("component", component).
		Timestamp().
		Logger()
}

// NewLogSink returns a Sink that writes issues through a component logger.
func NewLogSink(component string) Sink {
	return &logSink{log: NewLogger(component)}
}

type logSink struct {
	log zerolog.Logger
}

func (s *logSink) Report(issue Issue) {
	s.log.Error().
		Str("source", issue.Source).
		Str("description", issue.Description).
		Msg(issue.Title)
}

// Discard returns a Sink that drops everything. Used by tests.
func Discard() Sink {
	return discardSink{}
}

type discardSink struct{}

func (discardSink) Report(Issue) {}
