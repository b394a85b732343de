// Package mail builds and delivers the notification emails sent by the API.
// Delivery happens off the request path through a Dispatcher.
package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// Message is a plain-text email
type Message struct {
	To      string
	ToName  string
	ReplyTo string
	Subject string
	Body    string
}

// Sender delivers a single message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// From is the sender identity used by every provider
type From struct {
	Name  string
	Email string
}

// LogSender writes messages to the log instead of delivering them
type LogSender struct {
	logger zerolog.Logger
}

// NewLogSender creates a LogSender
func NewLogSender(logger zerolog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the message
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info().
		Str("to", msg.To).
		Str("replyTo", msg.ReplyTo).
		Str("subject", msg.Subject).
		Msg("Email delivery disabled, message logged")
	s.logger.Debug().Str("to", msg.To).Msg(msg.Body)
	return nil
}
