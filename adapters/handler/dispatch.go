package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peoplefund-tech/slaccato/core/domain"
	"github.com/peoplefund-tech/slaccato/core/port"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const DefaultTimeout = 30 * time.Second

// Dispatch resolves inbound messages against the method registry, invokes
// the matched method and forwards its response to the sender. A failing
// method is logged and never tears down the receive loop.
type Dispatch struct {
	registry port.MethodRegistry
	sender   port.MessageSender
	fallback port.Method
	timeout  time.Duration
	l        *zerolog.Logger
}

func NewDispatch(registry port.MethodRegistry, sender port.MessageSender,
	timeout time.Duration, logger *zerolog.Logger) *Dispatch {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if logger == nil {
		logger = &log.Logger
	}

	return &Dispatch{registry: registry, sender: sender, timeout: timeout, l: logger}
}

// SetFallback installs the method invoked when no trigger matches. Without
// a fallback, unmatched messages are ignored.
func (d *Dispatch) SetFallback(m port.Method) {
	d.fallback = m
}

// Handle runs one message through resolve, invoke and post.
func (d *Dispatch) Handle(ctx context.Context, message *domain.Message) {
	eventID, _ := uuid.NewV4()
	l := d.l.With().
		Str("eventId", eventID.String()).
		Str("channel", message.Channel).
		Str("user", message.User).
		Logger()

	l.Debug().Str("text", message.Text).Msg("received message")

	m, err := d.registry.Resolve(message.Text)
	if err != nil {
		if d.fallback == nil || !errors.Is(err, domain.ErrMethodNotFound) {
			l.Debug().Err(err).Msg("no method for message")
			return
		}
		m = d.fallback
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	response, err := d.invoke(ctx, m, message)
	if err != nil {
		l.Error().Err(err).Msg("method failed")
		return
	}
	if response == nil {
		return
	}

	if err := d.sender.SendMessage(ctx, response); err != nil {
		l.Error().Err(err).Str("channel", response.Channel).Msg("failed to send response")
	}
}

// invoke shields the receive loop from panicking methods.
func (d *Dispatch) invoke(ctx context.Context, m port.Method,
	message *domain.Message) (response *domain.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("method panicked: %v", r)
		}
	}()

	return m.Response(ctx, message)
}
