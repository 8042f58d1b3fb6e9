// Package slaccato is a small framework for building Slack bots. Hosts
// implement port.Method (or use method.Handler), register methods on a Bot
// and call Run; the bot matches the first word of every message addressed
// to it against the registered execution words and posts the matched
// method's response.
package slaccato

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peoplefund-tech/slaccato/adapters/handler"
	"github.com/peoplefund-tech/slaccato/adapters/sender"
	"github.com/peoplefund-tech/slaccato/core/domain"
	"github.com/peoplefund-tech/slaccato/core/method"
	"github.com/peoplefund-tech/slaccato/core/port"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

type Config struct {
	// BotToken is the xoxb- bot user OAuth token.
	BotToken string
	// AppToken is the xapp- app-level token required for Socket Mode.
	AppToken string
	// BotName is the expected bot user name, checked against auth.test on
	// startup. Optional.
	BotName string
	// HandlerTimeout bounds a single method invocation. Zero means
	// handler.DefaultTimeout.
	HandlerTimeout time.Duration
	// Logger receives runtime diagnostics. Nil falls back to the global
	// zerolog logger.
	Logger *zerolog.Logger
	// Fallback, when set, handles messages matching no trigger word.
	// Without it, unmatched messages are ignored.
	Fallback port.Method
	// DisableHelp skips registering the built-in help/list method, freeing
	// those trigger words for the host.
	DisableHelp bool
	Debug       bool
}

type Bot struct {
	client     *slack.Client
	socketMode *socketmode.Client
	registry   *method.Registry
	dispatch   *handler.Dispatch
	name       string
	botUserID  string
	l          *zerolog.Logger
}

// New builds a bot from the config. No network calls happen here; the
// credentials are first exercised by Run.
func New(cfg Config) (*Bot, error) {
	if cfg.BotToken == "" {
		return nil, domain.ErrMissingBotToken
	}
	if !strings.HasPrefix(cfg.BotToken, "xoxb-") {
		return nil, domain.ErrInvalidBotToken
	}
	if cfg.AppToken == "" {
		return nil, domain.ErrMissingAppToken
	}
	if !strings.HasPrefix(cfg.AppToken, "xapp-") {
		return nil, domain.ErrInvalidAppToken
	}

	logger := cfg.Logger
	if logger == nil {
		logger = &log.Logger
	}

	client := slack.New(
		cfg.BotToken,
		slack.OptionDebug(cfg.Debug),
		slack.OptionAppLevelToken(cfg.AppToken),
	)
	socketClient := socketmode.New(client, socketmode.OptionDebug(cfg.Debug))

	registry := &method.Registry{}
	dispatch := handler.NewDispatch(registry, sender.NewSlack(client), cfg.HandlerTimeout, logger)
	if cfg.Fallback != nil {
		dispatch.SetFallback(cfg.Fallback)
	}

	b := &Bot{
		client:     client,
		socketMode: socketClient,
		registry:   registry,
		dispatch:   dispatch,
		name:       cfg.BotName,
		l:          logger,
	}

	if !cfg.DisableHelp {
		if err := b.AddMethod(method.NewHelp(registry)); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// AddMethod registers a method under each of its execution words. Returns
// domain.ErrDuplicateTrigger when a word is already claimed.
func (b *Bot) AddMethod(m port.Method) error {
	return b.registry.Register(m)
}

// Run resolves the bot identity, then receives and dispatches events until
// ctx is cancelled. Messages are handled one at a time, in arrival order.
func (b *Bot) Run(ctx context.Context) error {
	identity, err := b.client.AuthTestContext(ctx)
	if err != nil {
		return fmt.Errorf("slack credentials rejected: %w", err)
	}
	b.botUserID = identity.UserID

	if b.name != "" && identity.User != b.name {
		b.l.Warn().
			Str("configured", b.name).
			Str("actual", identity.User).
			Msg("bot name does not match auth.test identity")
	}

	b.l.Info().
		Str("user", identity.User).
		Str("userId", identity.UserID).
		Msg("bot identity resolved, listening")

	go b.receive(ctx)

	return b.socketMode.RunContext(ctx)
}

func (b *Bot) receive(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-b.socketMode.Events:
			if !ok {
				return
			}
			b.handleEvent(ctx, evt)
		}
	}
}

func (b *Bot) handleEvent(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		b.l.Debug().Msg("connecting to slack")
	case socketmode.EventTypeConnectionError:
		// the socket mode client retries on its own
		b.l.Warn().Msg("connection failed, retrying")
	case socketmode.EventTypeConnected:
		b.l.Info().Msg("connected to slack")
	case socketmode.EventTypeInvalidAuth:
		b.l.Error().Msg("slack rejected the socket mode credentials")
	case socketmode.EventTypeEventsAPI:
		eventsAPIEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			return
		}
		if evt.Request != nil {
			b.socketMode.Ack(*evt.Request)
		}
		b.handleEventsAPI(ctx, eventsAPIEvent)
	default:
		// ack everything else so slack does not redeliver it
		if evt.Request != nil {
			b.socketMode.Ack(*evt.Request)
		}
	}
}

func (b *Bot) handleEventsAPI(ctx context.Context, event slackevents.EventsAPIEvent) {
	if event.Type != slackevents.CallbackEvent {
		return
	}

	message, ok := b.normalize(event.InnerEvent)
	if !ok {
		return
	}

	b.dispatch.Handle(ctx, message)
}
