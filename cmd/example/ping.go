package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/peoplefund-tech/slaccato/core/domain"
)

// PingMethod is the canonical liveness check.
type PingMethod struct{}

func (p *PingMethod) ExecutionWords() []string {
	return []string{"테스트", "test", "ping"}
}

func (p *PingMethod) HelpText() string {
	return fmt.Sprintf("*%s*: checks that the bot is alive", strings.Join(p.ExecutionWords(), "/"))
}

func (p *PingMethod) Response(_ context.Context, message *domain.Message) (*domain.Response, error) {
	return &domain.Response{
		Channel:  message.Channel,
		ThreadTS: message.ThreadTS,
		Text:     fmt.Sprintf("Thanks for checking on me, <@%s>! I'm alive and well.", message.User),
	}, nil
}
