package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/peoplefund-tech/slaccato/core/domain"
	"github.com/peoplefund-tech/slaccato/core/method"

	"github.com/slack-go/slack"
)

// NewStatusMethod returns a method replying with a block-formatted status
// card, demonstrating structured payloads.
func NewStatusMethod(startedAt time.Time) *method.Handler {
	return &method.Handler{
		Words: []string{"status"},
		Help:  "*status*: shows uptime and runtime info",
		Fn: func(_ context.Context, message *domain.Message) (*domain.Response, error) {
			fields := []*slack.TextBlockObject{
				slack.NewTextBlockObject(slack.MarkdownType,
					fmt.Sprintf("*Uptime:*\n%s", time.Since(startedAt).Round(time.Second)), false, false),
				slack.NewTextBlockObject(slack.MarkdownType,
					fmt.Sprintf("*Runtime:*\n%s", runtime.Version()), false, false),
				slack.NewTextBlockObject(slack.MarkdownType,
					fmt.Sprintf("*Goroutines:*\n%d", runtime.NumGoroutine()), false, false),
			}

			return &domain.Response{
				Channel:  message.Channel,
				ThreadTS: message.ThreadTS,
				Blocks: []slack.Block{
					slack.NewSectionBlock(
						slack.NewTextBlockObject(slack.MarkdownType, "*Bot status*", false, false),
						nil, nil),
					slack.NewDividerBlock(),
					slack.NewSectionBlock(nil, fields, nil),
				},
			}, nil
		},
	}
}
