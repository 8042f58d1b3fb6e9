package main

import (
	"context"
	"fmt"

	"github.com/peoplefund-tech/slaccato/core/domain"
	"github.com/peoplefund-tech/slaccato/core/method"

	"github.com/revrost/go-openrouter"
)

// AskMethod answers free-form questions through OpenRouter.
type AskMethod struct {
	client       *openrouter.Client
	systemPrompt string
	model        string
}

func NewAskMethod(apiKey, systemPrompt, model string) *AskMethod {
	return &AskMethod{
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("slaccato-example"),
		),
		systemPrompt: systemPrompt,
		model:        model,
	}
}

func (a *AskMethod) ExecutionWords() []string {
	return []string{"ask"}
}

func (a *AskMethod) HelpText() string {
	return "*ask*: answers a question, e.g. `ask why is the sky blue`"
}

func (a *AskMethod) Response(ctx context.Context, message *domain.Message) (*domain.Response, error) {
	prompt := method.ParseArgs(message.Text)
	if prompt == "" {
		return &domain.Response{
			Channel:  message.Channel,
			ThreadTS: message.ThreadTS,
			Text:     "ask me something, e.g. `ask why is the sky blue`",
		}, nil
	}

	ccr := openrouter.ChatCompletionRequest{
		Model: a.model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role:    openrouter.ChatMessageRoleSystem,
				Content: openrouter.Content{Text: a.systemPrompt},
			},
			{
				Role:    openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{Text: prompt},
			},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return nil, fmt.Errorf("openrouter API error: %w", err)
	}

	return &domain.Response{
		Channel:  message.Channel,
		ThreadTS: message.ThreadTS,
		Text:     resp.Choices[0].Message.Content.Text,
	}, nil
}
