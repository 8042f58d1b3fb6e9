package sender

import (
	"context"
	"fmt"

	"github.com/peoplefund-tech/slaccato/core/domain"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// PostClient is the slice of the Slack Web API the sender needs.
type PostClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type Slack struct {
	client PostClient
}

func NewSlack(client PostClient) *Slack {
	return &Slack{client: client}
}

// SendMessage posts a response via chat.postMessage. Block payloads are
// forwarded verbatim, anything else goes out as plain text.
func (s *Slack) SendMessage(ctx context.Context, response *domain.Response) error {
	options := []slack.MsgOption{slack.MsgOptionAsUser(true)}

	if len(response.Blocks) > 0 {
		options = append(options, slack.MsgOptionBlocks(response.Blocks...))
	} else {
		options = append(options, slack.MsgOptionText(response.Text, false))
	}

	if response.ThreadTS != "" {
		options = append(options, slack.MsgOptionTS(response.ThreadTS))
	}

	_, ts, err := s.client.PostMessageContext(ctx, response.Channel, options...)
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}

	log.Debug().Str("channel", response.Channel).Str("ts", ts).Msg("posted message")

	return nil
}
