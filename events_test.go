package slaccato

import (
	"testing"

	"github.com/peoplefund-tech/slaccato/core/domain"

	"github.com/slack-go/slack/slackevents"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	b := &Bot{botUserID: "UBOT"}

	tests := []struct {
		name   string
		inner  slackevents.EventsAPIInnerEvent
		want   *domain.Message
		wantOK bool
	}{
		{
			name: "app mention in channel",
			inner: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.AppMentionEvent{
					Channel:         "C1",
					User:            "U1",
					Text:            "<@UBOT> ping",
					TimeStamp:       "1503435956.000247",
					ThreadTimeStamp: "",
				},
			},
			want:   &domain.Message{Channel: "C1", Text: "ping", User: "U1"},
			wantOK: true,
		},
		{
			name: "app mention inside thread keeps thread reference",
			inner: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.AppMentionEvent{
					Channel:         "C1",
					User:            "U1",
					Text:            "<@UBOT> deploy api",
					ThreadTimeStamp: "1503435956.000247",
				},
			},
			want:   &domain.Message{Channel: "C1", ThreadTS: "1503435956.000247", Text: "deploy api", User: "U1"},
			wantOK: true,
		},
		{
			name: "mention from another bot is ignored",
			inner: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.AppMentionEvent{Channel: "C1", BotID: "B9", Text: "<@UBOT> ping"},
			},
			wantOK: false,
		},
		{
			name: "direct message without mention",
			inner: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.MessageEvent{
					Channel:     "D1",
					ChannelType: "im",
					User:        "U1",
					Text:        "ping",
				},
			},
			want:   &domain.Message{Channel: "D1", Text: "ping", User: "U1"},
			wantOK: true,
		},
		{
			name: "channel message without mention is ignored",
			inner: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.MessageEvent{
					Channel:     "C1",
					ChannelType: "channel",
					User:        "U1",
					Text:        "ping",
				},
			},
			wantOK: false,
		},
		{
			name: "edited direct message is ignored",
			inner: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.MessageEvent{
					Channel:     "D1",
					ChannelType: "im",
					SubType:     "message_changed",
					User:        "U1",
					Text:        "ping",
				},
			},
			wantOK: false,
		},
		{
			name: "own message is ignored",
			inner: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.MessageEvent{
					Channel:     "D1",
					ChannelType: "im",
					User:        "UBOT",
					Text:        "pong",
				},
			},
			wantOK: false,
		},
		{
			name: "unrelated event type is ignored",
			inner: slackevents.EventsAPIInnerEvent{
				Data: &slackevents.ReactionAddedEvent{User: "U1"},
			},
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := b.normalize(tc.inner)

			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestStripMention(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "leading mention",
			text: "<@UBOT> ping",
			want: "ping",
		},
		{
			name: "mention without following command",
			text: "<@UBOT>",
			want: "",
		},
		{
			name: "mention mid-sentence keeps trailing text",
			text: "hey <@UBOT> ping me",
			want: "ping me",
		},
		{
			name: "no mention",
			text: "  ping  ",
			want: "ping",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripMention(tc.text, "UBOT"))
		})
	}
}
