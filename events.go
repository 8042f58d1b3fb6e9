package slaccato

import (
	"strings"

	"github.com/peoplefund-tech/slaccato/core/domain"

	"github.com/slack-go/slack/slackevents"
)

// normalize turns a Slack inner event into a dispatchable message, or
// reports that the event is not addressed to the bot. Channel messages
// reach the bot as app mentions; plain message events count only in DMs.
func (b *Bot) normalize(inner slackevents.EventsAPIInnerEvent) (*domain.Message, bool) {
	switch ev := inner.Data.(type) {
	case *slackevents.AppMentionEvent:
		if ev.BotID != "" || ev.User == b.botUserID {
			return nil, false
		}

		return &domain.Message{
			Channel:  ev.Channel,
			ThreadTS: ev.ThreadTimeStamp,
			Text:     stripMention(ev.Text, b.botUserID),
			User:     ev.User,
		}, true
	case *slackevents.MessageEvent:
		if ev.ChannelType != "im" {
			return nil, false
		}
		// skip edits, deletions and anything another bot (or we) sent
		if ev.SubType != "" || ev.BotID != "" || ev.User == "" || ev.User == b.botUserID {
			return nil, false
		}

		return &domain.Message{
			Channel:  ev.Channel,
			ThreadTS: ev.ThreadTimeStamp,
			Text:     stripMention(ev.Text, b.botUserID),
			User:     ev.User,
		}, true
	default:
		return nil, false
	}
}

// stripMention drops the bot's @-mention from the text, keeping what
// follows it, so the trigger word ends up first.
func stripMention(text, botUserID string) string {
	_, after, found := strings.Cut(text, "<@"+botUserID+">")
	if found {
		return strings.TrimSpace(after)
	}

	return strings.TrimSpace(text)
}
