package domain

import "github.com/slack-go/slack"

// Message is one inbound chat message addressed to the bot. The runtime
// builds it from the transport event with the bot mention already stripped,
// so Text starts with the trigger word.
type Message struct {
	Channel  string
	ThreadTS string
	Text     string
	User     string
}

// Response is what a method returns: a destination and a payload. When
// Blocks is non-empty it is posted verbatim and Text is ignored; otherwise
// Text is posted as plain text. A ThreadTS targets a thread.
type Response struct {
	Channel  string
	ThreadTS string
	Text     string
	Blocks   []slack.Block
}
