package sender

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/peoplefund-tech/slaccato/core/domain"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPostClient struct {
	mock.Mock
}

func (m *MockPostClient) PostMessageContext(ctx context.Context, channelID string,
	options ...slack.MsgOption) (string, string, error) {
	args := m.Called(ctx, channelID, options)
	return args.String(0), args.String(1), args.Error(2)
}

// newTestClient points a real slack client at a local test server so the
// form the sender produces can be inspected.
func newTestClient(t *testing.T, got *url.Values) (*slack.Client, func()) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		*got = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1503435956.000247"}`))
	}))

	return slack.New("xoxb-test", slack.OptionAPIURL(server.URL+"/")), server.Close
}

func TestSendMessageText(t *testing.T) {
	var got url.Values
	client, done := newTestClient(t, &got)
	defer done()

	s := NewSlack(client)
	err := s.SendMessage(context.Background(), &domain.Response{
		Channel: "C1",
		Text:    "pong",
	})
	require.NoError(t, err)

	assert.Equal(t, "C1", got.Get("channel"))
	assert.Equal(t, "pong", got.Get("text"))
	assert.Empty(t, got.Get("thread_ts"))
	assert.Empty(t, got.Get("blocks"))
}

func TestSendMessageInThread(t *testing.T) {
	var got url.Values
	client, done := newTestClient(t, &got)
	defer done()

	s := NewSlack(client)
	err := s.SendMessage(context.Background(), &domain.Response{
		Channel:  "C1",
		ThreadTS: "1503435956.000247",
		Text:     "pong",
	})
	require.NoError(t, err)

	assert.Equal(t, "1503435956.000247", got.Get("thread_ts"))
}

func TestSendMessageBlocksPassThrough(t *testing.T) {
	var got url.Values
	client, done := newTestClient(t, &got)
	defer done()

	s := NewSlack(client)
	err := s.SendMessage(context.Background(), &domain.Response{
		Channel: "C1",
		Blocks: []slack.Block{
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "*status*: ok", false, false), nil, nil),
			slack.NewDividerBlock(),
		},
	})
	require.NoError(t, err)

	blocks := got.Get("blocks")
	assert.Contains(t, blocks, `"type":"section"`)
	assert.Contains(t, blocks, `"*status*: ok"`)
	assert.Contains(t, blocks, `"type":"divider"`)
	assert.Empty(t, got.Get("text"))
}

func TestSendMessageWrapsClientError(t *testing.T) {
	client := new(MockPostClient)
	client.On("PostMessageContext", mock.Anything, "C1", mock.Anything).
		Return("", "", errors.New("channel_not_found")).
		Once()

	s := NewSlack(client)
	err := s.SendMessage(context.Background(), &domain.Response{Channel: "C1", Text: "pong"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to post message")
	assert.ErrorContains(t, err, "channel_not_found")
	client.AssertExpectations(t)
}
