package port

import (
	"context"

	"github.com/peoplefund-tech/slaccato/core/domain"
)

type MessageSender interface {
	// SendMessage posts a response to its destination channel, threading it
	// when the response carries a thread reference.
	SendMessage(ctx context.Context, response *domain.Response) error
}
