package port

import (
	"context"

	"github.com/peoplefund-tech/slaccato/core/domain"
)

type Method interface {
	// ExecutionWords returns the trigger words that select this method. A
	// message whose first word equals one of them is dispatched here.
	ExecutionWords() []string
	// HelpText returns the one-line description shown in the help listing.
	// An empty string hides the method from the listing.
	HelpText() string
	// Response handles one inbound message and returns where and what to
	// post. A nil response with a nil error posts nothing.
	Response(ctx context.Context, message *domain.Message) (*domain.Response, error)
}

type MethodRegistry interface {
	// Register adds a method, indexing it under each of its execution words.
	Register(method Method) error
	// Resolve returns the method claiming the first word of text, or an
	// error wrapping domain.ErrMethodNotFound.
	Resolve(text string) (Method, error)
	// List returns all registered methods in registration order.
	List() []Method
}
