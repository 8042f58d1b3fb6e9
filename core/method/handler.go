package method

import (
	"context"

	"github.com/peoplefund-tech/slaccato/core/domain"
)

// Handler bundles execution words, help text and a response function into a
// port.Method, so hosts can register closures without declaring a type.
type Handler struct {
	Words []string
	Help  string
	Fn    func(ctx context.Context, message *domain.Message) (*domain.Response, error)
}

func (h *Handler) ExecutionWords() []string {
	return h.Words
}

func (h *Handler) HelpText() string {
	return h.Help
}

func (h *Handler) Response(ctx context.Context, message *domain.Message) (*domain.Response, error) {
	return h.Fn(ctx, message)
}
