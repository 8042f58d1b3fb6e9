package method

import (
	"context"
	"strings"

	"github.com/peoplefund-tech/slaccato/core/domain"
	"github.com/peoplefund-tech/slaccato/core/port"
)

// NewHelp returns the built-in method answering "help" and "list" with the
// help texts of every registered method, in registration order. Methods
// with an empty help text are left out, including this one.
func NewHelp(registry port.MethodRegistry) *Handler {
	return &Handler{
		Words: []string{"help", "list"},
		Fn: func(_ context.Context, message *domain.Message) (*domain.Response, error) {
			var b strings.Builder
			b.WriteString("*Available commands*:\n")

			for _, m := range registry.List() {
				if m.HelpText() == "" {
					continue
				}
				b.WriteString("\n\t")
				b.WriteString(m.HelpText())
			}

			return &domain.Response{
				Channel:  message.Channel,
				ThreadTS: message.ThreadTS,
				Text:     b.String(),
			}, nil
		},
	}
}
