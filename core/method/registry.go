package method

import (
	"fmt"
	"strings"

	"github.com/peoplefund-tech/slaccato/core/domain"
	"github.com/peoplefund-tech/slaccato/core/port"

	"github.com/rs/zerolog/log"
)

// Registry maps execution words to methods. It is populated during setup
// and read-only during dispatch, so no locking is needed.
type Registry struct {
	triggers map[string]port.Method
	methods  []port.Method
}

func (r *Registry) Register(m port.Method) error {
	words := m.ExecutionWords()
	if len(words) == 0 {
		return domain.ErrNoExecutionWords
	}

	if r.triggers == nil {
		r.triggers = make(map[string]port.Method)
	}

	// check every word before touching the index so a rejected
	// registration leaves the registry unchanged
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if _, ok := r.triggers[word]; ok {
			return fmt.Errorf("%q: %w", word, domain.ErrDuplicateTrigger)
		}
		if _, ok := seen[word]; ok {
			return fmt.Errorf("%q: %w", word, domain.ErrDuplicateTrigger)
		}
		seen[word] = struct{}{}
	}

	for _, word := range words {
		r.triggers[word] = m
	}
	r.methods = append(r.methods, m)

	log.Info().Strs("words", words).Msg("adding method to registry")

	return nil
}

func (r *Registry) Resolve(text string) (port.Method, error) {
	trigger := ParseTrigger(text)

	log.Debug().Str("trigger", trigger).Msg("fetching method from registry")

	m, ok := r.triggers[trigger]
	if !ok {
		return nil, fmt.Errorf("%q: %w", trigger, domain.ErrMethodNotFound)
	}

	return m, nil
}

func (r *Registry) List() []port.Method {
	methods := make([]port.Method, len(r.methods))
	copy(methods, r.methods)

	return methods
}

// ParseTrigger returns the first whitespace-delimited word of a command.
func ParseTrigger(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// ParseArgs returns everything after the trigger word.
func ParseArgs(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}

	return strings.Join(fields[1:], " ")
}
