package domain

import "errors"

var (
	ErrDuplicateTrigger = errors.New("execution word already registered")
	ErrNoExecutionWords = errors.New("method declares no execution words")
	ErrMethodNotFound   = errors.New("no method registered for trigger")

	ErrMissingBotToken = errors.New("bot token is required")
	ErrInvalidBotToken = errors.New("bot token must start with xoxb-")
	ErrMissingAppToken = errors.New("app token is required for socket mode")
	ErrInvalidAppToken = errors.New("app token must start with xapp-")
)
