package config

import "errors"

var (
	ErrEmptyBaseURL    = errors.New("api base url is required")
	ErrInvalidBaseURL  = errors.New("api base url must include scheme and host")
	ErrNegativeTimeout = errors.New("request timeout cannot be negative")
)
