package domain

import "errors"

var (
	ErrConfigMissing     = errors.New("configuration missing")
	ErrInvalidForwardURL = errors.New("invalid forward url")
	ErrMissingField      = errors.New("missing field")
	ErrForwardFailed     = errors.New("forward failed")
)
