package jsonml

import "errors"

// Error definitions for the configuration codecs
var (
	// ErrInvalidConfiguration is returned when a serialized configuration cannot be decoded
	ErrInvalidConfiguration = errors.New("invalid parser configuration")
)
