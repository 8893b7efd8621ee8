package common

import "errors"

// Errors returned by the client. All of them are wrapped with additional
// context, so callers should compare with errors.Is.
var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrUnsupportedVersion = errors.New("unsupported protocol version")
	ErrMalformedMetadata  = errors.New("malformed metadata")
	ErrMalformedBody      = errors.New("malformed body")
	ErrTransport          = errors.New("transport error")
	ErrTimeout            = errors.New("request timed out")
)
