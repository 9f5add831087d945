package client

import "errors"

type ErrorKind string

const (
	KindInvalidRequest     ErrorKind = "invalid_request"
	KindUnauthorized       ErrorKind = "unauthorized"
	KindForbidden          ErrorKind = "forbidden"
	KindNotFound           ErrorKind = "not_found"
	KindServerError        ErrorKind = "server_error"
	KindTimeout            ErrorKind = "timeout"
	KindNetworkUnreachable ErrorKind = "network_unreachable"
	KindUnknown            ErrorKind = "unknown"
)

// Error is the only error type the client surfaces; raw transport failures
// never escape to callers.
type Error struct {
	Kind ErrorKind
	// Status is the HTTP status when a response was received, zero otherwise.
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf extracts the taxonomy kind from an error returned by this package.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
