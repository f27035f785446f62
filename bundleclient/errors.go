package bundleclient

import (
	"errors"
	"fmt"
)

// Kind classifies where a simulate call failed. Every failure is fatal
// for that call; nothing is retried internally.
type Kind int

const (
	// KindSerialization means the request envelope could not be encoded
	// as JSON.
	KindSerialization Kind = iota + 1
	// KindTransport covers connection, TLS and body-read failures. No
	// partial body is surfaced.
	KindTransport
	// KindDecode means the response body was malformed JSON or missed
	// required structure.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindSerialization:
		return "serialization"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	}
	return "unknown"
}

// Sentinels for errors.Is matching against the three failure kinds.
var (
	ErrSerialization = errors.New("request serialization failed")
	ErrTransport     = errors.New("transport failed")
	ErrDecode        = errors.New("response decode failed")
)

// Error is the single error surface of the client: a failure kind
// wrapping the underlying cause.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.err)
}

func (e *Error) Unwrap() error { return e.err }

// Is matches the kind sentinels, so callers can write
// errors.Is(err, bundleclient.ErrTransport).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrSerialization:
		return e.Kind == KindSerialization
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

func wrapErr(kind Kind, err error) *Error {
	return &Error{Kind: kind, err: err}
}
