package api

import (
	"errors"
	"fmt"
)

// Kind classifies a client error independently of which backend variant
// produced it.
type Kind int

const (
	// KindInvalidURL means the endpoint could not be constructed.
	// Programmer error, never expected in production.
	KindInvalidURL Kind = iota + 1

	// KindInvalidResponse means the transport returned something that
	// was not an HTTP-shaped response.
	KindInvalidResponse

	// KindUnauthorized is HTTP 401: the identity is no longer valid and
	// the caller should prompt re-authentication.
	KindUnauthorized

	// KindServer is any other non-success HTTP status.
	KindServer

	// KindBackend is an envelope-level logical error (status=="error"),
	// independent of HTTP status.
	KindBackend

	// KindNetwork is a transport-level failure: timeout, connectivity.
	KindNetwork

	// KindNotLoggedIn means an identity-requiring call was attempted
	// with no stored identity. No network round trip is made.
	KindNotLoggedIn

	// KindDecode is a successful response whose body does not match the
	// expected result shape.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid url"
	case KindInvalidResponse:
		return "invalid response"
	case KindUnauthorized:
		return "unauthorized"
	case KindServer:
		return "server error"
	case KindBackend:
		return "backend error"
	case KindNetwork:
		return "network error"
	case KindNotLoggedIn:
		return "not logged in"
	case KindDecode:
		return "decode error"
	}
	return "unknown error"
}

// Error is the one error type every typed operation can fail with.
type Error struct {
	Kind Kind

	// HTTP status, for KindServer.
	Status int

	// Message surfaced verbatim to the user when present.
	Message string

	cause error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindServer && e.Message != "":
		return e.Message
	case e.Kind == KindServer:
		return fmt.Sprintf("server error (%d)", e.Status)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.cause != nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.cause)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func errInvalidURL(err error) error {
	return &Error{Kind: KindInvalidURL, cause: err}
}

func errInvalidResponse(err error) error {
	return &Error{Kind: KindInvalidResponse, cause: err}
}

func errUnauthorized() error {
	return &Error{Kind: KindUnauthorized}
}

func errServer(status int, message string) error {
	return &Error{Kind: KindServer, Status: status, Message: message}
}

func errBackend(message string) error {
	return &Error{Kind: KindBackend, Message: message}
}

func errNetwork(err error) error {
	return &Error{Kind: KindNetwork, cause: err}
}

func errNotLoggedIn() error {
	return &Error{Kind: KindNotLoggedIn}
}

func errDecode(err error) error {
	return &Error{Kind: KindDecode, cause: err}
}

// IsKind reports whether err is a client *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// IsUnauthorized reports whether err means the identity is no longer
// valid and the user should re-authenticate.
func IsUnauthorized(err error) bool { return IsKind(err, KindUnauthorized) }

// IsNotLoggedIn reports whether err means no identity was stored.
func IsNotLoggedIn(err error) bool { return IsKind(err, KindNotLoggedIn) }
