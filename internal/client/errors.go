package client

import (
	"errors"
	"fmt"
)

// Kind classifies a client failure.
type Kind string

const (
	// KindHTTP covers transport failures: non-2xx statuses and timeouts.
	KindHTTP Kind = "http"
	// KindAPI covers envelope-level failures reported by the upstream API.
	KindAPI Kind = "api"
	// KindNotFound is reserved for mapping 404-shaped upstream responses.
	// No code path produces it today; it is kept in the taxonomy so the
	// mapping can be added without changing the error contract.
	KindNotFound Kind = "not_found"
	// KindNotVerified means the contract source was never verified upstream.
	KindNotVerified Kind = "contract_not_verified"
	// KindInvalidResponse covers shape violations: malformed identifiers,
	// empty arrays where one element was required, JSON parse failures.
	KindInvalidResponse Kind = "invalid_response"
)

// Error is the classified failure surfaced by every client operation.
type Error struct {
	Kind    Kind
	Message string
	// URL is the request URL the failure originated from; blank when the
	// failure happened before any request was issued.
	URL string
	// Details carries the offending upstream payload, if any.
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts a classified error from an error chain.
func AsError(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	ce, ok := AsError(err)
	return ok && ce.Kind == kind
}

func invalidf(url, format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidResponse, Message: fmt.Sprintf(format, args...), URL: url}
}

// InvalidRequest builds an invalid-response error for a request rejected
// before any network call was issued.
func InvalidRequest(format string, args ...interface{}) *Error {
	return invalidf("", format, args...)
}
