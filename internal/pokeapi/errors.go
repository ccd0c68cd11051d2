package pokeapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed lookup.
type Kind string

const (
	// KindTransport means no response was obtained (DNS, dial, timeout, cancellation).
	KindTransport Kind = "TRANSPORT"
	// KindHTTPStatus means the catalog answered with a non-2xx status.
	KindHTTPStatus Kind = "HTTP_STATUS"
	// KindParse means the body was not JSON or lacked a required field.
	KindParse Kind = "PARSE"
)

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// Error is returned by every failing Client call.
type Error struct {
	Kind   Kind
	URL    string
	Status int // set for KindHTTPStatus
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("%s: GET %s returned status %d", e.Kind, e.URL, e.Status)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("%s: GET %s: %v", e.Kind, e.URL, e.Cause)
		}
		return fmt.Sprintf("%s: GET %s", e.Kind, e.URL)
	}
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same kind. A target with a non-zero
// Status must also match the status.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if !errors.As(target, &targetErr) {
		return false
	}
	if e.Kind != targetErr.Kind {
		return false
	}
	return targetErr.Status == 0 || targetErr.Status == e.Status
}

// Sentinels for errors.Is.
var (
	ErrTransport = &Error{Kind: KindTransport}
	ErrStatus    = &Error{Kind: KindHTTPStatus}
	ErrNotFound  = &Error{Kind: KindHTTPStatus, Status: http.StatusNotFound}
	ErrParse     = &Error{Kind: KindParse}
)

// IsNotFound reports whether err is a 404 from the catalog, which is how
// PokeAPI answers unknown species.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// KindOf returns the Kind of err, or "" when err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func transportError(url string, cause error) *Error {
	return &Error{Kind: KindTransport, URL: url, Cause: cause}
}

func statusError(url string, status int) *Error {
	return &Error{Kind: KindHTTPStatus, URL: url, Status: status}
}

func parseError(url string, cause error) *Error {
	return &Error{Kind: KindParse, URL: url, Cause: cause}
}
