package cdg

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error conditions reported by the client. Typed errors below match these with errors.Is.
var (
	ErrMissingCredential = errors.New("missing API credential")
	ErrURLConstruction   = errors.New("cannot construct request URL")
	ErrTransport         = errors.New("transport failure")
	ErrMalformedBody     = errors.New("response body is not valid JSON")
	ErrShapeMismatch     = errors.New("response does not match shape")
)

// Common static errors that can be wrapped with context.
var (
	ErrUnknownEnumValue   = errors.New("unknown enum value")
	ErrUnknownShape       = errors.New("unknown shape")
	ErrNotAnObject        = errors.New("JSON document is not an object")
	ErrInvalidShapeTarget = errors.New("shape target must be a non-nil pointer to a struct")
	ErrConfigRequired     = errors.New("config is required")
	ErrRateLimitExceeded  = errors.New("client-side rate limit exceeded")
	ErrNoEndpoints        = errors.New("no endpoints given")
)

// URLConstructionError reports an identifier or parameter that cannot be encoded.
type URLConstructionError struct {
	Kind    Kind
	Segment string
	Reason  string
}

// Error implements the error interface.
func (e *URLConstructionError) Error() string {
	return fmt.Sprintf("%s: %s: segment %q: %s", ErrURLConstruction, e.Kind, e.Segment, e.Reason)
}

// Is reports whether target is ErrURLConstruction.
func (e *URLConstructionError) Is(target error) bool {
	return target == ErrURLConstruction
}

// TransportError carries a failure from the transport verbatim. StatusCode is zero when
// no response was received.
type TransportError struct {
	StatusCode int
	URL        string
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	var builder strings.Builder

	builder.WriteString(ErrTransport.Error())

	if e.StatusCode != 0 {
		_, _ = fmt.Fprintf(&builder, ": status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	if e.URL != "" {
		_, _ = fmt.Fprintf(&builder, " (%s)", e.URL)
	}

	if e.Err != nil {
		_, _ = fmt.Fprintf(&builder, ": %v", e.Err)
	}

	return builder.String()
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Unwrap returns the underlying network error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedBodyError reports a response body that is not a JSON object.
type MalformedBodyError struct {
	Body []byte
	Err  error
}

// Error implements the error interface.
func (e *MalformedBodyError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformedBody, e.Err)
}

// Is reports whether target is ErrMalformedBody.
func (e *MalformedBodyError) Is(target error) bool {
	return target == ErrMalformedBody
}

// Unwrap returns the decoder error.
func (e *MalformedBodyError) Unwrap() error {
	return e.Err
}

// ShapeMismatchError reports the first required field that is absent or of the wrong
// JSON kind. Path is a dotted location such as "bill.actions" or "bills[3]".
type ShapeMismatchError struct {
	Shape    string
	Path     string
	Expected string
	Found    string
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%s %s: required field %q is missing", ErrShapeMismatch, e.Shape, e.Path)
	}

	return fmt.Sprintf("%s %s: field %q: expected %s, found %s", ErrShapeMismatch, e.Shape, e.Path, e.Expected, e.Found)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// IsShapeMismatch checks if the error is a shape mismatch.
func IsShapeMismatch(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}

// IsNotFound checks if the error is a transport error with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsRateLimited checks if the error is a transport error with status 429.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests) || errors.Is(err, ErrRateLimitExceeded)
}

func hasStatus(err error, status int) bool {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode == status
	}

	return false
}
