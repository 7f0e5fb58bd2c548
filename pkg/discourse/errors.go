package discourse

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// ErrInternalServer is returned when the server answers an admin or
// category endpoint with HTTP 500.
var ErrInternalServer = errors.New("Internal server error")

// ErrMissingCredentials is returned when a privileged operation is invoked
// without a configured admin username and API key.
var ErrMissingCredentials = errors.New("admin username and API key are required")

// RequestError represents a transport-level failure: connection refused,
// timeout, DNS failure, and the like. The call is never retried; a single
// failed request is a terminal outcome for that invocation.
type RequestError struct {
	// Op is the client operation that failed, e.g. "lookup user".
	Op string

	// URL is the request URL without query parameters (credentials travel
	// in the query string and must not leak into error text).
	URL string

	// Err is the underlying transport error.
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("discourse: %s: request to %s failed: %v", e.Op, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ValidationError carries the field-level error payload the server returns
// with HTTP 200 on user creation. The transport call succeeded; the request
// was rejected by server-side validation.
type ValidationError struct {
	// Fields maps a field name ("password", "email", ...) to the server's
	// validation messages for it.
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	var result *multierror.Error

	// Sort for stable error text.
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, msg := range e.Fields[name] {
			result = multierror.Append(result, fmt.Errorf("%s: %s", name, msg))
		}
	}

	if result == nil {
		return "discourse: validation failed"
	}
	return "discourse: validation failed: " + result.Error()
}
