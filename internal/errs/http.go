package errs

import "strings"

// FieldError represents a single field-level validation error.
//
// Example:
//
//	{ "field": "code", "error": "is required" }
type FieldError struct {
	// Field is the field name the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type serialized to API clients.
//
// It implements the error interface so handlers and services can return it
// directly; the global error handler recognizes it and writes it as the
// response body.
type HTTPError struct {
	// Code is a machine-friendly error code (e.g. "NOT_FOUND").
	Code string `json:"code"`

	// Message is the human-friendly message, serialized under the "error"
	// key: clients read {"error": "..."} from every failure response.
	Message string `json:"error"`

	// Status is the HTTP status code of the response.
	Status int `json:"status"`

	// Errors holds field-level validation errors, if any.
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It makes errors.Is usable
// for "is this one of ours" checks; it does not compare Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts a status text into an error code:
//
//	"Not Found" -> "NOT_FOUND"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
