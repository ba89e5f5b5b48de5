// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	status int
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Detail: msg, status: 404}
}

func Unauthorized(msg string) *APIError {
	return &APIError{Detail: msg, status: 401}
}

func (e *APIError) Error() string { return e.Detail }

// Status is the HTTP status the handler should answer with; 400 by default.
func (e *APIError) Status() int {
	if e.status == 0 {
		return 400
	}
	return e.status
}

// ValidationError is the 422 envelope. Fields is only set when the failure
// can be attributed to specific request fields.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

func NewValidation(detail string) *ValidationError {
	return &ValidationError{Detail: detail}
}

func NewValidationFields(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation error", Fields: fields}
}

func (e *ValidationError) Error() string { return e.Detail }
