package domain

import (
	"errors"
	"fmt"
)

// Error codes for the closed set of engine failure kinds. Callers branch on
// these (or on the typed errors below) instead of matching message text.
const (
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeDegenerate = "DEGENERATE_DENOMINATOR"
	ErrCodeDatabase   = "DATABASE_ERROR"
	ErrCodeRateLimit  = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal   = "INTERNAL_SERVER_ERROR"
)

// ErrNotFound is the sentinel wrapped by NotFoundError so call sites can use
// errors.Is without caring about the lookup details.
var ErrNotFound = errors.New("not found")

// NotFoundError reports an unresolvable disease key. It carries both the
// original input and the normalized key that was attempted, so a 404 response
// can show the user what was actually looked up. Distinct from "disease exists
// but no symptoms matched", which is not an error at all.
type NotFoundError struct {
	Name string // original user input
	Key  string // normalized lookup key
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("disease %q (key: %s) not found in knowledge base", e.Name, e.Key)
}

// Is makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError reports an input outside its allowed domain: a probability
// outside [0,1], an unknown test-result value, or a malformed request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field %q: %s", e.Field, e.Message)
}

// DegenerateError reports a zero denominator in a posterior formula at a strict
// call site. Lenient call sites coerce the posterior to 0 instead and never
// produce this error.
type DegenerateError struct {
	Op string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s: zero denominator, posterior is undefined", e.Op)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}
