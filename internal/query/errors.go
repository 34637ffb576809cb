package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FilterValidationError reports every filter or sort field that could not be applied.
type FilterValidationError struct {
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"errors"`
}

func NewFilterValidationError(field, reason string) *FilterValidationError {
	return &FilterValidationError{
		Message:     "One or more filter parameters are invalid.",
		FieldErrors: map[string]string{field: reason},
	}
}

func (e *FilterValidationError) Error() string {
	if len(e.FieldErrors) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.FieldErrors))
	for k := range e.FieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.FieldErrors[k]))
	}
	return e.Message + " " + strings.Join(parts, "; ")
}

// AsFilterValidation unwraps err to a *FilterValidationError.
func AsFilterValidation(err error) (*FilterValidationError, bool) {
	var target *FilterValidationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
