// Package attribution is the storage-agnostic core of the tracking pipeline:
// it validates the relationship graph between brands, affiliates, referrers,
// campaigns, links, clicks, conversions and payouts, and owns the payout
// state machine and commission math. Persistence lives in internal/repository.
package attribution

import (
	"errors"
	"fmt"
)

// Code classifies a failed operation so handlers can map it to a field-level
// API error without inspecting message text.
type Code string

const (
	CodeValidation          Code = "validation_error"
	CodeDuplicateConversion Code = "duplicate_conversion"
	CodeInvalidTransition   Code = "invalid_transition"
	CodeMissingField        Code = "missing_required_field"
)

// Error is a structured, user-presentable failure. Field is empty when the
// error concerns the operation as a whole rather than one input.
type Error struct {
	Code    Code   `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCode reports whether err is (or wraps) an attribution Error with the
// given code.
func IsCode(err error, code Code) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}

// AsError unwraps err to an attribution Error, or nil.
func AsError(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

func validationErr(field, format string, args ...interface{}) *Error {
	return &Error{Code: CodeValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

func missingFieldErr(field string) *Error {
	return &Error{Code: CodeMissingField, Field: field, Message: field + " is required"}
}

// ErrDuplicateConversion is returned when a click already has a conversion.
var ErrDuplicateConversion = &Error{
	Code:    CodeDuplicateConversion,
	Field:   "click_id",
	Message: "click already has a conversion",
}
