package report

import (
	"errors"
	"fmt"
)

// Validation error codes, stable across the CLI, HTTP and MCP surfaces.
const (
	CodeInvalidBirthYear     = "INVALID_BIRTH_YEAR"
	CodeInvalidReferenceYear = "INVALID_CURRENT_YEAR"
	CodeInvalidAge           = "INVALID_AGE"
	CodeInvalidGender        = "INVALID_GENDER"
	CodeInvalidStatus        = "INVALID_STATUS"
)

const yearConstraint = "must be between 1900 and 2100"

// ValidationError names the offending field and the violated
// constraint. It is the only error Build can return.
type ValidationError struct {
	Field      string `json:"field"`
	Code       string `json:"code"`
	Constraint string `json:"constraint"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Constraint)
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
