// File: internal/service/validator.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks the shape of untrusted input. A failed check comes back
// as a *ValidationError value, never a panic.
type Validator interface {
	Validate(v any) *ValidationError
}

// PlaygroundValidator adapts go-playground/validator to the Validator
// interface, translating tag failures into per-field violations.
type PlaygroundValidator struct {
	validate *validator.Validate
}

func NewPlaygroundValidator() *PlaygroundValidator {
	return &PlaygroundValidator{validate: validator.New()}
}

func (p *PlaygroundValidator) Validate(v any) *ValidationError {
	err := p.validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError and friends: still a data result.
		return &ValidationError{Violations: []FieldViolation{
			{Field: "payload", Message: err.Error()},
		}}
	}

	violations := make([]FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, FieldViolation{
			Field:   strings.ToLower(fe.Field()),
			Message: violationMessage(fe),
		})
	}
	return &ValidationError{Violations: violations}
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a well-formed email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed the %q constraint", fe.Tag())
	}
}
