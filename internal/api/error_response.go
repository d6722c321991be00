package api

import "userbase/internal/service"

// ErrorResponse is the uniform error body. Fields is present only on
// validation failures.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string                   `json:"message"`
	Fields  []service.FieldViolation `json:"fields,omitempty"`
}
