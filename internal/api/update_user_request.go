package api

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name  string `form:"name" json:"name" example:"Ana Silva"`
	Email string `form:"email" json:"email" example:"ana@example.com"`
}
