package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name     string `form:"name" json:"name" example:"Ana"`
	Email    string `form:"email" json:"email" example:"ana@example.com"`
	Password string `form:"password" json:"password" example:"secret123"`
}
