package api

// ListUsersRequest binds the list query string. Absent filters stay nil so
// they are left out of the query entirely.
// swagger:model api.ListUsersRequest
type ListUsersRequest struct {
	Name  *string `query:"name"`
	Email *string `query:"email"`
	Page  int     `query:"page" example:"1"`
	Limit int     `query:"limit" example:"10"`
}
