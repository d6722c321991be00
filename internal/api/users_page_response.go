package api

import "userbase/internal/service"

// swagger:model api.PaginationResponse
type PaginationResponse struct {
	TotalItems   int `json:"total_items" example:"42"`
	TotalPages   int `json:"total_pages" example:"5"`
	CurrentPage  int `json:"current_page" example:"1"`
	ItemsPerPage int `json:"items_per_page" example:"10"`
}

// swagger:model api.UsersPageResponse
type UsersPageResponse struct {
	Data       []UserResponse     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

func NewUsersPageResponse(page *service.UsersPage) UsersPageResponse {
	data := make([]UserResponse, 0, len(page.Items))
	for i := range page.Items {
		data = append(data, NewUserResponse(&page.Items[i]))
	}
	return UsersPageResponse{
		Data: data,
		Pagination: PaginationResponse{
			TotalItems:   page.TotalItems,
			TotalPages:   page.TotalPages,
			CurrentPage:  page.CurrentPage,
			ItemsPerPage: page.ItemsPerPage,
		},
	}
}
