package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"userbase/internal/api"
	"userbase/internal/cache"
	"userbase/internal/service"
	"userbase/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userCacheTTL bounds staleness of the get-by-id response cache.
const userCacheTTL = 5 * time.Minute

func userCacheKey(id string) string {
	return "user:" + id
}

// errorResponse maps a classified service error to an HTTP status and body.
func errorResponse(err error) (int, api.ErrorResponse) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, api.ErrorResponse{Message: "invalid payload", Fields: verr.Violations}
	}
	var derr *service.DuplicateEmailError
	if errors.As(err, &derr) {
		return http.StatusConflict, api.ErrorResponse{Message: derr.Error()}
	}
	var nerr *service.NotFoundError
	if errors.As(err, &nerr) {
		return http.StatusNotFound, api.ErrorResponse{Message: nerr.Error()}
	}
	return http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()}
}

// @Summary     Create a new user
// @Description Validates the payload, rejects duplicate emails, and stores the user with a hashed password
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string true "Display name"
// @Param       email    formData string true "Email, unique across users"
// @Param       password formData string true "Plaintext password, stored only as a hash"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(svc *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}

		user, err := svc.Create(c.Request().Context(), service.CreateUserParams{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return c.JSON(errorResponse(err))
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// @Summary     List users
// @Description Returns one page of users, filtered by exact name and/or email when given
// @Tags        users
// @Produce     json
// @Param       name  query string false "Exact-match name filter"
// @Param       email query string false "Exact-match email filter"
// @Param       page  query int    false "Page number, 1-based" default(1)
// @Param       limit query int    false "Items per page"       default(10)
// @Success     200 {object} api.UsersPageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(svc *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ListUsersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}

		page, err := svc.List(c.Request().Context(), service.ListUsersParams{
			Name:  req.Name,
			Email: req.Email,
			Page:  req.Page,
			Limit: req.Limit,
		})
		if err != nil {
			return c.JSON(errorResponse(err))
		}
		return c.JSON(http.StatusOK, api.NewUsersPageResponse(page))
	}
}

// @Summary     Get a user by ID
// @Description Returns one user; the response is served from the cache when warm
// @Tags        users
// @Produce     json
// @Param       user_id path string true "User ID (UUID)"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{user_id} [get]
func GetUserHandler(svc *service.UserService, cc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		key := userCacheKey(id.String())
		if cc != nil {
			if cached, err := cc.Get(c.Request().Context(), key).Result(); err == nil {
				return c.JSONBlob(http.StatusOK, []byte(cached))
			}
		}

		user, err := svc.GetByID(c.Request().Context(), id.String())
		if err != nil {
			return c.JSON(errorResponse(err))
		}

		resp := api.NewUserResponse(user)
		if cc != nil {
			if body, err := json.Marshal(resp); err == nil {
				cc.Set(c.Request().Context(), key, body, userCacheTTL)
			}
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Update a user by ID
// @Description Replaces name and email wholesale and refreshes updated_at
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       user_id path     string true "User ID (UUID)"
// @Param       name    formData string true "Display name"
// @Param       email   formData string true "Email"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{user_id} [put]
func UpdateUserHandler(svc *service.UserService, cc cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}

		user, err := svc.Update(c.Request().Context(), id.String(), service.UpdateUserParams{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			return c.JSON(errorResponse(err))
		}

		invalidate(cc, wp, id.String())
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Delete a user by ID
// @Description Removes the user and returns its last known state
// @Tags        users
// @Produce     json
// @Param       user_id path string true "User ID (UUID)"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{user_id} [delete]
func DeleteUserHandler(svc *service.UserService, cc cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		user, err := svc.Delete(c.Request().Context(), id.String())
		if err != nil {
			return c.JSON(errorResponse(err))
		}

		invalidate(cc, wp, id.String())
		// The service hands the deleted row back with its hash; the response
		// shape drops it before anything leaves this layer.
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// invalidate drops the cached response for id off the request path.
func invalidate(cc cache.Cache, wp worker.Pool, id string) {
	if cc == nil {
		return
	}
	key := userCacheKey(id)
	if wp == nil {
		cc.Del(context.Background(), key)
		return
	}
	wp.Submit(func() {
		cc.Del(context.Background(), key)
	})
}
