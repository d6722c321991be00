// File: internal/handler/ping.go
package handler

import (
	"errors"
	"net/http"

	"userbase/internal/api"
	"userbase/internal/cache"
	"userbase/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// PingResponse is the health-check body.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler reports whether the database and the cache are reachable.
// @Summary     Health Check
// @Description Returns pong after pinging the database and cache
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if cc != nil {
			// redis.Nil is a cold key, not an unhealthy cache.
			if err := cc.Get(c.Request().Context(), "ping").Err(); err != nil && !errors.Is(err, redis.Nil) {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
