// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"userbase/internal/cache"
	"userbase/internal/database"
	"userbase/internal/handler"
	"userbase/internal/handler/users"
	"userbase/internal/service"
	"userbase/internal/worker"
)

// Setup registers all routes.
func Setup(e *echo.Echo, db database.DB, cc cache.Cache, wp worker.Pool, svc *service.UserService) {
	g := e.Group("/api")

	g.GET("/ping", handler.PingHandler(db, cc))

	u := g.Group("/users")
	u.POST("", users.CreateUserHandler(svc))
	u.GET("", users.ListUsersHandler(svc))
	u.GET("/:user_id", users.GetUserHandler(svc, cc))
	u.PUT("/:user_id", users.UpdateUserHandler(svc, cc, wp))
	u.DELETE("/:user_id", users.DeleteUserHandler(svc, cc, wp))
}
