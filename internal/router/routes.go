package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/contact-harvester/internal/auth"
	"github.com/octobees/contact-harvester/internal/config"
	"github.com/octobees/contact-harvester/internal/handler"
	middlewarepkg "github.com/octobees/contact-harvester/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth       *handler.AuthHandler
	Users      *handler.UserAdminHandler
	Records    *handler.RecordsHandler
	Harvest    *handler.HarvestHandler
	SeedUpload *handler.SeedUploadHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)
	e.GET("/records", handlers.Records.List)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	admin := secured.Group("/admin", middlewarepkg.RequireRole("admin"))
	admin.GET("/records", handlers.Records.ListAdmin)
	admin.POST("/seed-csv", handlers.SeedUpload.UploadCSV)
	admin.GET("/users", handlers.Users.List)
	admin.POST("/users", handlers.Users.Create)
	admin.PATCH("/users/:id", handlers.Users.Update)
	admin.DELETE("/users/:id", handlers.Users.Delete)

	secured.POST("/harvest", handlers.Harvest.Run, middlewarepkg.HarvestRateLimiter(cfg.RateLimitHarvest))
}
