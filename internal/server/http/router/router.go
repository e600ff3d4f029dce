package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/userhub/userhub/internal/server/http/handlers"
	"github.com/userhub/userhub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AccountFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")
	users := api.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.GetByID)
	users.GET("/username/:username", userHandler.GetByUsername)

	return engine
}
