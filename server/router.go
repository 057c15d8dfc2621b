package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bunny-video/domain/model"
	"bunny-video/domain/repository"
	httpHandler "bunny-video/interfaces/http"
	"bunny-video/interfaces/middleware"
)

type RouterConfig struct {
	RoutePrefix  string
	SecretKey    string
	AllowOrigins []string
}

func InitiateRouter(
	cfg RouterConfig,
	permissions repository.IPermissionChecker,
	videoHandler httpHandler.IVideoHandler,
	renderHandler httpHandler.IRenderHandler,
	settingsHandler httpHandler.ISettingsHandler,
	healthHandler httpHandler.IHealthHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	if len(cfg.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler.Healthz)

	api := router.Group(cfg.RoutePrefix)
	api.Use(middleware.Auth(cfg.SecretKey))

	requireBrowse := middleware.RequireCapability(permissions, model.CapabilityBrowseMedia)
	requireManage := middleware.RequireCapability(permissions, model.CapabilityManageSettings)

	api.GET("/videos", requireBrowse, videoHandler.ListVideos)
	api.GET("/test", requireManage, videoHandler.TestConnection)

	settings := api.Group("/settings", requireManage)
	{
		settings.GET("", settingsHandler.Get)
		settings.PUT("", settingsHandler.Update)
	}

	render := api.Group("/render")
	{
		render.POST("", renderHandler.RenderBlock)
		render.POST("/content", renderHandler.RenderContent)
	}

	return router
}
