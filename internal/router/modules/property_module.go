package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devsenior/property-service/internal/container"
	handlers "github.com/devsenior/property-service/internal/interface/http"
	"github.com/devsenior/property-service/internal/interface/middleware"
)

// PropertyModule wires the listing endpoints under /api/properties.
type PropertyModule struct {
	Handler *handlers.PropertyHandler
}

func NewPropertyModule(h *handlers.PropertyHandler) *PropertyModule {
	return &PropertyModule{Handler: h}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP())
	uploadLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	props := rg.Group("/properties")
	{
		props.GET("", m.Handler.List)
		props.GET("/search", m.Handler.Search)
		props.GET("/city/:city", m.Handler.ListByCity)
		props.GET("/exists/:id", m.Handler.Exists)
		props.GET("/:id", m.Handler.GetByID)

		props.POST("", writeLimiter, m.Handler.Create)
		props.PUT("/:id", writeLimiter, m.Handler.Update)
		props.DELETE("/:id", writeLimiter, m.Handler.Delete)
		props.POST("/:id/image", uploadLimiter, m.Handler.UploadImage)
	}
}
