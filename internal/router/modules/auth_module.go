package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devsenior/property-service/internal/container"
	handlers "github.com/devsenior/property-service/internal/interface/http"
	"github.com/devsenior/property-service/internal/interface/middleware"
)

// AuthModule wires login and registration under /api/auth.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
}
