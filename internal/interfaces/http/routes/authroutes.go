package routes

import (
	"github.com/gin-gonic/gin"

	"dialpool/internal/interfaces/http/handlers"
	"dialpool/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	// RateLimiter is optional; nil leaves login unthrottled.
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	chain := []gin.HandlerFunc{}
	if config.RateLimiter != nil {
		chain = append(chain, config.RateLimiter.Limit())
	}
	chain = append(chain, config.AuthHandler.AgentLogin)

	auth := engine.Group("/auth")
	{
		auth.POST("/agent/login", chain...)
	}
}
