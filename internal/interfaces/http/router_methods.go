package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dialpool/internal/infrastructure/config"
	_ "dialpool/internal/interfaces/http/apidocs"
	"dialpool/internal/interfaces/http/middleware"
	"dialpool/internal/interfaces/http/routes"
	"dialpool/internal/shared/version"
)

const healthCheckTimeout = 2 * time.Second

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthCheck)
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.metricsReg, promhttp.HandlerOpts{})))
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.hdlrs.authHandler,
		RateLimiter: r.loginRateLimiter,
	})
	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AllocationHandler: r.hdlrs.allocationHandler,
		AgentHandler:      r.hdlrs.agentHandler,
		RecordHandler:     r.hdlrs.recordHandler,
		StatsHandler:      r.hdlrs.statsHandler,
		AuthMiddleware:    r.authMiddleware,
	})
	routes.SetupAgentRoutes(r.engine, &routes.AgentRouteConfig{
		AssignmentHandler: r.hdlrs.assignmentHandler,
		AuthMiddleware:    r.authMiddleware,
	})
}

// healthCheck reports the process as healthy when the database answers.
func (r *Router) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	dbStatus := "ok"

	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		r.log.Warnw("health check failed", "error", err)
		status = http.StatusServiceUnavailable
		dbStatus = "unavailable"
	}

	c.JSON(status, gin.H{
		"status":   http.StatusText(status),
		"database": dbStatus,
		"version":  version.Version,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
