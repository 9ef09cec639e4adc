package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "dialpool/internal/interfaces/http/handlers/admin"
	"dialpool/internal/interfaces/http/middleware"
	"dialpool/internal/shared/authorization"
)

type AdminRouteConfig struct {
	AllocationHandler *adminHandlers.AllocationHandler
	AgentHandler      *adminHandlers.AgentHandler
	RecordHandler     *adminHandlers.RecordHandler
	StatsHandler      *adminHandlers.StatsHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireRole(authorization.RoleAdmin))
	{
		admin.POST("/distributions", config.AllocationHandler.Distribute)
		admin.GET("/stats", config.StatsHandler.GetStats)

		agents := admin.Group("/agents")
		{
			agents.GET("", config.AgentHandler.ListAgents)
			agents.POST("", config.AgentHandler.CreateAgent)
			agents.POST("/:id/reclaim", config.AllocationHandler.Reclaim)
			agents.GET("/:id/stats", config.AgentHandler.GetAgentStats)
			agents.PATCH("/:id", config.AgentHandler.UpdateAgent)
			agents.DELETE("/:id", config.AgentHandler.DeleteAgent)
		}

		// Register specific paths before parameterized paths
		records := admin.Group("/records")
		{
			records.GET("", config.RecordHandler.ListRecords)
			records.DELETE("", config.RecordHandler.PurgeRecords)
			records.POST("/import", config.RecordHandler.ImportRecords)
			records.POST("/backfill", config.RecordHandler.Backfill)
			records.GET("/:id/history", config.RecordHandler.GetHistory)
			records.GET("/:id", config.RecordHandler.GetRecord)
		}

		registry := admin.Group("/registry")
		{
			registry.GET("/cache", config.StatsHandler.GetRegistryCache)
			registry.DELETE("/cache", config.StatsHandler.ClearRegistryCache)
		}
	}
}
