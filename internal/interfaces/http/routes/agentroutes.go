package routes

import (
	"github.com/gin-gonic/gin"

	agentHandlers "dialpool/internal/interfaces/http/handlers/agent"
	"dialpool/internal/interfaces/http/middleware"
	"dialpool/internal/shared/authorization"
)

type AgentRouteConfig struct {
	AssignmentHandler *agentHandlers.AssignmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupAgentRoutes(engine *gin.Engine, config *AgentRouteConfig) {
	agent := engine.Group("/agent")
	agent.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireRole(authorization.RoleAgent))
	{
		agent.GET("/assignments", config.AssignmentHandler.ListAssignments)
		agent.PATCH("/assignments/:id/status", config.AssignmentHandler.UpdateStatus)
		agent.GET("/stats", config.AssignmentHandler.GetStats)
		agent.POST("/renew", config.AssignmentHandler.Renew)
	}
}
