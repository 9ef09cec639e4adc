package http

import (
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"

	"dialpool/internal/infrastructure/config"
	"dialpool/internal/shared/logger"
)

// Router owns the gin engine and the container behind it.
type Router struct {
	*Container
}

func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) (*Router, error) {
	gin.SetMode(ginMode(cfg.Server.Mode))

	c, err := NewContainer(cfg, db, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, "production":
		return gin.ReleaseMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
