package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	allocationUsecases "dialpool/internal/application/allocation/usecases"
	"dialpool/internal/infrastructure/auth"
	"dialpool/internal/infrastructure/config"
	"dialpool/internal/infrastructure/metrics"
	"dialpool/internal/infrastructure/registry"
	"dialpool/internal/interfaces/http/middleware"
	sharedConfig "dialpool/internal/shared/config"
	"dialpool/internal/shared/db"
	"dialpool/internal/shared/logger"
)

// Container holds the infrastructure, repositories, use cases and handlers,
// wired once at startup.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Services
	txMgr          *db.TransactionManager
	jwtSvc         *auth.JWTService
	hasher         *auth.AgentPasswordPolicy
	metricsReg     *prometheus.Registry
	metrics        *metrics.Metrics
	registryClient *registry.Client
	poolGuard      *allocationUsecases.PoolGuard

	repos *repositories
	ucs   *UseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware   *middleware.AuthMiddleware
	loginRateLimiter *middleware.RateLimiter
}

// NewContainer wires every component against an open database.
func NewContainer(cfg *config.Config, gdb *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.repos = newRepositories(gdb, log)
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	return c, nil
}

// UseCases exposes the wired use cases to the CLI commands that run them
// without HTTP.
func (c *Container) UseCases() *UseCases {
	return c.ucs
}

// JWTService is used by the token command.
func (c *Container) JWTService() *auth.JWTService {
	return c.jwtSvc
}

func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}

func redisRequired(cfg *config.Config) bool {
	return cfg.Redis.Enabled || cfg.Registry.Cache.Driver == sharedConfig.CacheDriverRedis
}

// initRedis creates and tests the redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	return client, nil
}
