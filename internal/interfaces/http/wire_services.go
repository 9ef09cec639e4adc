package http

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	allocationUsecases "dialpool/internal/application/allocation/usecases"
	"dialpool/internal/infrastructure/auth"
	"dialpool/internal/infrastructure/metrics"
	"dialpool/internal/infrastructure/registry"
	"dialpool/internal/interfaces/http/middleware"
	"dialpool/internal/shared/biztime"
	sharedConfig "dialpool/internal/shared/config"
	"dialpool/internal/shared/db"
)

func (c *Container) initServices() error {
	cfg := c.cfg

	if redisRequired(cfg) {
		client, err := initRedis(cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.txMgr = db.NewTransactionManager(c.db)
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewAgentPasswordPolicy(cfg.Auth.Password)

	c.metricsReg = prometheus.NewRegistry()
	c.metricsReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.metrics = metrics.New(c.metricsReg)

	cache, err := c.newRegistryCache()
	if err != nil {
		return err
	}
	c.registryClient = registry.NewClient(cfg.Registry, cache, biztime.SystemClock(), c.metrics, c.log.Named("registry"))

	// one guard per process serializes every pool mutation
	c.poolGuard = allocationUsecases.NewPoolGuard()

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	if c.redis != nil && cfg.Auth.LoginRateLimit.Limit > 0 {
		c.loginRateLimiter = middleware.NewRateLimiter(
			c.redis, "login", cfg.Auth.LoginRateLimit.Limit, cfg.Auth.LoginRateLimit.Window(), c.log)
	}

	return nil
}

func (c *Container) newRegistryCache() (registry.PayloadCache, error) {
	switch c.cfg.Registry.Cache.Driver {
	case sharedConfig.CacheDriverRedis:
		return registry.NewRedisCache(c.redis, c.cfg.Registry.Cache.KeyPrefix), nil
	case sharedConfig.CacheDriverMemory, "":
		return registry.NewMemoryCache(biztime.SystemClock()), nil
	default:
		return nil, fmt.Errorf("unknown registry cache driver %q", c.cfg.Registry.Cache.Driver)
	}
}
