package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	Timezone string `mapstructure:"timezone"`

	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == DriverSQLite {
		return d.SQLitePath
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
	MinLength  int `mapstructure:"min_length"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

// LoginRateLimitConfig caps login attempts per client IP. It only applies
// when redis is reachable.
type LoginRateLimitConfig struct {
	Limit         int `mapstructure:"limit"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

func (l *LoginRateLimitConfig) Window() time.Duration {
	return time.Duration(l.WindowSeconds) * time.Second
}

type AuthConfig struct {
	Password       PasswordConfig       `mapstructure:"password"`
	JWT            JWTConfig            `mapstructure:"jwt"`
	LoginRateLimit LoginRateLimitConfig `mapstructure:"login_rate_limit"`
}

// RedisConfig is used for the login rate limiter and, when selected, the
// registry cache. Redis is required only when Enabled is set or the registry
// cache driver is redis.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type RegistryCacheConfig struct {
	Driver    string `mapstructure:"driver"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// RegistryConfig configures the company registry lookup client.
type RegistryConfig struct {
	BaseURL         string              `mapstructure:"base_url"`
	UserAgent       string              `mapstructure:"user_agent"`
	TimeoutSeconds  int                 `mapstructure:"timeout_seconds"`
	CacheTTLMinutes int                 `mapstructure:"cache_ttl_minutes"`
	RequestDelayMs  int                 `mapstructure:"request_delay_ms"`
	Cache           RegistryCacheConfig `mapstructure:"cache"`
}

func (r *RegistryConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

func (r *RegistryConfig) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLMinutes) * time.Minute
}

func (r *RegistryConfig) RequestDelay() time.Duration {
	return time.Duration(r.RequestDelayMs) * time.Millisecond
}

type AllocationConfig struct {
	DefaultDailyQuota int `mapstructure:"default_daily_quota"`
}
