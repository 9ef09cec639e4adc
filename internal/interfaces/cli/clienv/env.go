// Package clienv bootstraps configuration, logging and the database for the
// CLI commands.
package clienv

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"dialpool/internal/infrastructure/config"
	"dialpool/internal/infrastructure/database"
	"dialpool/internal/shared/biztime"
	"dialpool/internal/shared/logger"
)

// Flags are the persistent flags every command accepts.
type Flags struct {
	Env        string
	ConfigPath string
}

func (f *Flags) Register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
}

// Env is the loaded runtime shared by a command invocation.
type Env struct {
	Config *config.Config
	Log    logger.Interface
}

// Load reads the configuration and initializes the process logger and the
// business timezone.
func Load(f Flags) (*Env, error) {
	cfg, err := config.Load(MapEnvToMode(f.Env), f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return &Env{Config: cfg, Log: logger.NewLogger()}, nil
}

// OpenDatabase initializes the shared connection. Callers defer
// database.Close.
func (e *Env) OpenDatabase() (*gorm.DB, error) {
	if err := database.Init(&e.Config.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return database.Get(), nil
}

// MapEnvToMode maps an environment name onto a gin mode.
func MapEnvToMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
