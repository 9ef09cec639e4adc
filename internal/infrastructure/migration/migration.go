package migration

import (
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"dialpool/internal/shared/config"
	"dialpool/internal/shared/logger"
)

// DefaultScriptsPath is relative to the working directory the binary runs in.
const DefaultScriptsPath = "./internal/infrastructure/migration/scripts"

// Manager runs whichever strategy fits the database driver.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager uses goose scripts for MySQL and gorm AutoMigrate for SQLite.
func NewManager(driver string) *Manager {
	var strategy Strategy
	if driver == config.DriverSQLite {
		strategy = NewGormAutoMigrateStrategy()
	} else {
		scriptsPath, _ := filepath.Abs(DefaultScriptsPath)
		strategy = NewGooseStrategy(scriptsPath, driver)
	}
	return NewManagerWithStrategy(strategy)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewComponentLogger("migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
