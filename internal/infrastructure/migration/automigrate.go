package migration

import (
	"dialpool/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RecordModel{},
		&models.AssignmentModel{},
		&models.OutcomeHistoryModel{},
		&models.AgentModel{},
	}
}
