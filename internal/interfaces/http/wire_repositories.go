package http

import (
	"gorm.io/gorm"

	"dialpool/internal/domain/agent"
	"dialpool/internal/domain/assignment"
	"dialpool/internal/domain/record"
	"dialpool/internal/infrastructure/repository"
	"dialpool/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	recordRepo     record.Repository
	assignmentRepo assignment.Repository
	historyRepo    assignment.HistoryRepository
	agentRepo      agent.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		recordRepo:     repository.NewRecordRepository(db, log),
		assignmentRepo: repository.NewAssignmentRepository(db, log),
		historyRepo:    repository.NewHistoryRepository(db),
		agentRepo:      repository.NewAgentRepository(db, log),
	}
}
