package mappers

import (
	"dialpool/internal/domain/assignment"
	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/infrastructure/persistence/models"
)

type AssignmentMapper interface {
	ToModel(a *assignment.Assignment) *models.AssignmentModel
	ToDomain(model *models.AssignmentModel) (*assignment.Assignment, error)
	HistoryToModel(entry *assignment.OutcomeHistoryEntry) *models.OutcomeHistoryModel
	HistoryToDomain(model *models.OutcomeHistoryModel) *assignment.OutcomeHistoryEntry
}

type AssignmentMapperImpl struct{}

func NewAssignmentMapper() AssignmentMapper {
	return &AssignmentMapperImpl{}
}

func (m *AssignmentMapperImpl) ToModel(a *assignment.Assignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:         a.ID(),
		AgentID:    a.AgentID(),
		RecordID:   a.RecordID(),
		BatchID:    a.BatchID(),
		State:      a.State().String(),
		Annotation: a.Annotation(),
		AssignedAt: a.AssignedAt().UnixMilli(),
		UpdatedAt:  a.UpdatedAt().UnixMilli(),
	}
}

func (m *AssignmentMapperImpl) ToDomain(model *models.AssignmentModel) (*assignment.Assignment, error) {
	return assignment.ReconstructAssignment(
		model.ID,
		model.AgentID,
		model.RecordID,
		model.BatchID,
		vo.State(model.State),
		model.Annotation,
		millisToTime(model.AssignedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *AssignmentMapperImpl) HistoryToModel(entry *assignment.OutcomeHistoryEntry) *models.OutcomeHistoryModel {
	return &models.OutcomeHistoryModel{
		ID:            entry.ID,
		AgentID:       entry.AgentID,
		RecordID:      entry.RecordID,
		AssignmentID:  entry.AssignmentID,
		PreviousState: entry.PreviousState.String(),
		NewState:      entry.NewState.String(),
		Annotation:    entry.Annotation,
		CreatedAt:     entry.CreatedAt.UnixMilli(),
	}
}

func (m *AssignmentMapperImpl) HistoryToDomain(model *models.OutcomeHistoryModel) *assignment.OutcomeHistoryEntry {
	return &assignment.OutcomeHistoryEntry{
		ID:            model.ID,
		AgentID:       model.AgentID,
		RecordID:      model.RecordID,
		AssignmentID:  model.AssignmentID,
		PreviousState: vo.State(model.PreviousState),
		NewState:      vo.State(model.NewState),
		Annotation:    model.Annotation,
		CreatedAt:     millisToTime(model.CreatedAt),
	}
}
