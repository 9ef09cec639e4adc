package models

// AssignmentModel holds the live record to agent bindings. The unique index
// on record_id keeps a record with at most one holder.
type AssignmentModel struct {
	ID         uint    `gorm:"primaryKey"`
	AgentID    uint    `gorm:"not null;index:idx_assignments_agent_state,priority:1"`
	RecordID   uint    `gorm:"not null;uniqueIndex"`
	BatchID    string  `gorm:"size:36;not null;index"`
	State      string  `gorm:"size:20;not null;default:pending;index:idx_assignments_agent_state,priority:2"`
	Annotation *string `gorm:"type:text"`
	AssignedAt int64   `gorm:"not null;index"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

// OutcomeHistoryModel is append-only.
type OutcomeHistoryModel struct {
	ID            uint    `gorm:"primaryKey"`
	AgentID       uint    `gorm:"not null;index"`
	RecordID      uint    `gorm:"not null;index"`
	AssignmentID  uint    `gorm:"not null;index"`
	PreviousState string  `gorm:"size:20;not null"`
	NewState      string  `gorm:"size:20;not null"`
	Annotation    *string `gorm:"type:text"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null;index"`
}

func (OutcomeHistoryModel) TableName() string {
	return "outcome_history"
}
