package models

type AgentModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	DisplayName  string `gorm:"size:100;not null"`
	Active       bool   `gorm:"not null;index"`
	DailyQuota   int    `gorm:"not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AgentModel) TableName() string {
	return "agents"
}
