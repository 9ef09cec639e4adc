package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RecordModel is the records table. Enrichment columns stay NULL until the
// first successful registry lookup.
type RecordModel struct {
	ID         uint   `gorm:"primaryKey"`
	Identifier string `gorm:"uniqueIndex;size:14;not null"`
	Name       string `gorm:"size:255;not null"`
	SearchKey  string `gorm:"size:1024;not null;default:''"`

	FormattedIdentifier    *string          `gorm:"size:18"`
	LegalName              *string          `gorm:"size:255"`
	TradeName              *string          `gorm:"size:255"`
	RegistrationStatus     *string          `gorm:"size:50"`
	RegistrationStatusDate *string          `gorm:"size:10"`
	ActivityStartDate      *string          `gorm:"size:10"`
	PrimaryActivity        datatypes.JSON   `gorm:"type:json"`
	SecondaryActivities    datatypes.JSON   `gorm:"type:json"`
	LegalNature            datatypes.JSON   `gorm:"type:json"`
	SizeClass              datatypes.JSON   `gorm:"type:json"`
	Capital                *decimal.Decimal `gorm:"type:decimal(20,2)"`
	Address                *string          `gorm:"type:text"`
	Phone                  *string          `gorm:"size:32"`
	Phone2                 *string          `gorm:"size:32"`
	Email                  *string          `gorm:"size:255"`
	Owners                 datatypes.JSON   `gorm:"type:json"`
	RawPayload             datatypes.JSON   `gorm:"type:json"`
	EnrichedAt             *int64

	EnrichmentStatus string `gorm:"size:16;not null;default:unset;index"`
	AllocationStatus string `gorm:"size:16;not null;default:available;index:idx_records_allocation_created,priority:1"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null;index:idx_records_allocation_created,priority:2"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (RecordModel) TableName() string {
	return "records"
}
