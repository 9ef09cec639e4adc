package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"dialpool/internal/domain/record"
	"dialpool/internal/infrastructure/persistence/models"
)

// RecordMapper converts between records and their table rows.
type RecordMapper interface {
	ToModel(r *record.Record) (*models.RecordModel, error)
	ToDomain(model *models.RecordModel) (*record.Record, error)
}

type RecordMapperImpl struct{}

func NewRecordMapper() RecordMapper {
	return &RecordMapperImpl{}
}

func (m *RecordMapperImpl) ToModel(r *record.Record) (*models.RecordModel, error) {
	model := &models.RecordModel{
		ID:               r.ID(),
		Identifier:       r.Identifier().String(),
		Name:             r.Name(),
		SearchKey:        r.SearchKey(),
		EnrichmentStatus: r.EnrichmentStatus().String(),
		AllocationStatus: r.AllocationStatus().String(),
		CreatedAt:        r.CreatedAt().UnixMilli(),
		UpdatedAt:        r.UpdatedAt().UnixMilli(),
	}

	e := r.Enrichment()
	if e == nil {
		return model, nil
	}

	var err error
	if model.PrimaryActivity, err = marshalCodeDescription(e.PrimaryActivity); err != nil {
		return nil, err
	}
	if model.LegalNature, err = marshalCodeDescription(e.LegalNature); err != nil {
		return nil, err
	}
	if model.SizeClass, err = marshalCodeDescription(e.SizeClass); err != nil {
		return nil, err
	}
	if len(e.SecondaryActivities) > 0 {
		if model.SecondaryActivities, err = json.Marshal(e.SecondaryActivities); err != nil {
			return nil, fmt.Errorf("failed to marshal secondary activities: %w", err)
		}
	}
	if len(e.Owners) > 0 {
		if model.Owners, err = json.Marshal(e.Owners); err != nil {
			return nil, fmt.Errorf("failed to marshal owners: %w", err)
		}
	}
	if len(e.RawPayload) > 0 {
		model.RawPayload = datatypes.JSON(e.RawPayload)
	}

	model.FormattedIdentifier = nonEmpty(e.FormattedIdentifier)
	model.LegalName = nonEmpty(e.LegalName)
	model.TradeName = e.TradeName
	model.RegistrationStatus = nonEmpty(e.RegistrationStatus)
	model.RegistrationStatusDate = dateToString(e.RegistrationStatusDate)
	model.ActivityStartDate = dateToString(e.ActivityStartDate)
	model.Capital = e.Capital
	model.Address = nonEmpty(e.Address)
	model.Phone = e.Phone
	model.Phone2 = e.Phone2
	model.Email = e.Email
	model.EnrichedAt = timeToMillisPtr(e.EnrichedAt)

	return model, nil
}

func (m *RecordMapperImpl) ToDomain(model *models.RecordModel) (*record.Record, error) {
	enrichment, err := m.enrichmentToDomain(model)
	if err != nil {
		return nil, err
	}

	return record.ReconstructRecord(
		model.ID,
		record.Identifier(model.Identifier),
		model.Name,
		model.SearchKey,
		enrichment,
		record.EnrichmentStatus(model.EnrichmentStatus),
		record.AllocationStatus(model.AllocationStatus),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

// enrichmentToDomain returns nil for rows that were never enriched.
func (m *RecordMapperImpl) enrichmentToDomain(model *models.RecordModel) (*record.Enrichment, error) {
	if model.EnrichedAt == nil {
		return nil, nil
	}

	e := &record.Enrichment{
		FormattedIdentifier:    deref(model.FormattedIdentifier),
		LegalName:              deref(model.LegalName),
		TradeName:              model.TradeName,
		RegistrationStatus:     deref(model.RegistrationStatus),
		RegistrationStatusDate: stringToDate(model.RegistrationStatusDate),
		ActivityStartDate:      stringToDate(model.ActivityStartDate),
		Capital:                model.Capital,
		Address:                deref(model.Address),
		Phone:                  model.Phone,
		Phone2:                 model.Phone2,
		Email:                  model.Email,
		EnrichedAt:             millisPtrToTime(model.EnrichedAt),
	}

	var err error
	if e.PrimaryActivity, err = unmarshalCodeDescription(model.PrimaryActivity); err != nil {
		return nil, fmt.Errorf("record %d primary activity: %w", model.ID, err)
	}
	if e.LegalNature, err = unmarshalCodeDescription(model.LegalNature); err != nil {
		return nil, fmt.Errorf("record %d legal nature: %w", model.ID, err)
	}
	if e.SizeClass, err = unmarshalCodeDescription(model.SizeClass); err != nil {
		return nil, fmt.Errorf("record %d size class: %w", model.ID, err)
	}
	if len(model.SecondaryActivities) > 0 {
		if err := json.Unmarshal(model.SecondaryActivities, &e.SecondaryActivities); err != nil {
			return nil, fmt.Errorf("failed to unmarshal secondary activities (id=%d): %w", model.ID, err)
		}
	}
	if len(model.Owners) > 0 {
		if err := json.Unmarshal(model.Owners, &e.Owners); err != nil {
			return nil, fmt.Errorf("failed to unmarshal owners (id=%d): %w", model.ID, err)
		}
	}
	if len(model.RawPayload) > 0 {
		e.RawPayload = json.RawMessage(model.RawPayload)
	}

	return e, nil
}

func marshalCodeDescription(cd *record.CodeDescription) (datatypes.JSON, error) {
	if cd == nil {
		return nil, nil
	}
	data, err := json.Marshal(cd)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal code description: %w", err)
	}
	return data, nil
}

func unmarshalCodeDescription(data datatypes.JSON) (*record.CodeDescription, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var cd record.CodeDescription
	if err := json.Unmarshal(data, &cd); err != nil {
		return nil, err
	}
	return &cd, nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
