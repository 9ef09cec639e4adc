// Package dto provides data transfer objects shared by several use case packages.
package dto

import (
	"encoding/json"
	"time"

	"dialpool/internal/domain/record"
)

const dateLayout = "2006-01-02"

type CodeDescriptionDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type OwnerDTO struct {
	Name          string `json:"name"`
	Type          string `json:"type,omitempty"`
	Qualification string `json:"qualification,omitempty"`
	EntryDate     string `json:"entry_date,omitempty"`
}

// EnrichmentDTO is the registry data attached to a record.
type EnrichmentDTO struct {
	FormattedIdentifier    string               `json:"formatted_identifier"`
	LegalName              string               `json:"legal_name"`
	TradeName              *string              `json:"trade_name"`
	RegistrationStatus     string               `json:"registration_status"`
	RegistrationStatusDate *string              `json:"registration_status_date"`
	ActivityStartDate      *string              `json:"activity_start_date"`
	PrimaryActivity        *CodeDescriptionDTO  `json:"primary_activity"`
	SecondaryActivities    []CodeDescriptionDTO `json:"secondary_activities"`
	LegalNature            *CodeDescriptionDTO  `json:"legal_nature"`
	SizeClass              *CodeDescriptionDTO  `json:"size_class"`
	Capital                *string              `json:"capital"`
	Address                string               `json:"address"`
	Phone                  *string              `json:"phone"`
	Phone2                 *string              `json:"phone2"`
	Email                  *string              `json:"email"`
	Owners                 []OwnerDTO           `json:"owners"`
	EnrichedAt             time.Time            `json:"enriched_at"`
}

type RecordDTO struct {
	ID                  uint           `json:"id"`
	Identifier          string         `json:"identifier"`
	FormattedIdentifier string         `json:"formatted_identifier"`
	Name                string         `json:"name"`
	EnrichmentStatus    string         `json:"enrichment_status"`
	AllocationStatus    string         `json:"allocation_status"`
	Enrichment          *EnrichmentDTO `json:"enrichment,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// RecordDetailDTO adds the verbatim registry response to a record.
type RecordDetailDTO struct {
	RecordDTO
	RawPayload json.RawMessage `json:"raw_payload,omitempty"`
}

func ToRecordDTO(r *record.Record) *RecordDTO {
	if r == nil {
		return nil
	}

	return &RecordDTO{
		ID:                  r.ID(),
		Identifier:          r.Identifier().String(),
		FormattedIdentifier: r.Identifier().Formatted(),
		Name:                r.Name(),
		EnrichmentStatus:    r.EnrichmentStatus().String(),
		AllocationStatus:    r.AllocationStatus().String(),
		Enrichment:          toEnrichmentDTO(r.Enrichment()),
		CreatedAt:           r.CreatedAt(),
		UpdatedAt:           r.UpdatedAt(),
	}
}

func ToRecordDetailDTO(r *record.Record) *RecordDetailDTO {
	if r == nil {
		return nil
	}

	out := &RecordDetailDTO{RecordDTO: *ToRecordDTO(r)}
	if e := r.Enrichment(); e != nil && len(e.RawPayload) > 0 {
		out.RawPayload = e.RawPayload
	}
	return out
}

func toEnrichmentDTO(e *record.Enrichment) *EnrichmentDTO {
	if e == nil {
		return nil
	}

	out := &EnrichmentDTO{
		FormattedIdentifier:    e.FormattedIdentifier,
		LegalName:              e.LegalName,
		TradeName:              e.TradeName,
		RegistrationStatus:     e.RegistrationStatus,
		RegistrationStatusDate: formatDate(e.RegistrationStatusDate),
		ActivityStartDate:      formatDate(e.ActivityStartDate),
		PrimaryActivity:        toCodeDescriptionDTO(e.PrimaryActivity),
		SecondaryActivities:    make([]CodeDescriptionDTO, 0, len(e.SecondaryActivities)),
		LegalNature:            toCodeDescriptionDTO(e.LegalNature),
		SizeClass:              toCodeDescriptionDTO(e.SizeClass),
		Address:                e.Address,
		Phone:                  e.Phone,
		Phone2:                 e.Phone2,
		Email:                  e.Email,
		Owners:                 make([]OwnerDTO, 0, len(e.Owners)),
		EnrichedAt:             e.EnrichedAt,
	}

	for _, a := range e.SecondaryActivities {
		out.SecondaryActivities = append(out.SecondaryActivities, CodeDescriptionDTO{Code: a.Code, Description: a.Description})
	}
	for _, o := range e.Owners {
		out.Owners = append(out.Owners, OwnerDTO(o))
	}
	if e.Capital != nil {
		s := e.Capital.StringFixed(2)
		out.Capital = &s
	}
	return out
}

func toCodeDescriptionDTO(cd *record.CodeDescription) *CodeDescriptionDTO {
	if cd == nil {
		return nil
	}
	return &CodeDescriptionDTO{Code: cd.Code, Description: cd.Description}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
