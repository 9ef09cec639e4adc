package record

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultName fills name fields the registry or the import left empty.
const DefaultName = "Não informado"

type CodeDescription struct {
	Code        string `json:"codigo"`
	Description string `json:"descricao"`
}

type Owner struct {
	Name          string `json:"nome"`
	Type          string `json:"tipo,omitempty"`
	Qualification string `json:"qualificacao,omitempty"`
	EntryDate     string `json:"data_entrada,omitempty"`
}

// Enrichment is the normalized registry projection stored on a record.
type Enrichment struct {
	FormattedIdentifier    string
	LegalName              string
	TradeName              *string
	RegistrationStatus     string
	RegistrationStatusDate *time.Time
	ActivityStartDate      *time.Time
	PrimaryActivity        *CodeDescription
	SecondaryActivities    []CodeDescription
	LegalNature            *CodeDescription
	SizeClass              *CodeDescription
	Capital                *decimal.Decimal
	Address                string
	Phone                  *string
	Phone2                 *string
	Email                  *string
	Owners                 []Owner
	RawPayload             json.RawMessage
	EnrichedAt             time.Time
}

// EnrichmentOutcome is the per-identifier result of a batch lookup.
type EnrichmentOutcome struct {
	Identifier Identifier
	Enrichment *Enrichment
	Err        error
}

func (o EnrichmentOutcome) Success() bool {
	return o.Err == nil && o.Enrichment != nil
}
