package record

import (
	"fmt"
	"strings"
	"time"
)

// Record is a company registry entry that can be handed to an agent.
type Record struct {
	id               uint
	identifier       Identifier
	name             string
	searchKey        string
	enrichment       *Enrichment
	enrichmentStatus EnrichmentStatus
	allocationStatus AllocationStatus
	createdAt        time.Time
	updatedAt        time.Time
}

// NewRecord creates an available, not yet enriched record. An empty name
// becomes DefaultName.
func NewRecord(identifier Identifier, name string, now time.Time) (*Record, error) {
	if len(identifier) != identifierLength {
		return nil, fmt.Errorf("identifier must have %d digits", identifierLength)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	r := &Record{
		identifier:       identifier,
		name:             name,
		enrichmentStatus: EnrichmentUnset,
		allocationStatus: AllocationAvailable,
		createdAt:        now,
		updatedAt:        now,
	}
	r.searchKey = buildSearchKey(identifier, name, nil)
	return r, nil
}

func ReconstructRecord(
	id uint,
	identifier Identifier,
	name string,
	searchKey string,
	enrichment *Enrichment,
	enrichmentStatus EnrichmentStatus,
	allocationStatus AllocationStatus,
	createdAt, updatedAt time.Time,
) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("record ID cannot be zero")
	}
	if !enrichmentStatus.IsValid() {
		return nil, fmt.Errorf("invalid enrichment status: %s", enrichmentStatus)
	}
	if !allocationStatus.IsValid() {
		return nil, fmt.Errorf("invalid allocation status: %s", allocationStatus)
	}

	return &Record{
		id:               id,
		identifier:       identifier,
		name:             name,
		searchKey:        searchKey,
		enrichment:       enrichment,
		enrichmentStatus: enrichmentStatus,
		allocationStatus: allocationStatus,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (r *Record) ID() uint                           { return r.id }
func (r *Record) Identifier() Identifier             { return r.identifier }
func (r *Record) Name() string                       { return r.name }
func (r *Record) SearchKey() string                  { return r.searchKey }
func (r *Record) Enrichment() *Enrichment            { return r.enrichment }
func (r *Record) EnrichmentStatus() EnrichmentStatus { return r.enrichmentStatus }
func (r *Record) AllocationStatus() AllocationStatus { return r.allocationStatus }
func (r *Record) CreatedAt() time.Time               { return r.createdAt }
func (r *Record) UpdatedAt() time.Time               { return r.updatedAt }

func (r *Record) SetID(id uint) {
	r.id = id
}

// ApplyEnrichment stores a successful projection. The registry legal name
// replaces the imported name.
func (r *Record) ApplyEnrichment(e *Enrichment, now time.Time) error {
	if e == nil {
		return fmt.Errorf("enrichment is required")
	}
	r.enrichment = e
	r.enrichmentStatus = EnrichmentSuccess
	if e.LegalName != "" {
		r.name = e.LegalName
	}
	r.searchKey = buildSearchKey(r.identifier, r.name, e)
	r.updatedAt = now
	return nil
}

// MarkEnrichmentFailed keeps whatever enrichment was stored before.
func (r *Record) MarkEnrichmentFailed(now time.Time) {
	r.enrichmentStatus = EnrichmentError
	r.updatedAt = now
}
