package record

import "fmt"

type EnrichmentStatus string

const (
	EnrichmentUnset   EnrichmentStatus = "unset"
	EnrichmentSuccess EnrichmentStatus = "success"
	EnrichmentError   EnrichmentStatus = "error"
)

var validEnrichmentStatuses = map[EnrichmentStatus]bool{
	EnrichmentUnset:   true,
	EnrichmentSuccess: true,
	EnrichmentError:   true,
}

func (s EnrichmentStatus) String() string {
	return string(s)
}

func (s EnrichmentStatus) IsValid() bool {
	return validEnrichmentStatuses[s]
}

// NeedsEnrichment reports whether a backfill run over "all" should pick the record up.
func (s EnrichmentStatus) NeedsEnrichment() bool {
	return s == EnrichmentUnset || s == EnrichmentError
}

type AllocationStatus string

const (
	AllocationAvailable AllocationStatus = "available"
	AllocationAssigned  AllocationStatus = "assigned"
)

func (s AllocationStatus) String() string {
	return string(s)
}

func (s AllocationStatus) IsValid() bool {
	return s == AllocationAvailable || s == AllocationAssigned
}

func ParseAllocationStatus(s string) (AllocationStatus, error) {
	status := AllocationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid allocation status: %s", s)
	}
	return status, nil
}

// AllEnrichmentStatuses lists every enrichment status in display order.
func AllEnrichmentStatuses() []EnrichmentStatus {
	return []EnrichmentStatus{EnrichmentUnset, EnrichmentSuccess, EnrichmentError}
}

// AllAllocationStatuses lists every allocation status in display order.
func AllAllocationStatuses() []AllocationStatus {
	return []AllocationStatus{AllocationAvailable, AllocationAssigned}
}
