package record

import (
	"context"
	"time"

	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/shared/query"
)

type Filter struct {
	query.PageFilter
	// Search matches the folded name or the identifier digits.
	Search           string
	AllocationStatus *AllocationStatus
	AssignmentState  *vo.State
}

// CurrentAssignment summarizes who holds a record right now.
type CurrentAssignment struct {
	AssignmentID uint
	AgentID      uint
	AgentName    string
	State        vo.State
	Annotation   *string
	AssignedAt   time.Time
}

// ListItem is a record as shown in the admin listing.
type ListItem struct {
	Record     *Record
	Assignment *CurrentAssignment
}

type Repository interface {
	// InsertIgnoringDuplicates inserts records whose identifier is not stored
	// yet and returns how many rows were written.
	InsertIgnoringDuplicates(ctx context.Context, records []*Record) (int64, error)
	// GetByID returns nil, nil when the record does not exist.
	GetByID(ctx context.Context, id uint) (*Record, error)
	FindByIdentifiers(ctx context.Context, identifiers []Identifier) ([]*Record, error)
	ExistingIdentifiers(ctx context.Context, identifiers []Identifier) (map[Identifier]bool, error)
	ListIdentifiersNeedingEnrichment(ctx context.Context) ([]Identifier, error)
	// UpdateEnrichment persists name, enrichment fields and enrichment
	// status. Allocation status is never written here.
	UpdateEnrichment(ctx context.Context, r *Record) error
	List(ctx context.Context, filter Filter) ([]*ListItem, int64, error)

	CountAvailable(ctx context.Context) (int64, error)
	// ListAvailable returns up to limit available records, oldest first,
	// skipping excludeIDs.
	ListAvailable(ctx context.Context, limit int, excludeIDs []uint) ([]*Record, error)
	// TransitionAllocation flips ids from one status to another and returns
	// how many rows actually matched from.
	TransitionAllocation(ctx context.Context, ids []uint, from, to AllocationStatus) (int64, error)

	Count(ctx context.Context) (int64, error)
	CountByAllocationStatus(ctx context.Context) (map[AllocationStatus]int64, error)
	CountByEnrichmentStatus(ctx context.Context) (map[EnrichmentStatus]int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
