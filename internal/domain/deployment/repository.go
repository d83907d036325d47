package deployment

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/shared"
)

// Tab names a deployment ledger listing
type Tab string

const (
	TabActive           Tab = "active"
	TabInternalTransfer Tab = "internal_transfer"
	TabInactive         Tab = "inactive"
	TabAll              Tab = "all"
)

// Repository defines the interface for deployment record persistence
type Repository interface {
	// FindByID finds a record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Record, error)

	// FindByCandidateID finds the ledger row for a candidate. Returns
	// shared.ErrNotFound when no notice has been sent yet.
	FindByCandidateID(ctx context.Context, candidateID uuid.UUID) (*Record, error)

	// FindForTab finds records in a ledger listing
	FindForTab(ctx context.Context, tab Tab, filter shared.Filter) ([]Record, error)

	// CountForTab counts records in a ledger listing
	CountForTab(ctx context.Context, tab Tab, filter shared.Filter) (int64, error)

	// Save creates or updates a record
	Save(ctx context.Context, r *Record) error

	// Count counts all records
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
