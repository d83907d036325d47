package candidate

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/shared"
)

// View names a team dashboard's candidate scope
type View string

const (
	ViewHRTag    View = "hr_tag"
	ViewHROps    View = "hr_ops"
	ViewLD       View = "ld"
	ViewDelivery View = "delivery"
	ViewAdmin    View = "admin"
)

// Repository defines the interface for candidate persistence
type Repository interface {
	// FindByID finds a candidate by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Candidate, error)

	// FindByIDs finds all candidates among the given IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Candidate, error)

	// FindByPersonalEmail finds a candidate by personal email
	FindByPersonalEmail(ctx context.Context, email string) (*Candidate, error)

	// FindByMobileNumber finds a candidate by mobile number
	FindByMobileNumber(ctx context.Context, mobile string) (*Candidate, error)

	// FindHolderOfIdentity finds the candidate holding an assigned identity
	// value, excluding the given owner. Returns shared.ErrNotFound when the
	// value is free.
	FindHolderOfIdentity(ctx context.Context, kind IdentityKind, value string, excludeID uuid.UUID) (*Candidate, error)

	// FindAll finds candidates matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Candidate, error)

	// FindForView finds candidates visible on a team dashboard
	FindForView(ctx context.Context, view View, filter shared.Filter) ([]Candidate, error)

	// CountForView counts candidates visible on a team dashboard
	CountForView(ctx context.Context, view View, filter shared.Filter) (int64, error)

	// Save creates or updates a candidate
	Save(ctx context.Context, c *Candidate) error

	// Delete deletes a candidate
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts candidates matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
