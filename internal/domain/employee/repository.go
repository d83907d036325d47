package employee

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/shared"
)

// Repository defines the interface for employee persistence
type Repository interface {
	// FindByID finds an employee by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)

	// FindByEmpID finds a non-deleted employee by employee ID
	FindByEmpID(ctx context.Context, empID string) (*Employee, error)

	// FindByEmail finds a non-deleted employee by contact email
	FindByEmail(ctx context.Context, email string) (*Employee, error)

	// FindActiveDeliveryManager finds an active Delivery manager with
	// complete mail credentials
	FindActiveDeliveryManager(ctx context.Context) (*Employee, error)

	// ExistsWithIdentity checks whether any non-deleted employee holds the
	// given identity value (empID or email) and returns the holder's name
	ExistsWithIdentity(ctx context.Context, value string) (bool, string, error)

	// FindAll finds employees matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Employee, error)

	// Save creates or updates an employee
	Save(ctx context.Context, e *Employee) error

	// Count counts employees matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
