package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/deployment"
	"github.com/talentflow/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDeploymentRepository implements deployment.Repository using GORM
type GormDeploymentRepository struct {
	db *gorm.DB
}

// NewGormDeploymentRepository creates a new GORM deployment repository
func NewGormDeploymentRepository(db *gorm.DB) *GormDeploymentRepository {
	return &GormDeploymentRepository{db: db}
}

// FindByID finds a record by its ID
func (r *GormDeploymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*deployment.Record, error) {
	var rec deployment.Record
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// FindByCandidateID finds the ledger row for a candidate. Returns
// shared.ErrNotFound when no notice has been sent yet.
func (r *GormDeploymentRepository) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) (*deployment.Record, error) {
	var rec deployment.Record
	err := r.db.WithContext(ctx).First(&rec, "candidate_id = ?", candidateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// FindForTab finds records in a ledger listing
func (r *GormDeploymentRepository) FindForTab(ctx context.Context, tab deployment.Tab, filter shared.Filter) ([]deployment.Record, error) {
	var records []deployment.Record
	query := r.db.WithContext(ctx).Model(&deployment.Record{})
	query = applyTabScope(query, tab)
	query = r.applyFilter(query, filter)

	err := query.Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountForTab counts records in a ledger listing
func (r *GormDeploymentRepository) CountForTab(ctx context.Context, tab deployment.Tab, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&deployment.Record{})
	query = applyTabScope(query, tab)
	query = r.applyFilterWithoutPagination(query, filter)

	err := query.Count(&count).Error
	return count, err
}

// applyTabScope restricts a query to one ledger listing. The predicates
// mirror Record.IsInactive, IsInternalTransfer, and IsActive so the three
// tabs partition the ledger.
func applyTabScope(query *gorm.DB, tab deployment.Tab) *gorm.DB {
	const inactive = "(exit_date IS NOT NULL OR LOWER(status) = 'inactive')"

	switch tab {
	case deployment.TabInactive:
		return query.Where(inactive)
	case deployment.TabInternalTransfer:
		return query.Where("internal_transfer_date IS NOT NULL AND NOT " + inactive)
	case deployment.TabActive:
		return query.Where("internal_transfer_date IS NULL AND NOT " + inactive)
	default:
		return query
	}
}

// Save creates or updates a record
func (r *GormDeploymentRepository) Save(ctx context.Context, rec *deployment.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Count counts all records
func (r *GormDeploymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&deployment.Record{})
	query = r.applyFilterWithoutPagination(query, filter)

	err := query.Count(&count).Error
	return count, err
}

// applyFilter applies filtering, ordering, and pagination to a query
func (r *GormDeploymentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	orderBy := ValidateSortField(filter.OrderBy, DeploymentSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	return query
}

// applyFilterWithoutPagination applies search and field filters to a query
func (r *GormDeploymentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"candidate_name ILIKE ? OR candidate_emp_id ILIKE ? OR client ILIKE ? OR to_team ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "client":
			query = query.Where("client = ?", value)
		case "to_team":
			query = query.Where("to_team = ?", value)
		case "mail_status":
			query = query.Where("mail_status = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "candidate_emp_id":
			query = query.Where("candidate_emp_id = ?", value)
		}
	}

	return query
}

// Ensure GormDeploymentRepository implements deployment.Repository
var _ deployment.Repository = (*GormDeploymentRepository)(nil)
