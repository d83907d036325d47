package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/candidate"
	"github.com/talentflow/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCandidateRepository implements candidate.Repository using GORM
type GormCandidateRepository struct {
	db *gorm.DB
}

// NewGormCandidateRepository creates a new GORM candidate repository
func NewGormCandidateRepository(db *gorm.DB) *GormCandidateRepository {
	return &GormCandidateRepository{db: db}
}

// FindByID finds a candidate by its ID
func (r *GormCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*candidate.Candidate, error) {
	var c candidate.Candidate
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByIDs finds all candidates among the given IDs
func (r *GormCandidateRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]candidate.Candidate, error) {
	if len(ids) == 0 {
		return []candidate.Candidate{}, nil
	}
	var candidates []candidate.Candidate
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// FindByPersonalEmail finds a candidate by personal email
func (r *GormCandidateRepository) FindByPersonalEmail(ctx context.Context, email string) (*candidate.Candidate, error) {
	var c candidate.Candidate
	err := r.db.WithContext(ctx).
		First(&c, "personal_email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByMobileNumber finds a candidate by mobile number
func (r *GormCandidateRepository) FindByMobileNumber(ctx context.Context, mobile string) (*candidate.Candidate, error) {
	var c candidate.Candidate
	err := r.db.WithContext(ctx).
		First(&c, "mobile_number = ?", strings.TrimSpace(mobile)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindHolderOfIdentity finds the candidate holding an assigned identity value,
// excluding the given owner. Returns shared.ErrNotFound when the value is free.
func (r *GormCandidateRepository) FindHolderOfIdentity(ctx context.Context, kind candidate.IdentityKind, value string, excludeID uuid.UUID) (*candidate.Candidate, error) {
	column, err := identityColumn(kind)
	if err != nil {
		return nil, err
	}

	var c candidate.Candidate
	err = r.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", column), value).
		Where("id <> ?", excludeID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// identityColumn maps an identity kind to its assignment value column
func identityColumn(kind candidate.IdentityKind) (string, error) {
	switch kind {
	case candidate.KindOfficeEmail:
		return "office_email_value", nil
	case candidate.KindEmployeeID:
		return "employee_id_value", nil
	case candidate.KindPermanentID:
		return "permanent_id_value", nil
	default:
		return "", shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown identity kind: %s", kind))
	}
}

// FindAll finds candidates matching the filter
func (r *GormCandidateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]candidate.Candidate, error) {
	var candidates []candidate.Candidate
	query := r.db.WithContext(ctx).Model(&candidate.Candidate{})
	query = r.applyFilter(query, filter)

	err := query.Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// FindForView finds candidates visible on a team dashboard
func (r *GormCandidateRepository) FindForView(ctx context.Context, view candidate.View, filter shared.Filter) ([]candidate.Candidate, error) {
	var candidates []candidate.Candidate
	query := r.db.WithContext(ctx).Model(&candidate.Candidate{})
	query = applyViewScope(query, view)
	query = r.applyFilter(query, filter)

	err := query.Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// CountForView counts candidates visible on a team dashboard
func (r *GormCandidateRepository) CountForView(ctx context.Context, view candidate.View, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&candidate.Candidate{})
	query = applyViewScope(query, view)
	query = r.applyFilterWithoutPagination(query, filter)

	err := query.Count(&count).Error
	return count, err
}

// applyViewScope restricts a query to the candidates a team dashboard shows.
// Rejected and Dropped candidates carry routing flags for several teams at
// once, so one candidate can appear in more than one view.
func applyViewScope(query *gorm.DB, view candidate.View) *gorm.DB {
	switch view {
	case candidate.ViewHRTag:
		return query.Where("status = ? OR sent_to_hr_tag_done = ? OR routed_to_hr_tag = ?",
			candidate.StatusSubmitted, true, true)
	case candidate.ViewHROps:
		return query.Where("status = ? OR routed_to_hr_ops = ?", candidate.StatusSent, true)
	case candidate.ViewLD:
		return query.Where("sent_to_ld_done = ?", true)
	case candidate.ViewDelivery:
		return query.Where("sent_to_delivery_done = ?", true)
	case candidate.ViewAdmin:
		return query.Where("sent_to_admin_done = ? OR routed_to_admin = ?", true, true)
	default:
		return query
	}
}

// Save creates or updates a candidate
func (r *GormCandidateRepository) Save(ctx context.Context, c *candidate.Candidate) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete deletes a candidate
func (r *GormCandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&candidate.Candidate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts candidates matching the filter
func (r *GormCandidateRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&candidate.Candidate{})
	query = r.applyFilterWithoutPagination(query, filter)

	err := query.Count(&count).Error
	return count, err
}

// applyFilter applies filtering, ordering, and pagination to a query
func (r *GormCandidateRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	orderBy := ValidateSortField(filter.OrderBy, CandidateSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	return query
}

// applyFilterWithoutPagination applies search and field filters to a query
func (r *GormCandidateRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"full_name ILIKE ? OR personal_email ILIKE ? OR mobile_number ILIKE ? OR college ILIKE ? OR batch_label ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "ld_status":
			query = query.Where("ld_status = ?", value)
		case "ld_pending":
			// Schema default is Pending but legacy rows may carry an
			// empty or NULL value, treat all three as pending review.
			query = query.Where("ld_status = ? OR ld_status = '' OR ld_status IS NULL", candidate.LDPending)
		case "experience_level":
			query = query.Where("experience_level = ?", value)
		case "batch_label":
			query = query.Where("batch_label = ?", value)
		case "year":
			query = query.Where("year = ?", value)
		case "allocation_status":
			query = query.Where("allocation_status = ?", value)
		case "submitted_by":
			query = query.Where("submitted_by = ?", value)
		case "deployment_email_sent":
			query = query.Where("deployment_email_sent = ?", value)
		}
	}

	return query
}

// Ensure GormCandidateRepository implements candidate.Repository
var _ candidate.Repository = (*GormCandidateRepository)(nil)
