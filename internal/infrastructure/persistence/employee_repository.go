package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/employee"
	"github.com/talentflow/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements employee.Repository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GORM employee repository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	var e employee.Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByEmpID finds a non-deleted employee by employee ID
func (r *GormEmployeeRepository) FindByEmpID(ctx context.Context, empID string) (*employee.Employee, error) {
	var e employee.Employee
	err := r.db.WithContext(ctx).
		First(&e, "emp_id = ? AND deleted = ?", strings.ToUpper(strings.TrimSpace(empID)), false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByEmail finds a non-deleted employee by contact email
func (r *GormEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	var e employee.Employee
	err := r.db.WithContext(ctx).
		First(&e, "email = ? AND deleted = ?", strings.ToLower(strings.TrimSpace(email)), false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindActiveDeliveryManager finds an active Delivery manager with complete
// mail credentials, used as the sending account for deployment notices
func (r *GormEmployeeRepository) FindActiveDeliveryManager(ctx context.Context) (*employee.Employee, error) {
	var e employee.Employee
	err := r.db.WithContext(ctx).
		Where("team = ?", employee.TeamDelivery).
		Where("is_delivery_manager = ?", true).
		Where("is_active = ?", true).
		Where("deleted = ?", false).
		Where("mail_email <> '' AND mail_app_password <> ''").
		Order("updated_at DESC").
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ExistsWithIdentity checks whether any non-deleted employee holds the given
// identity value (empID or email) and returns the holder's name
func (r *GormEmployeeRepository) ExistsWithIdentity(ctx context.Context, value string) (bool, string, error) {
	trimmed := strings.TrimSpace(value)
	var e employee.Employee
	err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Where("emp_id = ? OR email = ?", strings.ToUpper(trimmed), strings.ToLower(trimmed)).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, "", nil
		}
		return false, "", err
	}
	return true, e.Name, nil
}

// FindAll finds non-deleted employees matching the filter
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]employee.Employee, error) {
	var employees []employee.Employee
	query := r.db.WithContext(ctx).Model(&employee.Employee{}).Where("deleted = ?", false)
	query = r.applyFilter(query, filter)

	err := query.Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, e *employee.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Count counts non-deleted employees matching the filter
func (r *GormEmployeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&employee.Employee{}).Where("deleted = ?", false)
	query = r.applyFilterWithoutPagination(query, filter)

	err := query.Count(&count).Error
	return count, err
}

// applyFilter applies filtering, ordering, and pagination to a query
func (r *GormEmployeeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	orderBy := ValidateSortField(filter.OrderBy, EmployeeSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	return query
}

// applyFilterWithoutPagination applies search and field filters to a query
func (r *GormEmployeeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR emp_id ILIKE ? OR email ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "team":
			query = query.Where("team = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "can_send_email":
			query = query.Where("can_send_email = ?", value)
		case "is_delivery_manager":
			query = query.Where("is_delivery_manager = ?", value)
		}
	}

	return query
}

// Ensure GormEmployeeRepository implements employee.Repository
var _ employee.Repository = (*GormEmployeeRepository)(nil)
