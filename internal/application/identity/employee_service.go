package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/employee"
	"github.com/talentflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// EmployeeService handles employee account administration
type EmployeeService struct {
	employeeRepo employee.Repository
	logger       *zap.Logger
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo employee.Repository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Create registers a new employee account
func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (*EmployeeInfo, error) {
	_, err := s.employeeRepo.FindByEmpID(ctx, input.EmpID)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An employee with this ID already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	emp, err := employee.NewEmployee(input.EmpID, input.Name, input.Password, employee.Team(input.Team))
	if err != nil {
		return nil, err
	}

	if input.Email != "" {
		if _, err := s.employeeRepo.FindByEmail(ctx, input.Email); err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An employee with this email already exists")
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if err := emp.SetEmail(input.Email); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, emp); err != nil {
		return nil, err
	}

	s.logger.Info("Employee account created",
		zap.String("emp_id", emp.EmpID),
		zap.String("team", string(emp.Team)))

	info := ToEmployeeInfo(emp)
	return &info, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeInfo, error) {
	emp, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	info := ToEmployeeInfo(emp)
	return &info, nil
}

// List retrieves employees matching the filter
func (s *EmployeeService) List(ctx context.Context, filter EmployeeListFilter) ([]EmployeeInfo, int64, error) {
	domainFilter := shared.Filter{
		Search:  filter.Search,
		Filters: make(map[string]interface{}),
	}

	if filter.Team != "" {
		domainFilter.Filters["team"] = filter.Team
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	if filter.SortBy != "" {
		domainFilter.OrderBy = filter.SortBy
		if filter.SortDesc {
			domainFilter.OrderDir = "desc"
		} else {
			domainFilter.OrderDir = "asc"
		}
	}

	employees, err := s.employeeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.employeeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	infos := make([]EmployeeInfo, len(employees))
	for i := range employees {
		infos[i] = ToEmployeeInfo(&employees[i])
	}

	return infos, total, nil
}

// Update applies account changes
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*EmployeeInfo, error) {
	emp, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		if err := emp.SetEmail(*input.Email); err != nil {
			return nil, err
		}
	}

	if input.Team != nil {
		if err := emp.ChangeTeam(employee.Team(*input.Team)); err != nil {
			return nil, err
		}
	}

	if input.IsActive != nil {
		if *input.IsActive {
			emp.Activate()
		} else {
			emp.Deactivate()
		}
	}

	if input.ResetPassword != nil {
		if err := emp.SetPassword(*input.ResetPassword); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, emp); err != nil {
		return nil, err
	}

	info := ToEmployeeInfo(emp)
	return &info, nil
}

// SetMailPermission grants or revokes deployment mail access
func (s *EmployeeService) SetMailPermission(ctx context.Context, id uuid.UUID, input MailPermissionInput) (*EmployeeInfo, error) {
	emp, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Grant {
		err = emp.GrantMailPermission(input.IsManager, employee.MailConfig{
			Email:       input.Email,
			AppPassword: input.AppPassword,
		})
		if err != nil {
			return nil, err
		}
	} else {
		emp.RevokeMailPermission()
	}

	if err := s.employeeRepo.Save(ctx, emp); err != nil {
		return nil, err
	}

	s.logger.Info("Employee mail permission changed",
		zap.String("emp_id", emp.EmpID),
		zap.Bool("granted", input.Grant),
		zap.Bool("manager", input.IsManager))

	info := ToEmployeeInfo(emp)
	return &info, nil
}

// Delete soft-deletes an employee account
func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	emp, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := emp.SoftDelete(); err != nil {
		return err
	}

	if err := s.employeeRepo.Save(ctx, emp); err != nil {
		return err
	}

	s.logger.Info("Employee account deleted", zap.String("emp_id", emp.EmpID))

	return nil
}
