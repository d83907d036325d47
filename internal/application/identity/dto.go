package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/employee"
)

// LoginInput contains login request data
type LoginInput struct {
	EmpID    string
	Password string
	IP       string
}

// LoginResult contains successful login response data
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	Employee              EmployeeInfo
}

// RefreshTokenInput contains token refresh request data
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains token refresh response data
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains logout request data
type LogoutInput struct {
	EmployeeID uuid.UUID
}

// GetCurrentEmployeeInput contains current employee request data
type GetCurrentEmployeeInput struct {
	EmployeeID uuid.UUID
}

// ChangePasswordInput contains password change request data
type ChangePasswordInput struct {
	EmployeeID  uuid.UUID
	OldPassword string
	NewPassword string
}

// EmployeeInfo contains employee information for responses
type EmployeeInfo struct {
	ID                uuid.UUID `json:"id"`
	EmpID             string    `json:"emp_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email,omitempty"`
	Team              string    `json:"team"`
	IsActive          bool      `json:"is_active"`
	CanSendEmail      bool      `json:"can_send_email"`
	IsDeliveryManager bool      `json:"is_delivery_manager"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToEmployeeInfo maps an employee aggregate to its response shape
func ToEmployeeInfo(e *employee.Employee) EmployeeInfo {
	return EmployeeInfo{
		ID:                e.ID,
		EmpID:             e.EmpID,
		Name:              e.Name,
		Email:             e.Email,
		Team:              string(e.Team),
		IsActive:          e.IsActive,
		CanSendEmail:      e.CanSendEmail,
		IsDeliveryManager: e.IsDeliveryManager,
		CreatedAt:         e.CreatedAt,
	}
}

// CreateEmployeeInput contains employee registration data
type CreateEmployeeInput struct {
	EmpID    string
	Name     string
	Email    string
	Password string
	Team     string
}

// UpdateEmployeeInput contains employee update data
type UpdateEmployeeInput struct {
	Email         *string
	Team          *string
	IsActive      *bool
	ResetPassword *string
}

// MailPermissionInput grants or revokes deployment mail access
type MailPermissionInput struct {
	Grant       bool
	IsManager   bool
	Email       string
	AppPassword string
}

// EmployeeListFilter contains list query options
type EmployeeListFilter struct {
	Search   string
	Team     string
	IsActive *bool
	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}
