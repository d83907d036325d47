package identity

import (
	"context"
	"time"

	"github.com/talentflow/backend/internal/domain/employee"
	"github.com/talentflow/backend/internal/domain/shared"
	"github.com/talentflow/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int           // Maximum failed login attempts before lock
	LockDuration     time.Duration // How long to lock account after max attempts
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// AuthService handles authentication operations
type AuthService struct {
	employeeRepo employee.Repository
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	config       AuthServiceConfig
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	employeeRepo employee.Repository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		config:       config,
		logger:       logger,
	}
}

// Login authenticates an employee and returns tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("emp_id", input.EmpID))

	emp, err := s.employeeRepo.FindByEmpID(ctx, input.EmpID)
	if err != nil {
		s.logger.Warn("Employee not found during login", zap.String("emp_id", input.EmpID))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid employee ID or password")
	}

	if !emp.CanLogin() {
		if emp.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("emp_id", input.EmpID))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later or contact support")
		}
		s.logger.Warn("Login attempt for deactivated account", zap.String("emp_id", input.EmpID))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !emp.VerifyPassword(input.Password) {
		locked := emp.RecordLoginFailure(input.IP, s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.employeeRepo.Save(ctx, emp); err != nil {
			s.logger.Error("Failed to update employee after login failure", zap.Error(err))
		}

		if locked {
			s.logger.Warn("Account locked after too many failed attempts",
				zap.String("emp_id", input.EmpID),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
		}

		s.logger.Warn("Invalid password attempt",
			zap.String("emp_id", input.EmpID),
			zap.Int("failed_attempts", emp.FailedAttempts))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid employee ID or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		EmployeeID:   emp.ID,
		EmpID:        emp.EmpID,
		Name:         emp.Name,
		Team:         string(emp.Team),
		CanSendEmail: emp.CanSendDeploymentMail(),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	emp.RecordLoginSuccess(input.IP)
	if err := s.employeeRepo.Save(ctx, emp); err != nil {
		// Don't fail the login, just log the error
		s.logger.Error("Failed to update employee after successful login", zap.Error(err))
	}

	s.logger.Info("Employee logged in successfully",
		zap.String("emp_id", emp.EmpID),
		zap.String("employee_id", emp.ID.String()))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Employee:              ToEmployeeInfo(emp),
	}, nil
}

// RefreshToken refreshes the access token using a valid refresh token.
// Team and mail permission come from the live account so revoked access
// drops out at the next refresh.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	employeeID, err := claims.GetEmployeeUUID()
	if err != nil {
		s.logger.Error("Invalid employee ID in refresh token", zap.Error(err))
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid employee ID in token")
	}

	if s.blacklist != nil {
		invalidated, err := s.blacklist.IsEmployeeTokenInvalidated(ctx, claims.EmployeeID, claims.GetIssuedAtTime())
		if err != nil {
			s.logger.Error("Failed to check token blacklist", zap.Error(err))
		} else if invalidated {
			s.logger.Warn("Refresh attempt with revoked token", zap.String("employee_id", claims.EmployeeID))
			return nil, shared.NewDomainError("TOKEN_INVALID", "Token has been revoked")
		}
	}

	emp, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		s.logger.Warn("Employee not found during token refresh", zap.String("employee_id", employeeID.String()))
		return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
	}

	if !emp.CanLogin() {
		s.logger.Warn("Token refresh for inactive account", zap.String("employee_id", employeeID.String()))
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, auth.RefreshInput{
		EmpID:        emp.EmpID,
		Name:         emp.Name,
		Team:         string(emp.Team),
		CanSendEmail: emp.CanSendDeploymentMail(),
	})
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	s.logger.Info("Token refreshed successfully", zap.String("employee_id", employeeID.String()))

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout revokes all outstanding tokens for the employee
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	s.logger.Info("Employee logout", zap.String("employee_id", input.EmployeeID.String()))

	if s.blacklist == nil {
		return nil
	}

	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddEmployeeTokensToBlacklist(ctx, input.EmployeeID.String(), ttl); err != nil {
		s.logger.Error("Failed to blacklist tokens on logout", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke session")
	}

	return nil
}

// GetCurrentEmployee retrieves the authenticated employee's information
func (s *AuthService) GetCurrentEmployee(ctx context.Context, input GetCurrentEmployeeInput) (*EmployeeInfo, error) {
	emp, err := s.employeeRepo.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
	}

	info := ToEmployeeInfo(emp)
	return &info, nil
}

// ChangePassword changes an employee's password after verifying the old one
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	emp, err := s.employeeRepo.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
	}

	if !emp.VerifyPassword(input.OldPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}

	if err := emp.SetPassword(input.NewPassword); err != nil {
		return err
	}

	if err := s.employeeRepo.Save(ctx, emp); err != nil {
		s.logger.Error("Failed to update employee after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("Employee password changed", zap.String("employee_id", input.EmployeeID.String()))

	return nil
}

// mapTokenError maps JWT errors to domain errors
func mapTokenError(err error) error {
	switch err {
	case auth.ErrExpiredToken:
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case auth.ErrInvalidToken:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	case auth.ErrMaxRefreshExceeded:
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}
