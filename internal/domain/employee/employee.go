package employee

import (
	"regexp"
	"strings"
	"time"

	"github.com/talentflow/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Team names the portal an employee belongs to
type Team string

const (
	TeamHRTag    Team = "HR Tag"
	TeamHROps    Team = "HR Ops"
	TeamLD       Team = "L&D"
	TeamDelivery Team = "Delivery"
	TeamAdmin    Team = "Admin"
	TeamHR       Team = "HR"
	TeamIT       Team = "IT"
)

// Password cost for bcrypt
const bcryptCost = 12

var (
	empIDRegex = regexp.MustCompile(`^[A-Z0-9]{3,10}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// MailConfig holds a delivery manager's outbound mail credentials
type MailConfig struct {
	Email       string `gorm:"size:200"`
	AppPassword string `gorm:"size:200"`
}

// Complete reports whether both credential fields are present
func (m MailConfig) Complete() bool {
	return m.Email != "" && m.AppPassword != ""
}

// Employee is an account in the workforce directory. It owns login
// security state and the Delivery mail permissions.
type Employee struct {
	shared.BaseAggregateRoot
	EmpID        string `gorm:"size:20;not null;uniqueIndex"`
	Name         string `gorm:"size:200;not null"`
	Email        string `gorm:"size:200"`
	Team         Team   `gorm:"size:20;not null;index"`
	PasswordHash string `gorm:"size:100;not null"`
	IsActive     bool   `gorm:"not null;default:true"`

	Deleted   bool       `gorm:"not null;default:false;index"`
	DeletedAt *time.Time `gorm:""`

	CanSendEmail      bool       `gorm:"not null;default:false"`
	IsDeliveryManager bool       `gorm:"not null;default:false"`
	MailConfig        MailConfig `gorm:"embedded;embeddedPrefix:mail_"`

	FailedAttempts  int        `gorm:"not null;default:0"`
	LockedUntil     *time.Time `gorm:""`
	LastAttemptTime *time.Time `gorm:""`
	LastAttemptIP   string     `gorm:"size:45"`
}

// TableName overrides the GORM table name
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates an active employee account
func NewEmployee(empID, name, password string, team Team) (*Employee, error) {
	empID = strings.ToUpper(strings.TrimSpace(empID))
	if err := validateEmpID(empID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if err := validateTeam(team); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmpID:             empID,
		Name:              strings.TrimSpace(name),
		Team:              team,
		PasswordHash:      passwordHash,
		IsActive:          true,
	}, nil
}

// SetEmail sets the employee's contact email
func (e *Employee) SetEmail(email string) error {
	if email != "" {
		email = strings.ToLower(strings.TrimSpace(email))
		if !emailRegex.MatchString(email) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
	}

	e.Email = email
	e.touch()

	return nil
}

// ChangeTeam moves the employee to another team. Leaving Delivery drops
// any deployment mail permission with it.
func (e *Employee) ChangeTeam(team Team) error {
	if err := validateTeam(team); err != nil {
		return err
	}

	e.Team = team
	if team != TeamDelivery {
		e.CanSendEmail = false
		e.IsDeliveryManager = false
		e.MailConfig = MailConfig{}
	}
	e.touch()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (e *Employee) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password))
	return err == nil
}

// SetPassword sets a new password (admin reset)
func (e *Employee) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	e.PasswordHash = passwordHash
	e.touch()

	return nil
}

// Deactivate disables the account without deleting it
func (e *Employee) Deactivate() {
	e.IsActive = false
	e.touch()
}

// Activate re-enables the account
func (e *Employee) Activate() {
	e.IsActive = true
	e.FailedAttempts = 0
	e.LockedUntil = nil
	e.touch()
}

// SoftDelete marks the account deleted
func (e *Employee) SoftDelete() error {
	if e.Deleted {
		return shared.NewDomainError("ALREADY_DONE", "Employee has already been deleted")
	}

	now := time.Now()
	e.Deleted = true
	e.DeletedAt = &now
	e.IsActive = false
	e.touch()

	return nil
}

// GrantMailPermission allows the employee to send deployment notices.
// Delivery managers additionally carry their own SMTP credentials.
func (e *Employee) GrantMailPermission(isManager bool, cfg MailConfig) error {
	if e.Team != TeamDelivery {
		return shared.NewDomainError("INVALID_STATE", "Only Delivery team members can send deployment mail")
	}
	if isManager && !cfg.Complete() {
		return shared.NewDomainError("INCOMPLETE_MAIL_CONFIG", "Manager email credentials are incomplete")
	}

	e.CanSendEmail = true
	e.IsDeliveryManager = isManager
	e.MailConfig = cfg
	e.touch()

	return nil
}

// RevokeMailPermission removes mail rights and credentials
func (e *Employee) RevokeMailPermission() {
	e.CanSendEmail = false
	e.IsDeliveryManager = false
	e.MailConfig = MailConfig{}
	e.touch()
}

// IsLocked returns true while a login lock is in force
func (e *Employee) IsLocked() bool {
	return e.LockedUntil != nil && time.Now().Before(*e.LockedUntil)
}

// CanLogin returns true if the account may authenticate
func (e *Employee) CanLogin() bool {
	return e.IsActive && !e.Deleted && !e.IsLocked()
}

// RecordLoginSuccess clears the failed-attempt state
func (e *Employee) RecordLoginSuccess(ip string) {
	now := time.Now()
	e.FailedAttempts = 0
	e.LockedUntil = nil
	e.LastAttemptTime = &now
	e.LastAttemptIP = ip
	e.touch()
}

// RecordLoginFailure counts a failed attempt. An expired lock restarts
// the count at one. Returns true when the account becomes locked.
func (e *Employee) RecordLoginFailure(ip string, maxAttempts int, lockDuration time.Duration) bool {
	now := time.Now()

	if e.LockedUntil != nil && now.After(*e.LockedUntil) {
		e.FailedAttempts = 1
		e.LockedUntil = nil
	} else {
		e.FailedAttempts++
	}

	e.LastAttemptTime = &now
	e.LastAttemptIP = ip

	locked := false
	if e.FailedAttempts >= maxAttempts && !e.IsLocked() {
		lockedUntil := now.Add(lockDuration)
		e.LockedUntil = &lockedUntil
		locked = true
	}

	e.touch()

	return locked
}

// CanSendDeploymentMail reports whether this account may trigger
// deployment or transfer notices
func (e *Employee) CanSendDeploymentMail() bool {
	return e.Team == TeamDelivery && e.IsActive && !e.Deleted && e.CanSendEmail
}

// IsActiveDeliveryManager reports whether this account's mailbox can be
// used as the sending transport
func (e *Employee) IsActiveDeliveryManager() bool {
	return e.CanSendDeploymentMail() && e.IsDeliveryManager && e.MailConfig.Complete()
}

func (e *Employee) touch() {
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// Validation functions

func validateEmpID(empID string) error {
	if empID == "" {
		return shared.NewDomainError("INVALID_EMP_ID", "Employee ID cannot be empty")
	}
	if !empIDRegex.MatchString(empID) {
		return shared.NewDomainError("INVALID_EMP_ID", "Employee ID must be 3-10 uppercase letters or digits")
	}
	return nil
}

func validateTeam(team Team) error {
	switch team {
	case TeamHRTag, TeamHROps, TeamLD, TeamDelivery, TeamAdmin, TeamHR, TeamIT:
		return nil
	}
	return shared.NewDomainError("INVALID_TEAM", "Unknown team")
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
