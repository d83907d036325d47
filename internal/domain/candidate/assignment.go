package candidate

import (
	"strings"
	"time"

	"github.com/talentflow/backend/internal/domain/shared"
)

// IdentityKind names the identity values HR Ops can issue
type IdentityKind string

const (
	KindOfficeEmail IdentityKind = "office_email"
	KindEmployeeID  IdentityKind = "employee_id"
	KindPermanentID IdentityKind = "permanent_employee_id"
)

// NormalizeIdentity applies the canonical form for an identity value:
// emails are lowercased, IDs are uppercased, all are trimmed
func NormalizeIdentity(kind IdentityKind, value string) string {
	value = strings.TrimSpace(value)
	if kind == KindOfficeEmail {
		return strings.ToLower(value)
	}
	return strings.ToUpper(value)
}

// ValidateIdentityFormat checks the normalized value against the
// format rule for its kind
func ValidateIdentityFormat(kind IdentityKind, value string) error {
	switch kind {
	case KindOfficeEmail:
		if !personalEmailRegex.MatchString(value) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid office email format")
		}
	case KindEmployeeID:
		if !employeeIDRegex.MatchString(value) {
			return shared.NewDomainError("INVALID_EMPLOYEE_ID", "Employee ID must be 3-10 uppercase letters or digits")
		}
	case KindPermanentID:
		if !permanentIDRegex.MatchString(value) {
			return shared.NewDomainError("INVALID_PERMANENT_ID", "Permanent employee ID must be 4-12 uppercase letters or digits")
		}
	default:
		return shared.NewDomainError("INVALID_IDENTITY_KIND", "Unknown identity kind")
	}
	return nil
}

// EligibleForAssignment reports whether HR Ops may issue an office email
// or employee ID to this candidate: it must have been sent to HR Ops, or
// be closed out by an L&D rejection/drop
func (c *Candidate) EligibleForAssignment() bool {
	return c.Status == StatusSent || c.IsRejectedOrDropped()
}

// EligibleForPermanentID reports whether HR Ops may issue a permanent
// employee ID: the candidate must be in HR Ops processing and have been
// routed from HR Tag for permanent ID issuance
func (c *Candidate) EligibleForPermanentID() bool {
	return c.Status == StatusSent && c.SentToOps.Done
}

// IdentityValue returns the currently assigned value for a kind
func (c *Candidate) IdentityValue(kind IdentityKind) string {
	switch kind {
	case KindOfficeEmail:
		return c.OfficeEmail.Value
	case KindEmployeeID:
		return c.EmployeeID.Value
	case KindPermanentID:
		return c.PermanentID.Value
	}
	return ""
}

// AssignIdentity stamps a normalized, validated identity value.
// Uniqueness across candidates and employees is the registry's concern;
// this transition enforces format and pipeline eligibility.
func (c *Candidate) AssignIdentity(kind IdentityKind, value string, actor Actor) error {
	value = NormalizeIdentity(kind, value)
	if err := ValidateIdentityFormat(kind, value); err != nil {
		return err
	}

	switch kind {
	case KindOfficeEmail, KindEmployeeID:
		if !c.EligibleForAssignment() {
			return shared.NewDomainError("INVALID_STATE", "Candidate is not in a state eligible for identity assignment")
		}
	case KindPermanentID:
		if !c.EligibleForPermanentID() {
			return shared.NewDomainError("INVALID_STATE", "Candidate has not been routed to HR Ops for permanent ID assignment")
		}
	}

	now := time.Now()
	id := actor.ID
	assignment := Assignment{
		Value:          value,
		AssignedAt:     &now,
		AssignedBy:     &id,
		AssignedByName: actor.Name,
	}

	switch kind {
	case KindOfficeEmail:
		c.OfficeEmail = assignment
	case KindEmployeeID:
		c.EmployeeID = assignment
	case KindPermanentID:
		c.PermanentID = assignment
	}
	c.touch()

	c.AddDomainEvent(NewIdentityAssignedEvent(c, kind, value, actor))

	return nil
}
