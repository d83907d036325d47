// Package registry enforces the identity-uniqueness rules that span the
// candidate and employee stores. Office emails, employee IDs, and permanent
// employee IDs live in one namespace: a value held by any candidate or any
// employee account cannot be issued again.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/candidate"
	"github.com/talentflow/backend/internal/domain/employee"
	"github.com/talentflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service resolves identity assignments against both stores
type Service struct {
	candidateRepo candidate.Repository
	employeeRepo  employee.Repository
	logger        *zap.Logger
}

// NewService creates a new registry service
func NewService(candidateRepo candidate.Repository, employeeRepo employee.Repository, logger *zap.Logger) *Service {
	return &Service{
		candidateRepo: candidateRepo,
		employeeRepo:  employeeRepo,
		logger:        logger,
	}
}

// AssignIdentity normalizes, validates, and reserves an identity value for a
// candidate, then stamps the assignment. Conflicts name the current holder.
func (s *Service) AssignIdentity(ctx context.Context, candidateID uuid.UUID, kind candidate.IdentityKind, value string, actor candidate.Actor) (*candidate.Candidate, error) {
	c, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	normalized := candidate.NormalizeIdentity(kind, value)
	if err := candidate.ValidateIdentityFormat(kind, normalized); err != nil {
		return nil, err
	}

	if err := s.CheckAvailable(ctx, kind, normalized, candidateID); err != nil {
		return nil, err
	}

	if err := c.AssignIdentity(kind, normalized, actor); err != nil {
		return nil, err
	}

	if err := s.candidateRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Identity assigned",
		zap.String("candidate_id", candidateID.String()),
		zap.String("kind", string(kind)),
		zap.String("value", normalized),
		zap.String("assigned_by", actor.Name))

	return c, nil
}

// CheckAvailable verifies that a normalized identity value is free across
// both candidates and employees, excluding the candidate it is meant for
func (s *Service) CheckAvailable(ctx context.Context, kind candidate.IdentityKind, value string, excludeCandidateID uuid.UUID) error {
	holder, err := s.candidateRepo.FindHolderOfIdentity(ctx, kind, value, excludeCandidateID)
	if err == nil {
		return shared.NewDomainError("IDENTITY_CONFLICT",
			fmt.Sprintf("%s is already assigned to candidate %s", value, holder.FullName))
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	taken, holderName, err := s.employeeRepo.ExistsWithIdentity(ctx, value)
	if err != nil {
		return err
	}
	if taken {
		return shared.NewDomainError("IDENTITY_CONFLICT",
			fmt.Sprintf("%s is already held by employee %s", value, holderName))
	}

	return nil
}

// CheckSubmissionIdentity verifies that a new submission's immutable keys
// (personal email and mobile number) are not already registered
func (s *Service) CheckSubmissionIdentity(ctx context.Context, personalEmail, mobileNumber string) error {
	existing, err := s.candidateRepo.FindByPersonalEmail(ctx, personalEmail)
	if err == nil {
		return shared.NewDomainError("DUPLICATE_IDENTITY",
			fmt.Sprintf("A candidate with this personal email already exists: %s", existing.FullName))
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	existing, err = s.candidateRepo.FindByMobileNumber(ctx, mobileNumber)
	if err == nil {
		return shared.NewDomainError("DUPLICATE_IDENTITY",
			fmt.Sprintf("A candidate with this mobile number already exists: %s", existing.FullName))
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	return nil
}
