package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/candidate"
	"go.uber.org/zap"
)

// LDService handles the L&D team's review decisions
type LDService struct {
	candidateRepo candidate.Repository
	logger        *zap.Logger
}

// NewLDService creates a new LDService
func NewLDService(candidateRepo candidate.Repository, logger *zap.Logger) *LDService {
	return &LDService{
		candidateRepo: candidateRepo,
		logger:        logger,
	}
}

// RecordDecision records an L&D review outcome. Rejected and Dropped fan
// the candidate out to the HR Tag, HR Ops, and Admin views atomically.
func (s *LDService) RecordDecision(ctx context.Context, id uuid.UUID, status, reason string, actor candidate.Actor) (*CandidateResponse, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateLDDecision(candidate.LDStatus(status), reason, actor); err != nil {
		return nil, err
	}

	if err := s.candidateRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("L&D decision recorded",
		zap.String("candidate_id", id.String()),
		zap.String("status", status),
		zap.String("reason", reason),
		zap.String("decided_by", actor.Name))

	resp := ToCandidateResponse(c)
	return &resp, nil
}

// SendToDelivery releases selected candidates to the Delivery team and
// reports the moved counts per experience bucket. Laterals additionally
// enter the allocation queue.
func (s *LDService) SendToDelivery(ctx context.Context, ids []uuid.UUID, actor candidate.Actor) (*DeliveryReleaseResult, error) {
	var freshers, laterals int
	result, err := bulkApply(ctx, s.candidateRepo, s.logger, ids,
		"No candidates were sent. They may not be selected or were already sent.",
		func(c *candidate.Candidate) error {
			if err := c.SendToDeliveryFromLD(actor); err != nil {
				return err
			}
			if c.ExperienceLevel == candidate.ExperienceLateral {
				laterals++
			} else {
				freshers++
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Selected candidates sent to Delivery",
		zap.Int("requested", result.Requested),
		zap.Int("freshers", freshers),
		zap.Int("laterals", laterals))

	return &DeliveryReleaseResult{
		BulkResult: *result,
		Freshers:   freshers,
		Laterals:   laterals,
	}, nil
}

// GetByID retrieves a candidate
func (s *LDService) GetByID(ctx context.Context, id uuid.UUID) (*CandidateResponse, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToCandidateResponse(c)
	return &resp, nil
}

// List retrieves the L&D dashboard's candidates
func (s *LDService) List(ctx context.Context, filter CandidateListFilter) ([]CandidateResponse, int64, error) {
	return listForView(ctx, s.candidateRepo, candidate.ViewLD, filter)
}
