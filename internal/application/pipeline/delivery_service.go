package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/candidate"
	"go.uber.org/zap"
)

// DeliveryService handles the Delivery team's allocation updates and the
// deployment handoff back to HR Tag
type DeliveryService struct {
	candidateRepo candidate.Repository
	logger        *zap.Logger
}

// NewDeliveryService creates a new DeliveryService
func NewDeliveryService(candidateRepo candidate.Repository, logger *zap.Logger) *DeliveryService {
	return &DeliveryService{
		candidateRepo: candidateRepo,
		logger:        logger,
	}
}

// UpdateAllocation updates a candidate's project and team allocation
func (s *DeliveryService) UpdateAllocation(ctx context.Context, id uuid.UUID, input UpdateAllocationInput, actor candidate.Actor) (*CandidateResponse, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = c.UpdateAllocation(
		candidate.AllocationStatus(input.AllocationStatus),
		input.Notes,
		input.Project,
		input.Team,
		actor,
	)
	if err != nil {
		return nil, err
	}

	if err := s.candidateRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Candidate allocation updated",
		zap.String("candidate_id", id.String()),
		zap.String("allocation_status", input.AllocationStatus),
		zap.String("updated_by", actor.Name))

	resp := ToCandidateResponse(c)
	return &resp, nil
}

// SendToHRTagAsDeployed flags deployed candidates back to HR Tag so the
// permanent ID handoff can start
func (s *DeliveryService) SendToHRTagAsDeployed(ctx context.Context, ids []uuid.UUID, actor candidate.Actor) (*BulkResult, error) {
	result, err := bulkApply(ctx, s.candidateRepo, s.logger, ids,
		"No candidates were sent. They may have already been sent.",
		func(c *candidate.Candidate) error {
			return c.MarkDeployedToHRTag(actor)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deployed candidates sent back to HR Tag",
		zap.Int("requested", result.Requested),
		zap.Int("modified", result.Modified))

	return result, nil
}

// GetByID retrieves a candidate
func (s *DeliveryService) GetByID(ctx context.Context, id uuid.UUID) (*CandidateResponse, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToCandidateResponse(c)
	return &resp, nil
}

// List retrieves the Delivery dashboard's candidates
func (s *DeliveryService) List(ctx context.Context, filter CandidateListFilter) ([]CandidateResponse, int64, error) {
	return listForView(ctx, s.candidateRepo, candidate.ViewDelivery, filter)
}
