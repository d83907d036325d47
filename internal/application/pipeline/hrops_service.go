package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/application/registry"
	"github.com/talentflow/backend/internal/domain/candidate"
	"go.uber.org/zap"
)

// HROpsService handles the HR Ops / IT side of the pipeline: issuing
// identity values and releasing candidates onward
type HROpsService struct {
	candidateRepo candidate.Repository
	registry      *registry.Service
	logger        *zap.Logger
}

// NewHROpsService creates a new HROpsService
func NewHROpsService(candidateRepo candidate.Repository, reg *registry.Service, logger *zap.Logger) *HROpsService {
	return &HROpsService{
		candidateRepo: candidateRepo,
		registry:      reg,
		logger:        logger,
	}
}

// AssignOfficeEmail issues an office email through the identity registry
func (s *HROpsService) AssignOfficeEmail(ctx context.Context, id uuid.UUID, value string, actor candidate.Actor) (*CandidateResponse, error) {
	return s.assign(ctx, id, candidate.KindOfficeEmail, value, actor)
}

// AssignEmployeeID issues a trainee employee ID through the identity registry
func (s *HROpsService) AssignEmployeeID(ctx context.Context, id uuid.UUID, value string, actor candidate.Actor) (*CandidateResponse, error) {
	return s.assign(ctx, id, candidate.KindEmployeeID, value, actor)
}

// AssignPermanentID issues a permanent employee ID through the identity registry
func (s *HROpsService) AssignPermanentID(ctx context.Context, id uuid.UUID, value string, actor candidate.Actor) (*CandidateResponse, error) {
	return s.assign(ctx, id, candidate.KindPermanentID, value, actor)
}

func (s *HROpsService) assign(ctx context.Context, id uuid.UUID, kind candidate.IdentityKind, value string, actor candidate.Actor) (*CandidateResponse, error) {
	c, err := s.registry.AssignIdentity(ctx, id, kind, value, actor)
	if err != nil {
		return nil, err
	}

	resp := ToCandidateResponse(c)
	return &resp, nil
}

// SendToLD flags candidates into the L&D review queue
func (s *HROpsService) SendToLD(ctx context.Context, ids []uuid.UUID, actor candidate.Actor) (*BulkResult, error) {
	result, err := bulkApply(ctx, s.candidateRepo, s.logger, ids,
		"No candidates were sent. They may have already been sent.",
		func(c *candidate.Candidate) error {
			return c.MarkSentToLD(actor)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Candidates sent to L&D",
		zap.Int("requested", result.Requested),
		zap.Int("modified", result.Modified))

	return result, nil
}

// SendToAdmin flags candidates into the Admin review queue
func (s *HROpsService) SendToAdmin(ctx context.Context, ids []uuid.UUID, actor candidate.Actor) (*BulkResult, error) {
	result, err := bulkApply(ctx, s.candidateRepo, s.logger, ids,
		"No candidates were sent. They may have already been sent.",
		func(c *candidate.Candidate) error {
			return c.MarkSentToAdmin(actor)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Candidates sent to Admin",
		zap.Int("requested", result.Requested),
		zap.Int("modified", result.Modified))

	return result, nil
}

// SendToAdminAndLD flags candidates into the Admin and L&D queues in one
// step, filling in whichever stamp is still missing
func (s *HROpsService) SendToAdminAndLD(ctx context.Context, ids []uuid.UUID, actor candidate.Actor) (*BulkResult, error) {
	result, err := bulkApply(ctx, s.candidateRepo, s.logger, ids,
		"No candidates were sent. They may have already been sent.",
		func(c *candidate.Candidate) error {
			return c.MarkSentToAdminAndLD(actor)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Candidates sent to Admin and L&D",
		zap.Int("requested", result.Requested),
		zap.Int("modified", result.Modified))

	return result, nil
}

// SendToDelivery releases candidates holding both an office email and an
// employee ID to the Delivery team
func (s *HROpsService) SendToDelivery(ctx context.Context, ids []uuid.UUID, actor candidate.Actor) (*BulkResult, error) {
	result, err := bulkApply(ctx, s.candidateRepo, s.logger, ids,
		"No candidates were sent. They may be missing identity assignments or were already sent.",
		func(c *candidate.Candidate) error {
			return c.SendToDeliveryStandard(actor)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Candidates sent to Delivery",
		zap.Int("requested", result.Requested),
		zap.Int("modified", result.Modified))

	return result, nil
}

// SendToDeliveryPermanent releases candidates holding a permanent employee
// ID back to the Delivery team
func (s *HROpsService) SendToDeliveryPermanent(ctx context.Context, ids []uuid.UUID, actor candidate.Actor) (*BulkResult, error) {
	result, err := bulkApply(ctx, s.candidateRepo, s.logger, ids,
		"No candidates were sent. They may be missing a permanent ID or were already sent.",
		func(c *candidate.Candidate) error {
			return c.SendToDeliveryPermanent(actor)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Candidates with permanent IDs sent to Delivery",
		zap.Int("requested", result.Requested),
		zap.Int("modified", result.Modified))

	return result, nil
}

// GetByID retrieves a candidate
func (s *HROpsService) GetByID(ctx context.Context, id uuid.UUID) (*CandidateResponse, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToCandidateResponse(c)
	return &resp, nil
}

// List retrieves the HR Ops dashboard's candidates
func (s *HROpsService) List(ctx context.Context, filter CandidateListFilter) ([]CandidateResponse, int64, error) {
	return listForView(ctx, s.candidateRepo, candidate.ViewHROps, filter)
}
