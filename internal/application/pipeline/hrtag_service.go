package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/application/registry"
	"github.com/talentflow/backend/internal/domain/candidate"
	"github.com/talentflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// HRTagService handles the HR Tag team's pipeline operations: submitting
// candidates, releasing them to HR Ops, and the deployment handoff back in
type HRTagService struct {
	candidateRepo candidate.Repository
	registry      *registry.Service
	logger        *zap.Logger
}

// NewHRTagService creates a new HRTagService
func NewHRTagService(candidateRepo candidate.Repository, reg *registry.Service, logger *zap.Logger) *HRTagService {
	return &HRTagService{
		candidateRepo: candidateRepo,
		registry:      reg,
		logger:        logger,
	}
}

// Submit registers a new candidate in the Submitted state
func (s *HRTagService) Submit(ctx context.Context, input SubmitCandidateInput, actor candidate.Actor) (*CandidateResponse, error) {
	if err := s.registry.CheckSubmissionIdentity(ctx, input.PersonalEmail, input.MobileNumber); err != nil {
		return nil, err
	}

	c, err := candidate.NewCandidate(candidate.NewCandidateInput{
		FullName:        input.FullName,
		Gender:          input.Gender,
		FatherName:      input.FatherName,
		FirstGraduate:   input.FirstGraduate,
		ExperienceLevel: candidate.ExperienceLevel(input.ExperienceLevel),
		Source:          candidate.Source(input.Source),
		ReferenceName:   input.ReferenceName,
		Native:          input.Native,
		MobileNumber:    input.MobileNumber,
		PersonalEmail:   input.PersonalEmail,
		College:         input.College,
		BatchLabel:      input.BatchLabel,
		Year:            input.Year,
		LinkedinURL:     input.LinkedinURL,
		ResumeFileName:  input.ResumeFileName,
		ResumePath:      input.ResumePath,
	}, actor)
	if err != nil {
		return nil, err
	}

	if err := s.candidateRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Candidate submitted",
		zap.String("candidate_id", c.ID.String()),
		zap.String("full_name", c.FullName),
		zap.String("submitted_by", actor.Name))

	resp := ToCandidateResponse(c)
	return &resp, nil
}

// SendToOps releases submitted candidates to HR Ops. Already-sent
// candidates are skipped; a batch that moves nobody is a user error.
func (s *HRTagService) SendToOps(ctx context.Context, ids []uuid.UUID, actor candidate.Actor) (*BulkResult, error) {
	result, err := bulkApply(ctx, s.candidateRepo, s.logger, ids,
		"No candidates were sent. They may have already been sent.",
		func(c *candidate.Candidate) error {
			return c.SendToOps(actor)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Candidates sent to HR Ops",
		zap.Int("requested", result.Requested),
		zap.Int("modified", result.Modified))

	return result, nil
}

// RouteToOpsForPermanentID flags deployed, selected candidates back to
// HR Ops so permanent employee IDs can be issued
func (s *HRTagService) RouteToOpsForPermanentID(ctx context.Context, ids []uuid.UUID, actor candidate.Actor) (*BulkResult, error) {
	result, err := bulkApply(ctx, s.candidateRepo, s.logger, ids,
		"No candidates were routed. They may not be eligible for a permanent ID yet.",
		func(c *candidate.Candidate) error {
			return c.RouteToOpsForPermanentID(actor)
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Candidates routed to HR Ops for permanent IDs",
		zap.Int("requested", result.Requested),
		zap.Int("modified", result.Modified))

	return result, nil
}

// GetByID retrieves a candidate
func (s *HRTagService) GetByID(ctx context.Context, id uuid.UUID) (*CandidateResponse, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToCandidateResponse(c)
	return &resp, nil
}

// List retrieves the HR Tag dashboard's candidates
func (s *HRTagService) List(ctx context.Context, filter CandidateListFilter) ([]CandidateResponse, int64, error) {
	return listForView(ctx, s.candidateRepo, candidate.ViewHRTag, filter)
}

// UpdateNotes replaces a candidate's free-text notes
func (s *HRTagService) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (*CandidateResponse, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.SetNotes(notes)

	if err := s.candidateRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	resp := ToCandidateResponse(c)
	return &resp, nil
}

// UpdateResume replaces a candidate's resume metadata
func (s *HRTagService) UpdateResume(ctx context.Context, id uuid.UUID, fileName, path string) (*CandidateResponse, error) {
	c, err := s.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.SetResume(fileName, path)

	if err := s.candidateRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	resp := ToCandidateResponse(c)
	return &resp, nil
}

// listForView runs a dashboard listing with the shared filter mapping
func listForView(ctx context.Context, repo candidate.Repository, view candidate.View, filter CandidateListFilter) ([]CandidateResponse, int64, error) {
	domainFilter := toDomainFilter(filter)

	candidates, err := repo.FindForView(ctx, view, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := repo.CountForView(ctx, view, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CandidateResponse, len(candidates))
	for i := range candidates {
		responses[i] = ToCandidateResponse(&candidates[i])
	}

	return responses, total, nil
}

// toDomainFilter maps the list filter onto the repository filter
func toDomainFilter(filter CandidateListFilter) shared.Filter {
	domainFilter := shared.Filter{
		Search:  filter.Search,
		Filters: make(map[string]interface{}),
	}

	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.LDStatus != "" {
		domainFilter.Filters["ld_status"] = filter.LDStatus
	}
	if filter.ExperienceLevel != "" {
		domainFilter.Filters["experience_level"] = filter.ExperienceLevel
	}
	if filter.BatchLabel != "" {
		domainFilter.Filters["batch_label"] = filter.BatchLabel
	}
	if filter.Year != 0 {
		domainFilter.Filters["year"] = filter.Year
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

	return domainFilter
}
