package deployment

import (
	"context"

	"github.com/google/uuid"
	domain "github.com/talentflow/backend/internal/domain/deployment"
	"github.com/talentflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LedgerService manages deployment records after the notice went out:
// exits, internal transfers, and status corrections
type LedgerService struct {
	deploymentRepo domain.Repository
	logger         *zap.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(deploymentRepo domain.Repository, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		deploymentRepo: deploymentRepo,
		logger:         logger,
	}
}

// GetByID retrieves a deployment record
func (s *LedgerService) GetByID(ctx context.Context, id uuid.UUID) (*RecordResponse, error) {
	r, err := s.deploymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToRecordResponse(r)
	return &resp, nil
}

// GetByCandidateID retrieves the ledger row for a candidate
func (s *LedgerService) GetByCandidateID(ctx context.Context, candidateID uuid.UUID) (*RecordResponse, error) {
	r, err := s.deploymentRepo.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	resp := ToRecordResponse(r)
	return &resp, nil
}

// ListByTab retrieves records in a ledger listing with the total count
func (s *LedgerService) ListByTab(ctx context.Context, tab string, filter RecordListFilter) ([]RecordResponse, int64, error) {
	domainTab, err := parseTab(tab)
	if err != nil {
		return nil, 0, err
	}

	domainFilter := toRecordFilter(filter)

	records, err := s.deploymentRepo.FindForTab(ctx, domainTab, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.deploymentRepo.CountForTab(ctx, domainTab, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]RecordResponse, len(records))
	for i := range records {
		responses[i] = ToRecordResponse(&records[i])
	}

	return responses, total, nil
}

// ProcessExit closes out a deployment record
func (s *LedgerService) ProcessExit(ctx context.Context, id uuid.UUID, input ExitInput, actorID uuid.UUID, actorName string) (*RecordResponse, error) {
	r, err := s.deploymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.ProcessExit(input.Reason, actorID, actorName); err != nil {
		return nil, err
	}

	if err := s.deploymentRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("Deployment exit processed",
		zap.String("record_id", id.String()),
		zap.String("candidate_emp_id", r.CandidateEmpID),
		zap.String("processed_by", actorName))

	resp := ToRecordResponse(r)
	return &resp, nil
}

// InternalTransfer marks a record as an internal transfer
func (s *LedgerService) InternalTransfer(ctx context.Context, id uuid.UUID, input TransferInput, actorName string) (*RecordResponse, error) {
	r, err := s.deploymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.RecordInternalTransfer(input.TransferDate); err != nil {
		return nil, err
	}

	if err := s.deploymentRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("Internal transfer recorded",
		zap.String("record_id", id.String()),
		zap.String("candidate_emp_id", r.CandidateEmpID),
		zap.Time("transfer_date", input.TransferDate),
		zap.String("recorded_by", actorName))

	resp := ToRecordResponse(r)
	return &resp, nil
}

// UpdateStatus sets a record's lifecycle status with optional notes
func (s *LedgerService) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput, actorName string) (*RecordResponse, error) {
	r, err := s.deploymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.UpdateStatus(input.Status, input.Notes); err != nil {
		return nil, err
	}

	if err := s.deploymentRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("Deployment status updated",
		zap.String("record_id", id.String()),
		zap.String("status", input.Status),
		zap.String("updated_by", actorName))

	resp := ToRecordResponse(r)
	return &resp, nil
}

func parseTab(tab string) (domain.Tab, error) {
	switch domain.Tab(tab) {
	case domain.TabActive, domain.TabInternalTransfer, domain.TabInactive, domain.TabAll:
		return domain.Tab(tab), nil
	case "":
		return domain.TabAll, nil
	default:
		return "", shared.NewDomainError("INVALID_TAB", "Unknown deployment tab: "+tab)
	}
}

func toRecordFilter(filter RecordListFilter) shared.Filter {
	domainFilter := shared.Filter{
		Search:  filter.Search,
		Filters: make(map[string]interface{}),
	}

	if filter.Client != "" {
		domainFilter.Filters["client"] = filter.Client
	}
	if filter.ToTeam != "" {
		domainFilter.Filters["to_team"] = filter.ToTeam
	}
	if filter.MailStatus != "" {
		domainFilter.Filters["mail_status"] = filter.MailStatus
	}
	if filter.EmpID != "" {
		domainFilter.Filters["candidate_emp_id"] = filter.EmpID
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
