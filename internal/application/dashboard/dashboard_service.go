// Package dashboard serves the read-only counts and stage breakdowns
// shown on the team dashboards. It writes nothing.
package dashboard

import (
	"context"

	"github.com/talentflow/backend/internal/domain/candidate"
	"github.com/talentflow/backend/internal/domain/deployment"
	"github.com/talentflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PipelineOverviewResponse holds per-team candidate counts
type PipelineOverviewResponse struct {
	HRTag           int64 `json:"hr_tag"`
	HROps           int64 `json:"hr_ops"`
	LD              int64 `json:"ld"`
	Delivery        int64 `json:"delivery"`
	Admin           int64 `json:"admin"`
	TotalCandidates int64 `json:"total_candidates"`
}

// StageBucket is one slice of a team view's stage breakdown
type StageBucket struct {
	Stage string `json:"stage"`
	Count int64  `json:"count"`
}

// TeamViewStatsResponse holds a team view's total and stage breakdown
type TeamViewStatsResponse struct {
	View   string        `json:"view"`
	Total  int64         `json:"total"`
	Stages []StageBucket `json:"stages"`
}

// LDStatsResponse holds the L&D review queue broken down by decision
type LDStatsResponse struct {
	Pending  int64 `json:"pending"`
	Selected int64 `json:"selected"`
	Rejected int64 `json:"rejected"`
	Dropped  int64 `json:"dropped"`
	Total    int64 `json:"total"`
}

// DeploymentOverviewResponse holds the deployment ledger tab counts
type DeploymentOverviewResponse struct {
	Active           int64 `json:"active"`
	InternalTransfer int64 `json:"internal_transfer"`
	Inactive         int64 `json:"inactive"`
	Total            int64 `json:"total"`
}

// stageOrder fixes the display order of stage buckets
var stageOrder = []candidate.Stage{
	candidate.StageSubmitted,
	candidate.StageOpsProcessing,
	candidate.StageAdminReview,
	candidate.StageLDReview,
	candidate.StageDelivery,
	candidate.StageLDRejected,
	candidate.StageLDDropped,
}

// Service answers dashboard queries over the candidate and deployment stores
type Service struct {
	candidateRepo  candidate.Repository
	deploymentRepo deployment.Repository
	logger         *zap.Logger
}

// NewService creates a new dashboard Service
func NewService(candidateRepo candidate.Repository, deploymentRepo deployment.Repository, logger *zap.Logger) *Service {
	return &Service{
		candidateRepo:  candidateRepo,
		deploymentRepo: deploymentRepo,
		logger:         logger,
	}
}

// PipelineOverview counts the candidates visible on each team view
func (s *Service) PipelineOverview(ctx context.Context) (*PipelineOverviewResponse, error) {
	overview := &PipelineOverviewResponse{}

	counts := []struct {
		view candidate.View
		dst  *int64
	}{
		{candidate.ViewHRTag, &overview.HRTag},
		{candidate.ViewHROps, &overview.HROps},
		{candidate.ViewLD, &overview.LD},
		{candidate.ViewDelivery, &overview.Delivery},
		{candidate.ViewAdmin, &overview.Admin},
	}
	for _, c := range counts {
		count, err := s.candidateRepo.CountForView(ctx, c.view, shared.Filter{})
		if err != nil {
			return nil, err
		}
		*c.dst = count
	}

	total, err := s.candidateRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	overview.TotalCandidates = total

	return overview, nil
}

// TeamViewStats breaks a team view down by derived pipeline stage
func (s *Service) TeamViewStats(ctx context.Context, view string) (*TeamViewStatsResponse, error) {
	domainView, err := parseView(view)
	if err != nil {
		return nil, err
	}

	candidates, err := s.candidateRepo.FindForView(ctx, domainView, shared.Filter{})
	if err != nil {
		return nil, err
	}

	byStage := make(map[candidate.Stage]int64)
	for i := range candidates {
		byStage[candidates[i].CurrentStage()]++
	}

	stages := make([]StageBucket, 0, len(stageOrder))
	for _, stage := range stageOrder {
		stages = append(stages, StageBucket{Stage: string(stage), Count: byStage[stage]})
	}

	return &TeamViewStatsResponse{
		View:   string(domainView),
		Total:  int64(len(candidates)),
		Stages: stages,
	}, nil
}

// LDStats counts the L&D queue by decision. Candidates with a blank
// decision count as pending.
func (s *Service) LDStats(ctx context.Context) (*LDStatsResponse, error) {
	stats := &LDStatsResponse{}

	pending, err := s.candidateRepo.CountForView(ctx, candidate.ViewLD, filterBy("ld_pending", true))
	if err != nil {
		return nil, err
	}
	stats.Pending = pending

	decisions := []struct {
		status candidate.LDStatus
		dst    *int64
	}{
		{candidate.LDSelected, &stats.Selected},
		{candidate.LDRejected, &stats.Rejected},
		{candidate.LDDropped, &stats.Dropped},
	}
	for _, d := range decisions {
		count, err := s.candidateRepo.CountForView(ctx, candidate.ViewLD, filterBy("ld_status", string(d.status)))
		if err != nil {
			return nil, err
		}
		*d.dst = count
	}

	total, err := s.candidateRepo.CountForView(ctx, candidate.ViewLD, shared.Filter{})
	if err != nil {
		return nil, err
	}
	stats.Total = total

	return stats, nil
}

// DeploymentOverview counts the deployment ledger tabs
func (s *Service) DeploymentOverview(ctx context.Context) (*DeploymentOverviewResponse, error) {
	overview := &DeploymentOverviewResponse{}

	tabs := []struct {
		tab deployment.Tab
		dst *int64
	}{
		{deployment.TabActive, &overview.Active},
		{deployment.TabInternalTransfer, &overview.InternalTransfer},
		{deployment.TabInactive, &overview.Inactive},
	}
	for _, t := range tabs {
		count, err := s.deploymentRepo.CountForTab(ctx, t.tab, shared.Filter{})
		if err != nil {
			return nil, err
		}
		*t.dst = count
	}

	total, err := s.deploymentRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	overview.Total = total

	return overview, nil
}

func parseView(view string) (candidate.View, error) {
	switch candidate.View(view) {
	case candidate.ViewHRTag, candidate.ViewHROps, candidate.ViewLD, candidate.ViewDelivery, candidate.ViewAdmin:
		return candidate.View(view), nil
	default:
		return "", shared.NewDomainError("INVALID_VIEW", "Unknown team view: "+view)
	}
}

func filterBy(key string, value interface{}) shared.Filter {
	return shared.Filter{Filters: map[string]interface{}{key: value}}
}
