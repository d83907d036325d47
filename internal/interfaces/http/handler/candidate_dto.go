package handler

import (
	"github.com/talentflow/backend/internal/application/pipeline"
)

// CandidateListQuery is the candidate list query string shared by the
// pipeline team views
type CandidateListQuery struct {
	Search          string `form:"search"`
	Status          string `form:"status"`
	LDStatus        string `form:"ld_status"`
	ExperienceLevel string `form:"experience_level"`
	BatchLabel      string `form:"batch_label"`
	Year            int    `form:"year"`
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
	SortBy          string `form:"sort_by"`
	SortDesc        bool   `form:"sort_desc"`
}

func (q CandidateListQuery) toFilter() pipeline.CandidateListFilter {
	return pipeline.CandidateListFilter{
		Search:          q.Search,
		Status:          q.Status,
		LDStatus:        q.LDStatus,
		ExperienceLevel: q.ExperienceLevel,
		BatchLabel:      q.BatchLabel,
		Year:            q.Year,
		Page:            q.Page,
		PageSize:        q.PageSize,
		SortBy:          q.SortBy,
		SortDesc:        q.SortDesc,
	}
}

// BulkIDsRequest is the request body for bulk pipeline routing operations
type BulkIDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
