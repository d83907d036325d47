package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/application/pipeline"
)

// HRTagHandler handles the HR Tag intake view
type HRTagHandler struct {
	BaseHandler
	hrtagService *pipeline.HRTagService
}

// NewHRTagHandler creates a new HR Tag handler
func NewHRTagHandler(hrtagService *pipeline.HRTagService) *HRTagHandler {
	return &HRTagHandler{
		hrtagService: hrtagService,
	}
}

// SubmitCandidateRequest is the candidate intake request body
type SubmitCandidateRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Gender          string `json:"gender"`
	FatherName      string `json:"father_name"`
	FirstGraduate   string `json:"first_graduate"`
	ExperienceLevel string `json:"experience_level" binding:"required"`
	Source          string `json:"source" binding:"required"`
	ReferenceName   string `json:"reference_name"`
	Native          string `json:"native"`
	MobileNumber    string `json:"mobile_number" binding:"required,mobile"`
	PersonalEmail   string `json:"personal_email" binding:"required,email"`
	College         string `json:"college"`
	BatchLabel      string `json:"batch_label"`
	Year            int    `json:"year"`
	LinkedinURL     string `json:"linkedin_url"`
	ResumeFileName  string `json:"resume_file_name"`
	ResumePath      string `json:"resume_path"`
}

// UpdateNotesRequest is the notes update request body
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateResumeRequest is the resume attachment request body
type UpdateResumeRequest struct {
	FileName string `json:"file_name" binding:"required"`
	Path     string `json:"path" binding:"required"`
}

// Submit registers a new candidate into the pipeline
func (h *HRTagHandler) Submit(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SubmitCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.hrtagService.Submit(c.Request.Context(), pipeline.SubmitCandidateInput{
		FullName:        req.FullName,
		Gender:          req.Gender,
		FatherName:      req.FatherName,
		FirstGraduate:   req.FirstGraduate,
		ExperienceLevel: req.ExperienceLevel,
		Source:          req.Source,
		ReferenceName:   req.ReferenceName,
		Native:          req.Native,
		MobileNumber:    req.MobileNumber,
		PersonalEmail:   req.PersonalEmail,
		College:         req.College,
		BatchLabel:      req.BatchLabel,
		Year:            req.Year,
		LinkedinURL:     req.LinkedinURL,
		ResumeFileName:  req.ResumeFileName,
		ResumePath:      req.ResumePath,
	}, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns the HR Tag view of the pipeline
func (h *HRTagHandler) List(c *gin.Context) {
	var q CandidateListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	resps, total, err := h.hrtagService.List(c.Request.Context(), q.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resps, total, q.Page, q.PageSize)
}

// GetByID returns a single candidate
func (h *HRTagHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	resp, err := h.hrtagService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// SendToOps routes the selected candidates to HR Ops
func (h *HRTagHandler) SendToOps(c *gin.Context) {
	h.bulk(c, h.hrtagService.SendToOps)
}

// RouteToOpsForPermanentID sends deployed candidates back to HR Ops for
// permanent employee ID issuance
func (h *HRTagHandler) RouteToOpsForPermanentID(c *gin.Context) {
	h.bulk(c, h.hrtagService.RouteToOpsForPermanentID)
}

// UpdateNotes updates the free-form notes on a candidate
func (h *HRTagHandler) UpdateNotes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.hrtagService.UpdateNotes(c.Request.Context(), id, req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateResume attaches an uploaded resume to a candidate
func (h *HRTagHandler) UpdateResume(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.hrtagService.UpdateResume(c.Request.Context(), id, req.FileName, req.Path)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

func (h *HRTagHandler) bulk(c *gin.Context, op bulkOp) {
	runBulk(c, &h.BaseHandler, op)
}
