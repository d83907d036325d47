package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/application/pipeline"
)

// LDHandler handles the L&D review view
type LDHandler struct {
	BaseHandler
	ldService *pipeline.LDService
}

// NewLDHandler creates a new L&D handler
func NewLDHandler(ldService *pipeline.LDService) *LDHandler {
	return &LDHandler{
		ldService: ldService,
	}
}

// LDDecisionRequest records an L&D outcome for a candidate. Reason is
// required for rejected and dropped decisions.
type LDDecisionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// List returns the L&D view of the pipeline
func (h *LDHandler) List(c *gin.Context) {
	var q CandidateListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	resps, total, err := h.ldService.List(c.Request.Context(), q.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resps, total, q.Page, q.PageSize)
}

// GetByID returns a single candidate
func (h *LDHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	resp, err := h.ldService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// RecordDecision stores the L&D outcome for a candidate
func (h *LDHandler) RecordDecision(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	var req LDDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.ldService.RecordDecision(c.Request.Context(), id, req.Status, req.Reason, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// SendToDelivery routes selected candidates onward to Delivery and reports
// the moved counts per experience bucket
func (h *LDHandler) SendToDelivery(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	ids, err := parseIDs(req.IDs)
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID in batch")
		return
	}

	result, err := h.ldService.SendToDelivery(c.Request.Context(), ids, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
