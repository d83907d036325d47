package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/application/pipeline"
	"github.com/talentflow/backend/internal/domain/candidate"
)

// HROpsHandler handles the HR Ops identity-issuance view
type HROpsHandler struct {
	BaseHandler
	hropsService *pipeline.HROpsService
}

// NewHROpsHandler creates a new HR Ops handler
func NewHROpsHandler(hropsService *pipeline.HROpsService) *HROpsHandler {
	return &HROpsHandler{
		hropsService: hropsService,
	}
}

// AssignIdentityRequest carries a single issued identity value
type AssignIdentityRequest struct {
	Value string `json:"value" binding:"required"`
}

// List returns the HR Ops view of the pipeline
func (h *HROpsHandler) List(c *gin.Context) {
	var q CandidateListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	resps, total, err := h.hropsService.List(c.Request.Context(), q.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resps, total, q.Page, q.PageSize)
}

// GetByID returns a single candidate
func (h *HROpsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	resp, err := h.hropsService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// AssignOfficeEmail issues an office email to a candidate
func (h *HROpsHandler) AssignOfficeEmail(c *gin.Context) {
	h.assign(c, h.hropsService.AssignOfficeEmail)
}

// AssignEmployeeID issues a trainee employee ID to a candidate
func (h *HROpsHandler) AssignEmployeeID(c *gin.Context) {
	h.assign(c, h.hropsService.AssignEmployeeID)
}

// AssignPermanentID issues a permanent employee ID to a deployed candidate
func (h *HROpsHandler) AssignPermanentID(c *gin.Context) {
	h.assign(c, h.hropsService.AssignPermanentID)
}

// SendToLD routes the selected candidates to the L&D review queue only
func (h *HROpsHandler) SendToLD(c *gin.Context) {
	runBulk(c, &h.BaseHandler, h.hropsService.SendToLD)
}

// SendToAdmin routes the selected candidates to the Admin desk only
func (h *HROpsHandler) SendToAdmin(c *gin.Context) {
	runBulk(c, &h.BaseHandler, h.hropsService.SendToAdmin)
}

// SendToAdminAndLD routes the selected candidates to Admin and L&D together
func (h *HROpsHandler) SendToAdminAndLD(c *gin.Context) {
	runBulk(c, &h.BaseHandler, h.hropsService.SendToAdminAndLD)
}

// SendToDelivery routes the selected candidates to Delivery
func (h *HROpsHandler) SendToDelivery(c *gin.Context) {
	runBulk(c, &h.BaseHandler, h.hropsService.SendToDelivery)
}

// SendToDeliveryPermanent routes permanent-ID candidates back to Delivery
func (h *HROpsHandler) SendToDeliveryPermanent(c *gin.Context) {
	runBulk(c, &h.BaseHandler, h.hropsService.SendToDeliveryPermanent)
}

type assignOp func(ctx context.Context, id uuid.UUID, value string, actor candidate.Actor) (*pipeline.CandidateResponse, error)

func (h *HROpsHandler) assign(c *gin.Context, op assignOp) {
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

	var req AssignIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := op(c.Request.Context(), id, req.Value, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
