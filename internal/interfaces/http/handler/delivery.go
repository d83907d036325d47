package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/application/pipeline"
)

// DeliveryHandler handles the Delivery allocation view
type DeliveryHandler struct {
	BaseHandler
	deliveryService *pipeline.DeliveryService
}

// NewDeliveryHandler creates a new Delivery handler
func NewDeliveryHandler(deliveryService *pipeline.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryService: deliveryService,
	}
}

// UpdateAllocationRequest is the allocation update request body
type UpdateAllocationRequest struct {
	AllocationStatus string `json:"allocation_status" binding:"required"`
	Notes            string `json:"notes"`
	Project          string `json:"project"`
	Team             string `json:"team"`
}

// List returns the Delivery view of the pipeline
func (h *DeliveryHandler) List(c *gin.Context) {
	var q CandidateListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	resps, total, err := h.deliveryService.List(c.Request.Context(), q.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resps, total, q.Page, q.PageSize)
}

// GetByID returns a single candidate
func (h *DeliveryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	resp, err := h.deliveryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateAllocation records the bench or deployment allocation of a candidate
func (h *DeliveryHandler) UpdateAllocation(c *gin.Context) {
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

	var req UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.deliveryService.UpdateAllocation(c.Request.Context(), id, pipeline.UpdateAllocationInput{
		AllocationStatus: req.AllocationStatus,
		Notes:            req.Notes,
		Project:          req.Project,
		Team:             req.Team,
	}, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// SendToHRTagAsDeployed routes deployed candidates back to HR Tag
func (h *DeliveryHandler) SendToHRTagAsDeployed(c *gin.Context) {
	runBulk(c, &h.BaseHandler, h.deliveryService.SendToHRTagAsDeployed)
}
