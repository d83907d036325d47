package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/application/pipeline"
	"github.com/talentflow/backend/internal/domain/candidate"
)

// bulkOp is the shape shared by every bulk pipeline routing operation
type bulkOp func(ctx context.Context, ids []uuid.UUID, actor candidate.Actor) (*pipeline.BulkResult, error)

// runBulk binds the shared bulk request body and executes the operation
func runBulk(c *gin.Context, h *BaseHandler, op bulkOp) {
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

	result, err := op(c.Request.Context(), ids, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
