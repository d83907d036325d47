package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/candidate"
)

// getActor builds the acting employee stamp from JWT claims
func getActor(c *gin.Context) (candidate.Actor, error) {
	id, err := getEmployeeID(c)
	if err != nil {
		return candidate.Actor{}, err
	}
	return candidate.Actor{ID: id, Name: getEmployeeName(c)}, nil
}

// parseIDs converts a list of string UUIDs, rejecting the whole batch on
// the first malformed entry
func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
