package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/candidate"
	"github.com/talentflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// bulkApply loads the requested candidates and applies transition to each,
// saving only the ones that changed. Transitions that fail their guard are
// skipped rather than failing the batch. Zero modifications surface as a
// user-facing error carrying noneMessage.
func bulkApply(
	ctx context.Context,
	repo candidate.Repository,
	logger *zap.Logger,
	ids []uuid.UUID,
	noneMessage string,
	transition func(*candidate.Candidate) error,
) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, shared.NewDomainError("NONE_MODIFIED", noneMessage)
	}

	candidates, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := &BulkResult{Requested: len(ids)}
	for i := range candidates {
		c := &candidates[i]
		if err := transition(c); err != nil {
			logger.Debug("Bulk transition skipped candidate",
				zap.String("candidate_id", c.ID.String()),
				zap.Error(err))
			continue
		}
		if err := repo.Save(ctx, c); err != nil {
			return nil, err
		}
		result.Modified++
		result.ModifiedIDs = append(result.ModifiedIDs, c.ID)
	}

	if result.Modified == 0 {
		return nil, shared.NewDomainError("NONE_MODIFIED", noneMessage)
	}

	return result, nil
}
