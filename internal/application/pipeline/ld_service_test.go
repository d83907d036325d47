package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/backend/internal/domain/candidate"
	"github.com/talentflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

func TestLDService_RecordDecision(t *testing.T) {
	ctx := context.Background()
	actor := testActor()

	t.Run("selected keeps the candidate in the pipeline", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewLDService(repo, zap.NewNop())

		c := seedSentCandidate(t, repo, "sel@example.com", "9200000001")

		resp, err := svc.RecordDecision(ctx, c.ID, "Selected", "", actor)
		require.NoError(t, err)
		assert.Equal(t, "Selected", resp.LDStatus)
		assert.False(t, resp.RoutedToHRTag)
		assert.False(t, resp.RoutedToAdmin)
	})

	t.Run("rejected fans out to the review queues", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewLDService(repo, zap.NewNop())

		c := seedSentCandidate(t, repo, "rej@example.com", "9200000002")

		resp, err := svc.RecordDecision(ctx, c.ID, "Rejected", "Low Score", actor)
		require.NoError(t, err)
		assert.Equal(t, "Rejected", resp.LDStatus)
		assert.Equal(t, "Low Score", resp.LDReason)
		assert.True(t, resp.RoutedToHRTag)
		assert.True(t, resp.RoutedToHROps)
		assert.True(t, resp.RoutedToAdmin)
		assert.Equal(t, "L&D Rejected", resp.RoutingReason)

		saved, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, saved.SentToHRTag.Done)
		assert.True(t, saved.SentToAdmin.Done)
	})

	t.Run("dropped carries its own routing reason", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewLDService(repo, zap.NewNop())

		c := seedSentCandidate(t, repo, "drop@example.com", "9200000003")

		resp, err := svc.RecordDecision(ctx, c.ID, "Dropped", "Abscond", actor)
		require.NoError(t, err)
		assert.Equal(t, "L&D Dropped", resp.RoutingReason)
	})

	t.Run("rejected without a reason is refused", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewLDService(repo, zap.NewNop())

		c := seedSentCandidate(t, repo, "why@example.com", "9200000004")

		_, err := svc.RecordDecision(ctx, c.ID, "Rejected", "", actor)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "LD_REASON_REQUIRED", domainErr.Code)
	})

	t.Run("reasons outside the known set are refused", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewLDService(repo, zap.NewNop())

		c := seedSentCandidate(t, repo, "odd@example.com", "9200000005")

		_, err := svc.RecordDecision(ctx, c.ID, "Rejected", "Vibes", actor)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_LD_REASON", domainErr.Code)
	})

	t.Run("unknown statuses are refused", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewLDService(repo, zap.NewNop())

		c := seedSentCandidate(t, repo, "bad@example.com", "9200000006")

		_, err := svc.RecordDecision(ctx, c.ID, "Shortlisted", "", actor)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_LD_STATUS", domainErr.Code)
	})

	t.Run("unknown candidate returns not found", func(t *testing.T) {
		svc := NewLDService(newFakeCandidateRepo(), zap.NewNop())

		_, err := svc.RecordDecision(ctx, uuid.New(), "Selected", "", actor)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestLDService_SendToDelivery(t *testing.T) {
	ctx := context.Background()
	actor := testActor()

	t.Run("only selected candidates move", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewLDService(repo, zap.NewNop())

		selected := seedSentCandidate(t, repo, "go@example.com", "9200000010")
		require.NoError(t, selected.UpdateLDDecision(candidate.LDSelected, "", actor))
		require.NoError(t, repo.Save(ctx, selected))

		pending := seedSentCandidate(t, repo, "wait@example.com", "9200000011")

		result, err := svc.SendToDelivery(ctx, []uuid.UUID{selected.ID, pending.ID}, actor)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Requested)
		assert.Equal(t, 1, result.Modified)
		assert.Equal(t, []uuid.UUID{selected.ID}, result.ModifiedIDs)
		assert.Equal(t, 1, result.Freshers)
		assert.Equal(t, 0, result.Laterals)

		saved, err := repo.FindByID(ctx, selected.ID)
		require.NoError(t, err)
		assert.True(t, saved.SentToDelivery.Done)
	})

	t.Run("laterals enter the allocation queue", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewLDService(repo, zap.NewNop())

		c, err := candidate.NewCandidate(candidate.NewCandidateInput{
			FullName:        "Arjun Menon",
			Gender:          "Male",
			ExperienceLevel: candidate.ExperienceLateral,
			Source:          candidate.SourceWalkIn,
			MobileNumber:    "9200000012",
			PersonalEmail:   "lateral@example.com",
		}, actor)
		require.NoError(t, err)
		require.NoError(t, c.SendToOps(actor))
		require.NoError(t, c.UpdateLDDecision(candidate.LDSelected, "", actor))
		require.NoError(t, repo.Save(ctx, c))

		result, err := svc.SendToDelivery(ctx, []uuid.UUID{c.ID}, actor)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Modified)
		assert.Equal(t, 0, result.Freshers)
		assert.Equal(t, 1, result.Laterals)

		saved, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, candidate.AllocationPending, saved.AllocationStatus)
	})

	t.Run("mixed batch reports both buckets", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewLDService(repo, zap.NewNop())

		fresher := seedSentCandidate(t, repo, "fresher@example.com", "9200000014")
		require.NoError(t, fresher.UpdateLDDecision(candidate.LDSelected, "", actor))
		require.NoError(t, repo.Save(ctx, fresher))

		lateral, err := candidate.NewCandidate(candidate.NewCandidateInput{
			FullName:        "Divya Nair",
			Gender:          "Female",
			ExperienceLevel: candidate.ExperienceLateral,
			Source:          candidate.SourceWalkIn,
			MobileNumber:    "9200000015",
			PersonalEmail:   "mixed-lateral@example.com",
		}, actor)
		require.NoError(t, err)
		require.NoError(t, lateral.SendToOps(actor))
		require.NoError(t, lateral.UpdateLDDecision(candidate.LDSelected, "", actor))
		require.NoError(t, repo.Save(ctx, lateral))

		result, err := svc.SendToDelivery(ctx, []uuid.UUID{fresher.ID, lateral.ID}, actor)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Modified)
		assert.Equal(t, 1, result.Freshers)
		assert.Equal(t, 1, result.Laterals)
	})

	t.Run("nothing eligible is a user error", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewLDService(repo, zap.NewNop())

		pending := seedSentCandidate(t, repo, "stuck@example.com", "9200000013")

		_, err := svc.SendToDelivery(ctx, []uuid.UUID{pending.ID}, actor)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NONE_MODIFIED", domainErr.Code)
	})
}
