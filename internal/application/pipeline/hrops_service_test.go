package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/backend/internal/application/registry"
	"github.com/talentflow/backend/internal/domain/candidate"
	"github.com/talentflow/backend/internal/domain/employee"
	"github.com/talentflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

func seedSentCandidate(t *testing.T, repo *fakeCandidateRepo, email, mobile string) *candidate.Candidate {
	t.Helper()

	c, err := candidate.NewCandidate(candidate.NewCandidateInput{
		FullName:        "Meena Iyer",
		Gender:          "Female",
		ExperienceLevel: candidate.ExperienceFresher,
		Source:          candidate.SourceCampus,
		MobileNumber:    mobile,
		PersonalEmail:   email,
		College:         "Anna University",
	}, testActor())
	require.NoError(t, err)
	require.NoError(t, c.SendToOps(testActor()))
	require.NoError(t, repo.Save(context.Background(), c))
	return c
}

// seedPermanentIDReady walks a candidate through the full deployment loop so
// the permanent ID route is open
func seedPermanentIDReady(t *testing.T, repo *fakeCandidateRepo, email, mobile string) *candidate.Candidate {
	t.Helper()
	actor := testActor()

	c := seedSentCandidate(t, repo, email, mobile)
	require.NoError(t, c.UpdateLDDecision(candidate.LDSelected, "", actor))
	require.NoError(t, c.SendToDeliveryFromLD(actor))
	require.NoError(t, c.MarkDeployedToHRTag(actor))
	require.NoError(t, c.RouteToOpsForPermanentID(actor))
	require.NoError(t, repo.Save(context.Background(), c))
	return c
}

func TestHROpsService_AssignIdentities(t *testing.T) {
	ctx := context.Background()
	actor := testActor()

	t.Run("employee ID is normalized to uppercase", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

		c := seedSentCandidate(t, repo, "meena@example.com", "9100000001")

		resp, err := svc.AssignEmployeeID(ctx, c.ID, "emp101", actor)
		require.NoError(t, err)
		assert.Equal(t, "EMP101", resp.EmployeeID.Value)
	})

	t.Run("office email is normalized to lowercase", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

		c := seedSentCandidate(t, repo, "meena@example.com", "9100000001")

		resp, err := svc.AssignOfficeEmail(ctx, c.ID, "Meena.Iyer@Corp.Example", actor)
		require.NoError(t, err)
		assert.Equal(t, "meena.iyer@corp.example", resp.OfficeEmail.Value)
	})

	t.Run("submitted candidates cannot receive identities", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

		c, err := candidate.NewCandidate(candidate.NewCandidateInput{
			FullName:        "Meena Iyer",
			Gender:          "Female",
			ExperienceLevel: candidate.ExperienceFresher,
			Source:          candidate.SourceWalkIn,
			MobileNumber:    "9100000002",
			PersonalEmail:   "early@example.com",
		}, actor)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))

		_, err = svc.AssignEmployeeID(ctx, c.ID, "EMP102", actor)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})

	t.Run("value held by another candidate is rejected", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

		holder := seedSentCandidate(t, repo, "holder@example.com", "9100000003")
		_, err := svc.AssignEmployeeID(ctx, holder.ID, "EMP103", actor)
		require.NoError(t, err)

		other := seedSentCandidate(t, repo, "other@example.com", "9100000004")
		_, err = svc.AssignEmployeeID(ctx, other.ID, "EMP103", actor)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "IDENTITY_CONFLICT", domainErr.Code)
	})

	t.Run("value held by an employee is rejected", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		employeeRepo := newFakeEmployeeRepo()
		reg := registry.NewService(repo, employeeRepo, zap.NewNop())
		svc := NewHROpsService(repo, reg, zap.NewNop())

		emp, err := employee.NewEmployee("EMP104", "Suresh Babu", "secret-password", employee.TeamIT)
		require.NoError(t, err)
		require.NoError(t, employeeRepo.Save(ctx, emp))

		c := seedSentCandidate(t, repo, "clash@example.com", "9100000005")
		_, err = svc.AssignEmployeeID(ctx, c.ID, "EMP104", actor)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "IDENTITY_CONFLICT", domainErr.Code)
	})

	t.Run("permanent ID needs the ops route open", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

		notRouted := seedSentCandidate(t, repo, "soon@example.com", "9100000006")
		_, err := svc.AssignPermanentID(ctx, notRouted.ID, "PERM1001", actor)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)

		routed := seedPermanentIDReady(t, repo, "ready@example.com", "9100000007")
		resp, err := svc.AssignPermanentID(ctx, routed.ID, "perm1002", actor)
		require.NoError(t, err)
		assert.Equal(t, "PERM1002", resp.PermanentID.Value)
	})
}

func TestHROpsService_SendToDelivery(t *testing.T) {
	ctx := context.Background()
	actor := testActor()

	t.Run("requires both identity assignments", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

		c := seedSentCandidate(t, repo, "bare@example.com", "9100000010")

		_, err := svc.SendToDelivery(ctx, []uuid.UUID{c.ID}, actor)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NONE_MODIFIED", domainErr.Code)
	})

	t.Run("releases fully provisioned candidates", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

		c := seedSentCandidate(t, repo, "full@example.com", "9100000011")
		_, err := svc.AssignOfficeEmail(ctx, c.ID, "full@corp.example", actor)
		require.NoError(t, err)
		_, err = svc.AssignEmployeeID(ctx, c.ID, "EMP110", actor)
		require.NoError(t, err)

		result, err := svc.SendToDelivery(ctx, []uuid.UUID{c.ID}, actor)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Modified)

		saved, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, saved.SentToDelivery.Done)
	})
}

func TestHROpsService_SendToDeliveryPermanent(t *testing.T) {
	ctx := context.Background()
	actor := testActor()

	repo := newFakeCandidateRepo()
	svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

	c := seedPermanentIDReady(t, repo, "perm@example.com", "9100000012")
	_, err := svc.AssignPermanentID(ctx, c.ID, "PERM2001", actor)
	require.NoError(t, err)

	result, err := svc.SendToDeliveryPermanent(ctx, []uuid.UUID{c.ID}, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Modified)

	saved, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, saved.SentToDelivery.Done)
}

func TestHROpsService_SendToAdminAndLD(t *testing.T) {
	ctx := context.Background()
	actor := testActor()

	t.Run("sets both stamps", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

		c := seedSentCandidate(t, repo, "both@example.com", "9100000013")

		result, err := svc.SendToAdminAndLD(ctx, []uuid.UUID{c.ID}, actor)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Modified)

		saved, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, saved.SentToAdmin.Done)
		assert.True(t, saved.SentToLD.Done)
	})

	t.Run("fills in the missing stamp only", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

		c := seedSentCandidate(t, repo, "half@example.com", "9100000014")
		require.NoError(t, c.MarkSentToAdmin(actor))
		require.NoError(t, repo.Save(ctx, c))

		result, err := svc.SendToAdminAndLD(ctx, []uuid.UUID{c.ID}, actor)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Modified)

		saved, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, saved.SentToLD.Done)
	})

	t.Run("fully stamped candidates do not move", func(t *testing.T) {
		repo := newFakeCandidateRepo()
		svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

		c := seedSentCandidate(t, repo, "done@example.com", "9100000015")
		_, err := svc.SendToAdminAndLD(ctx, []uuid.UUID{c.ID}, actor)
		require.NoError(t, err)

		_, err = svc.SendToAdminAndLD(ctx, []uuid.UUID{c.ID}, actor)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NONE_MODIFIED", domainErr.Code)
	})
}

func TestHROpsService_SendToLD(t *testing.T) {
	ctx := context.Background()
	actor := testActor()

	repo := newFakeCandidateRepo()
	svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

	c := seedSentCandidate(t, repo, "ld@example.com", "9100000017")

	result, err := svc.SendToLD(ctx, []uuid.UUID{c.ID}, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Modified)

	saved, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, saved.SentToLD.Done)

	_, err = svc.SendToLD(ctx, []uuid.UUID{c.ID}, actor)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NONE_MODIFIED", domainErr.Code)
}

func TestHROpsService_SendToAdmin(t *testing.T) {
	ctx := context.Background()
	actor := testActor()

	repo := newFakeCandidateRepo()
	svc := NewHROpsService(repo, newTestRegistry(repo), zap.NewNop())

	c := seedSentCandidate(t, repo, "admin@example.com", "9100000016")

	result, err := svc.SendToAdmin(ctx, []uuid.UUID{c.ID}, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Modified)

	_, err = svc.SendToAdmin(ctx, []uuid.UUID{c.ID}, actor)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NONE_MODIFIED", domainErr.Code)
}
