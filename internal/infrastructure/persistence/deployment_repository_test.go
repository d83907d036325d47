package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/backend/internal/domain/deployment"
	"github.com/talentflow/backend/internal/domain/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDeploymentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&deployment.Record{})
	require.NoError(t, err)

	return db
}

// storedRecord creates and saves a deployment record for a fresh candidate
func storedRecord(t *testing.T, repo *GormDeploymentRepository, n int) *deployment.Record {
	t.Helper()

	rec, err := deployment.NewRecord(uuid.New(), deployment.NoticeInput{
		CandidateName:   fmt.Sprintf("Candidate %d", n),
		CandidateEmpID:  fmt.Sprintf("EMP2%02d", n),
		Email:           fmt.Sprintf("candidate%d@talentflow.example", n),
		Client:          "Acme Corp",
		ToTeam:          "Platform",
		EmailSubject:    "Deployment Notice",
		RecipientEmails: []string{fmt.Sprintf("candidate%d@talentflow.example", n)},
	}, deployment.Sender{
		ID:        uuid.New(),
		Name:      "Arun Vishwa",
		FromEmail: "delivery@talentflow.example",
	}, deployment.MailResults{Successful: 1, Failed: 0, Total: 1})
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), rec))
	return rec
}

func TestGormDeploymentRepository_FindByID(t *testing.T) {
	db := setupDeploymentTestDB(t)
	repo := NewGormDeploymentRepository(db)
	ctx := context.Background()

	rec := storedRecord(t, repo, 1)

	found, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.CandidateEmpID, found.CandidateEmpID)
	assert.Equal(t, deployment.MailSent, found.MailStatus)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.Equal(t, shared.ErrNotFound, err)
}

func TestGormDeploymentRepository_FindByCandidateID(t *testing.T) {
	db := setupDeploymentTestDB(t)
	repo := NewGormDeploymentRepository(db)
	ctx := context.Background()

	rec := storedRecord(t, repo, 2)

	t.Run("finds the ledger row for a candidate", func(t *testing.T) {
		found, err := repo.FindByCandidateID(ctx, rec.CandidateID)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, found.ID)
	})

	t.Run("returns ErrNotFound before the first notice", func(t *testing.T) {
		_, err := repo.FindByCandidateID(ctx, uuid.New())
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormDeploymentRepository_FindForTab(t *testing.T) {
	db := setupDeploymentTestDB(t)
	repo := NewGormDeploymentRepository(db)
	ctx := context.Background()

	active := storedRecord(t, repo, 10)

	exited := storedRecord(t, repo, 11)
	require.NoError(t, exited.ProcessExit("Resigned for a better offer", uuid.New(), "Meena Iyer"))
	require.NoError(t, repo.Save(ctx, exited))

	transferred := storedRecord(t, repo, 12)
	transferDate := time.Now()
	require.NoError(t, transferred.RecordInternalTransfer(transferDate))
	require.NoError(t, repo.Save(ctx, transferred))

	filter := shared.DefaultFilter()
	filter.PageSize = 50

	idsOf := func(records []deployment.Record) []uuid.UUID {
		ids := make([]uuid.UUID, 0, len(records))
		for _, r := range records {
			ids = append(ids, r.ID)
		}
		return ids
	}

	t.Run("active tab excludes exits and transfers", func(t *testing.T) {
		found, err := repo.FindForTab(ctx, deployment.TabActive, filter)
		require.NoError(t, err)
		ids := idsOf(found)
		assert.Contains(t, ids, active.ID)
		assert.NotContains(t, ids, exited.ID)
		assert.NotContains(t, ids, transferred.ID)
	})

	t.Run("inactive tab shows exited records", func(t *testing.T) {
		found, err := repo.FindForTab(ctx, deployment.TabInactive, filter)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, exited.ID, found[0].ID)
	})

	t.Run("internal transfer tab shows transferred records", func(t *testing.T) {
		found, err := repo.FindForTab(ctx, deployment.TabInternalTransfer, filter)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, transferred.ID, found[0].ID)
	})

	t.Run("all tab shows everything", func(t *testing.T) {
		found, err := repo.FindForTab(ctx, deployment.TabAll, filter)
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("counts match tab scopes", func(t *testing.T) {
		count, err := repo.CountForTab(ctx, deployment.TabActive, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("lowercase inactive status counts as inactive", func(t *testing.T) {
		lower := storedRecord(t, repo, 13)
		require.NoError(t, lower.UpdateStatus("inactive", ""))
		require.NoError(t, repo.Save(ctx, lower))

		count, err := repo.CountForTab(ctx, deployment.TabInactive, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestGormDeploymentRepository_Filters(t *testing.T) {
	db := setupDeploymentTestDB(t)
	repo := NewGormDeploymentRepository(db)
	ctx := context.Background()

	rec := storedRecord(t, repo, 20)
	storedRecord(t, repo, 21)

	t.Run("filters by candidate empID", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["candidate_emp_id"] = "EMP220"

		found, err := repo.FindForTab(ctx, deployment.TabAll, filter)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, rec.ID, found[0].ID)
	})

	t.Run("counts all records", func(t *testing.T) {
		count, err := repo.Count(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
