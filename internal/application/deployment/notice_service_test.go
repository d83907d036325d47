package deployment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/backend/internal/domain/candidate"
	domain "github.com/talentflow/backend/internal/domain/deployment"
	"github.com/talentflow/backend/internal/domain/employee"
	"github.com/talentflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// fakeDeploymentRepo is an in-memory deployment.Repository
type fakeDeploymentRepo struct {
	records map[uuid.UUID]*domain.Record
}

func newFakeDeploymentRepo() *fakeDeploymentRepo {
	return &fakeDeploymentRepo{records: make(map[uuid.UUID]*domain.Record)}
}

func (f *fakeDeploymentRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Record, error) {
	if r, ok := f.records[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (f *fakeDeploymentRepo) FindByCandidateID(_ context.Context, candidateID uuid.UUID) (*domain.Record, error) {
	for _, r := range f.records {
		if r.CandidateID == candidateID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeDeploymentRepo) FindForTab(_ context.Context, tab domain.Tab, _ shared.Filter) ([]domain.Record, error) {
	var out []domain.Record
	for _, r := range f.records {
		switch tab {
		case domain.TabActive:
			if !r.IsActive() {
				continue
			}
		case domain.TabInternalTransfer:
			if !r.IsInternalTransfer() {
				continue
			}
		case domain.TabInactive:
			if !r.IsInactive() {
				continue
			}
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeDeploymentRepo) CountForTab(ctx context.Context, tab domain.Tab, filter shared.Filter) (int64, error) {
	records, err := f.FindForTab(ctx, tab, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

func (f *fakeDeploymentRepo) Save(_ context.Context, r *domain.Record) error {
	copied := *r
	f.records[r.ID] = &copied
	return nil
}

func (f *fakeDeploymentRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(f.records)), nil
}

// fakeNoticeCandidateRepo is an in-memory candidate.Repository covering
// the lookups the notice flow needs. Setting saveErr makes every
// subsequent Save fail.
type fakeNoticeCandidateRepo struct {
	candidates map[uuid.UUID]*candidate.Candidate
	saveErr    error
}

func newFakeNoticeCandidateRepo() *fakeNoticeCandidateRepo {
	return &fakeNoticeCandidateRepo{candidates: make(map[uuid.UUID]*candidate.Candidate)}
}

func (f *fakeNoticeCandidateRepo) FindByID(_ context.Context, id uuid.UUID) (*candidate.Candidate, error) {
	if c, ok := f.candidates[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (f *fakeNoticeCandidateRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]candidate.Candidate, error) {
	var out []candidate.Candidate
	for _, id := range ids {
		if c, ok := f.candidates[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeNoticeCandidateRepo) FindByPersonalEmail(_ context.Context, _ string) (*candidate.Candidate, error) {
	return nil, shared.ErrNotFound
}

func (f *fakeNoticeCandidateRepo) FindByMobileNumber(_ context.Context, _ string) (*candidate.Candidate, error) {
	return nil, shared.ErrNotFound
}

func (f *fakeNoticeCandidateRepo) FindHolderOfIdentity(_ context.Context, _ candidate.IdentityKind, _ string, _ uuid.UUID) (*candidate.Candidate, error) {
	return nil, shared.ErrNotFound
}

func (f *fakeNoticeCandidateRepo) FindAll(_ context.Context, _ shared.Filter) ([]candidate.Candidate, error) {
	return nil, nil
}

func (f *fakeNoticeCandidateRepo) FindForView(_ context.Context, _ candidate.View, _ shared.Filter) ([]candidate.Candidate, error) {
	return nil, nil
}

func (f *fakeNoticeCandidateRepo) CountForView(_ context.Context, _ candidate.View, _ shared.Filter) (int64, error) {
	return 0, nil
}

func (f *fakeNoticeCandidateRepo) Save(_ context.Context, c *candidate.Candidate) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *c
	f.candidates[c.ID] = &copied
	return nil
}

func (f *fakeNoticeCandidateRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.candidates[id]; !ok {
		return shared.ErrNotFound
	}
	delete(f.candidates, id)
	return nil
}

func (f *fakeNoticeCandidateRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(f.candidates)), nil
}

// fakeNoticeEmployeeRepo is an in-memory employee.Repository
type fakeNoticeEmployeeRepo struct {
	employees map[uuid.UUID]*employee.Employee
}

func newFakeNoticeEmployeeRepo() *fakeNoticeEmployeeRepo {
	return &fakeNoticeEmployeeRepo{employees: make(map[uuid.UUID]*employee.Employee)}
}

func (f *fakeNoticeEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (f *fakeNoticeEmployeeRepo) FindByEmpID(_ context.Context, empID string) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmpID == empID && !e.Deleted {
			copied := *e
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeNoticeEmployeeRepo) FindByEmail(_ context.Context, email string) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email && !e.Deleted {
			copied := *e
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeNoticeEmployeeRepo) FindActiveDeliveryManager(_ context.Context) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.IsActiveDeliveryManager() {
			copied := *e
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeNoticeEmployeeRepo) ExistsWithIdentity(_ context.Context, _ string) (bool, string, error) {
	return false, "", nil
}

func (f *fakeNoticeEmployeeRepo) FindAll(_ context.Context, _ shared.Filter) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeNoticeEmployeeRepo) Save(_ context.Context, e *employee.Employee) error {
	copied := *e
	f.employees[e.ID] = &copied
	return nil
}

func (f *fakeNoticeEmployeeRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(f.employees)), nil
}

// fakeMailer records the last outbound mail and returns a canned outcome
type fakeMailer struct {
	lastMail OutboundMail
	outcome  SendOutcome
	err      error
	calls    int
}

func (f *fakeMailer) Send(_ context.Context, mail OutboundMail) (SendOutcome, error) {
	f.calls++
	f.lastMail = mail
	if f.err != nil {
		return SendOutcome{}, f.err
	}
	return f.outcome, nil
}

// fakeDedupStore is an in-memory shared.DedupStore
type fakeDedupStore struct {
	keys map[string]bool
	err  error
}

func newFakeDedupStore() *fakeDedupStore {
	return &fakeDedupStore{keys: make(map[string]bool)}
}

func (f *fakeDedupStore) MarkProcessed(_ context.Context, key string, _ time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.keys[key] {
		return false, nil
	}
	f.keys[key] = true
	return true, nil
}

func (f *fakeDedupStore) IsProcessed(_ context.Context, key string) (bool, error) {
	return f.keys[key], f.err
}

func (f *fakeDedupStore) Close() error {
	return nil
}

type noticeFixture struct {
	svc            *NoticeService
	deploymentRepo *fakeDeploymentRepo
	candidateRepo  *fakeNoticeCandidateRepo
	employeeRepo   *fakeNoticeEmployeeRepo
	mailer         *fakeMailer
	dedup          *fakeDedupStore
}

func newNoticeFixture(t *testing.T) *noticeFixture {
	t.Helper()

	f := &noticeFixture{
		deploymentRepo: newFakeDeploymentRepo(),
		candidateRepo:  newFakeNoticeCandidateRepo(),
		employeeRepo:   newFakeNoticeEmployeeRepo(),
		mailer:         &fakeMailer{outcome: SendOutcome{Successful: 2}},
		dedup:          newFakeDedupStore(),
	}
	f.svc = NewNoticeService(
		f.deploymentRepo,
		f.candidateRepo,
		f.employeeRepo,
		f.mailer,
		f.dedup,
		shared.DedupConfig{TTL: time.Minute, Enabled: true},
		zap.NewNop(),
	)
	return f
}

func seedNoticeCandidate(t *testing.T, repo *fakeNoticeCandidateRepo, n int) *candidate.Candidate {
	t.Helper()

	actor := candidate.Actor{ID: uuid.New(), Name: "Meena Iyer"}
	c, err := candidate.NewCandidate(candidate.NewCandidateInput{
		FullName:        "Ravi Kumar",
		Gender:          "Male",
		ExperienceLevel: candidate.ExperienceFresher,
		Source:          candidate.SourceWalkIn,
		MobileNumber:    fmt.Sprintf("90000001%02d", n),
		PersonalEmail:   fmt.Sprintf("notice%d@example.com", n),
	}, actor)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), c))
	return c
}

func seedDeliverySender(t *testing.T, repo *fakeNoticeEmployeeRepo, empID string, manager bool) *employee.Employee {
	t.Helper()

	e, err := employee.NewEmployee(empID, "Arun Vishwa", "secret-password", employee.TeamDelivery)
	require.NoError(t, err)

	cfg := employee.MailConfig{}
	if manager {
		cfg = employee.MailConfig{Email: "arun@corp.example", AppPassword: "app-pass"}
	}
	require.NoError(t, e.GrantMailPermission(manager, cfg))
	require.NoError(t, repo.Save(context.Background(), e))
	return e
}

func noticeInput(candidateID uuid.UUID) SendNoticeInput {
	return SendNoticeInput{
		CandidateID:     candidateID,
		CandidateEmpID:  "EMP200",
		Email:           "ravi@corp.example",
		Client:          "Acme Corp",
		ToTeam:          "Platform",
		EmailSubject:    "Deployment Notice: Ravi Kumar",
		EmailContent:    "<p>Deployment details</p>",
		RecipientEmails: []string{"Manager@acme.example", "hr@acme.example"},
		CCEmails:        []string{"lead@corp.example"},
	}
}

func TestNoticeService_SendNotice(t *testing.T) {
	ctx := context.Background()

	t.Run("manager sends from their own mailbox", func(t *testing.T) {
		f := newNoticeFixture(t)
		c := seedNoticeCandidate(t, f.candidateRepo, 1)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP100", true)

		result, err := f.svc.SendNotice(ctx, noticeInput(c.ID), sender.ID)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Successful)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, "arun@corp.example", f.mailer.lastMail.FromEmail)
		assert.Equal(t, "app-pass", f.mailer.lastMail.AppPassword)

		record := result.Record
		assert.Equal(t, c.ID, record.CandidateID)
		assert.Equal(t, "Sent", record.MailStatus)
		assert.Equal(t, "arun@corp.example", record.SentFromEmail)
		assert.Equal(t, []string{"manager@acme.example", "hr@acme.example"}, record.RecipientEmails)

		saved, err := f.candidateRepo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, saved.DeploymentEmailSent)
		require.NotNil(t, saved.DeploymentRecordID)
		assert.Equal(t, record.ID, *saved.DeploymentRecordID)
	})

	t.Run("non-manager sends through the delivery manager's mailbox", func(t *testing.T) {
		f := newNoticeFixture(t)
		c := seedNoticeCandidate(t, f.candidateRepo, 2)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP101", false)
		seedDeliverySender(t, f.employeeRepo, "EMP102", true)

		result, err := f.svc.SendNotice(ctx, noticeInput(c.ID), sender.ID)
		require.NoError(t, err)

		assert.Equal(t, "arun@corp.example", f.mailer.lastMail.FromEmail)
		assert.Equal(t, sender.Name, result.Record.SentByName)
	})

	t.Run("fails when no mail account is available", func(t *testing.T) {
		f := newNoticeFixture(t)
		c := seedNoticeCandidate(t, f.candidateRepo, 3)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP103", false)

		_, err := f.svc.SendNotice(ctx, noticeInput(c.ID), sender.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivery manager")
		assert.Zero(t, f.mailer.calls)
	})

	t.Run("fails for a sender without mail permission", func(t *testing.T) {
		f := newNoticeFixture(t)
		c := seedNoticeCandidate(t, f.candidateRepo, 4)

		e, err := employee.NewEmployee("EMP104", "Priya Raman", "secret-password", employee.TeamDelivery)
		require.NoError(t, err)
		require.NoError(t, f.employeeRepo.Save(ctx, e))

		_, err = f.svc.SendNotice(ctx, noticeInput(c.ID), e.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
	})

	t.Run("suppresses a rapid duplicate send", func(t *testing.T) {
		f := newNoticeFixture(t)
		c := seedNoticeCandidate(t, f.candidateRepo, 5)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP105", true)

		_, err := f.svc.SendNotice(ctx, noticeInput(c.ID), sender.ID)
		require.NoError(t, err)

		_, err = f.svc.SendNotice(ctx, noticeInput(c.ID), sender.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already being processed")
		assert.Equal(t, 1, f.mailer.calls)
	})

	t.Run("dedup store failure does not block the send", func(t *testing.T) {
		f := newNoticeFixture(t)
		f.dedup.err = errors.New("connection refused")
		c := seedNoticeCandidate(t, f.candidateRepo, 6)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP106", true)

		_, err := f.svc.SendNotice(ctx, noticeInput(c.ID), sender.ID)
		require.NoError(t, err)
	})

	t.Run("re-send updates the existing ledger row", func(t *testing.T) {
		f := newNoticeFixture(t)
		c := seedNoticeCandidate(t, f.candidateRepo, 7)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP107", true)

		first, err := f.svc.SendNotice(ctx, noticeInput(c.ID), sender.ID)
		require.NoError(t, err)

		delete(f.dedup.keys, "deployment-mail:"+c.ID.String())

		input := noticeInput(c.ID)
		input.EmailSubject = "Corrected Deployment Notice: Ravi Kumar"
		second, err := f.svc.SendNotice(ctx, input, sender.ID)
		require.NoError(t, err)

		assert.Equal(t, first.Record.ID, second.Record.ID)
		assert.Equal(t, "Corrected Deployment Notice: Ravi Kumar", second.Record.EmailSubject)

		count, err := f.deploymentRepo.Count(ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("partial delivery is recorded as partially sent", func(t *testing.T) {
		f := newNoticeFixture(t)
		f.mailer.outcome = SendOutcome{Successful: 1, Failed: 1, FailedRecipients: []string{"hr@acme.example"}}
		c := seedNoticeCandidate(t, f.candidateRepo, 8)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP108", true)

		result, err := f.svc.SendNotice(ctx, noticeInput(c.ID), sender.ID)
		require.NoError(t, err)

		assert.Equal(t, "Partially Sent", result.Record.MailStatus)
		assert.Equal(t, []string{"hr@acme.example"}, result.FailedRecipients)
	})

	t.Run("flag write failure surfaces a partial failure naming the record", func(t *testing.T) {
		f := newNoticeFixture(t)
		c := seedNoticeCandidate(t, f.candidateRepo, 10)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP110", true)

		f.candidateRepo.saveErr = errors.New("connection reset by peer")

		_, err := f.svc.SendNotice(ctx, noticeInput(c.ID), sender.ID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PARTIAL_FAILURE", domainErr.Code)

		// The mail went out and the ledger row was saved, so the message
		// names the record for a flag-only retry.
		record, findErr := f.deploymentRepo.FindByCandidateID(ctx, c.ID)
		require.NoError(t, findErr)
		assert.Contains(t, err.Error(), record.ID.String())
		assert.Equal(t, 1, f.mailer.calls)

		saved, findErr := f.candidateRepo.FindByID(ctx, c.ID)
		require.NoError(t, findErr)
		assert.False(t, saved.DeploymentEmailSent)
	})

	t.Run("transport failure surfaces a mail error and writes nothing", func(t *testing.T) {
		f := newNoticeFixture(t)
		f.mailer.err = errors.New("smtp dial timeout")
		c := seedNoticeCandidate(t, f.candidateRepo, 9)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP109", true)

		_, err := f.svc.SendNotice(ctx, noticeInput(c.ID), sender.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Failed to send")

		count, err := f.deploymentRepo.Count(ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func transferNoticeInput(recordID uuid.UUID) SendTransferNoticeInput {
	return SendTransferNoticeInput{
		RecordID:        recordID,
		EmailSubject:    "Internal Transfer: Ravi Kumar",
		EmailContent:    "<p>Transfer details</p>",
		RecipientEmails: []string{"NewManager@acme.example", "hr@acme.example"},
		CCEmails:        []string{"lead@corp.example"},
	}
}

// seedLedgerRecord sends a deployment notice so the fixture holds a real
// ledger row for the transfer flow to operate on
func seedLedgerRecord(t *testing.T, f *noticeFixture, n int, sender *employee.Employee) uuid.UUID {
	t.Helper()

	c := seedNoticeCandidate(t, f.candidateRepo, n)
	result, err := f.svc.SendNotice(context.Background(), noticeInput(c.ID), sender.ID)
	require.NoError(t, err)
	return result.Record.ID
}

func TestNoticeService_SendTransferNotice(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the transfer email and stamps the audit", func(t *testing.T) {
		f := newNoticeFixture(t)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP120", true)
		recordID := seedLedgerRecord(t, f, 20, sender)

		result, err := f.svc.SendTransferNotice(ctx, transferNoticeInput(recordID), sender.ID)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Successful)
		assert.Equal(t, "Internal Transfer: Ravi Kumar", f.mailer.lastMail.Subject)
		assert.Equal(t, "arun@corp.example", f.mailer.lastMail.FromEmail)

		record := result.Record
		assert.True(t, record.InternalTransferEmailSent)
		assert.Equal(t, "Internal Transfer: Ravi Kumar", record.InternalTransferSubject)
		assert.Equal(t, []string{"newmanager@acme.example", "hr@acme.example"}, record.InternalTransferRecipients)
		assert.Equal(t, []string{"lead@corp.example"}, record.InternalTransferCC)
		assert.Equal(t, sender.Name, record.InternalTransferSentByName)
		assert.Equal(t, "arun@corp.example", record.InternalTransferSentFrom)
		require.NotNil(t, record.InternalTransferDate)
		require.NotNil(t, record.InternalTransferSentAt)
		assert.True(t, record.IsInternalTransfer)

		saved, err := f.deploymentRepo.FindByID(ctx, recordID)
		require.NoError(t, err)
		assert.True(t, saved.InternalTransferEmailSent)
		assert.Equal(t, "Internal Transfer: Ravi Kumar", saved.InternalTransferSubject)
	})

	t.Run("defaults the subject when blank", func(t *testing.T) {
		f := newNoticeFixture(t)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP121", true)
		recordID := seedLedgerRecord(t, f, 21, sender)

		input := transferNoticeInput(recordID)
		input.EmailSubject = "  "
		result, err := f.svc.SendTransferNotice(ctx, input, sender.ID)
		require.NoError(t, err)

		assert.Equal(t, domain.DefaultTransferSubject, f.mailer.lastMail.Subject)
		assert.Equal(t, domain.DefaultTransferSubject, result.Record.InternalTransferSubject)
	})

	t.Run("uses the given transfer date", func(t *testing.T) {
		f := newNoticeFixture(t)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP122", true)
		recordID := seedLedgerRecord(t, f, 22, sender)

		when := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
		input := transferNoticeInput(recordID)
		input.TransferDate = &when
		result, err := f.svc.SendTransferNotice(ctx, input, sender.ID)
		require.NoError(t, err)

		require.NotNil(t, result.Record.InternalTransferDate)
		assert.Equal(t, when, *result.Record.InternalTransferDate)
	})

	t.Run("fails for a sender without mail permission", func(t *testing.T) {
		f := newNoticeFixture(t)
		manager := seedDeliverySender(t, f.employeeRepo, "EMP123", true)
		recordID := seedLedgerRecord(t, f, 23, manager)

		e, err := employee.NewEmployee("EMP124", "Priya Raman", "secret-password", employee.TeamDelivery)
		require.NoError(t, err)
		require.NoError(t, f.employeeRepo.Save(ctx, e))

		_, err = f.svc.SendTransferNotice(ctx, transferNoticeInput(recordID), e.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission")
	})

	t.Run("fails for an exited record without sending", func(t *testing.T) {
		f := newNoticeFixture(t)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP125", true)
		recordID := seedLedgerRecord(t, f, 25, sender)

		record, err := f.deploymentRepo.FindByID(ctx, recordID)
		require.NoError(t, err)
		require.NoError(t, record.ProcessExit("Resigned for higher studies", sender.ID, sender.Name))
		require.NoError(t, f.deploymentRepo.Save(ctx, record))

		sendsBefore := f.mailer.calls
		_, err = f.svc.SendTransferNotice(ctx, transferNoticeInput(recordID), sender.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exited")
		assert.Equal(t, sendsBefore, f.mailer.calls)
	})

	t.Run("fails without recipients", func(t *testing.T) {
		f := newNoticeFixture(t)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP126", true)
		recordID := seedLedgerRecord(t, f, 26, sender)

		input := transferNoticeInput(recordID)
		input.RecipientEmails = nil
		_, err := f.svc.SendTransferNotice(ctx, input, sender.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recipient")
	})

	t.Run("fails for an unknown record", func(t *testing.T) {
		f := newNoticeFixture(t)
		sender := seedDeliverySender(t, f.employeeRepo, "EMP127", true)

		_, err := f.svc.SendTransferNotice(ctx, transferNoticeInput(uuid.New()), sender.ID)
		require.Error(t, err)
	})
}
