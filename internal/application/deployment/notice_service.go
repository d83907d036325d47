package deployment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/candidate"
	domain "github.com/talentflow/backend/internal/domain/deployment"
	"github.com/talentflow/backend/internal/domain/employee"
	"github.com/talentflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// NoticeService sends deployment notices and maintains the deployment
// ledger rows they create
type NoticeService struct {
	deploymentRepo domain.Repository
	candidateRepo  candidate.Repository
	employeeRepo   employee.Repository
	mailer         Mailer
	dedup          shared.DedupStore
	dedupConfig    shared.DedupConfig
	logger         *zap.Logger
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(
	deploymentRepo domain.Repository,
	candidateRepo candidate.Repository,
	employeeRepo employee.Repository,
	mailer Mailer,
	dedup shared.DedupStore,
	dedupConfig shared.DedupConfig,
	logger *zap.Logger,
) *NoticeService {
	return &NoticeService{
		deploymentRepo: deploymentRepo,
		candidateRepo:  candidateRepo,
		employeeRepo:   employeeRepo,
		mailer:         mailer,
		dedup:          dedup,
		dedupConfig:    dedupConfig,
		logger:         logger,
	}
}

// SendNotice sends the deployment notice for a candidate and records the
// outcome in the ledger. The first send also flags the candidate so the
// pipeline views can surface it. Re-sends update the existing ledger row
// instead of creating a second one.
func (s *NoticeService) SendNotice(ctx context.Context, input SendNoticeInput, actorID uuid.UUID) (*SendNoticeResult, error) {
	sender, err := s.employeeRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !sender.CanSendDeploymentMail() {
		return nil, shared.NewDomainError("FORBIDDEN", "You do not have permission to send deployment emails")
	}

	c, err := s.candidateRepo.FindByID(ctx, input.CandidateID)
	if err != nil {
		return nil, err
	}

	if err := s.guardDuplicate(ctx, input.CandidateID); err != nil {
		return nil, err
	}

	account, err := s.resolveMailAccount(ctx, sender)
	if err != nil {
		return nil, err
	}

	outcome, err := s.mailer.Send(ctx, OutboundMail{
		FromEmail:   account.MailConfig.Email,
		FromName:    account.Name,
		AppPassword: account.MailConfig.AppPassword,
		To:          input.RecipientEmails,
		CC:          input.CCEmails,
		Subject:     input.EmailSubject,
		HTMLBody:    input.EmailContent,
	})
	if err != nil {
		s.logger.Error("Deployment notice delivery failed",
			zap.String("candidate_id", input.CandidateID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("MAIL_SEND_FAILED", "Failed to send the deployment email")
	}

	results := domain.MailResults{
		Successful: outcome.Successful,
		Failed:     outcome.Failed,
		Total:      outcome.Successful + outcome.Failed,
	}
	noticeInput := s.buildNoticeInput(input, c)
	senderInfo := domain.Sender{
		ID:        sender.ID,
		Name:      sender.Name,
		FromEmail: account.MailConfig.Email,
	}

	record, err := s.upsertRecord(ctx, input.CandidateID, noticeInput, senderInfo, results)
	if err != nil {
		return nil, err
	}

	if !c.DeploymentEmailSent {
		actor := candidate.Actor{ID: sender.ID, Name: sender.Name}
		if err := c.RecordDeploymentEmailSent(record.ID, actor); err != nil {
			return nil, s.partialFailure(record.ID, err)
		}
		if err := s.candidateRepo.Save(ctx, c); err != nil {
			return nil, s.partialFailure(record.ID, err)
		}
	}

	s.logger.Info("Deployment notice sent",
		zap.String("candidate_id", input.CandidateID.String()),
		zap.String("record_id", record.ID.String()),
		zap.String("sent_by", sender.Name),
		zap.String("sent_from", account.MailConfig.Email),
		zap.Int("successful", results.Successful),
		zap.Int("failed", results.Failed))

	return &SendNoticeResult{
		Record:           ToRecordResponse(record),
		Successful:       outcome.Successful,
		Failed:           outcome.Failed,
		FailedRecipients: outcome.FailedRecipients,
	}, nil
}

// SendTransferNotice sends the internal transfer email for a ledger record
// and stamps the transfer audit on it. The transfer date defaults to the
// send time; a re-send overwrites the previous audit.
func (s *NoticeService) SendTransferNotice(ctx context.Context, input SendTransferNoticeInput, actorID uuid.UUID) (*SendTransferNoticeResult, error) {
	sender, err := s.employeeRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !sender.CanSendDeploymentMail() {
		return nil, shared.NewDomainError("FORBIDDEN", "You do not have permission to send transfer emails")
	}

	record, err := s.deploymentRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		return nil, err
	}
	if record.IsInactive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot transfer an exited record")
	}
	if len(input.RecipientEmails) == 0 {
		return nil, shared.NewDomainError("INVALID_RECIPIENTS", "At least one recipient email is required")
	}

	account, err := s.resolveMailAccount(ctx, sender)
	if err != nil {
		return nil, err
	}

	subject := strings.TrimSpace(input.EmailSubject)
	if subject == "" {
		subject = domain.DefaultTransferSubject
	}

	outcome, err := s.mailer.Send(ctx, OutboundMail{
		FromEmail:   account.MailConfig.Email,
		FromName:    account.Name,
		AppPassword: account.MailConfig.AppPassword,
		To:          input.RecipientEmails,
		CC:          input.CCEmails,
		Subject:     subject,
		HTMLBody:    input.EmailContent,
	})
	if err != nil {
		s.logger.Error("Transfer notice delivery failed",
			zap.String("record_id", input.RecordID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("MAIL_SEND_FAILED", "Failed to send the transfer email")
	}

	transferDate := time.Now()
	if input.TransferDate != nil {
		transferDate = *input.TransferDate
	}

	notice := domain.TransferNotice{
		Subject:    subject,
		Content:    input.EmailContent,
		Recipients: input.RecipientEmails,
		CC:         input.CCEmails,
	}
	senderInfo := domain.Sender{
		ID:        sender.ID,
		Name:      sender.Name,
		FromEmail: account.MailConfig.Email,
	}
	if err := record.ApplyTransferNotice(transferDate, notice, senderInfo); err != nil {
		return nil, err
	}
	if err := s.deploymentRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Transfer notice sent",
		zap.String("record_id", record.ID.String()),
		zap.String("sent_by", sender.Name),
		zap.String("sent_from", account.MailConfig.Email),
		zap.Int("successful", outcome.Successful),
		zap.Int("failed", outcome.Failed))

	return &SendTransferNoticeResult{
		Record:           ToRecordResponse(record),
		Successful:       outcome.Successful,
		Failed:           outcome.Failed,
		FailedRecipients: outcome.FailedRecipients,
	}, nil
}

// partialFailure reports a flag write that failed after the mail went out
// and the ledger row was saved. The saved record is named so the caller can
// retry the candidate update alone instead of re-sending the email.
func (s *NoticeService) partialFailure(recordID uuid.UUID, cause error) error {
	s.logger.Error("Candidate flag write failed after deployment notice was sent",
		zap.String("record_id", recordID.String()),
		zap.Error(cause))
	return shared.NewDomainError("PARTIAL_FAILURE",
		fmt.Sprintf("The email was sent and deployment record %s was saved, but updating the candidate failed. Retry the candidate update without re-sending the email.", recordID))
}

// guardDuplicate suppresses rapid double-sends for the same candidate.
// A store failure does not block the send.
func (s *NoticeService) guardDuplicate(ctx context.Context, candidateID uuid.UUID) error {
	if s.dedup == nil || !s.dedupConfig.Enabled {
		return nil
	}

	key := fmt.Sprintf("deployment-mail:%s", candidateID)
	fresh, err := s.dedup.MarkProcessed(ctx, key, s.dedupConfig.TTL)
	if err != nil {
		s.logger.Warn("Dedup store unavailable, proceeding without duplicate suppression",
			zap.String("key", key),
			zap.Error(err))
		return nil
	}
	if !fresh {
		return shared.NewDomainError("ALREADY_DONE", "A deployment email for this candidate is already being processed")
	}

	return nil
}

// resolveMailAccount picks the mailbox the notice goes out from: the
// sender's own when they are an active delivery manager with complete
// credentials, otherwise the configured delivery manager's.
func (s *NoticeService) resolveMailAccount(ctx context.Context, sender *employee.Employee) (*employee.Employee, error) {
	if sender.IsActiveDeliveryManager() {
		return sender, nil
	}

	manager, err := s.employeeRepo.FindActiveDeliveryManager(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NO_MAIL_ACCOUNT", "No active delivery manager with mail credentials is configured")
		}
		return nil, err
	}

	return manager, nil
}

// buildNoticeInput folds candidate snapshot fields into the notice so the
// ledger row stays readable after the candidate moves on
func (s *NoticeService) buildNoticeInput(input SendNoticeInput, c *candidate.Candidate) domain.NoticeInput {
	candidateName := input.CandidateName
	if candidateName == "" {
		candidateName = c.FullName
	}
	candidateEmpID := input.CandidateEmpID
	if candidateEmpID == "" {
		candidateEmpID = c.EmployeeID.Value
	}
	email := input.Email
	if email == "" {
		email = c.OfficeEmail.Value
	}

	return domain.NoticeInput{
		CandidateName:  candidateName,
		CandidateEmpID: candidateEmpID,
		Role:           input.Role,
		Email:          email,
		Office:         input.Office,
		ModeOfHire:     input.ModeOfHire,
		FromTeam:       input.FromTeam,
		ToTeam:         input.ToTeam,
		Client:         input.Client,
		BU:             input.BU,
		ReportingTo:    input.ReportingTo,
		AccountManager: input.AccountManager,
		DeploymentDate: input.DeploymentDate,
		Track:          input.Track,
		HRName:         input.HRName,
		WorkLocation:   input.WorkLocation,
		DOJ:            input.DOJ,
		Extension:      input.Extension,
		LeadOrNonLead:  input.LeadOrNonLead,

		EmailSubject:    input.EmailSubject,
		EmailContent:    input.EmailContent,
		RecipientEmails: input.RecipientEmails,
		CCEmails:        input.CCEmails,

		CandidateMobile:          c.MobileNumber,
		CandidateOfficeEmail:     c.OfficeEmail.Value,
		CandidateExperienceLevel: string(c.ExperienceLevel),
		CandidateAssignedTeam:    c.AssignedTeam,
		CandidateBatch:           c.BatchLabel,
	}
}

func (s *NoticeService) upsertRecord(ctx context.Context, candidateID uuid.UUID, input domain.NoticeInput, sender domain.Sender, results domain.MailResults) (*domain.Record, error) {
	record, err := s.deploymentRepo.FindByCandidateID(ctx, candidateID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		record, err = domain.NewRecord(candidateID, input, sender, results)
		if err != nil {
			return nil, err
		}
	} else {
		record.ApplyNotice(input, sender, results)
	}

	if err := s.deploymentRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}
