package deployment

import (
	"time"

	"github.com/google/uuid"
	domain "github.com/talentflow/backend/internal/domain/deployment"
)

// SendNoticeInput contains everything needed to send a deployment notice
// for a candidate
type SendNoticeInput struct {
	CandidateID uuid.UUID

	CandidateName  string
	CandidateEmpID string
	Role           string
	Email          string
	Office         string
	ModeOfHire     string
	FromTeam       string
	ToTeam         string
	Client         string
	BU             string
	ReportingTo    string
	AccountManager string
	DeploymentDate *time.Time
	Track          string
	HRName         string
	WorkLocation   string
	DOJ            *time.Time
	Extension      string
	LeadOrNonLead  string

	EmailSubject    string
	EmailContent    string
	RecipientEmails []string
	CCEmails        []string
}

// SendNoticeResult reports the delivery outcome and the ledger row
type SendNoticeResult struct {
	Record           RecordResponse `json:"record"`
	Successful       int            `json:"successful"`
	Failed           int            `json:"failed"`
	FailedRecipients []string       `json:"failed_recipients,omitempty"`
}

// SendTransferNoticeInput contains everything needed to send an internal
// transfer notice for an existing ledger record
type SendTransferNoticeInput struct {
	RecordID        uuid.UUID
	TransferDate    *time.Time
	EmailSubject    string
	EmailContent    string
	RecipientEmails []string
	CCEmails        []string
}

// SendTransferNoticeResult reports the delivery outcome and the updated row
type SendTransferNoticeResult struct {
	Record           RecordResponse `json:"record"`
	Successful       int            `json:"successful"`
	Failed           int            `json:"failed"`
	FailedRecipients []string       `json:"failed_recipients,omitempty"`
}

// ExitInput contains an exit processing request
type ExitInput struct {
	Reason string
}

// TransferInput contains an internal transfer request
type TransferInput struct {
	TransferDate time.Time
}

// UpdateStatusInput contains a lifecycle status update
type UpdateStatusInput struct {
	Status string
	Notes  string
}

// RecordListFilter contains ledger listing options
type RecordListFilter struct {
	Search     string
	Client     string
	ToTeam     string
	MailStatus string
	EmpID      string
	Page       int
	PageSize   int
	SortBy     string
	SortDesc   bool
}

// RecordResponse is the deployment ledger row returned to clients
type RecordResponse struct {
	ID             uuid.UUID `json:"id"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmpID string    `json:"candidate_emp_id"`

	Role           string     `json:"role,omitempty"`
	Email          string     `json:"email"`
	Office         string     `json:"office,omitempty"`
	ModeOfHire     string     `json:"mode_of_hire,omitempty"`
	FromTeam       string     `json:"from_team,omitempty"`
	ToTeam         string     `json:"to_team,omitempty"`
	Client         string     `json:"client,omitempty"`
	BU             string     `json:"bu,omitempty"`
	ReportingTo    string     `json:"reporting_to,omitempty"`
	AccountManager string     `json:"account_manager,omitempty"`
	DeploymentDate *time.Time `json:"deployment_date,omitempty"`

	EmailSubject    string             `json:"email_subject"`
	RecipientEmails []string           `json:"recipient_emails"`
	CCEmails        []string           `json:"cc_emails"`
	SentBy          uuid.UUID          `json:"sent_by"`
	SentByName      string             `json:"sent_by_name"`
	SentFromEmail   string             `json:"sent_from_email"`
	MailStatus      string             `json:"mail_status"`
	MailResults     domain.MailResults `json:"mail_results"`

	Track         string     `json:"track,omitempty"`
	HRName        string     `json:"hr_name,omitempty"`
	WorkLocation  string     `json:"work_location,omitempty"`
	DOJ           *time.Time `json:"doj,omitempty"`
	Extension     string     `json:"extension,omitempty"`
	LeadOrNonLead string     `json:"lead_or_non_lead,omitempty"`

	Status              string     `json:"status"`
	ExitDate            *time.Time `json:"exit_date,omitempty"`
	ExitReason          string     `json:"exit_reason,omitempty"`
	ExitProcessedByName string     `json:"exit_processed_by_name,omitempty"`
	ExitProcessedAt     *time.Time `json:"exit_processed_at,omitempty"`

	InternalTransferDate       *time.Time `json:"internal_transfer_date,omitempty"`
	InternalTransferEmailSent  bool       `json:"internal_transfer_email_sent"`
	InternalTransferSubject    string     `json:"internal_transfer_subject,omitempty"`
	InternalTransferRecipients []string   `json:"internal_transfer_recipients,omitempty"`
	InternalTransferCC         []string   `json:"internal_transfer_cc,omitempty"`
	InternalTransferSentByName string     `json:"internal_transfer_sent_by_name,omitempty"`
	InternalTransferSentFrom   string     `json:"internal_transfer_sent_from,omitempty"`
	InternalTransferSentAt     *time.Time `json:"internal_transfer_sent_at,omitempty"`

	CandidateMobile          string `json:"candidate_mobile,omitempty"`
	CandidateOfficeEmail     string `json:"candidate_office_email,omitempty"`
	CandidateExperienceLevel string `json:"candidate_experience_level,omitempty"`
	CandidateAssignedTeam    string `json:"candidate_assigned_team,omitempty"`
	CandidateBatch           string `json:"candidate_batch,omitempty"`
	Notes                    string `json:"notes,omitempty"`

	Tenure             string    `json:"tenure,omitempty"`
	IsActive           bool      `json:"is_active"`
	IsInternalTransfer bool      `json:"is_internal_transfer"`
	IsInactive         bool      `json:"is_inactive"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToRecordResponse converts a deployment record to a response DTO
func ToRecordResponse(r *domain.Record) RecordResponse {
	return RecordResponse{
		ID:             r.ID,
		CandidateID:    r.CandidateID,
		CandidateName:  r.CandidateName,
		CandidateEmpID: r.CandidateEmpID,

		Role:           r.Role,
		Email:          r.Email,
		Office:         r.Office,
		ModeOfHire:     r.ModeOfHire,
		FromTeam:       r.FromTeam,
		ToTeam:         r.ToTeam,
		Client:         r.Client,
		BU:             r.BU,
		ReportingTo:    r.ReportingTo,
		AccountManager: r.AccountManager,
		DeploymentDate: r.DeploymentDate,

		EmailSubject:    r.EmailSubject,
		RecipientEmails: r.RecipientEmails,
		CCEmails:        r.CCEmails,
		SentBy:          r.SentBy,
		SentByName:      r.SentByName,
		SentFromEmail:   r.SentFromEmail,
		MailStatus:      string(r.MailStatus),
		MailResults:     r.MailResults,

		Track:         r.Track,
		HRName:        r.HRName,
		WorkLocation:  r.WorkLocation,
		DOJ:           r.DOJ,
		Extension:     r.Extension,
		LeadOrNonLead: r.LeadOrNonLead,

		Status:              r.Status,
		ExitDate:            r.ExitDate,
		ExitReason:          r.ExitReason,
		ExitProcessedByName: r.ExitProcessedByName,
		ExitProcessedAt:     r.ExitProcessedAt,

		InternalTransferDate:       r.InternalTransferDate,
		InternalTransferEmailSent:  r.InternalTransferEmailSent,
		InternalTransferSubject:    r.InternalTransferSubject,
		InternalTransferRecipients: r.InternalTransferRecipients,
		InternalTransferCC:         r.InternalTransferCC,
		InternalTransferSentByName: r.InternalTransferSentByName,
		InternalTransferSentFrom:   r.InternalTransferSentFrom,
		InternalTransferSentAt:     r.InternalTransferSentAt,

		CandidateMobile:          r.CandidateMobile,
		CandidateOfficeEmail:     r.CandidateOfficeEmail,
		CandidateExperienceLevel: r.CandidateExperienceLevel,
		CandidateAssignedTeam:    r.CandidateAssignedTeam,
		CandidateBatch:           r.CandidateBatch,
		Notes:                    r.Notes,

		Tenure:             r.Tenure(),
		IsActive:           r.IsActive(),
		IsInternalTransfer: r.IsInternalTransfer(),
		IsInactive:         r.IsInactive(),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
