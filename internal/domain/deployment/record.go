package deployment

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/shared"
)

// MailStatus reflects how the deployment notice went out
type MailStatus string

const (
	MailSent          MailStatus = "Sent"
	MailFailed        MailStatus = "Failed"
	MailPartiallySent MailStatus = "Partially Sent"
)

// StatusActive and StatusInactive are the record lifecycle states.
// Matching on inactive is case-insensitive because historical rows
// carry free-form casing.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// DefaultTransferSubject is used when a transfer notice carries no subject
const DefaultTransferSubject = "Internal Transfer Notice"

// EmailList stores recipient addresses as a JSON column
type EmailList []string

// Value implements driver.Valuer
func (l EmailList) Value() (driver.Value, error) {
	if l == nil {
		l = EmailList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *EmailList) Scan(value interface{}) error {
	if value == nil {
		*l = EmailList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type for EmailList: %T", value)
}

// MailResults counts the per-recipient outcome of a notice send
type MailResults struct {
	Successful int `gorm:"not null;default:0" json:"successful"`
	Failed     int `gorm:"not null;default:0" json:"failed"`
	Total      int `gorm:"not null;default:0" json:"total"`
}

// Record is a deployment ledger row, created when the deployment notice
// for a candidate is first sent and updated on later sends
type Record struct {
	shared.BaseAggregateRoot

	CandidateID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CandidateName  string    `gorm:"size:200;not null"`
	CandidateEmpID string    `gorm:"size:20;not null;index"`

	Role           string     `gorm:"size:200"`
	Email          string     `gorm:"size:200;not null"`
	Office         string     `gorm:"size:200"`
	ModeOfHire     string     `gorm:"size:100"`
	FromTeam       string     `gorm:"size:200"`
	ToTeam         string     `gorm:"size:200;index"`
	Client         string     `gorm:"size:200;index"`
	BU             string     `gorm:"size:200"`
	ReportingTo    string     `gorm:"size:200"`
	AccountManager string     `gorm:"size:200"`
	DeploymentDate *time.Time `gorm:"index"`

	EmailSubject    string      `gorm:"size:300;not null"`
	EmailContent    string      `gorm:"type:text"`
	RecipientEmails EmailList   `gorm:"type:jsonb"`
	CCEmails        EmailList   `gorm:"type:jsonb"`
	SentBy          uuid.UUID   `gorm:"type:uuid;not null;index"`
	SentByName      string      `gorm:"size:200;not null"`
	SentFromEmail   string      `gorm:"size:200;not null"`
	MailStatus      MailStatus  `gorm:"size:20;default:Sent;index"`
	MailResults     MailResults `gorm:"embedded;embeddedPrefix:mail_"`

	Track         string     `gorm:"size:100"`
	HRName        string     `gorm:"size:200"`
	WorkLocation  string     `gorm:"size:200"`
	DOJ           *time.Time `gorm:""`
	Extension     string     `gorm:"size:50"`
	LeadOrNonLead string     `gorm:"size:10"`

	Status              string     `gorm:"size:50;default:Active"`
	ExitDate            *time.Time `gorm:""`
	ExitReason          string     `gorm:"size:500"`
	ExitProcessedBy     *uuid.UUID `gorm:"type:uuid"`
	ExitProcessedByName string     `gorm:"size:200"`
	ExitProcessedAt     *time.Time `gorm:""`

	InternalTransferDate       *time.Time `gorm:""`
	InternalTransferEmailSent  bool       `gorm:"not null;default:false"`
	InternalTransferSubject    string     `gorm:"size:300"`
	InternalTransferContent    string     `gorm:"type:text"`
	InternalTransferRecipients EmailList  `gorm:"type:jsonb"`
	InternalTransferCC         EmailList  `gorm:"type:jsonb"`
	InternalTransferSentBy     *uuid.UUID `gorm:"type:uuid"`
	InternalTransferSentByName string     `gorm:"size:200"`
	InternalTransferSentFrom   string     `gorm:"size:200"`
	InternalTransferSentAt     *time.Time `gorm:""`

	CandidateMobile          string `gorm:"size:20"`
	CandidateOfficeEmail     string `gorm:"size:200"`
	CandidateExperienceLevel string `gorm:"size:10"`
	CandidateAssignedTeam    string `gorm:"size:200"`
	CandidateBatch           string `gorm:"size:100"`
	Notes                    string `gorm:"type:text"`
}

// TableName overrides the GORM table name
func (Record) TableName() string {
	return "deployments"
}

// NoticeInput carries the fields captured when a deployment notice is sent
type NoticeInput struct {
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

	CandidateMobile          string
	CandidateOfficeEmail     string
	CandidateExperienceLevel string
	CandidateAssignedTeam    string
	CandidateBatch           string
}

// Sender identifies the employee who triggered the notice
type Sender struct {
	ID        uuid.UUID
	Name      string
	FromEmail string
}

// TransferNotice carries the email captured when an internal transfer
// notice goes out
type TransferNotice struct {
	Subject    string
	Content    string
	Recipients []string
	CC         []string
}

// NewRecord creates a deployment ledger row for a candidate
func NewRecord(candidateID uuid.UUID, input NoticeInput, sender Sender, results MailResults) (*Record, error) {
	if candidateID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CANDIDATE", "Candidate reference is required")
	}
	if strings.TrimSpace(input.CandidateName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Candidate name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Candidate email is required")
	}
	if strings.TrimSpace(input.EmailSubject) == "" {
		return nil, shared.NewDomainError("INVALID_SUBJECT", "Email subject is required")
	}

	r := &Record{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CandidateID:       candidateID,
		Status:            StatusActive,
		SentBy:            sender.ID,
		SentByName:        sender.Name,
		SentFromEmail:     strings.ToLower(sender.FromEmail),
	}
	r.applyNotice(input, results)

	return r, nil
}

// ApplyNotice refreshes the row with the latest notice details. Used when
// a notice is re-sent for a candidate that already has a ledger row.
func (r *Record) ApplyNotice(input NoticeInput, sender Sender, results MailResults) {
	r.SentBy = sender.ID
	r.SentByName = sender.Name
	r.SentFromEmail = strings.ToLower(sender.FromEmail)
	r.applyNotice(input, results)
	r.touch()
}

func (r *Record) applyNotice(input NoticeInput, results MailResults) {
	r.CandidateName = strings.TrimSpace(input.CandidateName)
	r.CandidateEmpID = strings.ToUpper(strings.TrimSpace(input.CandidateEmpID))
	r.Role = strings.TrimSpace(input.Role)
	r.Email = strings.ToLower(strings.TrimSpace(input.Email))
	r.Office = strings.TrimSpace(input.Office)
	r.ModeOfHire = strings.TrimSpace(input.ModeOfHire)
	r.FromTeam = strings.TrimSpace(input.FromTeam)
	r.ToTeam = strings.TrimSpace(input.ToTeam)
	r.Client = strings.TrimSpace(input.Client)
	r.BU = strings.TrimSpace(input.BU)
	r.ReportingTo = strings.TrimSpace(input.ReportingTo)
	r.AccountManager = strings.TrimSpace(input.AccountManager)
	r.DeploymentDate = input.DeploymentDate
	r.Track = strings.TrimSpace(input.Track)
	r.HRName = strings.TrimSpace(input.HRName)
	r.WorkLocation = strings.TrimSpace(input.WorkLocation)
	r.DOJ = input.DOJ
	r.Extension = strings.TrimSpace(input.Extension)
	r.LeadOrNonLead = strings.TrimSpace(input.LeadOrNonLead)
	r.EmailSubject = strings.TrimSpace(input.EmailSubject)
	r.EmailContent = input.EmailContent
	r.RecipientEmails = lowerAll(input.RecipientEmails)
	r.CCEmails = lowerAll(input.CCEmails)
	r.MailResults = results
	r.MailStatus = statusFromResults(results)
	r.CandidateMobile = input.CandidateMobile
	r.CandidateOfficeEmail = strings.ToLower(input.CandidateOfficeEmail)
	r.CandidateExperienceLevel = input.CandidateExperienceLevel
	r.CandidateAssignedTeam = input.CandidateAssignedTeam
	r.CandidateBatch = input.CandidateBatch
}

// ProcessExit closes out the record. A record that has already exited
// cannot be exited again.
func (r *Record) ProcessExit(reason string, processedBy uuid.UUID, processedByName string) error {
	reason = strings.TrimSpace(reason)
	if len(reason) < 5 {
		return shared.NewDomainError("INVALID_EXIT_REASON", "Exit reason must be at least 5 characters")
	}
	if r.IsInactive() {
		return shared.NewDomainError("ALREADY_DONE", "Exit has already been processed for this record")
	}

	now := time.Now()
	r.Status = StatusInactive
	r.ExitDate = &now
	r.ExitReason = reason
	r.ExitProcessedBy = &processedBy
	r.ExitProcessedByName = processedByName
	r.ExitProcessedAt = &now
	r.touch()

	return nil
}

// RecordInternalTransfer marks the internal transfer date. The record
// stays active; only the transfer audit changes.
func (r *Record) RecordInternalTransfer(transferDate time.Time) error {
	if r.IsInactive() {
		return shared.NewDomainError("INVALID_STATE", "Cannot transfer an exited record")
	}

	r.InternalTransferDate = &transferDate
	r.touch()

	return nil
}

// ApplyTransferNotice stamps the transfer date together with the full
// email audit. The record stays active; a re-send overwrites the
// previous audit.
func (r *Record) ApplyTransferNotice(transferDate time.Time, notice TransferNotice, sender Sender) error {
	if r.IsInactive() {
		return shared.NewDomainError("INVALID_STATE", "Cannot transfer an exited record")
	}
	subject := strings.TrimSpace(notice.Subject)
	if subject == "" {
		subject = DefaultTransferSubject
	}

	now := time.Now()
	r.InternalTransferDate = &transferDate
	r.InternalTransferEmailSent = true
	r.InternalTransferSubject = subject
	r.InternalTransferContent = notice.Content
	r.InternalTransferRecipients = lowerAll(notice.Recipients)
	r.InternalTransferCC = lowerAll(notice.CC)
	senderID := sender.ID
	r.InternalTransferSentBy = &senderID
	r.InternalTransferSentByName = sender.Name
	r.InternalTransferSentFrom = strings.ToLower(sender.FromEmail)
	r.InternalTransferSentAt = &now
	r.touch()

	return nil
}

// UpdateStatus sets a free-form lifecycle status with optional notes
func (r *Record) UpdateStatus(status, notes string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return shared.NewDomainError("INVALID_STATUS", "Status cannot be empty")
	}

	r.Status = status
	if notes != "" {
		r.Notes = notes
	}
	r.touch()

	return nil
}

// IsInactive reports whether the record has exited: an exit date is set
// or the status reads inactive in any casing
func (r *Record) IsInactive() bool {
	return r.ExitDate != nil || strings.EqualFold(strings.TrimSpace(r.Status), StatusInactive)
}

// IsInternalTransfer reports whether the record is an in-flight internal
// transfer: transferred but not exited
func (r *Record) IsInternalTransfer() bool {
	return r.InternalTransferDate != nil && !r.IsInactive()
}

// IsActive reports whether the record is a plain active deployment.
// The three predicates are mutually exclusive.
func (r *Record) IsActive() bool {
	return !r.IsInactive() && !r.IsInternalTransfer()
}

// Tenure formats the time between DOJ and exit (or now) as "years.months".
// Empty when no DOJ is recorded.
func (r *Record) Tenure() string {
	return TenureBetween(r.DOJ, r.ExitDate)
}

// TenureBetween computes whole months between a start date and an end
// date (now when nil), formatted "years.months"
func TenureBetween(doj, end *time.Time) string {
	if doj == nil {
		return ""
	}

	endDate := time.Now()
	if end != nil {
		endDate = *end
	}

	months := (endDate.Year()-doj.Year())*12 - int(doj.Month()) + int(endDate.Month())
	if endDate.Day() < doj.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}

	return fmt.Sprintf("%d.%d", months/12, months%12)
}

func (r *Record) touch() {
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

func statusFromResults(results MailResults) MailStatus {
	switch {
	case results.Failed == 0:
		return MailSent
	case results.Successful == 0:
		return MailFailed
	default:
		return MailPartiallySent
	}
}

func lowerAll(emails []string) EmailList {
	out := make(EmailList, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
