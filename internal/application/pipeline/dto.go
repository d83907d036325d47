package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/candidate"
)

// SubmitCandidateInput contains an HR Tag submission
type SubmitCandidateInput struct {
	FullName        string
	Gender          string
	FatherName      string
	FirstGraduate   string
	ExperienceLevel string
	Source          string
	ReferenceName   string
	Native          string
	MobileNumber    string
	PersonalEmail   string
	College         string
	BatchLabel      string
	Year            int
	LinkedinURL     string
	ResumeFileName  string
	ResumePath      string
}

// StampInfo is the response shape of a pipeline routing stamp
type StampInfo struct {
	Done   bool       `json:"done"`
	At     *time.Time `json:"at,omitempty"`
	ByName string     `json:"by_name,omitempty"`
}

// AssignmentInfo is the response shape of an issued identity value
type AssignmentInfo struct {
	Value          string     `json:"value,omitempty"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`
	AssignedByName string     `json:"assigned_by_name,omitempty"`
}

// CandidateResponse is the full candidate response shape
type CandidateResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Gender          string    `json:"gender,omitempty"`
	FatherName      string    `json:"father_name,omitempty"`
	FirstGraduate   string    `json:"first_graduate,omitempty"`
	ExperienceLevel string    `json:"experience_level"`
	Source          string    `json:"source,omitempty"`
	ReferenceName   string    `json:"reference_name,omitempty"`
	Native          string    `json:"native,omitempty"`
	MobileNumber    string    `json:"mobile_number"`
	PersonalEmail   string    `json:"personal_email"`
	College         string    `json:"college,omitempty"`
	BatchLabel      string    `json:"batch_label,omitempty"`
	Year            int       `json:"year,omitempty"`
	LinkedinURL     string    `json:"linkedin_url,omitempty"`
	ResumeFileName  string    `json:"resume_file_name,omitempty"`
	ResumePath      string    `json:"resume_path,omitempty"`
	Notes           string    `json:"notes,omitempty"`

	Status       string `json:"status"`
	CurrentStage string `json:"current_stage"`

	SubmittedByName string    `json:"submitted_by_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	OfficeEmail AssignmentInfo `json:"office_email"`
	EmployeeID  AssignmentInfo `json:"employee_id"`
	PermanentID AssignmentInfo `json:"permanent_employee_id"`

	SentToOps      StampInfo `json:"sent_to_ops"`
	SentToAdmin    StampInfo `json:"sent_to_admin"`
	SentToLD       StampInfo `json:"sent_to_ld"`
	SentToDelivery StampInfo `json:"sent_to_delivery"`
	SentToHRTag    StampInfo `json:"sent_to_hr_tag"`

	LDStatus        string     `json:"ld_status"`
	LDReason        string     `json:"ld_reason,omitempty"`
	LDUpdatedByName string     `json:"ld_updated_by_name,omitempty"`
	LDUpdatedAt     *time.Time `json:"ld_updated_at,omitempty"`

	AllocationStatus    string     `json:"allocation_status"`
	AllocationNotes     string     `json:"allocation_notes,omitempty"`
	AssignedProject     string     `json:"assigned_project,omitempty"`
	AssignedTeam        string     `json:"assigned_team,omitempty"`
	AllocationUpdatedAt *time.Time `json:"allocation_updated_at,omitempty"`

	DeploymentEmailSent   bool       `json:"deployment_email_sent"`
	DeploymentEmailSentAt *time.Time `json:"deployment_email_sent_at,omitempty"`

	RoutedToHRTag    bool       `json:"routed_to_hr_tag"`
	RoutedToHROps    bool       `json:"routed_to_hr_ops"`
	RoutedToAdmin    bool       `json:"routed_to_admin"`
	RoutingTimestamp *time.Time `json:"routing_timestamp,omitempty"`
	RoutingReason    string     `json:"routing_reason,omitempty"`
}

// ToCandidateResponse maps a candidate aggregate to its response shape
func ToCandidateResponse(c *candidate.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:              c.ID,
		FullName:        c.FullName,
		Gender:          c.Gender,
		FatherName:      c.FatherName,
		FirstGraduate:   c.FirstGraduate,
		ExperienceLevel: string(c.ExperienceLevel),
		Source:          string(c.Source),
		ReferenceName:   c.ReferenceName,
		Native:          c.Native,
		MobileNumber:    c.MobileNumber,
		PersonalEmail:   c.PersonalEmail,
		College:         c.College,
		BatchLabel:      c.BatchLabel,
		Year:            c.Year,
		LinkedinURL:     c.LinkedinURL,
		ResumeFileName:  c.ResumeFileName,
		ResumePath:      c.ResumePath,
		Notes:           c.Notes,

		Status:       string(c.Status),
		CurrentStage: string(c.CurrentStage()),

		SubmittedByName: c.SubmittedByName,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,

		OfficeEmail: toAssignmentInfo(c.OfficeEmail),
		EmployeeID:  toAssignmentInfo(c.EmployeeID),
		PermanentID: toAssignmentInfo(c.PermanentID),

		SentToOps:      toStampInfo(c.SentToOps),
		SentToAdmin:    toStampInfo(c.SentToAdmin),
		SentToLD:       toStampInfo(c.SentToLD),
		SentToDelivery: toStampInfo(c.SentToDelivery),
		SentToHRTag:    toStampInfo(c.SentToHRTag),

		LDStatus:        string(c.EffectiveLDStatus()),
		LDReason:        c.LDReason,
		LDUpdatedByName: c.LDUpdatedByName,
		LDUpdatedAt:     c.LDUpdatedAt,

		AllocationStatus:    string(c.AllocationStatus),
		AllocationNotes:     c.AllocationNotes,
		AssignedProject:     c.AssignedProject,
		AssignedTeam:        c.AssignedTeam,
		AllocationUpdatedAt: c.AllocationUpdatedAt,

		DeploymentEmailSent:   c.DeploymentEmailSent,
		DeploymentEmailSentAt: c.DeploymentEmailSentAt,

		RoutedToHRTag:    c.RoutedToHRTag,
		RoutedToHROps:    c.RoutedToHROps,
		RoutedToAdmin:    c.RoutedToAdmin,
		RoutingTimestamp: c.RoutingTimestamp,
		RoutingReason:    c.RoutingReason,
	}
}

func toStampInfo(s candidate.Stamp) StampInfo {
	return StampInfo{
		Done:   s.Done,
		At:     s.At,
		ByName: s.ByName,
	}
}

func toAssignmentInfo(a candidate.Assignment) AssignmentInfo {
	return AssignmentInfo{
		Value:          a.Value,
		AssignedAt:     a.AssignedAt,
		AssignedByName: a.AssignedByName,
	}
}

// CandidateListFilter contains list query options
type CandidateListFilter struct {
	Search          string
	Status          string
	LDStatus        string
	ExperienceLevel string
	BatchLabel      string
	Year            int
	Page            int
	PageSize        int
	SortBy          string
	SortDesc        bool
}

// UpdateAllocationInput contains a Delivery allocation update
type UpdateAllocationInput struct {
	AllocationStatus string
	Notes            string
	Project          string
	Team             string
}

// BulkResult reports the outcome of a best-effort bulk flag-set
type BulkResult struct {
	Requested   int         `json:"requested"`
	Modified    int         `json:"modified"`
	ModifiedIDs []uuid.UUID `json:"modified_ids"`
}

// DeliveryReleaseResult breaks a Delivery release down by experience level
type DeliveryReleaseResult struct {
	BulkResult
	Freshers int `json:"freshers"`
	Laterals int `json:"laterals"`
}
