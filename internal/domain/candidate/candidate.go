package candidate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/shared"
)

// ExperienceLevel classifies a candidate's hiring track
type ExperienceLevel string

const (
	ExperienceFresher ExperienceLevel = "Fresher"
	ExperienceLateral ExperienceLevel = "Lateral"
)

// Status is the HR Tag submission status of a candidate
type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusSent      Status = "sent"
)

// LDStatus is the L&D review decision
type LDStatus string

const (
	LDPending  LDStatus = "Pending"
	LDSelected LDStatus = "Selected"
	LDRejected LDStatus = "Rejected"
	LDDropped  LDStatus = "Dropped"
)

// AllocationStatus tracks the Delivery team's allocation of a candidate
type AllocationStatus string

const (
	AllocationPending   AllocationStatus = "Pending Allocation"
	AllocationAllocated AllocationStatus = "Allocated"
	AllocationOnHold    AllocationStatus = "On Hold"
	AllocationCompleted AllocationStatus = "Completed"
)

// Source describes how the candidate reached HR Tag
type Source string

const (
	SourceWalkIn    Source = "Walk-in"
	SourceReference Source = "Reference"
	SourceCampus    Source = "Campus"
)

// RoutingReason explains why a candidate was fanned out to other team views
const (
	RoutingLDRejected  = "L&D Rejected"
	RoutingLDDropped   = "L&D Dropped"
	RoutingInitialSend = "Initial Send"
)

// ldReasons is the closed set of reasons accepted for Rejected/Dropped decisions
var ldReasons = map[string]bool{
	"Not Selected":        true,
	"Uninformed Leave":    true,
	"Underperformance":    true,
	"Behavioural Issues":  true,
	"Disciplinary Issues": true,
	"Low Score":           true,
	"Better Offer":        true,
	"Health Issues":       true,
	"Personal Reasons":    true,
	"Abscond":             true,
}

var (
	personalEmailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	employeeIDRegex    = regexp.MustCompile(`^[A-Z0-9]{3,10}$`)
	permanentIDRegex   = regexp.MustCompile(`^[A-Z0-9]{4,12}$`)
	mobileRegex        = regexp.MustCompile(`^[0-9+\-() ]{7,15}$`)
)

// Actor identifies the employee performing an operation
type Actor struct {
	ID   uuid.UUID
	Name string
}

// Stamp records that a routing action happened, when, and by whom
type Stamp struct {
	Done   bool       `gorm:"not null;default:false"`
	At     *time.Time `gorm:""`
	By     *uuid.UUID `gorm:"type:uuid"`
	ByName string     `gorm:"size:200"`
}

func stampNow(actor Actor) Stamp {
	now := time.Now()
	id := actor.ID
	return Stamp{Done: true, At: &now, By: &id, ByName: actor.Name}
}

// Assignment records an identity value issued by HR Ops
type Assignment struct {
	Value          string     `gorm:"size:200"`
	AssignedAt     *time.Time `gorm:""`
	AssignedBy     *uuid.UUID `gorm:"type:uuid"`
	AssignedByName string     `gorm:"size:200"`
}

// Assigned reports whether the identity has been issued
func (a Assignment) Assigned() bool {
	return a.Value != ""
}

// Candidate is the aggregate root of the recruiting pipeline.
// It moves across team views through guarded flag transitions.
type Candidate struct {
	shared.BaseAggregateRoot

	FullName        string          `gorm:"size:200;not null;index"`
	Gender          string          `gorm:"size:10"`
	FatherName      string          `gorm:"size:200"`
	FirstGraduate   string          `gorm:"size:5"`
	ExperienceLevel ExperienceLevel `gorm:"size:10;index"`
	Source          Source          `gorm:"size:20"`
	ReferenceName   string          `gorm:"size:200"`
	Native          string          `gorm:"size:200"`
	MobileNumber    string          `gorm:"size:20;not null;uniqueIndex"`
	PersonalEmail   string          `gorm:"size:200;not null;uniqueIndex"`
	College         string          `gorm:"size:200"`
	BatchLabel      string          `gorm:"size:100;index"`
	Year            int             `gorm:"index"`
	LinkedinURL     string          `gorm:"size:500"`
	ResumeFileName  string          `gorm:"size:300"`
	ResumePath      string          `gorm:"size:500"`
	Notes           string          `gorm:"type:text"`

	SubmittedBy     uuid.UUID `gorm:"type:uuid;not null;index"`
	SubmittedByName string    `gorm:"size:200;not null"`

	Status Status `gorm:"size:20;not null;default:submitted;index"`

	OfficeEmail Assignment `gorm:"embedded;embeddedPrefix:office_email_"`
	EmployeeID  Assignment `gorm:"embedded;embeddedPrefix:employee_id_"`
	PermanentID Assignment `gorm:"embedded;embeddedPrefix:permanent_id_"`

	SentToOps      Stamp `gorm:"embedded;embeddedPrefix:sent_to_ops_"`
	SentToAdmin    Stamp `gorm:"embedded;embeddedPrefix:sent_to_admin_"`
	SentToLD       Stamp `gorm:"embedded;embeddedPrefix:sent_to_ld_"`
	SentToDelivery Stamp `gorm:"embedded;embeddedPrefix:sent_to_delivery_"`
	SentToHRTag    Stamp `gorm:"embedded;embeddedPrefix:sent_to_hr_tag_"`

	LDStatus        LDStatus   `gorm:"size:20;default:Pending;index"`
	LDReason        string     `gorm:"size:50"`
	LDUpdatedBy     *uuid.UUID `gorm:"type:uuid"`
	LDUpdatedByName string     `gorm:"size:200"`
	LDUpdatedAt     *time.Time `gorm:""`

	AllocationStatus    AllocationStatus `gorm:"size:30;default:'Pending Allocation';index"`
	AllocationNotes     string           `gorm:"type:text"`
	AssignedProject     string           `gorm:"size:200"`
	AssignedTeam        string           `gorm:"size:200"`
	AllocationUpdatedBy *uuid.UUID       `gorm:"type:uuid"`
	AllocationUpdatedAt *time.Time       `gorm:""`

	DeploymentEmailSent   bool       `gorm:"not null;default:false;index"`
	DeploymentEmailSentAt *time.Time `gorm:""`
	DeploymentEmailSentBy *uuid.UUID `gorm:"type:uuid"`
	DeploymentRecordID    *uuid.UUID `gorm:"type:uuid"`

	RoutedToHRTag    bool       `gorm:"not null;default:false;index"`
	RoutedToHROps    bool       `gorm:"not null;default:false;index"`
	RoutedToAdmin    bool       `gorm:"not null;default:false;index"`
	RoutingTimestamp *time.Time `gorm:""`
	RoutingReason    string     `gorm:"size:20"`
}

// TableName overrides the GORM table name
func (Candidate) TableName() string {
	return "candidates"
}

// NewCandidateInput carries the HR Tag submission fields
type NewCandidateInput struct {
	FullName        string
	Gender          string
	FatherName      string
	FirstGraduate   string
	ExperienceLevel ExperienceLevel
	Source          Source
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

// NewCandidate creates a candidate in the HR Tag Submitted state
func NewCandidate(input NewCandidateInput, submitter Actor) (*Candidate, error) {
	if err := validateFullName(input.FullName); err != nil {
		return nil, err
	}
	if err := validateGender(input.Gender); err != nil {
		return nil, err
	}
	if err := validatePersonalEmail(input.PersonalEmail); err != nil {
		return nil, err
	}
	if err := validateMobileNumber(input.MobileNumber); err != nil {
		return nil, err
	}
	if err := validateExperienceLevel(input.ExperienceLevel); err != nil {
		return nil, err
	}
	if err := validateSource(input.Source, input.ReferenceName); err != nil {
		return nil, err
	}
	if submitter.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUBMITTER", "Submitter is required")
	}

	c := &Candidate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FullName:          strings.TrimSpace(input.FullName),
		Gender:            input.Gender,
		FatherName:        strings.TrimSpace(input.FatherName),
		FirstGraduate:     input.FirstGraduate,
		ExperienceLevel:   input.ExperienceLevel,
		Source:            input.Source,
		ReferenceName:     strings.TrimSpace(input.ReferenceName),
		Native:            strings.TrimSpace(input.Native),
		MobileNumber:      strings.TrimSpace(input.MobileNumber),
		PersonalEmail:     strings.ToLower(strings.TrimSpace(input.PersonalEmail)),
		College:           strings.TrimSpace(input.College),
		BatchLabel:        strings.TrimSpace(input.BatchLabel),
		Year:              input.Year,
		LinkedinURL:       strings.TrimSpace(input.LinkedinURL),
		ResumeFileName:    input.ResumeFileName,
		ResumePath:        input.ResumePath,
		SubmittedBy:       submitter.ID,
		SubmittedByName:   submitter.Name,
		Status:            StatusSubmitted,
		LDStatus:          LDPending,
		AllocationStatus:  AllocationPending,
	}

	c.AddDomainEvent(NewCandidateSubmittedEvent(c))

	return c, nil
}

// EffectiveLDStatus normalizes an unset decision to Pending
func (c *Candidate) EffectiveLDStatus() LDStatus {
	if c.LDStatus == "" {
		return LDPending
	}
	return c.LDStatus
}

// IsRejectedOrDropped reports whether L&D has ended this candidate's run
func (c *Candidate) IsRejectedOrDropped() bool {
	s := c.EffectiveLDStatus()
	return s == LDRejected || s == LDDropped
}

// SendToOps moves a submitted candidate into HR Ops processing
func (c *Candidate) SendToOps(actor Actor) error {
	if c.Status == StatusSent {
		return shared.NewDomainError("ALREADY_DONE", "Candidate has already been sent to HR Ops")
	}

	c.Status = StatusSent
	c.touch()

	c.AddDomainEvent(NewCandidateSentToOpsEvent(c, actor))

	return nil
}

// RouteToOpsForPermanentID flags a deployed, selected candidate back to
// HR Ops so a permanent employee ID can be issued
func (c *Candidate) RouteToOpsForPermanentID(actor Actor) error {
	if c.Status != StatusSent || !c.SentToHRTag.Done || c.EffectiveLDStatus() != LDSelected {
		return shared.NewDomainError("INVALID_STATE", "Only deployed, selected candidates can be routed for a permanent ID")
	}
	if c.SentToOps.Done {
		return shared.NewDomainError("ALREADY_DONE", "Candidate has already been routed to HR Ops for a permanent ID")
	}

	c.SentToOps = stampNow(actor)
	c.RoutedToHROps = true
	// The candidate goes back to Delivery once the permanent ID is issued,
	// so the Delivery stamp is reopened here
	c.SentToDelivery = Stamp{}
	c.touch()

	return nil
}

// MarkSentToLD flags the candidate into the L&D review queue
func (c *Candidate) MarkSentToLD(actor Actor) error {
	if c.SentToLD.Done {
		return shared.NewDomainError("ALREADY_DONE", "Candidate has already been sent to L&D")
	}

	c.SentToLD = stampNow(actor)
	c.touch()

	return nil
}

// MarkSentToAdmin flags the candidate into the Admin review view
func (c *Candidate) MarkSentToAdmin(actor Actor) error {
	if c.SentToAdmin.Done {
		return shared.NewDomainError("ALREADY_DONE", "Candidate has already been sent to Admin")
	}

	c.SentToAdmin = stampNow(actor)
	c.touch()

	return nil
}

// MarkSentToAdminAndLD flags both review views in one transition.
// Either flag already being set fails the whole operation so the pair
// stays atomic.
func (c *Candidate) MarkSentToAdminAndLD(actor Actor) error {
	if c.SentToAdmin.Done && c.SentToLD.Done {
		return shared.NewDomainError("ALREADY_DONE", "Candidate has already been sent to Admin and L&D")
	}

	stamp := stampNow(actor)
	if !c.SentToAdmin.Done {
		c.SentToAdmin = stamp
	}
	if !c.SentToLD.Done {
		c.SentToLD = stamp
	}
	c.touch()

	return nil
}

// UpdateLDDecision records the L&D review outcome. Rejected and Dropped
// decisions fan out to the HR Tag and Admin views in the same transition.
func (c *Candidate) UpdateLDDecision(status LDStatus, reason string, actor Actor) error {
	switch status {
	case LDPending, LDSelected, LDRejected, LDDropped:
	default:
		return shared.NewDomainError("INVALID_LD_STATUS", fmt.Sprintf("Invalid L&D status: %s", status))
	}

	reason = strings.TrimSpace(reason)
	if status == LDRejected || status == LDDropped {
		if reason == "" {
			return shared.NewDomainError("LD_REASON_REQUIRED", "A reason is required when rejecting or dropping a candidate")
		}
		if !ldReasons[reason] {
			return shared.NewDomainError("INVALID_LD_REASON", fmt.Sprintf("Invalid L&D reason: %s", reason))
		}
	} else {
		reason = ""
	}

	now := time.Now()
	id := actor.ID
	c.LDStatus = status
	c.LDReason = reason
	c.LDUpdatedBy = &id
	c.LDUpdatedByName = actor.Name
	c.LDUpdatedAt = &now

	if status == LDRejected || status == LDDropped {
		c.RoutedToHRTag = true
		c.RoutedToHROps = true
		c.RoutedToAdmin = true
		c.RoutingTimestamp = &now
		if status == LDRejected {
			c.RoutingReason = RoutingLDRejected
		} else {
			c.RoutingReason = RoutingLDDropped
		}
		if !c.SentToHRTag.Done {
			c.SentToHRTag = stampNow(actor)
		}
		if !c.SentToAdmin.Done {
			c.SentToAdmin = stampNow(actor)
		}
	}

	c.touch()

	c.AddDomainEvent(NewLDDecisionRecordedEvent(c, status, reason, actor))

	return nil
}

// SendToDeliveryFromLD releases a selected candidate to the Delivery team.
// Freshers get the routing flag only; Laterals also enter the allocation
// queue.
func (c *Candidate) SendToDeliveryFromLD(actor Actor) error {
	if c.EffectiveLDStatus() != LDSelected {
		return shared.NewDomainError("INVALID_STATE", "Only candidates selected by L&D can be sent to Delivery")
	}
	if c.SentToDelivery.Done {
		return shared.NewDomainError("ALREADY_DONE", "Candidate has already been sent to Delivery")
	}

	c.SentToDelivery = stampNow(actor)
	if c.ExperienceLevel == ExperienceLateral {
		c.AllocationStatus = AllocationPending
	}
	c.touch()

	c.AddDomainEvent(NewCandidateSentToDeliveryEvent(c, actor))

	return nil
}

// SendToDeliveryStandard releases a candidate to Delivery from HR Ops.
// Both identity values issued by HR Ops must be in place first.
func (c *Candidate) SendToDeliveryStandard(actor Actor) error {
	if !c.OfficeEmail.Assigned() || !c.EmployeeID.Assigned() {
		return shared.NewDomainError("INVALID_STATE", "Candidate needs an office email and employee ID before going to Delivery")
	}
	if c.SentToDelivery.Done {
		return shared.NewDomainError("ALREADY_DONE", "Candidate has already been sent to Delivery")
	}

	c.SentToDelivery = stampNow(actor)
	c.touch()

	c.AddDomainEvent(NewCandidateSentToDeliveryEvent(c, actor))

	return nil
}

// SendToDeliveryPermanent releases a candidate to Delivery once the
// permanent employee ID has been issued
func (c *Candidate) SendToDeliveryPermanent(actor Actor) error {
	if !c.PermanentID.Assigned() {
		return shared.NewDomainError("INVALID_STATE", "Candidate needs a permanent employee ID before going to Delivery")
	}
	if c.SentToDelivery.Done {
		return shared.NewDomainError("ALREADY_DONE", "Candidate has already been sent to Delivery")
	}

	c.SentToDelivery = stampNow(actor)
	c.touch()

	c.AddDomainEvent(NewCandidateSentToDeliveryEvent(c, actor))

	return nil
}

// MarkDeployedToHRTag routes a deployed candidate back into the HR Tag view
func (c *Candidate) MarkDeployedToHRTag(actor Actor) error {
	if c.Status != StatusSent || !c.SentToDelivery.Done {
		return shared.NewDomainError("INVALID_STATE", "Only candidates deployed through Delivery can be sent back to HR Tag")
	}
	if c.SentToHRTag.Done {
		return shared.NewDomainError("ALREADY_DONE", "Candidate has already been sent back to HR Tag")
	}

	now := time.Now()
	c.SentToHRTag = stampNow(actor)
	c.RoutedToHRTag = true
	c.RoutingTimestamp = &now
	c.touch()

	return nil
}

// UpdateAllocation records the Delivery team's allocation decision
func (c *Candidate) UpdateAllocation(status AllocationStatus, notes, project, team string, actor Actor) error {
	switch status {
	case AllocationPending, AllocationAllocated, AllocationOnHold, AllocationCompleted:
	default:
		return shared.NewDomainError("INVALID_ALLOCATION_STATUS", fmt.Sprintf("Invalid allocation status: %s", status))
	}
	if !c.SentToDelivery.Done {
		return shared.NewDomainError("INVALID_STATE", "Candidate has not been sent to Delivery")
	}

	now := time.Now()
	id := actor.ID
	c.AllocationStatus = status
	c.AllocationNotes = strings.TrimSpace(notes)
	c.AssignedProject = strings.TrimSpace(project)
	c.AssignedTeam = strings.TrimSpace(team)
	c.AllocationUpdatedBy = &id
	c.AllocationUpdatedAt = &now
	c.touch()

	return nil
}

// RecordDeploymentEmailSent links the deployment record created when the
// deployment notice went out. A second send for the same candidate is
// rejected.
func (c *Candidate) RecordDeploymentEmailSent(recordID uuid.UUID, actor Actor) error {
	if c.DeploymentEmailSent {
		return shared.NewDomainError("ALREADY_DONE", "Deployment email has already been sent for this candidate")
	}

	now := time.Now()
	id := actor.ID
	c.DeploymentEmailSent = true
	c.DeploymentEmailSentAt = &now
	c.DeploymentEmailSentBy = &id
	c.DeploymentRecordID = &recordID
	c.touch()

	return nil
}

// SetNotes replaces the free-text notes
func (c *Candidate) SetNotes(notes string) {
	c.Notes = notes
	c.touch()
}

// SetResume updates the resume metadata
func (c *Candidate) SetResume(fileName, path string) {
	c.ResumeFileName = fileName
	c.ResumePath = path
	c.touch()
}

func (c *Candidate) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Validation functions

func validateFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Full name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Full name cannot exceed 200 characters")
	}
	return nil
}

func validateGender(gender string) error {
	if gender != "Male" && gender != "Female" {
		return shared.NewDomainError("INVALID_GENDER", "Gender must be Male or Female")
	}
	return nil
}

func validatePersonalEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Personal email cannot be empty")
	}
	if !personalEmailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid personal email format")
	}
	return nil
}

func validateMobileNumber(mobile string) error {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return shared.NewDomainError("INVALID_MOBILE", "Mobile number cannot be empty")
	}
	if !mobileRegex.MatchString(mobile) {
		return shared.NewDomainError("INVALID_MOBILE", "Invalid mobile number format")
	}
	return nil
}

func validateExperienceLevel(level ExperienceLevel) error {
	switch level {
	case ExperienceFresher, ExperienceLateral, "":
		return nil
	}
	return shared.NewDomainError("INVALID_EXPERIENCE_LEVEL", "Experience level must be Fresher or Lateral")
}

func validateSource(source Source, referenceName string) error {
	switch source {
	case SourceWalkIn, SourceCampus, "":
	case SourceReference:
		if strings.TrimSpace(referenceName) == "" {
			return shared.NewDomainError("REFERENCE_NAME_REQUIRED", "Reference name is required for reference candidates")
		}
	default:
		return shared.NewDomainError("INVALID_SOURCE", fmt.Sprintf("Invalid source: %s", source))
	}
	return nil
}
