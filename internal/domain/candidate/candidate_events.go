package candidate

import (
	"github.com/talentflow/backend/internal/domain/shared"
)

// Event type constants
const (
	EventCandidateSubmitted      = "candidate.submitted"
	EventCandidateSentToOps      = "candidate.sent_to_ops"
	EventLDDecisionRecorded      = "candidate.ld_decision_recorded"
	EventCandidateSentToDelivery = "candidate.sent_to_delivery"
	EventIdentityAssigned        = "candidate.identity_assigned"
)

const aggregateType = "Candidate"

// CandidateSubmittedEvent is raised when HR Tag submits a new candidate
type CandidateSubmittedEvent struct {
	shared.BaseDomainEvent
	FullName        string          `json:"full_name"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	SubmittedByName string          `json:"submitted_by_name"`
}

// NewCandidateSubmittedEvent creates a CandidateSubmittedEvent
func NewCandidateSubmittedEvent(c *Candidate) *CandidateSubmittedEvent {
	return &CandidateSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCandidateSubmitted, aggregateType, c.ID),
		FullName:        c.FullName,
		ExperienceLevel: c.ExperienceLevel,
		SubmittedByName: c.SubmittedByName,
	}
}

// CandidateSentToOpsEvent is raised when a candidate enters HR Ops processing
type CandidateSentToOpsEvent struct {
	shared.BaseDomainEvent
	SentByName string `json:"sent_by_name"`
}

// NewCandidateSentToOpsEvent creates a CandidateSentToOpsEvent
func NewCandidateSentToOpsEvent(c *Candidate, actor Actor) *CandidateSentToOpsEvent {
	return &CandidateSentToOpsEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCandidateSentToOps, aggregateType, c.ID),
		SentByName:      actor.Name,
	}
}

// LDDecisionRecordedEvent is raised when L&D records a review decision
type LDDecisionRecordedEvent struct {
	shared.BaseDomainEvent
	Decision      LDStatus `json:"decision"`
	Reason        string   `json:"reason,omitempty"`
	DecidedByName string   `json:"decided_by_name"`
}

// NewLDDecisionRecordedEvent creates an LDDecisionRecordedEvent
func NewLDDecisionRecordedEvent(c *Candidate, decision LDStatus, reason string, actor Actor) *LDDecisionRecordedEvent {
	return &LDDecisionRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventLDDecisionRecorded, aggregateType, c.ID),
		Decision:        decision,
		Reason:          reason,
		DecidedByName:   actor.Name,
	}
}

// CandidateSentToDeliveryEvent is raised when a candidate reaches the Delivery team
type CandidateSentToDeliveryEvent struct {
	shared.BaseDomainEvent
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	SentByName      string          `json:"sent_by_name"`
}

// NewCandidateSentToDeliveryEvent creates a CandidateSentToDeliveryEvent
func NewCandidateSentToDeliveryEvent(c *Candidate, actor Actor) *CandidateSentToDeliveryEvent {
	return &CandidateSentToDeliveryEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCandidateSentToDelivery, aggregateType, c.ID),
		ExperienceLevel: c.ExperienceLevel,
		SentByName:      actor.Name,
	}
}

// IdentityAssignedEvent is raised when HR Ops issues an identity value
type IdentityAssignedEvent struct {
	shared.BaseDomainEvent
	Kind           IdentityKind `json:"kind"`
	Value          string       `json:"value"`
	AssignedByName string       `json:"assigned_by_name"`
}

// NewIdentityAssignedEvent creates an IdentityAssignedEvent
func NewIdentityAssignedEvent(c *Candidate, kind IdentityKind, value string, actor Actor) *IdentityAssignedEvent {
	return &IdentityAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventIdentityAssigned, aggregateType, c.ID),
		Kind:            kind,
		Value:           value,
		AssignedByName:  actor.Name,
	}
}
