package deployment

import (
	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/domain/shared"
)

// Event type constants
const (
	EventNoticeSent       = "deployment.notice_sent"
	EventExitProcessed    = "deployment.exit_processed"
	EventInternalTransfer = "deployment.internal_transfer"
)

const aggregateType = "Deployment"

// NoticeSentEvent is raised when a deployment notice goes out
type NoticeSentEvent struct {
	shared.BaseDomainEvent
	CandidateID uuid.UUID  `json:"candidate_id"`
	ToTeam      string     `json:"to_team"`
	Client      string     `json:"client"`
	MailStatus  MailStatus `json:"mail_status"`
	SentByName  string     `json:"sent_by_name"`
}

// NewNoticeSentEvent creates a NoticeSentEvent
func NewNoticeSentEvent(r *Record) *NoticeSentEvent {
	return &NoticeSentEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventNoticeSent, aggregateType, r.ID),
		CandidateID:     r.CandidateID,
		ToTeam:          r.ToTeam,
		Client:          r.Client,
		MailStatus:      r.MailStatus,
		SentByName:      r.SentByName,
	}
}

// ExitProcessedEvent is raised when a deployment record is closed out
type ExitProcessedEvent struct {
	shared.BaseDomainEvent
	CandidateID     uuid.UUID `json:"candidate_id"`
	Reason          string    `json:"reason"`
	ProcessedByName string    `json:"processed_by_name"`
}

// NewExitProcessedEvent creates an ExitProcessedEvent
func NewExitProcessedEvent(r *Record) *ExitProcessedEvent {
	return &ExitProcessedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventExitProcessed, aggregateType, r.ID),
		CandidateID:     r.CandidateID,
		Reason:          r.ExitReason,
		ProcessedByName: r.ExitProcessedByName,
	}
}

// InternalTransferEvent is raised when an internal transfer is recorded
type InternalTransferEvent struct {
	shared.BaseDomainEvent
	CandidateID uuid.UUID `json:"candidate_id"`
	FromTeam    string    `json:"from_team"`
	ToTeam      string    `json:"to_team"`
}

// NewInternalTransferEvent creates an InternalTransferEvent
func NewInternalTransferEvent(r *Record) *InternalTransferEvent {
	return &InternalTransferEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventInternalTransfer, aggregateType, r.ID),
		CandidateID:     r.CandidateID,
		FromTeam:        r.FromTeam,
		ToTeam:          r.ToTeam,
	}
}
