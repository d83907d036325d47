package candidate

// Stage is the derived pipeline position shown on dashboards
type Stage string

const (
	StageLDRejected    Stage = "L&D Rejected"
	StageLDDropped     Stage = "L&D Dropped"
	StageDelivery      Stage = "Delivery Team"
	StageLDReview      Stage = "L&D Review"
	StageAdminReview   Stage = "Admin Review"
	StageOpsProcessing Stage = "HR Ops Processing"
	StageSubmitted     Stage = "HR Tag Submitted"
)

// CurrentStage derives the candidate's pipeline position from its flags.
// A terminal L&D decision wins over everything else, then the furthest
// routing flag, then the submission status.
func (c *Candidate) CurrentStage() Stage {
	switch c.EffectiveLDStatus() {
	case LDRejected:
		return StageLDRejected
	case LDDropped:
		return StageLDDropped
	}
	if c.SentToDelivery.Done {
		return StageDelivery
	}
	if c.SentToLD.Done {
		return StageLDReview
	}
	if c.SentToAdmin.Done {
		return StageAdminReview
	}
	if c.Status == StatusSent {
		return StageOpsProcessing
	}
	return StageSubmitted
}

// IsFullyProcessed reports whether HR Ops has issued both identities and
// L&D has selected the candidate
func (c *Candidate) IsFullyProcessed() bool {
	return c.OfficeEmail.Assigned() && c.EmployeeID.Assigned() && c.EffectiveLDStatus() == LDSelected
}
