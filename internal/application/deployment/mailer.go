package deployment

import "context"

// OutboundMail is a deployment notice ready for delivery
type OutboundMail struct {
	FromEmail   string
	FromName    string
	AppPassword string
	To          []string
	CC          []string
	Subject     string
	HTMLBody    string
}

// SendOutcome reports per-recipient delivery results
type SendOutcome struct {
	Successful       int
	Failed           int
	FailedRecipients []string
}

// Mailer delivers deployment notices. Implementations send to each
// recipient individually so one bad address does not sink the batch.
type Mailer interface {
	Send(ctx context.Context, mail OutboundMail) (SendOutcome, error)
}
