package attribution

import (
	"afftrack/internal/domain"
	"afftrack/internal/models"
)

// TransitionContext carries the fields a payout transition may require.
type TransitionContext struct {
	TransactionID string
	DeclineReason string
	Notes         string
}

// payoutGraph is the legal transition set. pending -> paid is deliberately
// absent: a payout must pass through processing before it can be paid.
var payoutGraph = map[string][]string{
	domain.PayoutPending:    {domain.PayoutProcessing, domain.PayoutDeclined},
	domain.PayoutProcessing: {domain.PayoutPaid, domain.PayoutDeclined},
	domain.PayoutPaid:       {},
	domain.PayoutDeclined:   {},
}

// CanTransition reports whether from -> to is a legal payout status change.
func CanTransition(from, to string) bool {
	for _, next := range payoutGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionPayout applies next to the payout in place after checking the
// graph and the fields the target state requires: paid needs a transaction
// id, declined needs a decline reason. Concurrent transitions are resolved by
// the repository's conditional update keyed on the expected current status.
func TransitionPayout(p *models.Payout, next string, ctx TransitionContext) error {
	if p == nil {
		return missingFieldErr("payout")
	}
	if _, known := payoutGraph[next]; !known {
		return &Error{Code: CodeInvalidTransition, Field: "status", Message: "unknown payout status " + next}
	}
	if !CanTransition(p.Status, next) {
		return &Error{
			Code:    CodeInvalidTransition,
			Field:   "status",
			Message: "cannot transition payout from " + p.Status + " to " + next,
		}
	}

	switch next {
	case domain.PayoutPaid:
		if ctx.TransactionID == "" {
			return missingFieldErr("transaction_id")
		}
		p.TransactionID = ctx.TransactionID
	case domain.PayoutDeclined:
		if ctx.DeclineReason == "" {
			return missingFieldErr("decline_reason")
		}
		p.DeclineReason = ctx.DeclineReason
	}
	if ctx.Notes != "" {
		p.Notes = ctx.Notes
	}
	p.Status = next
	return nil
}
