package attribution

import (
	"testing"

	"afftrack/internal/domain"
	"afftrack/internal/models"
)

func TestTransitionPayoutGraph(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		ctx      TransitionContext
		wantCode Code // empty means success
	}{
		{"pending to processing", domain.PayoutPending, domain.PayoutProcessing, TransitionContext{}, ""},
		{"pending to declined", domain.PayoutPending, domain.PayoutDeclined, TransitionContext{DeclineReason: "kyc failed"}, ""},
		{"processing to paid", domain.PayoutProcessing, domain.PayoutPaid, TransitionContext{TransactionID: "tx_123"}, ""},
		{"processing to declined", domain.PayoutProcessing, domain.PayoutDeclined, TransitionContext{DeclineReason: "bank rejected"}, ""},
		{"pending to paid skips processing", domain.PayoutPending, domain.PayoutPaid, TransitionContext{TransactionID: "tx_123"}, CodeInvalidTransition},
		{"paid is terminal", domain.PayoutPaid, domain.PayoutPending, TransitionContext{}, CodeInvalidTransition},
		{"paid cannot decline", domain.PayoutPaid, domain.PayoutDeclined, TransitionContext{DeclineReason: "x"}, CodeInvalidTransition},
		{"declined is terminal", domain.PayoutDeclined, domain.PayoutProcessing, TransitionContext{}, CodeInvalidTransition},
		{"unknown status", domain.PayoutPending, "refunded", TransitionContext{}, CodeInvalidTransition},
		{"paid without transaction id", domain.PayoutProcessing, domain.PayoutPaid, TransitionContext{}, CodeMissingField},
		{"declined without reason", domain.PayoutProcessing, domain.PayoutDeclined, TransitionContext{DeclineReason: ""}, CodeMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Payout{Status: tt.from}
			err := TransitionPayout(p, tt.to, tt.ctx)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("TransitionPayout: %v", err)
				}
				if p.Status != tt.to {
					t.Errorf("status = %s, want %s", p.Status, tt.to)
				}
				return
			}
			if err == nil {
				t.Fatal("TransitionPayout succeeded, want error")
			}
			if !IsCode(err, tt.wantCode) {
				t.Errorf("err = %v, want code %s", err, tt.wantCode)
			}
			if p.Status != tt.from {
				t.Errorf("failed transition mutated status to %s", p.Status)
			}
		})
	}
}

func TestTransitionPayoutSetsContextFields(t *testing.T) {
	p := &models.Payout{Status: domain.PayoutProcessing}
	err := TransitionPayout(p, domain.PayoutPaid, TransitionContext{TransactionID: "tx_9", Notes: "july batch"})
	if err != nil {
		t.Fatalf("TransitionPayout: %v", err)
	}
	if p.TransactionID != "tx_9" {
		t.Errorf("transaction id = %q", p.TransactionID)
	}
	if p.Notes != "july batch" {
		t.Errorf("notes = %q", p.Notes)
	}

	p = &models.Payout{Status: domain.PayoutPending}
	if err := TransitionPayout(p, domain.PayoutDeclined, TransitionContext{DeclineReason: "duplicate request"}); err != nil {
		t.Fatalf("TransitionPayout: %v", err)
	}
	if p.DeclineReason != "duplicate request" {
		t.Errorf("decline reason = %q", p.DeclineReason)
	}
}

func TestCanTransition(t *testing.T) {
	if !CanTransition(domain.PayoutPending, domain.PayoutProcessing) {
		t.Error("pending -> processing should be legal")
	}
	if CanTransition(domain.PayoutPaid, domain.PayoutProcessing) {
		t.Error("paid -> processing should be illegal")
	}
	if CanTransition("", domain.PayoutPaid) {
		t.Error("empty status should have no transitions")
	}
}
