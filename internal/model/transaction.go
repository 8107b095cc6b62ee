package model

import (
	"time"

	"github.com/tresuru/tresuru/internal/constants"
)

// Transaction is a proposed transfer moving through the approval
// lifecycle. Core fields are immutable once created; only Status,
// Approvals, ApprovedAt, ExecutedAt and SettlementRef change.
type Transaction struct {
	ID          string
	Type        string
	Status      string
	From        string
	To          string
	ToLabel     string
	Amount      int64 // cents
	Asset       string
	Category    string
	Memo        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time

	// RequiredApprovals is frozen at proposal time; policy changes
	// never retroactively alter it.
	RequiredApprovals int

	ApprovedAt    *time.Time
	ExecutedAt    *time.Time
	SettlementRef string

	Approvals []Approval
}

// Approval is one signer's vote slot on a transaction. Seeded in
// pending status for every eligible signer at proposal time.
type Approval struct {
	ID         string
	Signer     string
	SignerName string
	Status     string
	VotedAt    *time.Time
	Comment    string
}

// Entry returns the approval slot for the given signer address, or
// nil if the signer was not eligible when the transaction was created.
func (t *Transaction) Entry(address string) *Approval {
	for i := range t.Approvals {
		if t.Approvals[i].Signer == address {
			return &t.Approvals[i]
		}
	}
	return nil
}

func (t *Transaction) ApprovedCount() int {
	n := 0
	for i := range t.Approvals {
		if t.Approvals[i].Status == constants.VoteApproved {
			n++
		}
	}
	return n
}

// IsFinal reports whether the transaction reached a terminal state.
// Votes on final transactions are frozen.
func (t *Transaction) IsFinal() bool {
	switch t.Status {
	case constants.StatusExecuted, constants.StatusRejected, constants.StatusCancelled:
		return true
	}
	return false
}
