package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/model"
)

// SeedApprovals creates one pending vote slot per eligible signer.
// Viewers get no slot. Called once, alongside transaction creation.
func SeedApprovals(tx *model.Transaction, signers []*model.Signer) {
	for _, s := range signers {
		if !constants.CanVote(s.Role) {
			continue
		}
		tx.Approvals = append(tx.Approvals, model.Approval{
			ID:         uuid.NewString(),
			Signer:     s.Address,
			SignerName: s.Name,
			Status:     constants.VotePending,
		})
	}
}

// CastVote applies a signer's approve/reject decision to its vote
// slot and re-evaluates the transaction's state. This is the only
// path by which pending_approval advances.
func CastVote(tx *model.Transaction, signer, decision, comment string, now time.Time) error {
	if tx.IsFinal() {
		return ErrTransactionFinalized
	}

	entry := tx.Entry(signer)
	if entry == nil {
		return ErrNotASigner
	}
	if entry.Status != constants.VotePending {
		return ErrAlreadyVoted
	}

	switch decision {
	case constants.VoteApproved:
	case constants.VoteRejected:
		if comment == "" {
			return ErrCommentRequired
		}
	default:
		return fmt.Errorf("unknown vote decision %q", decision)
	}

	votedAt := now
	entry.Status = decision
	entry.VotedAt = &votedAt
	entry.Comment = comment

	retally(tx, now)
	return nil
}

// RevokeVote resets a signer's vote slot to pending so the signer can
// vote again. Votes on finalized transactions are frozen.
func RevokeVote(tx *model.Transaction, signer string, now time.Time) error {
	if tx.IsFinal() {
		return ErrTransactionFinalized
	}

	entry := tx.Entry(signer)
	if entry == nil {
		return ErrNotASigner
	}
	if entry.Status == constants.VotePending {
		return ErrNothingToRevoke
	}

	entry.Status = constants.VotePending
	entry.VotedAt = nil
	entry.Comment = ""

	// Dropping below the frozen threshold reopens the approval phase.
	if tx.Status == constants.StatusApproved && tx.ApprovedCount() < tx.RequiredApprovals {
		tx.Status = constants.StatusPendingApproval
		tx.ApprovedAt = nil
	}
	return nil
}

func retally(tx *model.Transaction, now time.Time) {
	for i := range tx.Approvals {
		if tx.Approvals[i].Status == constants.VoteRejected {
			// A single rejection is terminal.
			tx.Status = constants.StatusRejected
			return
		}
	}

	if tx.Status == constants.StatusPendingApproval && tx.ApprovedCount() >= tx.RequiredApprovals {
		approvedAt := now
		tx.Status = constants.StatusApproved
		tx.ApprovedAt = &approvedAt
	}
}
