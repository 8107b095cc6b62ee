package reconcile

import (
	"time"

	"github.com/tresuru/tresuru/internal/ledger"
	"github.com/tresuru/tresuru/internal/model"
	"github.com/tresuru/tresuru/internal/store"
)

func toModelTx(stx *store.Transaction, approvals []*store.Approval) *model.Transaction {
	tx := &model.Transaction{
		ID:                stx.ID,
		Type:              stx.Type,
		Status:            stx.Status,
		From:              stx.FromAccount,
		To:                stx.ToAddress,
		ToLabel:           stx.ToLabel,
		Amount:            stx.Amount,
		Asset:             stx.Asset,
		Category:          stx.Category,
		Memo:              stx.Memo,
		Description:       stx.Description,
		CreatedBy:         stx.CreatedBy,
		CreatedAt:         time.Unix(stx.CreatedAt, 0).UTC(),
		RequiredApprovals: stx.RequiredApprovals,
		ApprovedAt:        unixPtrToTime(stx.ApprovedAt),
		ExecutedAt:        unixPtrToTime(stx.ExecutedAt),
		SettlementRef:     stx.SettlementRef,
	}
	for _, a := range approvals {
		tx.Approvals = append(tx.Approvals, model.Approval{
			ID:         a.ID,
			Signer:     a.Signer,
			SignerName: a.SignerName,
			Status:     a.Status,
			VotedAt:    unixPtrToTime(a.VotedAt),
			Comment:    a.Comment,
		})
	}
	return tx
}

func fromModelTx(tx *model.Transaction) (store.Transaction, []store.Approval) {
	stx := store.Transaction{
		ID:                tx.ID,
		Type:              tx.Type,
		Status:            tx.Status,
		FromAccount:       tx.From,
		ToAddress:         tx.To,
		ToLabel:           tx.ToLabel,
		Amount:            tx.Amount,
		Asset:             tx.Asset,
		Category:          tx.Category,
		Memo:              tx.Memo,
		Description:       tx.Description,
		CreatedBy:         tx.CreatedBy,
		CreatedAt:         tx.CreatedAt.Unix(),
		RequiredApprovals: tx.RequiredApprovals,
		ApprovedAt:        timePtrToUnix(tx.ApprovedAt),
		ExecutedAt:        timePtrToUnix(tx.ExecutedAt),
		SettlementRef:     tx.SettlementRef,
	}

	var approvals []store.Approval
	for _, a := range tx.Approvals {
		approvals = append(approvals, store.Approval{
			ID:            a.ID,
			TransactionID: tx.ID,
			Signer:        a.Signer,
			SignerName:    a.SignerName,
			Status:        a.Status,
			VotedAt:       timePtrToUnix(a.VotedAt),
			Comment:       a.Comment,
		})
	}
	return stx, approvals
}

func toModelSigner(s *store.Signer) *model.Signer {
	return &model.Signer{
		ID:         s.ID,
		Address:    s.Address,
		Name:       s.Name,
		Role:       s.Role,
		EnrolledAt: time.Unix(s.EnrolledAt, 0).UTC(),
	}
}

// recordToModelTx maps a ledger record onto the model. Only the fields
// the ledger carries are populated; local cache fields are never mixed
// into a ledger-backed read.
func recordToModelTx(rec *ledger.TransactionRecord) *model.Transaction {
	return &model.Transaction{
		ID:                rec.ID,
		To:                rec.To,
		Amount:            rec.Amount,
		Memo:              rec.Memo,
		Description:       rec.Description,
		Status:            rec.Status,
		RequiredApprovals: rec.Required,
		SettlementRef:     rec.SettlementRef,
	}
}

func unixPtrToTime(v *int64) *time.Time {
	if v == nil {
		return nil
	}
	t := time.Unix(*v, 0).UTC()
	return &t
}

func timePtrToUnix(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.Unix()
	return &v
}
