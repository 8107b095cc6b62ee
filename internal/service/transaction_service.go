package service

import (
	"context"
	"fmt"

	"github.com/tresuru/tresuru/internal/config"
	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/model"
	"github.com/tresuru/tresuru/internal/reconcile"
	"github.com/tresuru/tresuru/internal/validation"
)

type TransactionService struct {
	gw  *reconcile.Gateway
	cfg *config.Config
}

func NewTransactionService(gw *reconcile.Gateway, cfg *config.Config) *TransactionService {
	return &TransactionService{gw: gw, cfg: cfg}
}

// Propose validates the input and records a new transaction through
// the gateway.
func (ts *TransactionService) Propose(ctx context.Context, in reconcile.ProposeInput) (*model.Transaction, error) {
	if in.Type == "" {
		in.Type = constants.TypeOutbound
	}
	if err := validation.ValidateTransactionType(in.Type); err != nil {
		return nil, err
	}
	if in.Category != "" {
		if err := validation.ValidateCategory(in.Category); err != nil {
			return nil, err
		}
	}
	if in.To != "" {
		if err := validation.ValidateAddress(in.To); err != nil {
			return nil, fmt.Errorf("recipient: %w", err)
		}
	}
	if in.Asset == "" {
		in.Asset = ts.cfg.Defaults.Asset
	}
	return ts.gw.Propose(ctx, in)
}

func (ts *TransactionService) Approve(ctx context.Context, txID, signer string) (*model.Transaction, error) {
	return ts.gw.CastVote(ctx, txID, signer, constants.VoteApproved, "")
}

func (ts *TransactionService) Reject(ctx context.Context, txID, signer, comment string) (*model.Transaction, error) {
	return ts.gw.CastVote(ctx, txID, signer, constants.VoteRejected, comment)
}

func (ts *TransactionService) Revoke(ctx context.Context, txID, signer string) (*model.Transaction, error) {
	return ts.gw.RevokeVote(ctx, txID, signer)
}

func (ts *TransactionService) Execute(ctx context.Context, txID string) (*model.Transaction, error) {
	return ts.gw.Execute(ctx, txID)
}

func (ts *TransactionService) Cancel(ctx context.Context, txID, signer string) (*model.Transaction, error) {
	return ts.gw.Cancel(ctx, txID, signer)
}

func (ts *TransactionService) Get(ctx context.Context, txID string) (*model.Transaction, error) {
	return ts.gw.Transaction(ctx, txID)
}

func (ts *TransactionService) GetRecent(ctx context.Context, limit int) ([]*model.Transaction, error) {
	return ts.gw.Transactions(ctx, limit)
}

func (ts *TransactionService) GetByStatus(ctx context.Context, status string, limit int) ([]*model.Transaction, error) {
	return ts.gw.TransactionsByStatus(ctx, status, limit)
}

// RequiredApprovalsFor previews the approval threshold the active
// policy would freeze onto a proposal of the given amount.
func (ts *TransactionService) RequiredApprovalsFor(amount int64) (int, error) {
	return ts.gw.Policy().RequiredApprovals(amount)
}
