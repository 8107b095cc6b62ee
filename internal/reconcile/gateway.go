package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/engine"
	"github.com/tresuru/tresuru/internal/ledger"
	"github.com/tresuru/tresuru/internal/model"
	"github.com/tresuru/tresuru/internal/policy"
	"github.com/tresuru/tresuru/internal/store"
)

// Gateway is the single entry point for treasury reads and writes. It
// arbitrates between the local cache and the authoritative ledger:
// in ledger mode every mutation goes to the adapter first, and the
// cache is only touched after the adapter accepts. An adapter error
// is returned verbatim with no local mutation. In local mode the
// adapter step is skipped and the cache is the source of truth.
type Gateway struct {
	mode     Mode
	repo     store.Repository
	adapter  ledger.Adapter
	pol      *policy.Table
	treasury string

	// Serializes mutations. The cache write must observe the same
	// state the validation ran against.
	mu  sync.Mutex
	now func() time.Time
}

func NewGateway(mode Mode, repo store.Repository, adapter ledger.Adapter, pol *policy.Table, treasury string) *Gateway {
	return &Gateway{
		mode:     mode,
		repo:     repo,
		adapter:  adapter,
		pol:      pol,
		treasury: treasury,
		now:      time.Now,
	}
}

func (g *Gateway) Mode() Mode { return g.mode }

func (g *Gateway) Policy() *policy.Table { return g.pol }

// ProposeInput carries everything a new transaction needs. Amount is
// in cents; Proposer is the acting signer's address.
type ProposeInput struct {
	Type        string
	From        string
	To          string
	ToLabel     string
	Amount      int64
	Asset       string
	Category    string
	Memo        string
	Description string
	Proposer    string
}

// Propose validates and records a new transaction. The approval
// requirement is read from the active policy once, here, and frozen
// onto the transaction.
func (g *Gateway) Propose(ctx context.Context, in ProposeInput) (*model.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	required, err := g.pol.RequiredApprovals(in.Amount)
	if err != nil {
		return nil, err
	}

	proposer, err := g.repo.GetSignerByAddress(in.Proposer)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, engine.ErrNotASigner
		}
		return nil, err
	}
	if !constants.CanVote(proposer.Role) {
		return nil, fmt.Errorf("%w: viewers cannot propose transactions", engine.ErrNotASigner)
	}

	txID := "tx-" + uuid.NewString()[:8]
	if g.mode == ModeLedger {
		id, err := g.adapter.Propose(ctx, in.To, in.Amount, in.Memo, in.Description)
		if err != nil {
			return nil, err
		}
		txID = id
	}

	if in.Type == "" {
		in.Type = constants.TypeOutbound
	}
	if in.Asset == "" {
		in.Asset = constants.DefaultAsset
	}

	tx := &model.Transaction{
		ID:                txID,
		Type:              in.Type,
		Status:            constants.StatusPendingApproval,
		From:              in.From,
		To:                in.To,
		ToLabel:           in.ToLabel,
		Amount:            in.Amount,
		Asset:             in.Asset,
		Category:          in.Category,
		Memo:              in.Memo,
		Description:       in.Description,
		CreatedBy:         proposer.Name,
		CreatedAt:         g.now().UTC(),
		RequiredApprovals: required,
	}

	signers, err := g.repo.GetAllSigners()
	if err != nil {
		return nil, err
	}
	eligible := make([]*model.Signer, 0, len(signers))
	for _, s := range signers {
		eligible = append(eligible, toModelSigner(s))
	}
	engine.SeedApprovals(tx, eligible)

	stx, approvals := fromModelTx(tx)
	if err := g.repo.CreateTransactionWithApprovals(stx, approvals); err != nil {
		return nil, err
	}
	return tx, nil
}

// CastVote applies an approve or reject by the given signer.
func (g *Gateway) CastVote(ctx context.Context, txID, signer, decision, comment string) (*model.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tx, err := g.loadTx(txID)
	if err != nil {
		return nil, err
	}

	// An expired proposal accepts no further votes; the cancellation
	// is recorded the same way the execute path records it.
	if err := engine.ExpireIfStale(tx, g.pol, g.now().UTC()); err != nil {
		stx, _ := fromModelTx(tx)
		if perr := g.repo.UpdateTransactionState(stx); perr != nil {
			return nil, perr
		}
		return nil, err
	}

	if err := engine.CastVote(tx, signer, decision, comment, g.now().UTC()); err != nil {
		return nil, err
	}

	if g.mode == ModeLedger {
		switch decision {
		case constants.VoteApproved:
			err = g.adapter.Approve(ctx, txID)
		case constants.VoteRejected:
			err = g.adapter.Reject(ctx, txID, comment)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := g.persistVote(tx, signer); err != nil {
		return nil, err
	}
	return tx, nil
}

// RevokeVote resets the signer's vote back to pending.
func (g *Gateway) RevokeVote(ctx context.Context, txID, signer string) (*model.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tx, err := g.loadTx(txID)
	if err != nil {
		return nil, err
	}

	if err := engine.RevokeVote(tx, signer, g.now().UTC()); err != nil {
		return nil, err
	}

	if g.mode == ModeLedger {
		if err := g.adapter.RevokeApproval(ctx, txID); err != nil {
			return nil, err
		}
	}

	if err := g.persistVote(tx, signer); err != nil {
		return nil, err
	}
	return tx, nil
}

// Execute runs an approved transaction through the release gates and,
// if all pass, settles it. Gate failures leave the transaction
// untouched and re-triable, except expiration which cancels it.
func (g *Gateway) Execute(ctx context.Context, txID string) (*model.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tx, err := g.loadTx(txID)
	if err != nil {
		return nil, err
	}
	if tx.Status == constants.StatusExecuted {
		return tx, nil
	}

	paused, spentToday, err := g.gateInputs(ctx)
	if err != nil {
		return nil, err
	}

	if err := engine.ExecuteGate(tx, g.pol, paused, spentToday, g.now().UTC()); err != nil {
		if errors.Is(err, engine.ErrTransactionExpired) {
			stx, _ := fromModelTx(tx)
			if perr := g.repo.UpdateTransactionState(stx); perr != nil {
				return nil, perr
			}
		}
		return nil, err
	}

	ref := "sim-" + uuid.NewString()[:12]
	if g.mode == ModeLedger {
		ref, err = g.adapter.Execute(ctx, txID)
		if err != nil {
			return nil, err
		}
	}

	engine.MarkExecuted(tx, ref, g.now().UTC())

	err = g.repo.ExecTx(func(r store.Repository) error {
		stx, _ := fromModelTx(tx)
		if err := r.UpdateTransactionState(stx); err != nil {
			return err
		}
		if g.mode == ModeLocal {
			return applyBalances(r, tx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// Cancel withdraws a transaction still collecting approvals. Allowed
// to its creator and to elevated signers. The ledger has no cancel
// operation, so this is a cache-side transition in both modes.
func (g *Gateway) Cancel(ctx context.Context, txID, caller string) (*model.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tx, err := g.loadTx(txID)
	if err != nil {
		return nil, err
	}

	signer, err := g.repo.GetSignerByAddress(caller)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, engine.ErrNotASigner
		}
		return nil, err
	}
	if signer.Name != tx.CreatedBy && !constants.IsElevated(signer.Role) {
		return nil, fmt.Errorf("only the proposer or an admin/treasurer can cancel %s", txID)
	}

	if err := engine.Cancel(tx); err != nil {
		return nil, err
	}

	stx, _ := fromModelTx(tx)
	if err := g.repo.UpdateTransactionState(stx); err != nil {
		return nil, err
	}
	return tx, nil
}

// EmergencyPause trips the kill switch.
func (g *Gateway) EmergencyPause(ctx context.Context, caller string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	signer, err := g.repo.GetSignerByAddress(caller)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return engine.ErrNotASigner
		}
		return err
	}

	st, err := g.loadPauseState()
	if err != nil {
		return err
	}
	if err := engine.EmergencyPause(st, toModelSigner(signer)); err != nil {
		return err
	}

	if g.mode == ModeLedger {
		if err := g.adapter.EmergencyPause(ctx); err != nil {
			return err
		}
	}
	return g.repo.SetPaused(true)
}

// VoteUnpause records one un-pause vote. Returns whether this vote
// lifted the pause.
func (g *Gateway) VoteUnpause(ctx context.Context, caller string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	signer, err := g.repo.GetSignerByAddress(caller)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return false, engine.ErrNotASigner
		}
		return false, err
	}

	st, err := g.loadPauseState()
	if err != nil {
		return false, err
	}
	lifted, err := engine.VoteUnpause(st, toModelSigner(signer), g.pol.UnpauseThreshold())
	if err != nil {
		return false, err
	}

	if g.mode == ModeLedger {
		if err := g.adapter.VoteUnpause(ctx); err != nil {
			return false, err
		}
	}

	err = g.repo.ExecTx(func(r store.Repository) error {
		if lifted {
			if err := r.SetPaused(false); err != nil {
				return err
			}
			return r.ClearUnpauseVotes()
		}
		return r.AddUnpauseVote(caller, g.now().UTC().Unix())
	})
	if err != nil {
		return false, err
	}
	return lifted, nil
}

// Transaction reads one transaction from the authoritative backend.
func (g *Gateway) Transaction(ctx context.Context, txID string) (*model.Transaction, error) {
	if g.mode == ModeLedger {
		rec, err := g.adapter.GetTransaction(ctx, txID)
		if err != nil {
			return nil, err
		}
		return recordToModelTx(rec), nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadTx(txID)
}

// Transactions lists recent transactions, newest first. The ledger
// numbers transactions sequentially, so the ledger-mode listing walks
// indexes down from the count.
func (g *Gateway) Transactions(ctx context.Context, limit int) ([]*model.Transaction, error) {
	if g.mode == ModeLedger {
		count, err := g.adapter.GetTransactionCount(ctx)
		if err != nil {
			return nil, err
		}
		var out []*model.Transaction
		for i := count - 1; i >= 0 && len(out) < limit; i-- {
			rec, err := g.adapter.GetTransaction(ctx, strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			out = append(out, recordToModelTx(rec))
		}
		return out, nil
	}

	rows, err := g.repo.GetAllTransactions(limit)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, toModelTx(row, nil))
	}
	return out, nil
}

// TransactionsByStatus lists recent transactions in one lifecycle
// state. In ledger mode the filter is applied over the fetched
// records since the ledger indexes by position only.
func (g *Gateway) TransactionsByStatus(ctx context.Context, status string, limit int) ([]*model.Transaction, error) {
	if g.mode == ModeLedger {
		all, err := g.Transactions(ctx, limit)
		if err != nil {
			return nil, err
		}
		var out []*model.Transaction
		for _, tx := range all {
			if tx.Status == status {
				out = append(out, tx)
			}
		}
		return out, nil
	}

	rows, err := g.repo.GetTransactionsByStatus(status, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, toModelTx(row, nil))
	}
	return out, nil
}

// Paused reports the treasury kill-switch state.
func (g *Gateway) Paused(ctx context.Context) (bool, error) {
	if g.mode == ModeLedger {
		return g.adapter.Paused(ctx)
	}
	return g.repo.GetPaused()
}

// UnpauseVotes lists addresses that already voted to lift the pause.
func (g *Gateway) UnpauseVotes(ctx context.Context) ([]string, error) {
	return g.repo.GetUnpauseVotes()
}

// DailySpendRemaining reports how much outbound value may still
// execute before the rolling daily cap trips.
func (g *Gateway) DailySpendRemaining(ctx context.Context) (int64, error) {
	if g.mode == ModeLedger {
		return g.adapter.GetDailySpendRemaining(ctx)
	}
	spent, err := g.repo.GetExecutedOutboundTotalSince(dayStartUTC(g.now()))
	if err != nil {
		return 0, err
	}
	return g.pol.DailyLimitRemaining(spent), nil
}

// TreasuryBalance reports the pooled balance across all accounts.
func (g *Gateway) TreasuryBalance(ctx context.Context) (int64, error) {
	if g.mode == ModeLedger {
		return g.adapter.GetBalance(ctx, g.treasury)
	}
	return g.repo.GetTotalBalance()
}

// Signers lists enrolled signers. The ledger only knows addresses, so
// ledger-mode entries carry no name or role.
func (g *Gateway) Signers(ctx context.Context) ([]*model.Signer, error) {
	if g.mode == ModeLedger {
		addrs, err := g.adapter.GetSigners(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*model.Signer, 0, len(addrs))
		for _, a := range addrs {
			out = append(out, &model.Signer{Address: a})
		}
		return out, nil
	}

	rows, err := g.repo.GetAllSigners()
	if err != nil {
		return nil, err
	}
	out := make([]*model.Signer, 0, len(rows))
	for _, row := range rows {
		out = append(out, toModelSigner(row))
	}
	return out, nil
}

func (g *Gateway) loadTx(txID string) (*model.Transaction, error) {
	stx, approvals, err := g.repo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	return toModelTx(stx, approvals), nil
}

func (g *Gateway) loadPauseState() (*model.PauseState, error) {
	paused, err := g.repo.GetPaused()
	if err != nil {
		return nil, err
	}
	votes, err := g.repo.GetUnpauseVotes()
	if err != nil {
		return nil, err
	}
	return &model.PauseState{Paused: paused, UnpauseVotes: votes}, nil
}

// gateInputs gathers the pause flag and today's executed outbound
// total from the authoritative backend. In ledger mode the spend is
// reconstructed from the ledger's own remaining-allowance counter.
func (g *Gateway) gateInputs(ctx context.Context) (paused bool, spentToday int64, err error) {
	if g.mode == ModeLedger {
		paused, err = g.adapter.Paused(ctx)
		if err != nil {
			return false, 0, err
		}
		remaining, err := g.adapter.GetDailySpendRemaining(ctx)
		if err != nil {
			return false, 0, err
		}
		limit, err := g.adapter.DailyLimit(ctx)
		if err != nil {
			return false, 0, err
		}
		return paused, limit - remaining, nil
	}

	paused, err = g.repo.GetPaused()
	if err != nil {
		return false, 0, err
	}
	spentToday, err = g.repo.GetExecutedOutboundTotalSince(dayStartUTC(g.now()))
	if err != nil {
		return false, 0, err
	}
	return paused, spentToday, nil
}

// persistVote writes one signer's vote slot and the transaction state
// it produced in a single database transaction.
func (g *Gateway) persistVote(tx *model.Transaction, signer string) error {
	return g.repo.ExecTx(func(r store.Repository) error {
		entry := tx.Entry(signer)
		if entry == nil {
			return engine.ErrNotASigner
		}
		if err := r.UpdateApproval(store.Approval{
			ID:            entry.ID,
			TransactionID: tx.ID,
			Signer:        entry.Signer,
			SignerName:    entry.SignerName,
			Status:        entry.Status,
			VotedAt:       timePtrToUnix(entry.VotedAt),
			Comment:       entry.Comment,
		}); err != nil {
			return err
		}
		stx, _ := fromModelTx(tx)
		return r.UpdateTransactionState(stx)
	})
}

// applyBalances mirrors an executed transfer onto the cached account
// balances. Counterparties without a local account are skipped.
func applyBalances(r store.Repository, tx *model.Transaction) error {
	adjust := func(address string, delta int64) error {
		if address == "" {
			return nil
		}
		err := r.AdjustAccountBalance(address, delta)
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	switch tx.Type {
	case constants.TypeOutbound:
		return adjust(tx.From, -tx.Amount)
	case constants.TypeInbound:
		return adjust(tx.To, tx.Amount)
	case constants.TypeInternal:
		if err := adjust(tx.From, -tx.Amount); err != nil {
			return err
		}
		return adjust(tx.To, tx.Amount)
	}
	return nil
}

func dayStartUTC(now time.Time) int64 {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}
