package reconcile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/engine"
	"github.com/tresuru/tresuru/internal/ledger"
	"github.com/tresuru/tresuru/internal/model"
	"github.com/tresuru/tresuru/internal/policy"
	"github.com/tresuru/tresuru/internal/store"
)

// fakeAdapter records every mutating call and can be told to fail a
// specific method.
type fakeAdapter struct {
	calls  []string
	failOn map[string]error

	proposeID string
	paused    bool
	remaining int64
	limit     int64
}

func (f *fakeAdapter) record(method string) error {
	f.calls = append(f.calls, method)
	if err, ok := f.failOn[method]; ok {
		return err
	}
	return nil
}

func (f *fakeAdapter) GetBalance(ctx context.Context, account string) (int64, error) {
	return 0, f.record("getBalance")
}

func (f *fakeAdapter) GetTransactionCount(ctx context.Context) (int, error) {
	return 0, f.record("getTransactionCount")
}

func (f *fakeAdapter) GetTransaction(ctx context.Context, txID string) (*ledger.TransactionRecord, error) {
	if err := f.record("getTransaction"); err != nil {
		return nil, err
	}
	return &ledger.TransactionRecord{ID: txID, Status: constants.StatusPendingApproval}, nil
}

func (f *fakeAdapter) GetSigners(ctx context.Context) ([]string, error) {
	return nil, f.record("getSigners")
}

func (f *fakeAdapter) IsSigner(ctx context.Context, address string) (bool, error) {
	return true, f.record("isSigner")
}

func (f *fakeAdapter) HasApproved(ctx context.Context, txID, address string) (bool, error) {
	return false, f.record("hasApproved")
}

func (f *fakeAdapter) HasRejected(ctx context.Context, txID, address string) (bool, error) {
	return false, f.record("hasRejected")
}

func (f *fakeAdapter) GetThresholds(ctx context.Context) ([]ledger.Threshold, error) {
	return nil, f.record("getThresholds")
}

func (f *fakeAdapter) GetRequiredApprovals(ctx context.Context, amount int64) (int, error) {
	return 1, f.record("getRequiredApprovals")
}

func (f *fakeAdapter) GetDailySpendRemaining(ctx context.Context) (int64, error) {
	return f.remaining, f.record("getDailySpendRemaining")
}

func (f *fakeAdapter) DailyLimit(ctx context.Context) (int64, error) {
	return f.limit, f.record("dailyLimit")
}

func (f *fakeAdapter) TimelockDuration(ctx context.Context) (time.Duration, error) {
	return time.Hour, f.record("timelockDuration")
}

func (f *fakeAdapter) Paused(ctx context.Context) (bool, error) {
	return f.paused, f.record("paused")
}

func (f *fakeAdapter) Propose(ctx context.Context, to string, amount int64, memo, description string) (string, error) {
	if err := f.record("propose"); err != nil {
		return "", err
	}
	return f.proposeID, nil
}

func (f *fakeAdapter) Approve(ctx context.Context, txID string) error {
	return f.record("approve")
}

func (f *fakeAdapter) RevokeApproval(ctx context.Context, txID string) error {
	return f.record("revokeApproval")
}

func (f *fakeAdapter) Reject(ctx context.Context, txID, reason string) error {
	return f.record("reject")
}

func (f *fakeAdapter) Execute(ctx context.Context, txID string) (string, error) {
	if err := f.record("execute"); err != nil {
		return "", err
	}
	return "0xsettled", nil
}

func (f *fakeAdapter) EmergencyPause(ctx context.Context) error {
	return f.record("emergencyPause")
}

func (f *fakeAdapter) VoteUnpause(ctx context.Context) error {
	return f.record("voteUnpause")
}

const (
	addrAdmin     = "0x1111111111111111111111111111111111111111"
	addrTreasurer = "0x2222222222222222222222222222222222222222"
	addrApprover  = "0x3333333333333333333333333333333333333333"
	addrViewer    = "0x4444444444444444444444444444444444444444"
	addrOperating = "0x5555555555555555555555555555555555555555"
)

func newTestGateway(t *testing.T, mode Mode, adapter ledger.Adapter) (*Gateway, store.Repository) {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "tresuru.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	now := time.Now().UTC().Unix()
	_, err = s.CreateSigner(addrAdmin, "Alex", constants.RoleAdmin, now)
	require.NoError(t, err)
	_, err = s.CreateSigner(addrTreasurer, "Rodney", constants.RoleTreasurer, now)
	require.NoError(t, err)
	_, err = s.CreateSigner(addrApprover, "Peyman", constants.RoleApprover, now)
	require.NoError(t, err)
	_, err = s.CreateSigner(addrViewer, "Borna", constants.RoleViewer, now)
	require.NoError(t, err)
	_, err = s.CreateAccount("Operating", addrOperating, "operating", "", 1_000_000_00)
	require.NoError(t, err)

	return NewGateway(mode, s, adapter, policy.Default(), addrOperating), s
}

func TestProposeFreezesRequiredApprovals(t *testing.T) {
	g, _ := newTestGateway(t, ModeLocal, nil)

	tx, err := g.Propose(context.Background(), ProposeInput{
		From:     addrOperating,
		To:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Amount:   250_000_00,
		Category: "Payroll",
		Proposer: addrTreasurer,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(tx.ID, "tx-"))
	assert.Equal(t, constants.StatusPendingApproval, tx.Status)
	assert.Equal(t, 3, tx.RequiredApprovals)
	assert.Equal(t, "Rodney", tx.CreatedBy)

	// Viewers get no vote slot.
	assert.Len(t, tx.Approvals, 3)
	assert.Nil(t, tx.Entry(addrViewer))
}

func TestProposeRejectsViewerAndStranger(t *testing.T) {
	g, _ := newTestGateway(t, ModeLocal, nil)

	in := ProposeInput{To: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Amount: 100_00}

	in.Proposer = addrViewer
	_, err := g.Propose(context.Background(), in)
	assert.ErrorIs(t, err, engine.ErrNotASigner)

	in.Proposer = "0x9999999999999999999999999999999999999999"
	_, err = g.Propose(context.Background(), in)
	assert.ErrorIs(t, err, engine.ErrNotASigner)
}

func TestProposeLedgerModeUsesLedgerID(t *testing.T) {
	fa := &fakeAdapter{proposeID: "7"}
	g, _ := newTestGateway(t, ModeLedger, fa)

	tx, err := g.Propose(context.Background(), ProposeInput{
		To:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Amount:   5_000_00,
		Proposer: addrAdmin,
	})
	require.NoError(t, err)

	assert.Equal(t, "7", tx.ID)
	assert.Contains(t, fa.calls, "propose")
}

func TestAdapterFailureLeavesCacheUntouched(t *testing.T) {
	boom := errors.New("ledger unavailable")
	fa := &fakeAdapter{proposeID: "3", failOn: map[string]error{"approve": boom}}
	g, repo := newTestGateway(t, ModeLedger, fa)

	tx, err := g.Propose(context.Background(), ProposeInput{
		To:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Amount:   5_000_00,
		Proposer: addrAdmin,
	})
	require.NoError(t, err)

	_, err = g.CastVote(context.Background(), tx.ID, addrAdmin, constants.VoteApproved, "")
	assert.ErrorIs(t, err, boom)

	// The rejected write must not have landed locally.
	stx, approvals, err := repo.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPendingApproval, stx.Status)
	for _, a := range approvals {
		assert.Equal(t, constants.VotePending, a.Status)
	}
}

func TestLocalModeNeverTouchesAdapter(t *testing.T) {
	// A nil adapter would panic on any call.
	g, _ := newTestGateway(t, ModeLocal, nil)
	ctx := context.Background()

	tx, err := g.Propose(ctx, ProposeInput{
		From:     addrOperating,
		To:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Amount:   5_000_00,
		Proposer: addrAdmin,
	})
	require.NoError(t, err)

	tx, err = g.CastVote(ctx, tx.ID, addrAdmin, constants.VoteApproved, "")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, tx.Status)
}

func TestCastVoteRefusesExpiredProposal(t *testing.T) {
	g, repo := newTestGateway(t, ModeLocal, nil)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return base }

	tx, err := g.Propose(ctx, ProposeInput{
		From:     addrOperating,
		To:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Amount:   5_000_00,
		Proposer: addrTreasurer,
	})
	require.NoError(t, err)

	// Two months later the proposal window has long closed.
	g.now = func() time.Time { return base.Add(60 * 24 * time.Hour) }

	_, err = g.CastVote(ctx, tx.ID, addrAdmin, constants.VoteApproved, "")
	assert.ErrorIs(t, err, engine.ErrTransactionExpired)

	// The stale proposal is cancelled, not approved.
	stx, approvals, err := repo.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCancelled, stx.Status)
	for _, a := range approvals {
		assert.Equal(t, constants.VotePending, a.Status)
	}
}

func TestDayStartUTC(t *testing.T) {
	// 23:59 UTC still belongs to the same calendar day; one minute
	// later the window resets.
	late := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	midnight := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC).Unix()

	assert.Equal(t, midnight, dayStartUTC(late))
	assert.NotEqual(t, midnight, dayStartUTC(late.Add(time.Minute)))

	// Non-UTC wall clocks normalize to the UTC day.
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, midnight, dayStartUTC(time.Date(2026, 3, 10, 1, 0, 0, 0, est)))
}

func TestExecuteAdjustsLocalBalances(t *testing.T) {
	g, repo := newTestGateway(t, ModeLocal, nil)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return base }

	tx, err := g.Propose(ctx, ProposeInput{
		From:     addrOperating,
		To:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Amount:   5_000_00,
		Proposer: addrAdmin,
	})
	require.NoError(t, err)

	_, err = g.CastVote(ctx, tx.ID, addrAdmin, constants.VoteApproved, "")
	require.NoError(t, err)

	// Still inside the timelock window.
	_, err = g.Execute(ctx, tx.ID)
	assert.ErrorIs(t, err, engine.ErrTimelockNotElapsed)

	g.now = func() time.Time { return base.Add(2 * time.Hour) }
	done, err := g.Execute(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusExecuted, done.Status)
	assert.True(t, strings.HasPrefix(done.SettlementRef, "sim-"))

	acc, err := repo.GetAccountByAddress(addrOperating)
	require.NoError(t, err)
	assert.Equal(t, int64(995_000_00), acc.Balance)

	// Re-executing is a no-op, not a second debit.
	again, err := g.Execute(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, done.SettlementRef, again.SettlementRef)
	acc, err = repo.GetAccountByAddress(addrOperating)
	require.NoError(t, err)
	assert.Equal(t, int64(995_000_00), acc.Balance)
}

func TestExecuteLedgerModeUsesLedgerGateState(t *testing.T) {
	fa := &fakeAdapter{proposeID: "12", paused: false, remaining: 1_000_00, limit: 500_000_00}
	g, _ := newTestGateway(t, ModeLedger, fa)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return base }

	tx, err := g.Propose(ctx, ProposeInput{
		To:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Amount:   5_000_00,
		Proposer: addrAdmin,
	})
	require.NoError(t, err)
	_, err = g.CastVote(ctx, tx.ID, addrAdmin, constants.VoteApproved, "")
	require.NoError(t, err)

	g.now = func() time.Time { return base.Add(2 * time.Hour) }

	// The ledger reports only $1,000 of today's allowance left.
	_, err = g.Execute(ctx, tx.ID)
	assert.ErrorIs(t, err, engine.ErrDailyLimitExceeded)

	fa.remaining = 400_000_00
	done, err := g.Execute(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "0xsettled", done.SettlementRef)
	assert.Contains(t, fa.calls, "execute")
}

func TestCancelPermissions(t *testing.T) {
	g, _ := newTestGateway(t, ModeLocal, nil)
	ctx := context.Background()

	tx, err := g.Propose(ctx, ProposeInput{
		To:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Amount:   50_000_00,
		Proposer: addrApprover,
	})
	require.NoError(t, err)

	// A viewer cannot cancel someone else's proposal, but an
	// elevated signer can.
	_, err = g.Cancel(ctx, tx.ID, addrViewer)
	assert.Error(t, err)

	cancelled, err := g.Cancel(ctx, tx.ID, addrTreasurer)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCancelled, cancelled.Status)
}

func TestPauseAndUnpauseFlow(t *testing.T) {
	g, repo := newTestGateway(t, ModeLocal, nil)
	ctx := context.Background()

	require.NoError(t, g.EmergencyPause(ctx, addrTreasurer))
	paused, err := g.Paused(ctx)
	require.NoError(t, err)
	assert.True(t, paused)

	// Approver role may not trip the pause.
	err = g.EmergencyPause(ctx, addrApprover)
	assert.ErrorIs(t, err, engine.ErrNotASigner)

	lifted, err := g.VoteUnpause(ctx, addrAdmin)
	require.NoError(t, err)
	assert.False(t, lifted)

	_, err = g.VoteUnpause(ctx, addrAdmin)
	assert.ErrorIs(t, err, engine.ErrAlreadyVoted)

	lifted, err = g.VoteUnpause(ctx, addrApprover)
	require.NoError(t, err)
	assert.True(t, lifted)

	paused, err = g.Paused(ctx)
	require.NoError(t, err)
	assert.False(t, paused)

	votes, err := repo.GetUnpauseVotes()
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestRevokeReopensApproval(t *testing.T) {
	g, _ := newTestGateway(t, ModeLocal, nil)
	ctx := context.Background()

	tx, err := g.Propose(ctx, ProposeInput{
		To:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Amount:   5_000_00,
		Proposer: addrAdmin,
	})
	require.NoError(t, err)

	tx, err = g.CastVote(ctx, tx.ID, addrAdmin, constants.VoteApproved, "")
	require.NoError(t, err)
	require.Equal(t, constants.StatusApproved, tx.Status)

	tx, err = g.RevokeVote(ctx, tx.ID, addrAdmin)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPendingApproval, tx.Status)
	assert.Nil(t, tx.ApprovedAt)

	reloaded, err := g.Transaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPendingApproval, reloaded.Status)
}

func TestModelRoundTrip(t *testing.T) {
	voted := time.Unix(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC).Unix(), 0).UTC()
	tx := &model.Transaction{
		ID:                "tx-roundtrip",
		Type:              constants.TypeOutbound,
		Status:            constants.StatusApproved,
		From:              addrOperating,
		To:                "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Amount:            42_00,
		Asset:             constants.DefaultAsset,
		CreatedAt:         voted,
		RequiredApprovals: 2,
		ApprovedAt:        &voted,
		Approvals: []model.Approval{
			{ID: "a1", Signer: addrAdmin, SignerName: "Alex", Status: constants.VoteApproved, VotedAt: &voted},
		},
	}

	stx, approvals := fromModelTx(tx)
	back := toModelTx(&stx, []*store.Approval{&approvals[0]})
	assert.Equal(t, tx, back)
}
