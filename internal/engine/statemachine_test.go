package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/model"
	"github.com/tresuru/tresuru/internal/policy"
)

func approvedTx(t *testing.T, amount int64, required int) *model.Transaction {
	t.Helper()
	tx := newTestTx(amount, required)
	voters := []string{"0xA1", "0xB2", "0xC3"}
	for i := 0; i < required; i++ {
		require.NoError(t, CastVote(tx, voters[i], constants.VoteApproved, "", testTime))
	}
	require.Equal(t, constants.StatusApproved, tx.Status)
	return tx
}

func TestExecuteGateLowValueSingleApproval(t *testing.T) {
	// propose $5,000 -> 1 approval -> executable once timelock elapses
	pol := policy.Default()
	tx := newTestTx(5_000_00, 1)
	require.NoError(t, CastVote(tx, "0xC3", constants.VoteApproved, "", testTime))
	require.Equal(t, constants.StatusApproved, tx.Status)

	err := ExecuteGate(tx, pol, false, 0, testTime.Add(time.Minute))
	assert.ErrorIs(t, err, ErrTimelockNotElapsed)

	afterTimelock := testTime.Add(pol.TimelockDuration + time.Minute)
	require.NoError(t, ExecuteGate(tx, pol, false, 0, afterTimelock))

	MarkExecuted(tx, "0xsettled", afterTimelock)
	assert.Equal(t, constants.StatusExecuted, tx.Status)
	assert.Equal(t, "0xsettled", tx.SettlementRef)
}

func TestExecuteGateInsufficientApprovals(t *testing.T) {
	// propose $250,000 -> 3 required -> 2 cast -> execute fails,
	// status stays pending_approval
	pol := policy.Default()
	tx := newTestTx(250_000_00, 3)
	require.NoError(t, CastVote(tx, "0xA1", constants.VoteApproved, "", testTime))
	require.NoError(t, CastVote(tx, "0xB2", constants.VoteApproved, "", testTime))

	err := ExecuteGate(tx, pol, false, 0, testTime.Add(48*time.Hour))
	assert.ErrorIs(t, err, ErrInsufficientApprovals)
	assert.Equal(t, constants.StatusPendingApproval, tx.Status)
}

func TestExecuteGateDailyLimit(t *testing.T) {
	// daily limit $500k, $480k already executed today, $30k transfer
	pol := policy.Default()
	tx := approvedTx(t, 30_000_00, 2)
	at := testTime.Add(2 * time.Hour)

	err := ExecuteGate(tx, pol, false, 480_000_00, at)
	assert.ErrorIs(t, err, ErrDailyLimitExceeded)
	assert.Equal(t, constants.StatusApproved, tx.Status)

	// After the window rolls over the same call succeeds.
	require.NoError(t, ExecuteGate(tx, pol, false, 0, at))
}

func TestExecuteGateInboundIgnoresDailyLimit(t *testing.T) {
	pol := policy.Default()
	tx := approvedTx(t, 30_000_00, 2)
	tx.Type = constants.TypeInbound

	require.NoError(t, ExecuteGate(tx, pol, false, 499_000_00, testTime.Add(2*time.Hour)))
}

func TestExecuteGatePaused(t *testing.T) {
	pol := policy.Default()
	tx := approvedTx(t, 5_000_00, 1)
	at := testTime.Add(2 * time.Hour)

	assert.ErrorIs(t, ExecuteGate(tx, pol, true, 0, at), ErrTreasuryPaused)
	assert.Equal(t, constants.StatusApproved, tx.Status)

	// Once unpaused, the already-approved transaction executes on the
	// next attempt without re-voting.
	require.NoError(t, ExecuteGate(tx, pol, false, 0, at))
}

func TestExecuteGateExpiration(t *testing.T) {
	pol := policy.Default()
	tx := approvedTx(t, 5_000_00, 1)

	err := ExecuteGate(tx, pol, false, 0, testTime.Add(pol.TxExpirationPeriod+time.Hour))
	assert.ErrorIs(t, err, ErrTransactionExpired)
	assert.Equal(t, constants.StatusCancelled, tx.Status)

	// Expired-to-cancelled is terminal.
	err = ExecuteGate(tx, pol, false, 0, testTime.Add(pol.TxExpirationPeriod+2*time.Hour))
	assert.ErrorIs(t, err, ErrTransactionFinalized)
}

func TestExpireIfStaleFreezesVoting(t *testing.T) {
	pol := policy.Default()
	tx := newTestTx(5_000_00, 1)

	// Inside the window the proposal stays live.
	require.NoError(t, ExpireIfStale(tx, pol, testTime.Add(29*24*time.Hour)))
	assert.Equal(t, constants.StatusPendingApproval, tx.Status)

	stale := testTime.Add(pol.TxExpirationPeriod + time.Hour)
	assert.ErrorIs(t, ExpireIfStale(tx, pol, stale), ErrTransactionExpired)
	assert.Equal(t, constants.StatusCancelled, tx.Status)

	// Cancelled is terminal; a vote on the expired proposal is frozen
	// out.
	assert.ErrorIs(t, CastVote(tx, "0xA1", constants.VoteApproved, "", stale), ErrTransactionFinalized)
	require.NoError(t, ExpireIfStale(tx, pol, stale))
}

func TestExecuteIdempotent(t *testing.T) {
	pol := policy.Default()
	tx := approvedTx(t, 5_000_00, 1)
	at := testTime.Add(2 * time.Hour)

	require.NoError(t, ExecuteGate(tx, pol, false, 0, at))
	MarkExecuted(tx, "ref-1", at)
	executedAt := *tx.ExecutedAt

	// Second invocation is a no-op success without a duplicate
	// settlement record.
	require.NoError(t, ExecuteGate(tx, pol, false, 0, at.Add(time.Hour)))
	MarkExecuted(tx, "ref-2", at.Add(time.Hour))
	assert.Equal(t, "ref-1", tx.SettlementRef)
	assert.Equal(t, executedAt, *tx.ExecutedAt)
}

func TestCancel(t *testing.T) {
	tx := newTestTx(5_000_00, 1)
	require.NoError(t, Cancel(tx))
	assert.Equal(t, constants.StatusCancelled, tx.Status)
	assert.ErrorIs(t, Cancel(tx), ErrTransactionFinalized)

	approved := approvedTx(t, 5_000_00, 1)
	assert.Error(t, Cancel(approved))
	assert.Equal(t, constants.StatusApproved, approved.Status)
}

func TestFrozenRequirementSurvivesPolicyChange(t *testing.T) {
	pol := policy.Default()
	tx := newTestTx(50_000_00, 2)

	// Tightening the live policy does not touch the pending
	// transaction's frozen requirement.
	pol.Tiers[1].RequiredApprovals = 4

	require.NoError(t, CastVote(tx, "0xA1", constants.VoteApproved, "", testTime))
	require.NoError(t, CastVote(tx, "0xB2", constants.VoteApproved, "", testTime))
	assert.Equal(t, constants.StatusApproved, tx.Status)
}
