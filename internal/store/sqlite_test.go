package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tresuru/tresuru/internal/constants"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tresuru.db")
	s, err := NewStore(dbPath, os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSignerCRUD(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateSigner("0xA1", "Alex", constants.RoleAdmin, time.Now().Unix())
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = s.CreateSigner("0xA1", "Alex again", constants.RoleViewer, time.Now().Unix())
	assert.ErrorIs(t, err, ErrSignerExists)

	sg, err := s.GetSignerByAddress("0xA1")
	require.NoError(t, err)
	assert.Equal(t, "Alex", sg.Name)
	assert.Equal(t, constants.RoleAdmin, sg.Role)

	_, err = s.GetSignerByAddress("0xZZ")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = s.CreateSigner("0xB2", "Rodney", constants.RoleTreasurer, time.Now().Unix())
	require.NoError(t, err)

	all, err := s.GetAllSigners()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	admins, err := s.CountSignersByRole(constants.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, admins)

	require.NoError(t, s.DeleteSigner("0xB2"))
	assert.ErrorIs(t, s.DeleteSigner("0xB2"), ErrRecordNotFound)
}

func TestAccountBalances(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateAccount("Operating Account", "0xACC1", "operating", "", 100_000_00)
	require.NoError(t, err)
	_, err = s.CreateAccount("Reserve Fund", "0xACC2", "reserve", "", 50_000_00)
	require.NoError(t, err)

	_, err = s.CreateAccount("Operating Account", "0xACC3", "operating", "", 0)
	assert.ErrorIs(t, err, ErrAccountExists)

	require.NoError(t, s.AdjustAccountBalance("0xACC1", -30_000_00))

	acc, err := s.GetAccountByAddress("0xACC1")
	require.NoError(t, err)
	assert.Equal(t, int64(70_000_00), acc.Balance)

	total, err := s.GetTotalBalance()
	require.NoError(t, err)
	assert.Equal(t, int64(120_000_00), total)

	assert.ErrorIs(t, s.AdjustAccountBalance("0xMISSING", 1), ErrRecordNotFound)
}

func seedTx(t *testing.T, s *Store, status, txType string, amount int64, executedAt *int64) Transaction {
	t.Helper()

	tx := Transaction{
		ID:                "tx-" + uuid.NewString(),
		Type:              txType,
		Status:            status,
		FromAccount:       "0xACC1",
		ToAddress:         "0xDEST",
		Amount:            amount,
		Asset:             constants.DefaultAsset,
		Category:          "Operating Expense",
		CreatedBy:         "Alex",
		CreatedAt:         time.Now().Unix(),
		ExecutedAt:        executedAt,
		RequiredApprovals: 1,
	}
	approvals := []Approval{
		{ID: uuid.NewString(), TransactionID: tx.ID, Signer: "0xA1", SignerName: "Alex", Status: constants.VotePending},
		{ID: uuid.NewString(), TransactionID: tx.ID, Signer: "0xB2", SignerName: "Rodney", Status: constants.VotePending},
	}
	require.NoError(t, s.CreateTransactionWithApprovals(tx, approvals))
	return tx
}

func TestTransactionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	created := seedTx(t, s, constants.StatusPendingApproval, constants.TypeOutbound, 5_000_00, nil)

	tx, approvals, err := s.GetTransactionByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Amount, tx.Amount)
	assert.Equal(t, constants.StatusPendingApproval, tx.Status)
	require.Len(t, approvals, 2)

	_, _, err = s.GetTransactionByID("tx-missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	votedAt := time.Now().Unix()
	require.NoError(t, s.UpdateApproval(Approval{
		TransactionID: created.ID,
		Signer:        "0xA1",
		Status:        constants.VoteApproved,
		VotedAt:       &votedAt,
	}))

	now := time.Now().Unix()
	tx.Status = constants.StatusExecuted
	tx.ApprovedAt = &votedAt
	tx.ExecutedAt = &now
	tx.SettlementRef = "sim-ref"
	require.NoError(t, s.UpdateTransactionState(*tx))

	got, approvals, err := s.GetTransactionByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusExecuted, got.Status)
	assert.Equal(t, "sim-ref", got.SettlementRef)
	require.NotNil(t, got.ExecutedAt)
	assert.Equal(t, constants.VoteApproved, findApproval(approvals, "0xA1").Status)
}

func findApproval(approvals []*Approval, signer string) *Approval {
	for _, a := range approvals {
		if a.Signer == signer {
			return a
		}
	}
	return nil
}

func TestExecutedOutboundTotalSince(t *testing.T) {
	s := newTestStore(t)

	dayStart := time.Now().UTC().Truncate(24 * time.Hour).Unix()
	today := dayStart + 3600
	yesterday := dayStart - 3600

	seedTx(t, s, constants.StatusExecuted, constants.TypeOutbound, 480_000_00, &today)
	seedTx(t, s, constants.StatusExecuted, constants.TypeOutbound, 99_000_00, &yesterday)
	seedTx(t, s, constants.StatusExecuted, constants.TypeInbound, 77_000_00, &today)
	seedTx(t, s, constants.StatusPendingApproval, constants.TypeOutbound, 55_000_00, nil)

	total, err := s.GetExecutedOutboundTotalSince(dayStart)
	require.NoError(t, err)
	assert.Equal(t, int64(480_000_00), total, "only today's executed outbound value counts")
}

func TestGovernanceState(t *testing.T) {
	s := newTestStore(t)

	paused, err := s.GetPaused()
	require.NoError(t, err)
	assert.False(t, paused)

	require.NoError(t, s.SetPaused(true))
	paused, err = s.GetPaused()
	require.NoError(t, err)
	assert.True(t, paused)

	require.NoError(t, s.AddUnpauseVote("0xA1", time.Now().Unix()))
	assert.ErrorIs(t, s.AddUnpauseVote("0xA1", time.Now().Unix()), ErrConstraintViolation)
	require.NoError(t, s.AddUnpauseVote("0xB2", time.Now().Unix()))

	votes, err := s.GetUnpauseVotes()
	require.NoError(t, err)
	assert.Len(t, votes, 2)

	require.NoError(t, s.ClearUnpauseVotes())
	votes, err = s.GetUnpauseVotes()
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func TestSeedDemo(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SeedDemo())

	signers, err := s.GetAllSigners()
	require.NoError(t, err)
	assert.Len(t, signers, 5)

	count, err := s.GetTransactionCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Seeding twice is refused.
	assert.Error(t, s.SeedDemo())
}
