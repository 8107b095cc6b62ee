package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredApprovalsTiers(t *testing.T) {
	tbl := Default()

	tests := []struct {
		name   string
		amount int64
		want   int
	}{
		{"zero", 0, 1},
		{"small", 5_000_00, 1},
		{"boundary low uses lower tier", 10_000_00, 1},
		{"just above low boundary", 10_000_01, 2},
		{"medium", 50_000_00, 2},
		{"boundary medium", 100_000_00, 2},
		{"high", 250_000_00, 3},
		{"boundary high", 1_000_000_00, 3},
		{"critical", 2_000_000_00, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.RequiredApprovals(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredApprovalsMonotonic(t *testing.T) {
	tbl := Default()

	prev := 0
	for amount := int64(0); amount <= 2_000_000_00; amount += 7_777_77 {
		got, err := tbl.RequiredApprovals(amount)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "amount %d", amount)
		prev = got
	}
}

func TestRequiredApprovalsNegativeAmount(t *testing.T) {
	tbl := Default()

	_, err := tbl.RequiredApprovals(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = tbl.TierFor(-500_00)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDailyLimitRemaining(t *testing.T) {
	tbl := Default()

	assert.Equal(t, int64(500_000_00), tbl.DailyLimitRemaining(0))
	assert.Equal(t, int64(20_000_00), tbl.DailyLimitRemaining(480_000_00))
	assert.Equal(t, int64(0), tbl.DailyLimitRemaining(500_000_00))
	assert.Equal(t, int64(0), tbl.DailyLimitRemaining(600_000_00))
}

func TestDeadlines(t *testing.T) {
	tbl := Default()
	at := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, at.Add(time.Hour), tbl.TimelockDeadline(at))
	assert.Equal(t, at.Add(30*24*time.Hour), tbl.ExpirationDeadline(at))
}

func TestUnpauseThreshold(t *testing.T) {
	assert.Equal(t, 2, Default().UnpauseThreshold())
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	bad := Default()
	bad.Tiers[2].RequiredApprovals = 1 // drops below medium tier
	assert.Error(t, bad.Validate())

	unbounded := Default()
	unbounded.Tiers[3].UpperBound = 5_000_000_00
	assert.Error(t, unbounded.Validate())

	noLimit := Default()
	noLimit.DailyLimit = 0
	assert.Error(t, noLimit.Validate())
}
