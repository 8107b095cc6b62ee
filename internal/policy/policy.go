package policy

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Tier maps an amount range to a required approval count. Amounts are
// matched to the first tier whose UpperBound is >= amount, so a value
// exactly on a boundary uses the lower tier. UpperBound 0 marks the
// unbounded top tier.
type Tier struct {
	UpperBound        int64 // cents, inclusive; 0 = no upper bound
	RequiredApprovals int
	Label             string
}

// Table is the treasury policy: approval tiers plus the scalar limits
// gating execution. Mutated only at initialization; pending
// transactions carry their requirement frozen from proposal time.
type Table struct {
	Tiers              []Tier
	DailyLimit         int64 // cents, executed outbound value per UTC day
	TimelockDuration   time.Duration
	TxExpirationPeriod time.Duration
}

// Default returns the reference deployment policy:
// <=$10k -> 1, <=$100k -> 2, <=$1M -> 3, above -> 4.
func Default() *Table {
	return &Table{
		Tiers: []Tier{
			{UpperBound: 10_000_00, RequiredApprovals: 1, Label: "Low Value"},
			{UpperBound: 100_000_00, RequiredApprovals: 2, Label: "Medium Value"},
			{UpperBound: 1_000_000_00, RequiredApprovals: 3, Label: "High Value"},
			{UpperBound: 0, RequiredApprovals: 4, Label: "Critical Value"},
		},
		DailyLimit:         500_000_00,
		TimelockDuration:   time.Hour,
		TxExpirationPeriod: 30 * 24 * time.Hour,
	}
}

// TierFor returns the tier matching the given amount.
func (t *Table) TierFor(amount int64) (Tier, error) {
	if amount < 0 {
		return Tier{}, fmt.Errorf("%w: amount must not be negative, got %d", ErrInvalidAmount, amount)
	}
	for _, tier := range t.Tiers {
		if tier.UpperBound == 0 || amount <= tier.UpperBound {
			return tier, nil
		}
	}
	return Tier{}, fmt.Errorf("%w: no tier covers amount %d", ErrInvalidAmount, amount)
}

// RequiredApprovals returns the approval count for the amount's tier.
// Non-decreasing in amount.
func (t *Table) RequiredApprovals(amount int64) (int, error) {
	tier, err := t.TierFor(amount)
	if err != nil {
		return 0, err
	}
	return tier.RequiredApprovals, nil
}

// DailyLimitRemaining returns how much outbound value may still be
// executed today, floored at zero.
func (t *Table) DailyLimitRemaining(spentToday int64) int64 {
	remaining := t.DailyLimit - spentToday
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TimelockDeadline is the earliest instant an approved transaction
// becomes eligible for execution.
func (t *Table) TimelockDeadline(fullApprovalAt time.Time) time.Time {
	return fullApprovalAt.Add(t.TimelockDuration)
}

// ExpirationDeadline is the instant after which a proposal can no
// longer be approved or executed.
func (t *Table) ExpirationDeadline(createdAt time.Time) time.Time {
	return createdAt.Add(t.TxExpirationPeriod)
}

// UnpauseThreshold mirrors the medium-tier approval requirement: the
// number of distinct un-pause votes needed to lift the pause.
func (t *Table) UnpauseThreshold() int {
	if len(t.Tiers) > 1 {
		return t.Tiers[1].RequiredApprovals
	}
	return t.Tiers[0].RequiredApprovals
}

// Validate checks tier table well-formedness: at least one tier, a
// single unbounded top tier, strictly increasing bounds, and a
// non-decreasing approval requirement.
func (t *Table) Validate() error {
	if len(t.Tiers) == 0 {
		return fmt.Errorf("policy table has no tiers")
	}
	last := t.Tiers[len(t.Tiers)-1]
	if last.UpperBound != 0 {
		return fmt.Errorf("top tier %q must be unbounded", last.Label)
	}
	for i, tier := range t.Tiers {
		if tier.RequiredApprovals < 1 {
			return fmt.Errorf("tier %q requires at least one approval", tier.Label)
		}
		if i == 0 {
			continue
		}
		prev := t.Tiers[i-1]
		if prev.UpperBound == 0 {
			return fmt.Errorf("tier %q follows the unbounded tier", tier.Label)
		}
		if tier.UpperBound != 0 && tier.UpperBound <= prev.UpperBound {
			return fmt.Errorf("tier %q bound must exceed %q", tier.Label, prev.Label)
		}
		if tier.RequiredApprovals < prev.RequiredApprovals {
			return fmt.Errorf("tier %q lowers the approval requirement", tier.Label)
		}
	}
	if t.DailyLimit <= 0 {
		return fmt.Errorf("daily limit must be positive")
	}
	if t.TimelockDuration < 0 || t.TxExpirationPeriod <= 0 {
		return fmt.Errorf("invalid timelock or expiration period")
	}
	return nil
}
