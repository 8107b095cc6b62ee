package engine

import (
	"fmt"
	"time"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/model"
	"github.com/tresuru/tresuru/internal/policy"
)

// ExecuteGate checks whether an approved transaction may execute right
// now. Execution is a re-triable action: every gate error leaves the
// transaction where it is, except expiration which cancels it.
//
// Gate order: idempotency, approval threshold, expiration, pause,
// timelock, daily limit.
func ExecuteGate(tx *model.Transaction, pol *policy.Table, paused bool, spentToday int64, now time.Time) error {
	switch tx.Status {
	case constants.StatusExecuted:
		// Re-invoking execute on an executed transaction is a no-op
		// success, tolerating retried calls.
		return nil
	case constants.StatusRejected, constants.StatusCancelled:
		return ErrTransactionFinalized
	case constants.StatusPendingApproval:
		return fmt.Errorf("%w: %d of %d approvals", ErrInsufficientApprovals, tx.ApprovedCount(), tx.RequiredApprovals)
	case constants.StatusApproved:
	default:
		return fmt.Errorf("unknown transaction status %q", tx.Status)
	}

	if err := ExpireIfStale(tx, pol, now); err != nil {
		return err
	}
	if paused {
		return ErrTreasuryPaused
	}
	if tx.ApprovedAt == nil || now.Before(pol.TimelockDeadline(*tx.ApprovedAt)) {
		return ErrTimelockNotElapsed
	}
	// Only executed outbound value counts against the daily cap.
	if tx.Type == constants.TypeOutbound && spentToday+tx.Amount > pol.DailyLimit {
		return ErrDailyLimitExceeded
	}
	return nil
}

// ExpireIfStale cancels a live transaction whose proposal window has
// closed. Past the expiration deadline no further votes or execution
// are accepted; the cancellation must be persisted by the caller.
func ExpireIfStale(tx *model.Transaction, pol *policy.Table, now time.Time) error {
	if tx.IsFinal() {
		return nil
	}
	if now.After(pol.ExpirationDeadline(tx.CreatedAt)) {
		tx.Status = constants.StatusCancelled
		return ErrTransactionExpired
	}
	return nil
}

// MarkExecuted finalizes a transaction that passed the execute gate.
func MarkExecuted(tx *model.Transaction, settlementRef string, now time.Time) {
	if tx.Status == constants.StatusExecuted {
		return
	}
	executedAt := now
	tx.Status = constants.StatusExecuted
	tx.ExecutedAt = &executedAt
	tx.SettlementRef = settlementRef
}

// Cancel is the explicit operator-triggered transition. Only
// transactions still collecting approvals can be cancelled.
func Cancel(tx *model.Transaction) error {
	switch tx.Status {
	case constants.StatusPendingApproval:
		tx.Status = constants.StatusCancelled
		return nil
	case constants.StatusApproved:
		return fmt.Errorf("cannot cancel an approved transaction; it executes or expires")
	default:
		return ErrTransactionFinalized
	}
}
