package engine

import "errors"

// Local validation errors are returned before any state mutation or
// ledger call.
var (
	ErrNotASigner           = errors.New("not an eligible signer for this transaction")
	ErrAlreadyVoted         = errors.New("signer has already voted; revoke first")
	ErrNothingToRevoke      = errors.New("signer has no vote to revoke")
	ErrTransactionFinalized = errors.New("transaction is finalized; votes are frozen")
	ErrCommentRequired      = errors.New("a comment is required to reject")
	ErrLastAdmin            = errors.New("cannot remove the sole admin signer")
)

// Execute-time gate errors are retriable conditions: the transaction
// stays where it is and the caller may re-invoke execute later.
var (
	ErrInsufficientApprovals = errors.New("approval threshold not yet met")
	ErrTreasuryPaused        = errors.New("treasury is paused")
	ErrTimelockNotElapsed    = errors.New("timelock has not elapsed")
	ErrDailyLimitExceeded    = errors.New("daily spending limit exceeded")
	ErrTransactionExpired    = errors.New("transaction has expired")
)
