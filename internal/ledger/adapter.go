package ledger

import (
	"context"
	"time"
)

// TransactionRecord is the ledger's view of a proposed transfer.
type TransactionRecord struct {
	ID            string `json:"id"`
	To            string `json:"to"`
	Amount        int64  `json:"amount"`
	Memo          string `json:"memo"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	Approvals     int    `json:"approvals"`
	Required      int    `json:"required"`
	SettlementRef string `json:"settlementRef"`
}

// Threshold is one tier of the ledger-side policy table.
type Threshold struct {
	UpperBound        int64  `json:"upperBound"`
	RequiredApprovals int    `json:"requiredApprovals"`
	Label             string `json:"label"`
}

// Adapter is the authoritative external ledger. Every mutating call is
// a request/await round trip; the engine never retries, leaving retry
// policy to the caller or the adapter implementation itself.
type Adapter interface {
	GetBalance(ctx context.Context, account string) (int64, error)
	GetTransactionCount(ctx context.Context) (int, error)
	GetTransaction(ctx context.Context, txID string) (*TransactionRecord, error)
	GetSigners(ctx context.Context) ([]string, error)
	IsSigner(ctx context.Context, address string) (bool, error)
	HasApproved(ctx context.Context, txID, address string) (bool, error)
	HasRejected(ctx context.Context, txID, address string) (bool, error)
	GetThresholds(ctx context.Context) ([]Threshold, error)
	GetRequiredApprovals(ctx context.Context, amount int64) (int, error)
	GetDailySpendRemaining(ctx context.Context) (int64, error)
	DailyLimit(ctx context.Context) (int64, error)
	TimelockDuration(ctx context.Context) (time.Duration, error)
	Paused(ctx context.Context) (bool, error)

	Propose(ctx context.Context, to string, amount int64, memo, description string) (string, error)
	Approve(ctx context.Context, txID string) error
	RevokeApproval(ctx context.Context, txID string) error
	Reject(ctx context.Context, txID, reason string) error
	Execute(ctx context.Context, txID string) (string, error)
	EmergencyPause(ctx context.Context) error
	VoteUnpause(ctx context.Context) error
}
