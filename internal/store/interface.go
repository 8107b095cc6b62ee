package store

type Repository interface {
	// Signer Operations
	CreateSigner(address, name, role string, enrolledAt int64) (int64, error)
	GetSignerByAddress(address string) (*Signer, error)
	GetAllSigners() ([]*Signer, error)
	DeleteSigner(address string) error
	CountSignersByRole(role string) (int, error)

	// Account Operations
	CreateAccount(name, address, accType, description string, balance int64) (int64, error)
	GetAllAccounts() ([]*Account, error)
	GetAccountByName(name string) (*Account, error)
	GetAccountByAddress(address string) (*Account, error)
	AccountExists(name string) (bool, error)
	AdjustAccountBalance(address string, delta int64) error
	GetTotalBalance() (int64, error)

	// Transaction Operations
	CreateTransactionWithApprovals(tx Transaction, approvals []Approval) error
	GetTransactionByID(txID string) (*Transaction, []*Approval, error)
	GetAllTransactions(limit int) ([]*Transaction, error)
	GetTransactionsByStatus(status string, limit int) ([]*Transaction, error)
	GetTransactionCount() (int, error)
	UpdateTransactionState(tx Transaction) error
	UpdateApproval(a Approval) error
	GetExecutedOutboundTotalSince(sinceUnix int64) (int64, error)

	// Governance Operations
	GetPaused() (bool, error)
	SetPaused(paused bool) error
	AddUnpauseVote(address string, votedAt int64) error
	GetUnpauseVotes() ([]string, error)
	ClearUnpauseVotes() error

	SeedDemo() error

	ExecTx(fn func(Repository) error) error
	Close() error
}
