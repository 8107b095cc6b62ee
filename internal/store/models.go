package store

type Signer struct {
	ID         int64
	Address    string
	Name       string
	Role       string
	EnrolledAt int64
}

type Account struct {
	ID          int64
	Name        string
	Address     string
	Type        string
	Description string
	Balance     int64
}

type Transaction struct {
	ID                string
	Type              string
	Status            string
	FromAccount       string
	ToAddress         string
	ToLabel           string
	Amount            int64
	Asset             string
	Category          string
	Memo              string
	Description       string
	CreatedBy         string
	CreatedAt         int64
	ApprovedAt        *int64
	ExecutedAt        *int64
	SettlementRef     string
	RequiredApprovals int
}

type Approval struct {
	ID            string
	TransactionID string
	Signer        string
	SignerName    string
	Status        string
	VotedAt       *int64
	Comment       string
}
