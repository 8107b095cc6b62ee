package constants

const (
	// Transaction types
	TypeOutbound = "outbound"
	TypeInbound  = "inbound"
	TypeInternal = "internal"

	// Transaction statuses
	StatusPendingApproval = "pending_approval"
	StatusApproved        = "approved"
	StatusExecuted        = "executed"
	StatusRejected        = "rejected"
	StatusCancelled       = "cancelled"

	// Approval vote statuses
	VotePending  = "pending"
	VoteApproved = "approved"
	VoteRejected = "rejected"

	// Date Layout
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
)

const (
	MaxNameLen   = 100
	CentsPerUnit = 100

	// Address-like keys are 0x-prefixed, 40 hex chars.
	AddressLen = 42
)

const DefaultAsset = "trUSD"

var Categories = []string{
	"Payroll",
	"Vendor Payment",
	"Investment",
	"Operating Expense",
	"Tax Payment",
	"Intercompany Transfer",
	"Dividend",
	"Debt Service",
	"Capital Expenditure",
	"Other",
}

var AccountTypes = []string{"operating", "reserve", "payroll", "investment"}
