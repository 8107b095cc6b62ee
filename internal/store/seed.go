package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tresuru/tresuru/internal/constants"
)

// SeedDemo loads the sample team, accounts, and a small transaction
// history into the local cache. Intended for simulated sessions only;
// it refuses to run on a non-empty transaction list.
func (s *Store) SeedDemo() error {
	count, err := s.GetTransactionCount()
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("demo seed requires an empty transaction list")
	}

	return s.ExecTx(func(repo Repository) error {
		enrolled := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC).Unix()
		team := []struct {
			address, name, role string
		}{
			{"0x742d35Cc6634C0532925a3b844Bc9e7595f2bD28", "Alex", constants.RoleAdmin},
			{"0x8ba1f109551bD432803012645Ac136ddd64DBA72", "Rodney", constants.RoleTreasurer},
			{"0x2546BcD3c84621e976D8185a91A922aE77ECEc30", "Peyman", constants.RoleApprover},
			{"0xbDA5747bFD65F08deb54cb465eB87D40e51B197E", "Harrison", constants.RoleApprover},
			{"0xdD2FD4581271e230360230F9337D5c0430Bf44C0", "Borna", constants.RoleViewer},
		}
		for _, m := range team {
			if _, err := repo.CreateSigner(m.address, m.name, m.role, enrolled); err != nil {
				return err
			}
		}

		accounts := []struct {
			name, address, accType, description string
			balance                             int64
		}{
			{"Operating Account", "0xABCD000000000000000000000000000000000001", "operating", "Day-to-day operating expenses", 2_450_000_00},
			{"Reserve Fund", "0xABCD000000000000000000000000000000000002", "reserve", "Strategic reserve and emergency fund", 8_750_000_00},
			{"Payroll Account", "0xABCD000000000000000000000000000000000003", "payroll", "Monthly payroll distributions", 1_200_000_00},
			{"Investment Account", "0xABCD000000000000000000000000000000000004", "investment", "Yield-bearing and investment allocations", 5_600_000_00},
		}
		for _, a := range accounts {
			if _, err := repo.CreateAccount(a.name, a.address, a.accType, a.description, a.balance); err != nil {
				return err
			}
		}

		executedAt := time.Date(2025, 2, 8, 15, 2, 0, 0, time.UTC).Unix()
		approvedAt := time.Date(2025, 2, 8, 14, 45, 0, 0, time.UTC).Unix()
		executed := Transaction{
			ID:                "tx-" + uuid.NewString(),
			Type:              constants.TypeOutbound,
			Status:            constants.StatusExecuted,
			FromAccount:       "0xABCD000000000000000000000000000000000001",
			ToAddress:         "0x1111222233334444555566667777888899990000",
			ToLabel:           "AWS Cloud Services",
			Amount:            47_500_00,
			Asset:             constants.DefaultAsset,
			Category:          "Operating Expense",
			Memo:              "INV-2025-0042",
			Description:       "Monthly cloud infrastructure - February 2025",
			CreatedBy:         "Rodney",
			CreatedAt:         time.Date(2025, 2, 8, 14, 30, 0, 0, time.UTC).Unix(),
			ApprovedAt:        &approvedAt,
			ExecutedAt:        &executedAt,
			SettlementRef:     "0xabc123def456789",
			RequiredApprovals: 1,
		}
		execVote := approvedAt
		if err := repo.CreateTransactionWithApprovals(executed, []Approval{
			{ID: uuid.NewString(), TransactionID: executed.ID, Signer: team[0].address, SignerName: "Alex", Status: constants.VoteApproved, VotedAt: &execVote},
		}); err != nil {
			return err
		}

		pendingVote := time.Date(2025, 2, 10, 9, 15, 0, 0, time.UTC).Unix()
		pending := Transaction{
			ID:                "tx-" + uuid.NewString(),
			Type:              constants.TypeOutbound,
			Status:            constants.StatusPendingApproval,
			FromAccount:       "0xABCD000000000000000000000000000000000003",
			ToAddress:         "0x2222333344445555666677778888999900001111",
			ToLabel:           "Payroll - Engineering Team",
			Amount:            285_000_00,
			Asset:             constants.DefaultAsset,
			Category:          "Payroll",
			Memo:              "PAYROLL-2025-FEB-ENG",
			Description:       "February 2025 engineering team payroll (42 employees)",
			CreatedBy:         "Rodney",
			CreatedAt:         time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC).Unix(),
			RequiredApprovals: 3,
		}
		if err := repo.CreateTransactionWithApprovals(pending, []Approval{
			{ID: uuid.NewString(), TransactionID: pending.ID, Signer: team[0].address, SignerName: "Alex", Status: constants.VoteApproved, VotedAt: &pendingVote},
			{ID: uuid.NewString(), TransactionID: pending.ID, Signer: team[1].address, SignerName: "Rodney", Status: constants.VotePending},
			{ID: uuid.NewString(), TransactionID: pending.ID, Signer: team[2].address, SignerName: "Peyman", Status: constants.VotePending},
			{ID: uuid.NewString(), TransactionID: pending.ID, Signer: team[3].address, SignerName: "Harrison", Status: constants.VotePending},
		}); err != nil {
			return err
		}

		rejectedVote := time.Date(2025, 2, 3, 14, 0, 0, 0, time.UTC).Unix()
		rejected := Transaction{
			ID:                "tx-" + uuid.NewString(),
			Type:              constants.TypeOutbound,
			Status:            constants.StatusRejected,
			FromAccount:       "0xABCD000000000000000000000000000000000004",
			ToAddress:         "0x5555666677778888999900001111222233334444",
			ToLabel:           "Unknown Vendor",
			Amount:            2_000_000_00,
			Asset:             constants.DefaultAsset,
			Category:          "Investment",
			Memo:              "INV-PROPOSAL-X",
			Description:       "Proposed investment allocation - flagged for review",
			CreatedBy:         "Rodney",
			CreatedAt:         time.Date(2025, 2, 3, 13, 0, 0, 0, time.UTC).Unix(),
			RequiredApprovals: 4,
		}
		return repo.CreateTransactionWithApprovals(rejected, []Approval{
			{ID: uuid.NewString(), TransactionID: rejected.ID, Signer: team[0].address, SignerName: "Alex", Status: constants.VoteRejected, VotedAt: &rejectedVote, Comment: "Insufficient due diligence on counterparty"},
			{ID: uuid.NewString(), TransactionID: rejected.ID, Signer: team[1].address, SignerName: "Rodney", Status: constants.VotePending},
			{ID: uuid.NewString(), TransactionID: rejected.ID, Signer: team[2].address, SignerName: "Peyman", Status: constants.VotePending},
			{ID: uuid.NewString(), TransactionID: rejected.ID, Signer: team[3].address, SignerName: "Harrison", Status: constants.VotePending},
		})
	})
}
