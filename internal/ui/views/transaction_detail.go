package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/model"
	"github.com/tresuru/tresuru/internal/ui"
	"github.com/tresuru/tresuru/internal/utils"
)

func RenderTransactionDetail(tx *model.Transaction) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")

	to := tx.To
	if tx.ToLabel != "" {
		to = fmt.Sprintf("%s (%s)", tx.ToLabel, shortAddress(tx.To))
	}

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", tx.ID},
		{"Type", tx.Type},
		{"Status", ui.StatusColor(tx.Status)},
		{"To", to},
		{"Amount", fmt.Sprintf("%s %s", utils.FormatUSD(tx.Amount), tx.Asset)},
		{"Category", dash(tx.Category)},
		{"Memo", dash(tx.Memo)},
		{"Description", dash(tx.Description)},
		{"Proposed By", dash(tx.CreatedBy)},
		{"Approvals", approvalProgress(tx)},
	}
	if !tx.CreatedAt.IsZero() {
		infoData = append(infoData, []string{"Created", tx.CreatedAt.Format(constants.DateTimeFormat)})
	}
	if tx.ApprovedAt != nil {
		infoData = append(infoData, []string{"Fully Approved", tx.ApprovedAt.Format(constants.DateTimeFormat)})
	}
	if tx.ExecutedAt != nil {
		infoData = append(infoData, []string{"Executed", tx.ExecutedAt.Format(constants.DateTimeFormat)})
	}
	if tx.SettlementRef != "" {
		infoData = append(infoData, []string{"Settlement Ref", tx.SettlementRef})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	if len(tx.Approvals) == 0 {
		return nil
	}

	pterm.Println()
	ui.PrintL2Title("Votes")
	voteData := pterm.TableData{
		{"Signer", "Address", "Vote", "Voted At", "Comment"},
	}

	for _, a := range tx.Approvals {
		votedAt := "-"
		if a.VotedAt != nil {
			votedAt = a.VotedAt.Format(constants.DateTimeFormat)
		}

		vote := a.Status
		switch a.Status {
		case constants.VoteApproved:
			vote = pterm.Green(a.Status)
		case constants.VoteRejected:
			vote = pterm.Red(a.Status)
		}

		voteData = append(voteData, []string{
			dash(a.SignerName),
			shortAddress(a.Signer),
			vote,
			votedAt,
			dash(a.Comment),
		})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(voteData).
		Render()
}

func approvalProgress(tx *model.Transaction) string {
	return fmt.Sprintf("%d/%d", tx.ApprovedCount(), tx.RequiredApprovals)
}

func shortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
