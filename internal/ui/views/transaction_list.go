package views

import (
	"github.com/pterm/pterm"

	"github.com/tresuru/tresuru/internal/model"
	"github.com/tresuru/tresuru/internal/ui"
	"github.com/tresuru/tresuru/internal/utils"
)

func RenderTransactionList(transactions []*model.Transaction, limit int) error {
	if len(transactions) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "To", "Amount", "Approvals", "Status"},
	}

	for _, tx := range transactions {
		to := tx.ToLabel
		if to == "" {
			to = shortAddress(tx.To)
		}

		date := "-"
		if !tx.CreatedAt.IsZero() {
			date = tx.CreatedAt.Format("2006-01-02")
		}

		tableData = append(tableData, []string{
			tx.ID,
			date,
			tx.Type,
			to,
			utils.FormatUSD(tx.Amount),
			approvalProgress(tx),
			ui.StatusColor(tx.Status),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
	return nil
}
