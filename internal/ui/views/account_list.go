package views

import (
	"github.com/pterm/pterm"

	"github.com/tresuru/tresuru/internal/store"
	"github.com/tresuru/tresuru/internal/utils"
)

func RenderAccountList(accounts []*store.Account, total int64) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{
		{"Name", "Type", "Address", "Balance"},
	}

	for _, acc := range accounts {
		tableData = append(tableData, []string{
			acc.Name,
			acc.Type,
			shortAddress(acc.Address),
			utils.FormatUSD(acc.Balance),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Pooled balance: %s\n", utils.FormatUSD(total))
	return nil
}
