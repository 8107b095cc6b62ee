package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/utils"
)

func RenderGovernanceStatus(status *service.GovernanceStatus) error {
	state := pterm.Green("Active")
	if status.Paused {
		state = pterm.Red("PAUSED")
	}

	tableData := pterm.TableData{
		{"Backend", status.Mode},
		{"Treasury State", state},
		{"Daily Limit", utils.FormatUSD(status.DailyLimit)},
		{"Daily Spend Remaining", utils.FormatUSD(status.DailySpendRemaining)},
	}

	if status.Paused {
		tableData = append(tableData, []string{
			"Unpause Votes",
			fmt.Sprintf("%d/%d", len(status.UnpauseVotes), status.UnpauseThreshold),
		})
		for _, addr := range status.UnpauseVotes {
			tableData = append(tableData, []string{"", shortAddress(addr)})
		}
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
