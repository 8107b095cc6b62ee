package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/tresuru/tresuru/internal/policy"
	"github.com/tresuru/tresuru/internal/ui"
	"github.com/tresuru/tresuru/internal/utils"
)

func RenderPolicyTable(pol *policy.Table) error {
	ui.PrintL2Title("Approval Tiers")
	tierData := pterm.TableData{
		{"Tier", "Amount Range", "Required Approvals"},
	}

	lower := int64(0)
	for _, tier := range pol.Tiers {
		var rng string
		if tier.UpperBound == 0 {
			rng = fmt.Sprintf("above %s", utils.FormatUSD(lower))
		} else {
			rng = fmt.Sprintf("up to %s", utils.FormatUSD(tier.UpperBound))
			lower = tier.UpperBound
		}
		tierData = append(tierData, []string{
			tier.Label,
			rng,
			fmt.Sprintf("%d", tier.RequiredApprovals),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tierData).Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Execution Limits")
	limitData := pterm.TableData{
		{"Daily Spending Limit", utils.FormatUSD(pol.DailyLimit)},
		{"Timelock", pol.TimelockDuration.String()},
		{"Proposal Expiration", pol.TxExpirationPeriod.String()},
	}

	return pterm.DefaultTable.WithData(limitData).Render()
}
