package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/reconcile"
	"github.com/tresuru/tresuru/internal/ui"
	"github.com/tresuru/tresuru/internal/ui/views"
)

func NewPolicyCmd(gw *reconcile.Gateway) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Display the active approval policy",
		Long: `Display the approval tiers and execution limits currently in force.

Changing the policy never affects transactions already proposed; their
approval requirement is frozen at proposal time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.PrintL1Title("Treasury Policy")
			return views.RenderPolicyTable(gw.Policy())
		},
	}
}
