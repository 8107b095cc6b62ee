package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/store"
)

func NewDemoCmd(repo store.Repository) *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Demo data helpers",
	}

	demoCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Load the sample team, accounts and transactions",
		Long: `Load a sample treasury into the local cache: a five-member team,
four funded accounts and a few transactions in different lifecycle
states. Refuses to run on a database that already has transactions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repo.SeedDemo(); err != nil {
				return err
			}
			pterm.Success.Println("Demo data loaded")
			return nil
		},
	})

	return demoCmd
}
