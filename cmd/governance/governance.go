package governance

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui"
	"github.com/tresuru/tresuru/internal/ui/views"
)

// SignerFunc resolves the address acting as the current user.
type SignerFunc func() (string, error)

func NewGovernanceCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	govCmd := &cobra.Command{
		Use:     "governance",
		Aliases: []string{"gov"},
		Short:   "Emergency pause and treasury status",
	}

	govCmd.AddCommand(NewPauseCmd(svc, signer))
	govCmd.AddCommand(NewUnpauseCmd(svc, signer))
	govCmd.AddCommand(NewStatusCmd(svc))

	return govCmd
}

func NewPauseCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Trip the emergency pause (admin or treasurer)",
		Long: `Halt all transaction execution immediately. Any single admin or
treasurer may pause; lifting the pause requires multiple signers to
vote via 'governance unpause'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := signer()
			if err != nil {
				return err
			}

			if err := svc.Governance.Pause(context.Background(), caller); err != nil {
				return fmt.Errorf("failed to pause treasury: %w", err)
			}

			pterm.Warning.Println("Treasury PAUSED - execution halted until enough signers vote to unpause")
			return nil
		},
	}
}

func NewUnpauseCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "unpause",
		Short: "Vote to lift the emergency pause",
		Long: `Cast one vote toward lifting the pause. No single signer can
unpause alone: the pause lifts when the vote threshold is reached,
and all votes are cleared afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			caller, err := signer()
			if err != nil {
				return err
			}

			lifted, err := svc.Governance.VoteUnpause(ctx, caller)
			if err != nil {
				return fmt.Errorf("failed to vote for unpause: %w", err)
			}

			if lifted {
				pterm.Success.Println("Pause lifted - treasury active again")
				return nil
			}

			status, err := svc.Governance.Status(ctx)
			if err != nil {
				return err
			}
			pterm.Info.Printf("Unpause vote recorded (%d/%d)\n",
				len(status.UnpauseVotes), status.UnpauseThreshold)
			return nil
		},
	}
}

func NewStatusCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show treasury state, limits and unpause votes",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := svc.Governance.Status(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get governance status: %w", err)
			}

			ui.PrintL1Title("Treasury Status")
			return views.RenderGovernanceStatus(status)
		},
	}
}
