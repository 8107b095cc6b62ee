package signer

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/errhandler"
	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui"
)

type removeRunner struct {
	svc     *service.Service
	signer  SignerFunc
	address string
	yes     bool
}

func NewRemoveCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <address>",
		Short: "Remove a signer (admin only)",
		Long: `Remove a signer from the registry. The sole remaining admin cannot
be removed. Removed signers keep their recorded votes on existing
transactions but can no longer vote.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &removeRunner{
				svc:     svc,
				signer:  signer,
				address: args[0],
				yes:     yes,
			}

			if err := runner.Run(); err != nil {
				errhandler.HandleError(err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *removeRunner) Run() error {
	actor, err := r.signer()
	if err != nil {
		return err
	}

	target, err := r.svc.Signer.Get(r.address)
	if err != nil {
		return fmt.Errorf("failed to find signer %s: %w", r.address, err)
	}

	if !r.yes {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Remove %s (%s)?", target.Name, target.Role),
		}
		if err := survey.AskOne(prompt, &confirmed, ui.IconOption()); err != nil {
			return err
		}
		if !confirmed {
			pterm.Warning.Println("Removal cancelled")
			return nil
		}
	}

	if err := r.svc.Signer.Remove(actor, r.address); err != nil {
		return fmt.Errorf("failed to remove signer: %w", err)
	}

	pterm.Success.Printf("Removed %s\n", target.Name)
	return nil
}
