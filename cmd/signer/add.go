package signer

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/errhandler"
	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui/prompts"
)

type addFlags struct {
	Address string
	Name    string
	Role    string
}

type addRunner struct {
	svc    *service.Service
	signer SignerFunc
	flags  *addFlags
}

func NewAddCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Enroll a new signer (admin only)",
		Long: `Enroll a new signer into the registry. Only admins may enroll.

Newly enrolled signers get no vote slot on transactions that already
exist; they vote only on proposals created after their enrollment.`,
		Example: `  # Enroll interactively
  tresuru signer add

  # Enroll from flags
  tresuru signer add --address 0x2546bcd3c84621e976d8185a91a922ae77ecec30 --name "Peyman" --role approver`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:    svc,
				signer: signer,
				flags:  flags,
			}

			if err := runner.Run(); err != nil {
				errhandler.HandleError(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Address, "address", "", "Signer address (0x...)")
	cmd.Flags().StringVar(&flags.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&flags.Role, "role", "", "Role (admin, treasurer, approver, viewer)")

	return cmd
}

func (r *addRunner) Run() error {
	actor, err := r.signer()
	if err != nil {
		return err
	}

	address, name, role := r.flags.Address, r.flags.Name, r.flags.Role
	if address == "" || name == "" || role == "" {
		address, name, role, err = prompts.PromptSignerDetails()
		if err != nil {
			return err
		}
	}

	enrolled, err := r.svc.Signer.Enroll(actor, address, name, role)
	if err != nil {
		return fmt.Errorf("failed to enroll signer: %w", err)
	}

	pterm.Success.Printf("Enrolled %s as %s\n", enrolled.Name, enrolled.Role)
	return nil
}
