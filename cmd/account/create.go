package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/errhandler"
	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui/prompts"
	"github.com/tresuru/tresuru/internal/utils"
	"github.com/tresuru/tresuru/internal/validation"
)

type createFlags struct {
	Address     string
	Type        string
	Description string
	Balance     string
}

type createRunner struct {
	svc   *service.Service
	flags *createFlags
	name  string
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a treasury account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				svc:   svc,
				flags: flags,
			}
			if len(args) > 0 {
				runner.name = args[0]
			}

			if err := runner.Run(); err != nil {
				errhandler.HandleError(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Address, "address", "", "Account address (0x...)")
	cmd.Flags().StringVar(&flags.Type, "type", "", "Account type (operating, reserve, payroll, investment)")
	cmd.Flags().StringVar(&flags.Description, "description", "", "Account description")
	cmd.Flags().StringVar(&flags.Balance, "balance", "0", "Starting balance in USD")

	return cmd
}

func (r *createRunner) Run() error {
	var err error

	name := r.name
	if name == "" {
		name, err = prompts.PromptInput("Account name:", "", validation.ValidateName)
		if err != nil {
			return err
		}
	}

	address := r.flags.Address
	if address == "" {
		address, err = prompts.PromptInput("Account address (0x...):", "", validation.ValidateAddress)
		if err != nil {
			return err
		}
	}

	accType := r.flags.Type
	if accType == "" {
		accType, err = prompts.PromptSelect("Account type:", constants.AccountTypes, "operating")
		if err != nil {
			return err
		}
	}

	balance, err := utils.ParseToCents(r.flags.Balance)
	if err != nil {
		return err
	}

	created, err := r.svc.Account.Create(name, address, accType, r.flags.Description, balance)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	pterm.Success.Printf("Created account %s (%s) with balance %s\n",
		created.Name, created.Type, utils.FormatUSD(created.Balance))
	return nil
}
