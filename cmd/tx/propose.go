package tx

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/reconcile"
	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/utils"
)

type proposeFlags struct {
	Type        string
	From        string
	To          string
	ToLabel     string
	Amount      string
	Category    string
	Memo        string
	Description string
}

type proposeRunner struct {
	svc    *service.Service
	signer SignerFunc
	flags  *proposeFlags
}

// NewProposeCmd is the flag-driven proposal command for scripting.
// The interactive wizard lives at the top level as `tresuru propose`.
func NewProposeCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	flags := &proposeFlags{}

	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Propose a new treasury transaction",
		Example: `  # Propose a vendor payment
  tresuru tx propose --to 0xab5801a7d398351b8be11c439e05c5b3259aec9b --amount 47500 --category "Vendor Payment" --memo "AWS Annual Contract"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &proposeRunner{
				svc:    svc,
				signer: signer,
				flags:  flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&flags.Type, "type", "outbound", "Transaction type (outbound, inbound, internal)")
	cmd.Flags().StringVar(&flags.From, "from", "", "Funding account address")
	cmd.Flags().StringVar(&flags.To, "to", "", "Recipient address (0x...)")
	cmd.Flags().StringVar(&flags.ToLabel, "to-label", "", "Human-readable recipient label")
	cmd.Flags().StringVar(&flags.Amount, "amount", "", "Amount in USD, e.g. 47500 or 47,500.00")
	cmd.Flags().StringVar(&flags.Category, "category", "", "Spending category")
	cmd.Flags().StringVar(&flags.Memo, "memo", "", "Short memo")
	cmd.Flags().StringVar(&flags.Description, "description", "", "Longer description")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func (r *proposeRunner) Run() error {
	proposer, err := r.signer()
	if err != nil {
		return err
	}

	amount, err := utils.ParseToCents(r.flags.Amount)
	if err != nil {
		return err
	}

	created, err := r.svc.Transaction.Propose(context.Background(), reconcile.ProposeInput{
		Type:        r.flags.Type,
		From:        r.flags.From,
		To:          r.flags.To,
		ToLabel:     r.flags.ToLabel,
		Amount:      amount,
		Category:    r.flags.Category,
		Memo:        r.flags.Memo,
		Description: r.flags.Description,
		Proposer:    proposer,
	})
	if err != nil {
		return fmt.Errorf("failed to propose transaction: %w", err)
	}

	pterm.Success.Printf("Proposed %s (%s, %d approval(s) required)\n",
		created.ID, utils.FormatUSD(created.Amount), created.RequiredApprovals)
	return nil
}
