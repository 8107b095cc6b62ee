package tx

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/errhandler"
	"github.com/tresuru/tresuru/internal/service"
)

type executeRunner struct {
	svc  *service.Service
	txID string
}

func NewExecuteCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "execute <transaction-id>",
		Short: "Execute a fully approved transaction",
		Long: `Execute a transaction that met its approval threshold.

Execution is gated: the treasury must not be paused, the timelock must
have elapsed, and an outbound transfer must fit in today's remaining
spending allowance. A gate failure leaves the transaction approved and
execute can be retried later.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &executeRunner{
				svc:  svc,
				txID: args[0],
			}

			if err := runner.Run(); err != nil {
				errhandler.HandleError(err)
			}
			return nil
		},
	}
}

func (r *executeRunner) Run() error {
	tx, err := r.svc.Transaction.Execute(context.Background(), r.txID)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Executed %s (settlement ref: %s)\n", tx.ID, tx.SettlementRef)
	return nil
}
