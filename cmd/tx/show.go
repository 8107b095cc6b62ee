package tx

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui/views"
)

type showRunner struct {
	svc  *service.Service
	txID string
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show a transaction's details and votes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &showRunner{
				svc:  svc,
				txID: args[0],
			}
			return runner.Run()
		},
	}
}

func (r *showRunner) Run() error {
	tx, err := r.svc.Transaction.Get(context.Background(), r.txID)
	if err != nil {
		return fmt.Errorf("failed to get transaction %s: %w", r.txID, err)
	}

	return views.RenderTransactionDetail(tx)
}
