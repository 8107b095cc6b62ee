package tx

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/model"
	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui/views"
)

type listFlags struct {
	Status string
	Limit  int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List recent transactions",
		Long: `List recent treasury transactions with their approval progress.

In ledger mode the listing comes from the settlement network; in local
mode it comes from the cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&flags.Status, "status", "", "Filter by status (pending_approval, approved, executed, rejected, cancelled)")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Maximum number of transactions to display")

	return cmd
}

func (r *listRunner) Run() error {
	var err error
	var transactions []*model.Transaction

	if r.flags.Status != "" {
		transactions, err = r.svc.Transaction.GetByStatus(context.Background(), r.flags.Status, r.flags.Limit)
	} else {
		transactions, err = r.svc.Transaction.GetRecent(context.Background(), r.flags.Limit)
	}
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	return views.RenderTransactionList(transactions, r.flags.Limit)
}
