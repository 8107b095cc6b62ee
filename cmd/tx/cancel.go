package tx

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/service"
)

type cancelRunner struct {
	svc    *service.Service
	signer SignerFunc
	txID   string
}

func NewCancelCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <transaction-id>",
		Short: "Cancel a transaction still collecting approvals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &cancelRunner{
				svc:    svc,
				signer: signer,
				txID:   args[0],
			}
			return runner.Run()
		},
	}
}

func (r *cancelRunner) Run() error {
	caller, err := r.signer()
	if err != nil {
		return err
	}

	tx, err := r.svc.Transaction.Cancel(context.Background(), r.txID, caller)
	if err != nil {
		return fmt.Errorf("failed to cancel %s: %w", r.txID, err)
	}

	pterm.Success.Printf("Cancelled %s\n", tx.ID)
	return nil
}
