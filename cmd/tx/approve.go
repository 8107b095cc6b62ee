package tx

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/service"
)

type approveRunner struct {
	svc    *service.Service
	signer SignerFunc
	txID   string
}

func NewApproveCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <transaction-id>",
		Short: "Approve a pending transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &approveRunner{
				svc:    svc,
				signer: signer,
				txID:   args[0],
			}
			return runner.Run()
		},
	}
}

func (r *approveRunner) Run() error {
	voter, err := r.signer()
	if err != nil {
		return err
	}

	tx, err := r.svc.Transaction.Approve(context.Background(), r.txID, voter)
	if err != nil {
		return fmt.Errorf("failed to approve %s: %w", r.txID, err)
	}

	if tx.Status == constants.StatusApproved {
		pterm.Success.Printf("Approved %s (%d/%d) - threshold met, timelock started\n",
			tx.ID, tx.ApprovedCount(), tx.RequiredApprovals)
	} else {
		pterm.Success.Printf("Approved %s (%d/%d)\n", tx.ID, tx.ApprovedCount(), tx.RequiredApprovals)
	}
	return nil
}
