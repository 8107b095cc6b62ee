package tx

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/service"
)

type revokeRunner struct {
	svc    *service.Service
	signer SignerFunc
	txID   string
}

func NewRevokeCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <transaction-id>",
		Short: "Revoke your vote on a transaction",
		Long: `Reset your vote back to pending so you can vote again.

Revoking an approval that had met the threshold reopens the approval
phase; the timelock restarts when the threshold is met again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &revokeRunner{
				svc:    svc,
				signer: signer,
				txID:   args[0],
			}
			return runner.Run()
		},
	}
}

func (r *revokeRunner) Run() error {
	voter, err := r.signer()
	if err != nil {
		return err
	}

	tx, err := r.svc.Transaction.Revoke(context.Background(), r.txID, voter)
	if err != nil {
		return fmt.Errorf("failed to revoke vote on %s: %w", r.txID, err)
	}

	if tx.Status == constants.StatusPendingApproval {
		pterm.Success.Printf("Vote revoked on %s (%d/%d)\n", tx.ID, tx.ApprovedCount(), tx.RequiredApprovals)
	} else {
		pterm.Success.Printf("Vote revoked on %s\n", tx.ID)
	}
	return nil
}
