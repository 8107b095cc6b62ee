package tx

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/errhandler"
	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui/prompts"
)

type rejectFlags struct {
	Comment string
}

type rejectRunner struct {
	svc    *service.Service
	signer SignerFunc
	flags  *rejectFlags
	txID   string
}

func NewRejectCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	flags := &rejectFlags{}

	cmd := &cobra.Command{
		Use:   "reject <transaction-id>",
		Short: "Reject a pending transaction",
		Long: `Reject a pending transaction. A single rejection is terminal: the
transaction can never execute afterwards. A comment explaining the
rejection is mandatory; if --comment is omitted you are prompted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &rejectRunner{
				svc:    svc,
				signer: signer,
				flags:  flags,
				txID:   args[0],
			}

			if err := runner.Run(); err != nil {
				errhandler.HandleError(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Comment, "comment", "m", "", "Reason for rejecting (required)")

	return cmd
}

func (r *rejectRunner) Run() error {
	voter, err := r.signer()
	if err != nil {
		return err
	}

	comment := r.flags.Comment
	if comment == "" {
		comment, err = prompts.PromptRejectComment()
		if err != nil {
			return err
		}
	}

	tx, err := r.svc.Transaction.Reject(context.Background(), r.txID, voter, comment)
	if err != nil {
		return fmt.Errorf("failed to reject %s: %w", r.txID, err)
	}

	pterm.Success.Printf("Rejected %s - transaction is now terminal\n", tx.ID)
	return nil
}
