package account

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui/views"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List accounts and the pooled balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := svc.Account.GetAllAccounts()
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			total, err := svc.Account.TotalBalance(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get pooled balance: %w", err)
			}

			return views.RenderAccountList(accounts, total)
		},
	}
}
