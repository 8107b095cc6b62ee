package signer

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui/views"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List enrolled signers",
		RunE: func(cmd *cobra.Command, args []string) error {
			signers, err := svc.Signer.List()
			if err != nil {
				return fmt.Errorf("failed to list signers: %w", err)
			}
			return views.RenderSignerList(signers)
		},
	}
}
