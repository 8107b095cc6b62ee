package signer

import (
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/service"
)

// SignerFunc resolves the address acting as the current user.
type SignerFunc func() (string, error)

func NewSignerCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	signerCmd := &cobra.Command{
		Use:   "signer",
		Short: "Manage the signer registry",
		Long:  "Enroll, remove and list the signers allowed to vote on transactions.",
	}

	signerCmd.AddCommand(NewAddCmd(svc, signer))
	signerCmd.AddCommand(NewRemoveCmd(svc, signer))
	signerCmd.AddCommand(NewListCmd(svc))

	return signerCmd
}
