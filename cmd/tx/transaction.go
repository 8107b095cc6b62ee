/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package tx

import (
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/service"
)

// SignerFunc resolves the address acting as the current user.
type SignerFunc func() (string, error)

func NewTransactionCmd(svc *service.Service, signer SignerFunc) *cobra.Command {
	txCmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transaction"},
		Short:   "Manage treasury transactions",
		Long:    "Propose, vote on, execute and inspect treasury transactions.",
	}

	txCmd.AddCommand(NewProposeCmd(svc, signer))
	txCmd.AddCommand(NewListCmd(svc))
	txCmd.AddCommand(NewShowCmd(svc))
	txCmd.AddCommand(NewApproveCmd(svc, signer))
	txCmd.AddCommand(NewRejectCmd(svc, signer))
	txCmd.AddCommand(NewRevokeCmd(svc, signer))
	txCmd.AddCommand(NewExecuteCmd(svc))
	txCmd.AddCommand(NewCancelCmd(svc, signer))

	return txCmd
}
