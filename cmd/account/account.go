/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package account

import (
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/service"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage treasury accounts",
		Long:  "Create named treasury accounts and show the pooled balances.",
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))

	return accountCmd
}
