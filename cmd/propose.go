/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/errhandler"
	"github.com/tresuru/tresuru/internal/reconcile"
	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/ui"
	"github.com/tresuru/tresuru/internal/ui/prompts"
	"github.com/tresuru/tresuru/internal/utils"
)

type proposeRunner struct {
	svc *service.Service
}

// NewProposeCmd is the interactive proposal wizard. The flag-driven
// variant lives under `tresuru tx propose`.
func NewProposeCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "propose",
		Aliases: []string{"p"},
		Short:   "Propose a new treasury transaction interactively",
		Long: `Walk through proposing a new treasury transaction.

The approval threshold for the amount is shown before you confirm, and
is frozen onto the transaction when it is created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &proposeRunner{svc: svc}

			if err := runner.Run(); err != nil {
				errhandler.HandleError(err)
			}
			return nil
		},
	}
}

func (r *proposeRunner) Run() error {
	proposer, err := ActiveSigner()
	if err != nil {
		return err
	}

	ui.PrintL1Title("New Transaction Proposal")

	txType, err := prompts.PromptTransactionType()
	if err != nil {
		return err
	}

	in := reconcile.ProposeInput{Type: txType, Proposer: proposer}

	if txType != constants.TypeInbound {
		accounts, err := r.svc.Account.GetAllAccounts()
		if err != nil {
			return err
		}
		in.From, err = prompts.PromptSourceAccount(accounts, "Funding account:")
		if err != nil {
			return err
		}
	}

	in.To, in.ToLabel, err = prompts.PromptRecipient()
	if err != nil {
		return err
	}

	in.Amount, err = prompts.PromptProposalAmount()
	if err != nil {
		return err
	}

	in.Category, err = prompts.PromptCategory()
	if err != nil {
		return err
	}

	in.Memo, err = prompts.PromptDescription("Memo (optional):", false)
	if err != nil {
		return err
	}

	required, err := r.svc.Transaction.RequiredApprovalsFor(in.Amount)
	if err != nil {
		return err
	}

	confirmed, err := prompts.PromptConfirm(
		fmt.Sprintf("Propose %s requiring %d approval(s)?", utils.FormatUSD(in.Amount), required),
		true,
	)
	if err != nil {
		return err
	}
	if !confirmed {
		pterm.Warning.Println("Proposal cancelled")
		return nil
	}

	created, err := r.svc.Transaction.Propose(context.Background(), in)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Proposed %s (%s, %d approval(s) required)\n",
		created.ID, utils.FormatUSD(created.Amount), created.RequiredApprovals)
	return nil
}
