package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/store"
	"github.com/tresuru/tresuru/internal/utils"
	"github.com/tresuru/tresuru/internal/validation"
)

// PromptTransactionType prompts for the transfer direction.
func PromptTransactionType() (string, error) {
	options := []string{
		constants.TypeOutbound,
		constants.TypeInbound,
		constants.TypeInternal,
	}
	return PromptSelect("Transaction type:", options, constants.TypeOutbound)
}

// PromptCategory prompts for a spending category.
func PromptCategory() (string, error) {
	return PromptSelect("Category:", constants.Categories, "Operating Expense")
}

// PromptSourceAccount prompts for the funding account, showing each
// account's cached balance.
func PromptSourceAccount(accounts []*store.Account, message string) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts available")
	}

	var opts []huh.Option[string]
	for _, acc := range accounts {
		display := fmt.Sprintf("%s (%s, balance %s)", acc.Name, acc.Type, utils.FormatUSD(acc.Balance))
		opts = append(opts, huh.NewOption(display, acc.Address))
	}

	selected := accounts[0].Address
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(10).
		Run()

	return selected, err
}

// PromptProposalAmount prompts for a dollar amount and returns cents.
func PromptProposalAmount() (int64, error) {
	amountStr, err := PromptAmount(
		"Amount (USD):",
		"e.g. 47500 or 47,500.00",
		validation.ValidateAmount,
	)
	if err != nil {
		return 0, err
	}
	return utils.ParseToCents(amountStr)
}

// PromptRecipient prompts for the payee address and an optional label.
func PromptRecipient() (address, label string, err error) {
	address, err = PromptInput("Recipient address (0x...):", "", validation.ValidateAddress)
	if err != nil {
		return "", "", err
	}
	label, err = PromptInput("Recipient label (optional):", "", nil)
	if err != nil {
		return "", "", err
	}
	return address, label, nil
}

// PromptRejectComment prompts for the mandatory rejection reason.
func PromptRejectComment() (string, error) {
	return PromptDescription("Reason for rejection:", true)
}
