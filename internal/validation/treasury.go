package validation

import (
	"fmt"
	"strings"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/utils"
)

// ValidateAddress checks the 0x-prefixed 40-hex-digit address form
// used for signers, accounts and payees.
func ValidateAddress(address string) error {
	address = strings.TrimSpace(address)
	if len(address) != constants.AddressLen || !strings.HasPrefix(address, "0x") {
		return fmt.Errorf("address must be 0x followed by 40 hex characters")
	}
	for _, c := range address[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return fmt.Errorf("address contains non-hex character '%c'", c)
		}
	}
	return nil
}

func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateAmount accepts a positive decimal dollar amount as entered
// at a prompt, e.g. "47500" or "47,500.00".
func ValidateAmount(amountStr string) error {
	cents, err := utils.ParseToCents(amountStr)
	if err != nil {
		return err
	}
	if cents <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

func ValidateRole(role string) error {
	for _, r := range constants.Roles {
		if role == r {
			return nil
		}
	}
	return fmt.Errorf("unknown role '%s' (must be one of %s)", role, strings.Join(constants.Roles, ", "))
}

func ValidateCategory(category string) error {
	for _, c := range constants.Categories {
		if category == c {
			return nil
		}
	}
	return fmt.Errorf("unknown category '%s'", category)
}

func ValidateAccountType(accType string) error {
	for _, at := range constants.AccountTypes {
		if accType == at {
			return nil
		}
	}
	return fmt.Errorf("unknown account type '%s' (must be one of %s)", accType, strings.Join(constants.AccountTypes, ", "))
}

func ValidateTransactionType(txType string) error {
	switch txType {
	case constants.TypeOutbound, constants.TypeInbound, constants.TypeInternal:
		return nil
	}
	return fmt.Errorf("unknown transaction type '%s'", txType)
}
