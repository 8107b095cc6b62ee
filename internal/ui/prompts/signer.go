package prompts

import (
	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/validation"
)

// PromptSignerDetails collects the fields for a new signer.
func PromptSignerDetails() (address, name, role string, err error) {
	address, err = PromptInput("Signer address (0x...):", "", validation.ValidateAddress)
	if err != nil {
		return "", "", "", err
	}
	name, err = PromptInput("Display name:", "", validation.ValidateName)
	if err != nil {
		return "", "", "", err
	}
	role, err = PromptSelect("Role:", constants.Roles, constants.RoleApprover)
	if err != nil {
		return "", "", "", err
	}
	return address, name, role, nil
}

// PromptInitSigner runs the first-run wizard collecting the bootstrap
// admin. The role is fixed: the first signer administers the registry.
func PromptInitSigner() (address, name string, err error) {
	address, err = PromptInput("Your signer address (0x...):", "", validation.ValidateAddress)
	if err != nil {
		return "", "", err
	}
	name, err = PromptInput("Your display name:", "", validation.ValidateName)
	if err != nil {
		return "", "", err
	}
	return address, name, nil
}
