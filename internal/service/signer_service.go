package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/engine"
	"github.com/tresuru/tresuru/internal/store"
	"github.com/tresuru/tresuru/internal/validation"
)

type SignerService struct {
	repo store.Repository
}

func NewSignerService(repo store.Repository) *SignerService {
	return &SignerService{repo: repo}
}

// Enroll adds a signer to the registry. Only admins may enroll,
// except when the registry is empty: the first signer bootstraps the
// system and is forced to the admin role.
func (ss *SignerService) Enroll(actor, address, name, role string) (*store.Signer, error) {
	if err := validation.ValidateAddress(address); err != nil {
		return nil, err
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateRole(role); err != nil {
		return nil, err
	}
	address = strings.ToLower(strings.TrimSpace(address))

	signers, err := ss.repo.GetAllSigners()
	if err != nil {
		return nil, err
	}

	if len(signers) == 0 {
		role = constants.RoleAdmin
	} else {
		acting, err := ss.repo.GetSignerByAddress(actor)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return nil, engine.ErrNotASigner
			}
			return nil, err
		}
		if acting.Role != constants.RoleAdmin {
			return nil, fmt.Errorf("only admins can enroll signers")
		}
	}

	if _, err := ss.repo.CreateSigner(address, strings.TrimSpace(name), role, time.Now().UTC().Unix()); err != nil {
		return nil, err
	}
	return ss.repo.GetSignerByAddress(address)
}

// Remove deletes a signer. The sole remaining admin cannot be
// removed: that would leave the registry unmanageable.
func (ss *SignerService) Remove(actor, address string) error {
	acting, err := ss.repo.GetSignerByAddress(actor)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return engine.ErrNotASigner
		}
		return err
	}
	if acting.Role != constants.RoleAdmin {
		return fmt.Errorf("only admins can remove signers")
	}

	target, err := ss.repo.GetSignerByAddress(address)
	if err != nil {
		return err
	}
	if target.Role == constants.RoleAdmin {
		admins, err := ss.repo.CountSignersByRole(constants.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return engine.ErrLastAdmin
		}
	}

	return ss.repo.DeleteSigner(address)
}

func (ss *SignerService) List() ([]*store.Signer, error) {
	return ss.repo.GetAllSigners()
}

func (ss *SignerService) Get(address string) (*store.Signer, error) {
	return ss.repo.GetSignerByAddress(address)
}

// Count returns the number of enrolled signers.
func (ss *SignerService) Count() (int, error) {
	signers, err := ss.repo.GetAllSigners()
	if err != nil {
		return 0, err
	}
	return len(signers), nil
}
