package service

import (
	"context"
	"strings"

	"github.com/tresuru/tresuru/internal/reconcile"
	"github.com/tresuru/tresuru/internal/store"
	"github.com/tresuru/tresuru/internal/validation"
)

type AccountService struct {
	gw   *reconcile.Gateway
	repo store.Repository
}

func NewAccountService(gw *reconcile.Gateway, repo store.Repository) *AccountService {
	return &AccountService{gw: gw, repo: repo}
}

func (as *AccountService) Create(name, address, accType, description string, balance int64) (*store.Account, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateAddress(address); err != nil {
		return nil, err
	}
	if err := validation.ValidateAccountType(accType); err != nil {
		return nil, err
	}
	address = strings.ToLower(strings.TrimSpace(address))

	exists, err := as.repo.AccountExists(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, store.ErrAccountExists
	}

	if _, err := as.repo.CreateAccount(strings.TrimSpace(name), address, accType, description, balance); err != nil {
		return nil, err
	}
	return as.repo.GetAccountByName(strings.TrimSpace(name))
}

func (as *AccountService) GetAllAccounts() ([]*store.Account, error) {
	return as.repo.GetAllAccounts()
}

func (as *AccountService) GetAccountByName(name string) (*store.Account, error) {
	return as.repo.GetAccountByName(name)
}

// TotalBalance is the pooled treasury balance, read from whichever
// backend is authoritative for the session.
func (as *AccountService) TotalBalance(ctx context.Context) (int64, error) {
	return as.gw.TreasuryBalance(ctx)
}
