package service

import (
	"github.com/tresuru/tresuru/internal/config"
	"github.com/tresuru/tresuru/internal/reconcile"
	"github.com/tresuru/tresuru/internal/store"
)

type Service struct {
	Config      *config.Config
	Signer      *SignerService
	Account     *AccountService
	Transaction *TransactionService
	Governance  *GovernanceService
}

func NewService(gw *reconcile.Gateway, repo store.Repository, cfg *config.Config) *Service {
	return &Service{
		Config:      cfg,
		Signer:      NewSignerService(repo),
		Account:     NewAccountService(gw, repo),
		Transaction: NewTransactionService(gw, cfg),
		Governance:  NewGovernanceService(gw),
	}
}
