package service

import (
	"context"

	"github.com/tresuru/tresuru/internal/reconcile"
)

type GovernanceService struct {
	gw *reconcile.Gateway
}

func NewGovernanceService(gw *reconcile.Gateway) *GovernanceService {
	return &GovernanceService{gw: gw}
}

type GovernanceStatus struct {
	Mode                string
	Paused              bool
	UnpauseVotes        []string
	UnpauseThreshold    int
	DailyLimit          int64
	DailySpendRemaining int64
}

func (gs *GovernanceService) Pause(ctx context.Context, signer string) error {
	return gs.gw.EmergencyPause(ctx, signer)
}

func (gs *GovernanceService) VoteUnpause(ctx context.Context, signer string) (bool, error) {
	return gs.gw.VoteUnpause(ctx, signer)
}

func (gs *GovernanceService) Status(ctx context.Context) (*GovernanceStatus, error) {
	paused, err := gs.gw.Paused(ctx)
	if err != nil {
		return nil, err
	}
	votes, err := gs.gw.UnpauseVotes(ctx)
	if err != nil {
		return nil, err
	}
	remaining, err := gs.gw.DailySpendRemaining(ctx)
	if err != nil {
		return nil, err
	}

	pol := gs.gw.Policy()
	return &GovernanceStatus{
		Mode:                gs.gw.Mode().String(),
		Paused:              paused,
		UnpauseVotes:        votes,
		UnpauseThreshold:    pol.UnpauseThreshold(),
		DailyLimit:          pol.DailyLimit,
		DailySpendRemaining: remaining,
	}, nil
}
