package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tresuru/tresuru/internal/config"
	"github.com/tresuru/tresuru/internal/ledger"
	"github.com/tresuru/tresuru/internal/policy"
	"github.com/tresuru/tresuru/internal/reconcile"
	"github.com/tresuru/tresuru/internal/service"
	"github.com/tresuru/tresuru/internal/store"
)

type App struct {
	Service *service.Service
	Gateway *reconcile.Gateway
	Store   store.Repository
	Mode    reconcile.Mode
}

// NewApp initializes config, database, backend selection and core
// services, then returns the App entity.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := getAppDataDir()
		dbPathRaw = filepath.Join(appDir, "tresuru.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	pol, err := policyFromConfig(cfg)
	if err != nil {
		dbStore.Close()
		return nil, nil, err
	}

	mode := reconcile.SelectMode(cfg)
	var adapter ledger.Adapter
	if mode == reconcile.ModeLedger {
		adapter = ledger.NewClient(cfg.Ledger.Endpoint, cfg.Ledger.TreasuryAddress, cfg.Ledger.ChainID)
	}

	gw := reconcile.NewGateway(mode, dbStore, adapter, pol, cfg.Ledger.TreasuryAddress)
	svc := service.NewService(gw, dbStore, cfg)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Gateway: gw,
		Store:   dbStore,
		Mode:    mode,
	}, cleanup, nil
}

// policyFromConfig overlays configured scalars onto the default
// policy table. Zero values keep the defaults.
func policyFromConfig(cfg *config.Config) (*policy.Table, error) {
	pol := policy.Default()
	if cfg.Policy.DailyLimitCents > 0 {
		pol.DailyLimit = cfg.Policy.DailyLimitCents
	}
	if cfg.Policy.TimelockMinutes > 0 {
		pol.TimelockDuration = time.Duration(cfg.Policy.TimelockMinutes) * time.Minute
	}
	if cfg.Policy.ExpirationHours > 0 {
		pol.TxExpirationPeriod = time.Duration(cfg.Policy.ExpirationHours) * time.Hour
	}
	if err := pol.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy configuration: %w", err)
	}
	return pol, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tresuru"), nil
	}

	return filepath.Join(configDir, "tresuru"), nil
}
