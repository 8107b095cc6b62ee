package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tresuru/tresuru/internal/config"
)

func TestSelectMode(t *testing.T) {
	live := func() *config.Config {
		cfg := config.NewDefault()
		cfg.Ledger.Endpoint = "https://rpc.example.com"
		cfg.Ledger.TreasuryAddress = "0x1111111111111111111111111111111111111111"
		cfg.Ledger.TokenAddress = "0x2222222222222222222222222222222222222222"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   Mode
	}{
		{"fully configured", func(cfg *config.Config) {}, ModeLedger},
		{"simulated session wins", func(cfg *config.Config) { cfg.Session.Simulated = true }, ModeLocal},
		{"missing endpoint", func(cfg *config.Config) { cfg.Ledger.Endpoint = "" }, ModeLocal},
		{"non-http endpoint", func(cfg *config.Config) { cfg.Ledger.Endpoint = "ftp://rpc.example.com" }, ModeLocal},
		{"short treasury address", func(cfg *config.Config) { cfg.Ledger.TreasuryAddress = "0x1234" }, ModeLocal},
		{"token address without prefix", func(cfg *config.Config) {
			cfg.Ledger.TokenAddress = "2222222222222222222222222222222222222222ab"
		}, ModeLocal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := live()
			tt.mutate(cfg)
			assert.Equal(t, tt.want, SelectMode(cfg))
		})
	}
}
