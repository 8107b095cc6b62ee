package reconcile

import (
	"net/url"
	"strings"

	"github.com/tresuru/tresuru/internal/config"
	"github.com/tresuru/tresuru/internal/constants"
)

// Mode decides which backend is authoritative for the session: the
// local cache or the external ledger. Selected once at startup, never
// per call.
type Mode int

const (
	ModeLocal Mode = iota
	ModeLedger
)

func (m Mode) String() string {
	if m == ModeLedger {
		return "ledger"
	}
	return "local"
}

// SelectMode picks the ledger backend only when connection parameters
// are present and valid and the caller has not forced a simulated
// session.
func SelectMode(cfg *config.Config) Mode {
	if cfg.Session.Simulated {
		return ModeLocal
	}
	if !validEndpoint(cfg.Ledger.Endpoint) {
		return ModeLocal
	}
	if !validAddress(cfg.Ledger.TreasuryAddress) || !validAddress(cfg.Ledger.TokenAddress) {
		return ModeLocal
	}
	return ModeLedger
}

func validEndpoint(endpoint string) bool {
	if endpoint == "" {
		return false
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validAddress(address string) bool {
	return len(address) == constants.AddressLen && strings.HasPrefix(address, "0x")
}
