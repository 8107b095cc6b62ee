package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Session    SessionConfig  `mapstructure:"session"`
	Policy     PolicyConfig   `mapstructure:"policy"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LedgerConfig holds the settlement-network connection parameters.
// When empty or invalid the engine runs on the local cache only.
type LedgerConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	ChainID         string `mapstructure:"chain_id"`
	TreasuryAddress string `mapstructure:"treasury_address"`
	TokenAddress    string `mapstructure:"token_address"`
}

type SessionConfig struct {
	// Simulated forces the local backend even when ledger connection
	// parameters are present, for demos and tests.
	Simulated bool `mapstructure:"simulated"`
	// Signer is the address acting as the current user; individual
	// commands may override it with --signer.
	Signer string `mapstructure:"signer"`
}

// PolicyConfig overrides the default policy scalars at initialization.
// Zero values keep the defaults; tiers are not configurable here.
type PolicyConfig struct {
	DailyLimitCents int64 `mapstructure:"daily_limit_cents"`
	TimelockMinutes int   `mapstructure:"timelock_minutes"`
	ExpirationHours int   `mapstructure:"expiration_hours"`
}

type DefaultsConfig struct {
	Asset string `mapstructure:"asset"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Asset: "trUSD"},
	}
}
