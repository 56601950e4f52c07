package configs

import "strings"

// Ledger selects and parameterises the host ledger and the campaign
// addressing scheme.
type Ledger struct {
	// Backend is "postgres" or "memory". Unknown values fall back to
	// "postgres".
	Backend string `env:"BACKEND" envDefault:"postgres"`

	SeedTag   string `env:"SEED_TAG" envDefault:"CAMPAIGN_DEMO"`
	ProgramID string `env:"PROGRAM_ID" envDefault:"Hgj3KQYRQBXjPxzK3pxbnnv5CsMpFpuLnR1ZySYqs5Vy"`

	// CampaignAccountSpace is the fixed allocation of every campaign
	// account in bytes. It is deliberately generous so that name and
	// description fit without resizing.
	CampaignAccountSpace int `env:"CAMPAIGN_ACCOUNT_SPACE" envDefault:"9000"`

	// Rent parameters used to compute reserve floors.
	AccountStorageOverhead  uint64 `env:"ACCOUNT_STORAGE_OVERHEAD" envDefault:"128"`
	LamportsPerByteYear     uint64 `env:"LAMPORTS_PER_BYTE_YEAR" envDefault:"3480"`
	ExemptionThresholdYears uint64 `env:"EXEMPTION_THRESHOLD_YEARS" envDefault:"2"`

	// Genesis lists balances credited at startup as hexaddress=lamports
	// pairs separated by commas. Existing accounts are left alone.
	Genesis map[string]uint64 `env:"GENESIS" envKeyValSeparator:"="`
}

// BackendName validates and normalises the requested backend.
func (c Ledger) BackendName() string {
	switch strings.ToLower(c.Backend) {
	case "memory", "mem":
		return "memory"
	default:
		return "postgres"
	}
}
