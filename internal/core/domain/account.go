package domain

// Account is the host ledger's view of a single address: a native balance
// in lamports plus an optional fixed-capacity data allocation. Plain wallets
// have Space == 0 and no data.
type Account struct {
	Address  Address
	Lamports uint64
	Space    int
	Data     []byte
}

// Rent describes how the host ledger computes the minimum balance an
// account must hold to keep its data allocation alive.
type Rent struct {
	// StorageOverhead is the per-account byte overhead charged on top of
	// the allocated space.
	StorageOverhead uint64
	// LamportsPerByteYear is the rent rate.
	LamportsPerByteYear uint64
	// ExemptionYears is how many years of rent an account must hold to be
	// exempt from collection.
	ExemptionYears uint64
}

// DefaultRent mirrors the reference host's rent parameters.
var DefaultRent = Rent{StorageOverhead: 128, LamportsPerByteYear: 3480, ExemptionYears: 2}

// MinimumBalance returns the reserve floor for an account with space bytes
// allocated.
func (r Rent) MinimumBalance(space int) uint64 {
	if space < 0 {
		space = 0
	}
	return (r.StorageOverhead + uint64(space)) * r.LamportsPerByteYear * r.ExemptionYears
}
