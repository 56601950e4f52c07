package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// Ledger is the host ledger the campaign core runs on. It owns account
// storage and native balances and serialises every unit of work. It is an
// outbound port in hexagonal architecture.
type Ledger interface {
	// Atomically runs fn as a single serialised unit of work. Changes made
	// through tx become visible only if fn returns nil; any error rolls
	// the whole unit back and is returned unchanged.
	Atomically(ctx context.Context, fn func(tx LedgerTx) error) error
}

// LedgerTx is the view of the ledger inside one unit of work.
type LedgerTx interface {
	// GetAccount returns the account at addr, or nil when none exists.
	GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error)
	// ListAccounts returns every account holding a data allocation,
	// ordered by address.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// Allocate creates an account at addr with space bytes of storage,
	// funded by payer with the rent-exempt minimum. It fails with
	// domain.ErrDuplicateAccount if an account already exists at addr and
	// with domain.ErrInsufficientFunds if payer cannot cover the minimum.
	Allocate(ctx context.Context, addr domain.Address, space int, payer domain.Address) (*domain.Account, error)
	// Debit removes amount lamports from addr, failing with
	// domain.ErrInsufficientFunds when the balance is too small.
	Debit(ctx context.Context, addr domain.Address, amount uint64) error
	// Credit adds amount lamports to addr, creating a plain wallet account
	// if none exists. It fails with domain.ErrTransferFailure when the
	// ledger cannot represent the resulting balance.
	Credit(ctx context.Context, addr domain.Address, amount uint64) error
	// WriteData replaces the data stored at addr. The data must fit the
	// account's allocated space.
	WriteData(ctx context.Context, addr domain.Address, data []byte) error
	// MinimumBalance returns the reserve floor for space bytes of storage.
	MinimumBalance(space int) uint64
}
