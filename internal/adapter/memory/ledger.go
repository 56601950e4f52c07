// Package memory implements the host ledger port in process memory. It is
// used for local runs and as the ledger fixture in tests.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"math/bits"
	"slices"
	"sync"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Ledger implements port.Ledger. Units of work are serialised by a single
// mutex and staged on a copy-on-write overlay that is applied only when the
// unit succeeds.
type Ledger struct {
	mu       sync.Mutex
	rent     domain.Rent
	accounts map[domain.Address]domain.Account
}

// NewLedger returns an empty ledger using rent for reserve floors.
func NewLedger(rent domain.Rent) *Ledger {
	return &Ledger{rent: rent, accounts: make(map[domain.Address]domain.Account)}
}

// Fund credits lamports to addr outside any unit of work. It is meant for
// genesis seeding.
func (l *Ledger) Fund(addr domain.Address, lamports uint64) error {
	return l.Atomically(context.Background(), func(tx port.LedgerTx) error {
		return tx.Credit(context.Background(), addr, lamports)
	})
}

// Atomically implements port.Ledger.
func (l *Ledger) Atomically(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := &ledgerTx{ledger: l, staged: make(map[domain.Address]*domain.Account)}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for addr, acc := range tx.staged {
		l.accounts[addr] = *acc
	}
	return nil
}

type ledgerTx struct {
	ledger *Ledger
	staged map[domain.Address]*domain.Account
}

// load returns the working copy of addr, or nil when absent. The copy is
// staged so later writes in the same unit observe it.
func (t *ledgerTx) load(addr domain.Address) *domain.Account {
	if acc, ok := t.staged[addr]; ok {
		return acc
	}
	acc, ok := t.ledger.accounts[addr]
	if !ok {
		return nil
	}
	cp := acc
	cp.Data = bytes.Clone(acc.Data)
	t.staged[addr] = &cp
	return &cp
}

func (t *ledgerTx) GetAccount(_ context.Context, addr domain.Address) (*domain.Account, error) {
	acc := t.load(addr)
	if acc == nil {
		return nil, nil
	}
	out := *acc
	out.Data = bytes.Clone(acc.Data)
	return &out, nil
}

func (t *ledgerTx) ListAccounts(_ context.Context) ([]domain.Account, error) {
	seen := make(map[domain.Address]struct{}, len(t.ledger.accounts)+len(t.staged))
	var out []domain.Account
	collect := func(addr domain.Address) {
		if _, ok := seen[addr]; ok {
			return
		}
		seen[addr] = struct{}{}
		if acc := t.load(addr); acc != nil && acc.Space > 0 {
			cp := *acc
			cp.Data = bytes.Clone(acc.Data)
			out = append(out, cp)
		}
	}
	for addr := range t.staged {
		collect(addr)
	}
	for addr := range t.ledger.accounts {
		collect(addr)
	}
	slices.SortFunc(out, func(a, b domain.Account) int {
		return bytes.Compare(a.Address[:], b.Address[:])
	})
	return out, nil
}

func (t *ledgerTx) Allocate(ctx context.Context, addr domain.Address, space int, payer domain.Address) (*domain.Account, error) {
	if space <= 0 {
		return nil, fmt.Errorf("%w: space must be positive", domain.ErrInvalidArgument)
	}
	if t.load(addr) != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateAccount, addr)
	}
	minimum := t.MinimumBalance(space)
	if err := t.Debit(ctx, payer, minimum); err != nil {
		return nil, fmt.Errorf("fund allocation: %w", err)
	}
	acc := &domain.Account{Address: addr, Lamports: minimum, Space: space}
	t.staged[addr] = acc
	out := *acc
	return &out, nil
}

func (t *ledgerTx) Debit(_ context.Context, addr domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	acc := t.load(addr)
	if acc == nil || acc.Lamports < amount {
		var have uint64
		if acc != nil {
			have = acc.Lamports
		}
		return fmt.Errorf("%w: %s has %d, needs %d", domain.ErrInsufficientFunds, addr, have, amount)
	}
	acc.Lamports -= amount
	return nil
}

func (t *ledgerTx) Credit(_ context.Context, addr domain.Address, amount uint64) error {
	acc := t.load(addr)
	if acc == nil {
		if amount == 0 {
			return nil
		}
		acc = &domain.Account{Address: addr}
		t.staged[addr] = acc
	}
	sum, carry := bits.Add64(acc.Lamports, amount, 0)
	if carry != 0 {
		return fmt.Errorf("%w: balance of %s would overflow", domain.ErrTransferFailure, addr)
	}
	acc.Lamports = sum
	return nil
}

func (t *ledgerTx) WriteData(_ context.Context, addr domain.Address, data []byte) error {
	acc := t.load(addr)
	if acc == nil {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, addr)
	}
	if len(data) > acc.Space {
		return fmt.Errorf("%w: %d bytes, capacity %d", domain.ErrRecordTooLarge, len(data), acc.Space)
	}
	acc.Data = bytes.Clone(data)
	return nil
}

func (t *ledgerTx) MinimumBalance(space int) uint64 {
	return t.ledger.rent.MinimumBalance(space)
}
