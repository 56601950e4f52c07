package postgres

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// newTestLedger connects to the database named by PSQL_ADDRESS and applies
// the schema. Tests using it are skipped when the variable is unset.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	addr := os.Getenv("PSQL_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr, slog.New(slog.DiscardHandler)))

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewLedger(pool, domain.DefaultRent)
}

func randomAddress(t *testing.T) domain.Address {
	t.Helper()
	var a domain.Address
	_, err := rand.Read(a[:])
	require.NoError(t, err)
	return a
}

func fund(t *testing.T, l *Ledger, addr domain.Address, lamports uint64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
		return tx.Credit(ctx, addr, lamports)
	}))
}

func balance(t *testing.T, l *Ledger, addr domain.Address) uint64 {
	t.Helper()
	ctx := context.Background()
	var out uint64
	require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
		acc, err := tx.GetAccount(ctx, addr)
		if acc != nil {
			out = acc.Lamports
		}
		return err
	}))
	return out
}

func TestLedgerAllocate(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	payer, addr := randomAddress(t), randomAddress(t)
	fund(t, l, payer, 10_000_000)
	minimum := domain.DefaultRent.MinimumBalance(100)

	require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
		acc, err := tx.Allocate(ctx, addr, 100, payer)
		if err != nil {
			return err
		}
		assert.Equal(t, minimum, acc.Lamports)
		return nil
	}))
	assert.Equal(t, uint64(10_000_000)-minimum, balance(t, l, payer))
	assert.Equal(t, minimum, balance(t, l, addr))

	err := l.Atomically(ctx, func(tx port.LedgerTx) error {
		_, err := tx.Allocate(ctx, addr, 100, payer)
		return err
	})
	require.ErrorIs(t, err, domain.ErrDuplicateAccount)

	// an existing wallet also occupies the address
	wallet := randomAddress(t)
	fund(t, l, wallet, 1)
	err = l.Atomically(ctx, func(tx port.LedgerTx) error {
		_, err := tx.Allocate(ctx, wallet, 100, payer)
		return err
	})
	require.ErrorIs(t, err, domain.ErrDuplicateAccount)
}

func TestLedgerAllocateUnfundedRollsBack(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	payer, addr := randomAddress(t), randomAddress(t)

	err := l.Atomically(ctx, func(tx port.LedgerTx) error {
		_, err := tx.Allocate(ctx, addr, 100, payer)
		return err
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
		acc, err := tx.GetAccount(ctx, addr)
		assert.Nil(t, acc)
		return err
	}))
}

func TestLedgerDebitCredit(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	addr := randomAddress(t)
	fund(t, l, addr, 500)

	err := l.Atomically(ctx, func(tx port.LedgerTx) error {
		return tx.Debit(ctx, addr, 501)
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	err = l.Atomically(ctx, func(tx port.LedgerTx) error {
		return tx.Debit(ctx, randomAddress(t), 1)
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
		return tx.Debit(ctx, addr, 200)
	}))
	assert.Equal(t, uint64(300), balance(t, l, addr))

	err = l.Atomically(ctx, func(tx port.LedgerTx) error {
		return tx.Credit(ctx, addr, math.MaxInt64)
	})
	require.ErrorIs(t, err, domain.ErrTransferFailure)
	assert.Equal(t, uint64(300), balance(t, l, addr))
}

func TestLedgerWriteData(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	payer, addr := randomAddress(t), randomAddress(t)
	fund(t, l, payer, 10_000_000)

	require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
		if _, err := tx.Allocate(ctx, addr, 4, payer); err != nil {
			return err
		}
		return tx.WriteData(ctx, addr, []byte{1, 2, 3, 4})
	}))

	err := l.Atomically(ctx, func(tx port.LedgerTx) error {
		return tx.WriteData(ctx, addr, []byte{1, 2, 3, 4, 5})
	})
	require.ErrorIs(t, err, domain.ErrRecordTooLarge)

	err = l.Atomically(ctx, func(tx port.LedgerTx) error {
		return tx.WriteData(ctx, randomAddress(t), []byte{1})
	})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
		acc, err := tx.GetAccount(ctx, addr)
		if err != nil {
			return err
		}
		assert.Equal(t, []byte{1, 2, 3, 4}, acc.Data)
		return nil
	}))
}
