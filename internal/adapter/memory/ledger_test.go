package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

func balanceOf(t *testing.T, l *Ledger, addr domain.Address) uint64 {
	t.Helper()
	var out uint64
	require.NoError(t, l.Atomically(context.Background(), func(tx port.LedgerTx) error {
		acc, err := tx.GetAccount(context.Background(), addr)
		if acc != nil {
			out = acc.Lamports
		}
		return err
	}))
	return out
}

func TestAllocate(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(domain.DefaultRent)
	payer, addr := domain.Address{1}, domain.Address{2}
	require.NoError(t, l.Fund(payer, 10_000_000))
	minimum := domain.DefaultRent.MinimumBalance(100)

	require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
		acc, err := tx.Allocate(ctx, addr, 100, payer)
		require.NoError(t, err)
		assert.Equal(t, minimum, acc.Lamports)
		return nil
	}))
	assert.Equal(t, uint64(10_000_000)-minimum, balanceOf(t, l, payer))
	assert.Equal(t, minimum, balanceOf(t, l, addr))

	err := l.Atomically(ctx, func(tx port.LedgerTx) error {
		_, err := tx.Allocate(ctx, addr, 100, payer)
		return err
	})
	require.ErrorIs(t, err, domain.ErrDuplicateAccount)
}

func TestAllocateUnfunded(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(domain.DefaultRent)
	err := l.Atomically(ctx, func(tx port.LedgerTx) error {
		_, err := tx.Allocate(ctx, domain.Address{2}, 100, domain.Address{1})
		return err
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
		acc, err := tx.GetAccount(ctx, domain.Address{2})
		assert.Nil(t, acc)
		return err
	}))
}

func TestRollback(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(domain.DefaultRent)
	a, b := domain.Address{1}, domain.Address{2}
	require.NoError(t, l.Fund(a, 100))

	boom := errors.New("boom")
	err := l.Atomically(ctx, func(tx port.LedgerTx) error {
		require.NoError(t, tx.Debit(ctx, a, 60))
		require.NoError(t, tx.Credit(ctx, b, 60))
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(100), balanceOf(t, l, a))
	assert.Equal(t, uint64(0), balanceOf(t, l, b))
}

func TestDebitCredit(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(domain.DefaultRent)
	a := domain.Address{1}
	require.NoError(t, l.Fund(a, 100))

	err := l.Atomically(ctx, func(tx port.LedgerTx) error { return tx.Debit(ctx, a, 101) })
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	err = l.Atomically(ctx, func(tx port.LedgerTx) error { return tx.Credit(ctx, a, ^uint64(0)) })
	require.ErrorIs(t, err, domain.ErrTransferFailure)
	assert.Equal(t, uint64(100), balanceOf(t, l, a))
}

func TestWriteDataAndList(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(domain.DefaultRent)
	payer := domain.Address{9}
	require.NoError(t, l.Fund(payer, 100_000_000))

	for _, addr := range []domain.Address{{5}, {3}} {
		require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
			if _, err := tx.Allocate(ctx, addr, 4, payer); err != nil {
				return err
			}
			return tx.WriteData(ctx, addr, []byte{1, 2, 3})
		}))
	}

	err := l.Atomically(ctx, func(tx port.LedgerTx) error {
		return tx.WriteData(ctx, domain.Address{3}, []byte{1, 2, 3, 4, 5})
	})
	require.ErrorIs(t, err, domain.ErrRecordTooLarge)

	err = l.Atomically(ctx, func(tx port.LedgerTx) error {
		return tx.WriteData(ctx, domain.Address{4}, []byte{1})
	})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	require.NoError(t, l.Atomically(ctx, func(tx port.LedgerTx) error {
		accounts, err := tx.ListAccounts(ctx)
		require.Len(t, accounts, 2)
		assert.Equal(t, domain.Address{3}, accounts[0].Address)
		assert.Equal(t, domain.Address{5}, accounts[1].Address)
		assert.Equal(t, []byte{1, 2, 3}, accounts[0].Data)
		return err
	}))
}

func TestCancelledContext(t *testing.T) {
	l := NewLedger(domain.DefaultRent)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Atomically(ctx, func(tx port.LedgerTx) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
