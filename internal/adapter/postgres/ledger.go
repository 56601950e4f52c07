package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Ledger implements port.Ledger on PostgreSQL. Each unit of work is a
// serializable transaction and touched rows are locked FOR UPDATE, so
// concurrent operations on one account are applied one after another.
type Ledger struct {
	pool *pgxpool.Pool
	rent domain.Rent
}

// NewLedger returns a ledger backed by pool.
func NewLedger(pool *pgxpool.Pool, rent domain.Rent) *Ledger {
	return &Ledger{pool: pool, rent: rent}
}

// Atomically implements port.Ledger.
func (l *Ledger) Atomically(ctx context.Context, fn func(tx port.LedgerTx) error) (err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return fn(&ledgerTx{tx: tx, rent: l.rent})
}

type ledgerTx struct {
	tx   pgx.Tx
	rent domain.Rent
}

const selectAccount = `SELECT address, lamports, space, data FROM accounts`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		acc      domain.Account
		addr     []byte
		lamports int64
	)
	if err := row.Scan(&addr, &lamports, &acc.Space, &acc.Data); err != nil {
		return nil, err
	}
	if len(addr) != domain.KeySize || lamports < 0 {
		return nil, fmt.Errorf("corrupt account row %x", addr)
	}
	copy(acc.Address[:], addr)
	acc.Lamports = uint64(lamports)
	return &acc, nil
}

// GetAccount returns the account at addr, locking its row for the rest of
// the transaction.
func (t *ledgerTx) GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error) {
	acc, err := scanAccount(t.tx.QueryRow(ctx, selectAccount+` WHERE address = $1 FOR UPDATE`, addr[:]))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (t *ledgerTx) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := t.tx.Query(ctx, selectAccount+` WHERE space > 0 ORDER BY address`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Account, error) {
		acc, err := scanAccount(row)
		if err != nil {
			return domain.Account{}, err
		}
		return *acc, nil
	})
}

func (t *ledgerTx) Allocate(ctx context.Context, addr domain.Address, space int, payer domain.Address) (*domain.Account, error) {
	if space <= 0 {
		return nil, fmt.Errorf("%w: space must be positive", domain.ErrInvalidArgument)
	}
	minimum := t.MinimumBalance(space)
	lamports, err := toInt64(minimum)
	if err != nil {
		return nil, err
	}
	tag, err := t.tx.Exec(ctx, `INSERT INTO accounts (address, lamports, space, data, created_at, updated_at)
VALUES ($1, 0, $2, ''::bytea, now(), now()) ON CONFLICT (address) DO NOTHING`, addr[:], space)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateAccount, addr)
	}
	if err = t.Debit(ctx, payer, minimum); err != nil {
		return nil, fmt.Errorf("fund allocation: %w", err)
	}
	if _, err = t.tx.Exec(ctx, `UPDATE accounts SET lamports = $1, updated_at = now() WHERE address = $2`, lamports, addr[:]); err != nil {
		return nil, err
	}
	return &domain.Account{Address: addr, Lamports: minimum, Space: space}, nil
}

func (t *ledgerTx) Debit(ctx context.Context, addr domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	acc, err := t.GetAccount(ctx, addr)
	if err != nil {
		return err
	}
	if acc == nil || acc.Lamports < amount {
		var have uint64
		if acc != nil {
			have = acc.Lamports
		}
		return fmt.Errorf("%w: %s has %d, needs %d", domain.ErrInsufficientFunds, addr, have, amount)
	}
	// amount <= balance <= MaxInt64
	_, err = t.tx.Exec(ctx, `UPDATE accounts SET lamports = lamports - $1, updated_at = now() WHERE address = $2`, int64(amount), addr[:])
	return err
}

func (t *ledgerTx) Credit(ctx context.Context, addr domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	acc, err := t.GetAccount(ctx, addr)
	if err != nil {
		return err
	}
	var have uint64
	if acc != nil {
		have = acc.Lamports
	}
	if amount > math.MaxInt64-have {
		return fmt.Errorf("%w: balance of %s would overflow", domain.ErrTransferFailure, addr)
	}
	_, err = t.tx.Exec(ctx, `INSERT INTO accounts (address, lamports, space, data, created_at, updated_at)
VALUES ($1, $2, 0, ''::bytea, now(), now())
ON CONFLICT (address) DO UPDATE SET lamports = accounts.lamports + EXCLUDED.lamports, updated_at = now()`,
		addr[:], int64(amount))
	return err
}

func (t *ledgerTx) WriteData(ctx context.Context, addr domain.Address, data []byte) error {
	tag, err := t.tx.Exec(ctx, `UPDATE accounts SET data = $1, updated_at = now() WHERE address = $2 AND space >= $3`,
		data, addr[:], len(data))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		acc, err := t.GetAccount(ctx, addr)
		if err != nil {
			return err
		}
		if acc == nil {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, addr)
		}
		return fmt.Errorf("%w: %d bytes, capacity %d", domain.ErrRecordTooLarge, len(data), acc.Space)
	}
	return nil
}

func (t *ledgerTx) MinimumBalance(space int) uint64 {
	return t.rent.MinimumBalance(space)
}

// toInt64 converts a lamport amount to the BIGINT column range.
func toInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d exceeds ledger range", domain.ErrTransferFailure, v)
	}
	return int64(v), nil
}
