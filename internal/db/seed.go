package db

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
)

// GenesisAccount is a wallet balance credited when the ledger starts.
type GenesisAccount struct {
	Address  domain.Address
	Lamports uint64
}

// ParseGenesis converts hex address to lamports pairs into a list ordered
// by address.
func ParseGenesis(raw map[string]uint64) ([]GenesisAccount, error) {
	out := make([]GenesisAccount, 0, len(raw))
	for k, v := range raw {
		addr, err := domain.ParseAddress(k)
		if err != nil {
			return nil, fmt.Errorf("genesis %q: %w", k, err)
		}
		out = append(out, GenesisAccount{Address: addr, Lamports: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address.String() < out[j].Address.String() })
	return out, nil
}

// Seed inserts genesis wallets into the ledger. Accounts that already exist
// are left untouched so that restarts do not mint lamports again.
func Seed(ctx context.Context, db *pgxpool.Pool, genesis []GenesisAccount) error {
	for _, g := range genesis {
		if g.Lamports > math.MaxInt64 {
			return fmt.Errorf("genesis %s: %w", g.Address, domain.ErrTransferFailure)
		}
		_, err := db.Exec(ctx, `INSERT INTO accounts (address, lamports, space, data, created_at, updated_at)
VALUES ($1, $2, 0, ''::bytea, now(), now()) ON CONFLICT DO NOTHING`,
			g.Address[:], int64(g.Lamports))
		if err != nil {
			return err
		}
	}
	return nil
}
