package usecase

import (
	"context"
	"fmt"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// TransferEngine moves lamports between custodial accounts inside a ledger
// unit of work. It performs the sufficiency and reserve-floor checks; the
// surrounding unit of work makes the debit and credit commit together.
type TransferEngine struct{}

// Donate moves amount from the wallet at from into campaign. Like a native
// transfer, the source must be a plain wallet without data. A zero amount
// succeeds without touching the ledger.
func (TransferEngine) Donate(ctx context.Context, tx port.LedgerTx, from domain.Address, campaign *domain.Account, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if from == campaign.Address {
		return fmt.Errorf("%w: source and destination are the same account", domain.ErrTransferFailure)
	}
	src, err := tx.GetAccount(ctx, from)
	if err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("%w: %s holds no lamports", domain.ErrInsufficientFunds, from)
	}
	if len(src.Data) > 0 {
		return fmt.Errorf("%w: source %s carries data", domain.ErrTransferFailure, from)
	}
	if src.Lamports < amount {
		return fmt.Errorf("%w: balance %d, requested %d", domain.ErrInsufficientFunds, src.Lamports, amount)
	}
	if err = tx.Debit(ctx, from, amount); err != nil {
		return err
	}
	if err = tx.Credit(ctx, campaign.Address, amount); err != nil {
		return err
	}
	campaign.Lamports += amount
	return nil
}

// Withdraw moves amount from campaign to the wallet at to, leaving at least
// the reserve floor for the campaign's allocation behind.
func (TransferEngine) Withdraw(ctx context.Context, tx port.LedgerTx, campaign *domain.Account, to domain.Address, amount uint64) error {
	floor := tx.MinimumBalance(campaign.Space)
	if campaign.Lamports < floor || campaign.Lamports-floor < amount {
		var available uint64
		if campaign.Lamports > floor {
			available = campaign.Lamports - floor
		}
		return fmt.Errorf("%w: %d withdrawable above reserve floor %d, requested %d",
			domain.ErrInsufficientFunds, available, floor, amount)
	}
	if amount == 0 {
		return nil
	}
	if err := tx.Debit(ctx, campaign.Address, amount); err != nil {
		return err
	}
	if err := tx.Credit(ctx, to, amount); err != nil {
		return err
	}
	campaign.Lamports -= amount
	return nil
}
