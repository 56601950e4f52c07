package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/metrics"
)

// Params fixes how campaign accounts are addressed and sized.
type Params struct {
	// SeedTag is mixed into every derived campaign address.
	SeedTag string
	// ProgramID namespaces derived addresses per deployment.
	ProgramID string
	// AccountSpace is the fixed allocation, in bytes, of each campaign
	// account. It is oversized so the variable-length text fields fit.
	AccountSpace int
}

// CampaignUseCase implements port.CampaignUseCase on top of a host ledger.
// Every operation runs as one ledger unit of work, so a failure at any step
// leaves no partial change behind.
type CampaignUseCase struct {
	ledger   port.Ledger
	params   Params
	transfer TransferEngine
	logger   *slog.Logger
	metrics  *metrics.Operations
}

// NewCampaignUseCase creates a use case over ledger. logger and m may be nil.
func NewCampaignUseCase(ledger port.Ledger, params Params, logger *slog.Logger, m *metrics.Operations) *CampaignUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CampaignUseCase{ledger: ledger, params: params, logger: logger, metrics: m}
}

// CampaignAddress returns the derived address of owner's campaign.
func (u *CampaignUseCase) CampaignAddress(owner domain.PublicKey) domain.Address {
	return domain.DeriveAddress(u.params.SeedTag, owner, u.params.ProgramID)
}

// Create allocates owner's campaign account and writes a fresh record.
func (u *CampaignUseCase) Create(ctx context.Context, caller domain.PublicKey, name, description string) (receipt *port.Receipt, err error) {
	defer func() { u.observe(ctx, "create", receipt, 0, err) }()

	c := domain.NewCampaign(caller, name, description)
	c.Address = u.CampaignAddress(caller)
	data, err := domain.EncodeCampaign(c, u.params.AccountSpace)
	if err != nil {
		return nil, err
	}

	err = u.ledger.Atomically(ctx, func(tx port.LedgerTx) error {
		acc, err := tx.Allocate(ctx, c.Address, u.params.AccountSpace, caller.Address())
		if err != nil {
			return err
		}
		if err = tx.WriteData(ctx, c.Address, data); err != nil {
			return err
		}
		receipt, err = u.receipt(ctx, tx, caller, c, acc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Donate transfers amount from caller into the campaign and records it in
// the lifetime total.
func (u *CampaignUseCase) Donate(ctx context.Context, caller domain.PublicKey, campaign domain.Address, amount uint64) (receipt *port.Receipt, err error) {
	defer func() { u.observe(ctx, "donate", receipt, amount, err) }()

	err = u.ledger.Atomically(ctx, func(tx port.LedgerTx) error {
		c, acc, err := loadCampaign(ctx, tx, campaign)
		if err != nil {
			return err
		}
		if err = u.transfer.Donate(ctx, tx, caller.Address(), acc, amount); err != nil {
			return err
		}
		if err = c.RecordDonation(amount); err != nil {
			return err
		}
		data, err := domain.EncodeCampaign(c, acc.Space)
		if err != nil {
			return err
		}
		if err = tx.WriteData(ctx, campaign, data); err != nil {
			return err
		}
		receipt, err = u.receipt(ctx, tx, caller, c, acc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Withdraw transfers amount from the campaign to its admin.
func (u *CampaignUseCase) Withdraw(ctx context.Context, caller domain.PublicKey, campaign domain.Address, amount uint64) (receipt *port.Receipt, err error) {
	defer func() { u.observe(ctx, "withdraw", receipt, amount, err) }()

	err = u.ledger.Atomically(ctx, func(tx port.LedgerTx) error {
		c, acc, err := loadCampaign(ctx, tx, campaign)
		if err != nil {
			return err
		}
		if err = c.Authorize(caller); err != nil {
			return err
		}
		if err = u.transfer.Withdraw(ctx, tx, acc, caller.Address(), amount); err != nil {
			return err
		}
		receipt, err = u.receipt(ctx, tx, caller, c, acc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetCampaign returns the campaign stored at addr.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, addr domain.Address) (*port.CampaignInfo, error) {
	var info *port.CampaignInfo
	err := u.ledger.Atomically(ctx, func(tx port.LedgerTx) error {
		c, acc, err := loadCampaign(ctx, tx, addr)
		if err != nil {
			return err
		}
		info = &port.CampaignInfo{
			Campaign:     *c,
			Balance:      acc.Lamports,
			ReserveFloor: tx.MinimumBalance(acc.Space),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ListCampaigns scans the ledger for accounts holding campaign records.
// Accounts with other data are skipped.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]port.CampaignInfo, error) {
	var out []port.CampaignInfo
	err := u.ledger.Atomically(ctx, func(tx port.LedgerTx) error {
		accounts, err := tx.ListAccounts(ctx)
		if err != nil {
			return err
		}
		out = make([]port.CampaignInfo, 0, len(accounts))
		for _, acc := range accounts {
			c, err := domain.DecodeCampaign(acc.Address, acc.Data)
			if errors.Is(err, domain.ErrNotCampaign) {
				continue
			}
			if err != nil {
				return err
			}
			out = append(out, port.CampaignInfo{
				Campaign:     *c,
				Balance:      acc.Lamports,
				ReserveFloor: tx.MinimumBalance(acc.Space),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetBalance returns the lamports held at addr.
func (u *CampaignUseCase) GetBalance(ctx context.Context, addr domain.Address) (uint64, error) {
	var balance uint64
	err := u.ledger.Atomically(ctx, func(tx port.LedgerTx) error {
		acc, err := tx.GetAccount(ctx, addr)
		if err != nil {
			return err
		}
		if acc != nil {
			balance = acc.Lamports
		}
		return nil
	})
	return balance, err
}

func loadCampaign(ctx context.Context, tx port.LedgerTx, addr domain.Address) (*domain.Campaign, *domain.Account, error) {
	acc, err := tx.GetAccount(ctx, addr)
	if err != nil {
		return nil, nil, err
	}
	if acc == nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, addr)
	}
	c, err := domain.DecodeCampaign(addr, acc.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", addr, err)
	}
	return c, acc, nil
}

func (u *CampaignUseCase) receipt(ctx context.Context, tx port.LedgerTx, signer domain.PublicKey, c *domain.Campaign, acc *domain.Account) (*port.Receipt, error) {
	wallet, err := tx.GetAccount(ctx, signer.Address())
	if err != nil {
		return nil, err
	}
	r := &port.Receipt{
		ID:       uuid.New(),
		Campaign: *c,
		Balance:  acc.Lamports,
	}
	if wallet != nil {
		r.SignerBalance = wallet.Lamports
	}
	return r, nil
}

func (u *CampaignUseCase) observe(ctx context.Context, op string, receipt *port.Receipt, amount uint64, err error) {
	u.metrics.Observe(op, amount, err)
	if err != nil {
		u.logger.WarnContext(ctx, "campaign operation failed",
			slog.String("op", op),
			slog.String("code", domain.ErrorCode(err)),
			slog.Any("error", err))
		return
	}
	u.logger.InfoContext(ctx, "campaign operation applied",
		slog.String("op", op),
		slog.String("id", receipt.ID.String()),
		slog.String("campaign", receipt.Campaign.Address.String()),
		slog.Uint64("amount", amount),
		slog.Uint64("balance", receipt.Balance))
}
