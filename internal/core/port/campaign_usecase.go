package port

import (
	"context"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

// CampaignUseCase defines the business operations of the campaign custody
// core. This interface is the primary port into the application domain.
type CampaignUseCase interface {
	// Create initialises a campaign owned by caller at the address derived
	// from the configured seed tag and caller's key. The caller pays for
	// the allocation. It fails with domain.ErrDuplicateAccount when the
	// caller already has a campaign.
	Create(ctx context.Context, caller domain.PublicKey, name, description string) (*Receipt, error)

	// Donate moves amount lamports from caller's wallet to the campaign and
	// adds it to the campaign's lifetime total. Anyone may donate. A zero
	// amount succeeds without changing anything.
	Donate(ctx context.Context, caller domain.PublicKey, campaign domain.Address, amount uint64) (*Receipt, error)

	// Withdraw moves amount lamports from the campaign to caller, who must
	// be the campaign admin. The campaign keeps at least its reserve floor.
	// The lifetime total is not reduced.
	Withdraw(ctx context.Context, caller domain.PublicKey, campaign domain.Address, amount uint64) (*Receipt, error)

	// GetCampaign returns the campaign stored at addr with its balance.
	GetCampaign(ctx context.Context, addr domain.Address) (*CampaignInfo, error)

	// ListCampaigns returns every campaign on the ledger ordered by address.
	ListCampaigns(ctx context.Context) ([]CampaignInfo, error)

	// GetBalance returns the lamports held at addr. Unknown addresses hold
	// zero.
	GetBalance(ctx context.Context, addr domain.Address) (uint64, error)
}

// CampaignInfo pairs a campaign record with the balance of its account.
type CampaignInfo struct {
	Campaign     domain.Campaign `json:"campaign"`
	Balance      uint64          `json:"balance"`
	ReserveFloor uint64          `json:"reserve_floor"`
}

// Receipt describes the state left behind by a successful operation.
type Receipt struct {
	ID            uuid.UUID       `json:"id"`
	Campaign      domain.Campaign `json:"campaign"`
	Balance       uint64          `json:"campaign_balance"`
	SignerBalance uint64          `json:"signer_balance"`
}
