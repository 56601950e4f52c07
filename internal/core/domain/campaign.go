package domain

import "math/bits"

// Campaign is the record stored in a campaign account. Admin, Name and
// Description are fixed at creation. AmountDonated counts lifetime
// contributions and is never reduced by withdrawals, so it can diverge
// from the account balance.
type Campaign struct {
	// Address is where the record lives. It is derived, not persisted.
	Address       Address   `json:"address"`
	Admin         PublicKey `json:"admin"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	AmountDonated uint64    `json:"amount_donated"`
}

// NewCampaign initialises a record for admin. Storage must already be
// allocated by the caller; no authorization takes place here.
func NewCampaign(admin PublicKey, name, description string) *Campaign {
	return &Campaign{
		Admin:       admin,
		Name:        name,
		Description: description,
	}
}

// RecordDonation adds amount to the lifetime total. The counter is left
// untouched when the addition would overflow.
func (c *Campaign) RecordDonation(amount uint64) error {
	sum, carry := bits.Add64(c.AmountDonated, amount, 0)
	if carry != 0 {
		return ErrArithmeticOverflow
	}
	c.AmountDonated = sum
	return nil
}

// Authorize fails with ErrUnauthorized unless caller is the campaign admin.
func (c *Campaign) Authorize(caller PublicKey) error {
	if caller != c.Admin {
		return ErrUnauthorized
	}
	return nil
}
