package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// campaignDiscriminator prefixes every encoded campaign so that arbitrary
// account data is never mistaken for a record.
var campaignDiscriminator = func() [8]byte {
	sum := sha256.Sum256([]byte("account:Campaign"))
	var d [8]byte
	copy(d[:], sum[:8])
	return d
}()

// fixed part: discriminator, admin key, two length prefixes and the counter
const campaignFixedSize = 8 + KeySize + 4 + 4 + 8

// EncodedCampaignSize returns the number of bytes EncodeCampaign produces for c.
func EncodedCampaignSize(c *Campaign) int {
	return campaignFixedSize + len(c.Name) + len(c.Description)
}

// EncodeCampaign serialises c for an account with space bytes allocated.
// Layout, little-endian: discriminator, admin, u32-prefixed name, u32-prefixed
// description, u64 amount donated.
func EncodeCampaign(c *Campaign, space int) ([]byte, error) {
	size := EncodedCampaignSize(c)
	if size > space {
		return nil, fmt.Errorf("%w: %d bytes, capacity %d", ErrRecordTooLarge, size, space)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, campaignDiscriminator[:]...)
	buf = append(buf, c.Admin[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(c.Name)))
	buf = append(buf, c.Name...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(c.Description)))
	buf = append(buf, c.Description...)
	buf = binary.LittleEndian.AppendUint64(buf, c.AmountDonated)
	return buf, nil
}

// DecodeCampaign parses account data written by EncodeCampaign. Trailing
// bytes beyond the record are ignored since allocations are oversized.
func DecodeCampaign(addr Address, data []byte) (*Campaign, error) {
	if len(data) < campaignFixedSize || !bytes.Equal(data[:8], campaignDiscriminator[:]) {
		return nil, ErrNotCampaign
	}
	c := &Campaign{Address: addr}
	r := data[8:]
	copy(c.Admin[:], r[:KeySize])
	r = r[KeySize:]

	var ok bool
	if c.Name, r, ok = readString(r); !ok {
		return nil, fmt.Errorf("%w: truncated name", ErrNotCampaign)
	}
	if c.Description, r, ok = readString(r); !ok {
		return nil, fmt.Errorf("%w: truncated description", ErrNotCampaign)
	}
	if len(r) < 8 {
		return nil, fmt.Errorf("%w: truncated amount", ErrNotCampaign)
	}
	c.AmountDonated = binary.LittleEndian.Uint64(r)
	return c, nil
}

func readString(r []byte) (string, []byte, bool) {
	if len(r) < 4 {
		return "", r, false
	}
	n := binary.LittleEndian.Uint32(r)
	r = r[4:]
	if uint64(len(r)) < uint64(n) {
		return "", r, false
	}
	return string(r[:n]), r[n:], true
}
