package domain

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// KeySize is the width in bytes of public keys and account addresses.
const KeySize = 32

// PublicKey is an ed25519 public key identifying a signer.
type PublicKey [KeySize]byte

// Address locates an account on the host ledger. Wallet accounts are
// addressed by their owner's public key; campaign accounts by a derived
// address (see DeriveAddress).
type Address [KeySize]byte

// String returns the lowercase hex encoding of the key.
func (k PublicKey) String() string { return hex.EncodeToString(k[:]) }

// Address returns the wallet address controlled by k.
func (k PublicKey) Address() Address { return Address(k) }

// String returns the lowercase hex encoding of the address.
func (a Address) String() string { return hex.EncodeToString(a[:]) }

// IsZero reports whether a is the all-zero address.
func (a Address) IsZero() bool { return a == Address{} }

// MarshalText implements encoding.TextMarshaler so keys render as hex in JSON.
func (k PublicKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// MarshalText implements encoding.TextMarshaler so addresses render as hex in JSON.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PublicKey) UnmarshalText(text []byte) error {
	v, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	v, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParsePublicKey decodes a hex encoded public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var k PublicKey
	if err := decodeHex32(s, k[:]); err != nil {
		return k, fmt.Errorf("public key: %w", err)
	}
	return k, nil
}

// ParseAddress decodes a hex encoded address.
func ParseAddress(s string) (Address, error) {
	var a Address
	if err := decodeHex32(s, a[:]); err != nil {
		return a, fmt.Errorf("address: %w", err)
	}
	return a, nil
}

func decodeHex32(s string, dst []byte) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if len(b) != KeySize {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidArgument, KeySize, len(b))
	}
	copy(dst, b)
	return nil
}

// DeriveAddress computes the storage address of the account owned by owner
// under seedTag. The result is a pure function of its inputs. The seed tag is
// length-prefixed so that no two distinct (seedTag, owner) pairs hash the
// same preimage, and programID namespaces deployments sharing one ledger.
func DeriveAddress(seedTag string, owner PublicKey, programID string) Address {
	h, _ := blake2b.New256(nil) // only errors on oversized keys
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(seedTag)))
	h.Write(n[:])
	h.Write([]byte(seedTag))
	h.Write(owner[:])
	h.Write([]byte(programID))

	var a Address
	copy(a[:], h.Sum(nil))
	return a
}
