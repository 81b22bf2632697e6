// Package address validates and encodes the bech32 account addresses used by
// the ledger. Both bech32 and bech32m checksums are accepted on decode, and no
// length limit is applied since established addresses exceed 90 characters.
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// ErrPrefixMismatch is returned when an address carries an unexpected human-readable part.
var ErrPrefixMismatch = errors.New("address prefix mismatch")

// Address is a decoded bech32 address.
type Address struct {
	Prefix string // human-readable part, e.g. "atest" or "namada"
	Data   []byte // payload bytes (8-bit groups)
}

// Decode parses a bech32 address and returns its prefix and payload.
func Decode(addr string) (Address, error) {
	hrp, data, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return Address{}, fmt.Errorf("invalid bech32 address: %w", err)
	}

	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("invalid bech32 payload: %w", err)
	}

	return Address{Prefix: hrp, Data: payload}, nil
}

// Encode builds a bech32 address from a prefix and payload bytes.
func Encode(prefix string, data []byte) (string, error) {
	words, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}

	return bech32.Encode(prefix, words)
}

// IsValid reports whether addr is a well-formed bech32 address.
func IsValid(addr string) bool {
	_, err := Decode(addr)
	return err == nil
}

// Expect decodes addr and checks its prefix against want.
func Expect(addr, want string) (Address, error) {
	a, err := Decode(addr)
	if err != nil {
		return Address{}, err
	}

	if !strings.EqualFold(a.Prefix, want) {
		return Address{}, fmt.Errorf("%w: got %q, want %q", ErrPrefixMismatch, a.Prefix, want)
	}

	return a, nil
}
