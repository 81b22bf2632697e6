package transfer

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"
)

// Signature is the result of signing a transfer payload.
type Signature struct {
	PubKey    []byte
	Signature []byte
}

// Signer signs serialized transfer payloads.
type Signer interface {
	Sign(ctx context.Context, req Request, payload []byte) (Signature, error)
}

// KeySigner signs with the ed25519 key carried by Request.SigningKey. The key
// is either a 32 byte seed or a 64 byte private key, hex encoded.
type KeySigner struct{}

var _ Signer = KeySigner{}

// Sign implements Signer.
func (KeySigner) Sign(_ context.Context, req Request, payload []byte) (Signature, error) {
	key, err := ParseSigningKey(req.SigningKey)
	if err != nil {
		return Signature{}, err
	}

	return Signature{
		PubKey:    key.Public().(ed25519.PublicKey),
		Signature: ed25519.Sign(key, payload),
	}, nil
}

// ParseSigningKey decodes a hex encoded ed25519 seed or private key.
func ParseSigningKey(s string) (ed25519.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, ErrMissingSigningKey
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSigningKey, err)
	}

	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(raw), nil
	default:
		return nil, fmt.Errorf("%w: expected %d or %d bytes, got %d",
			ErrMalformedSigningKey, ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}
}
