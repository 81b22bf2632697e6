// Package transfer builds signed token transfer transactions ready to be
// broadcast to the ledger.
package transfer

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/tokensend/internal/pkg/validator"

	"github.com/google/uuid"
)

// Request describes a single transfer. It is built per submission and never
// persisted. Amount is expressed in micro units.
type Request struct {
	Source     string `validate:"required,bech32"`
	Target     string `validate:"required,bech32"`
	Token      string `validate:"required,bech32"`
	Amount     int64  `validate:"gt=0"`
	Epoch      uint64
	SigningKey string
}

// SignedTransfer is a serialized, signed transaction and its identifier.
type SignedTransfer struct {
	Hash  string // upper-case hex SHA-256 of Bytes
	Bytes []byte
}

// Payload is the signed body of a transfer. Field order is fixed so the JSON
// encoding is canonical.
type Payload struct {
	ChainID   string `json:"chain_id"`
	Source    string `json:"source"`
	Target    string `json:"target"`
	Token     string `json:"token"`
	Amount    int64  `json:"amount"`
	Epoch     uint64 `json:"epoch"`
	Nonce     string `json:"nonce"`
	Timestamp int64  `json:"timestamp"`
}

// envelope is the wire form of a signed transfer.
type envelope struct {
	Data      string `json:"data"`
	PubKey    string `json:"pub_key"`
	Signature string `json:"signature"`
}

// Builder constructs signed transfers.
type Builder interface {
	Build(ctx context.Context, req Request) (SignedTransfer, error)
}

type builder struct {
	chainID string
	signer  Signer
	now     func() time.Time
	nonce   func() string
}

var _ Builder = (*builder)(nil)

// Build validates req, signs its payload and returns the serialized
// transaction. Every call draws a fresh nonce, so two builds of the same
// request produce two distinct, independently valid transactions.
func (b *builder) Build(ctx context.Context, req Request) (SignedTransfer, error) {
	if err := validator.Validate(req); err != nil {
		return SignedTransfer{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	payload, err := json.Marshal(Payload{
		ChainID:   b.chainID,
		Source:    req.Source,
		Target:    req.Target,
		Token:     req.Token,
		Amount:    req.Amount,
		Epoch:     req.Epoch,
		Nonce:     b.nonce(),
		Timestamp: b.now().UnixMilli(),
	})
	if err != nil {
		return SignedTransfer{}, err
	}

	sig, err := b.signer.Sign(ctx, req, payload)
	if err != nil {
		return SignedTransfer{}, &SigningError{Err: err}
	}

	raw, err := json.Marshal(envelope{
		Data:      hex.EncodeToString(payload),
		PubKey:    hex.EncodeToString(sig.PubKey),
		Signature: hex.EncodeToString(sig.Signature),
	})
	if err != nil {
		return SignedTransfer{}, err
	}

	return SignedTransfer{Hash: Hash(raw), Bytes: raw}, nil
}

// Hash returns the transaction identifier of raw: the upper-case hex SHA-256.
func Hash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Verify decodes a serialized transfer and checks its signature.
func Verify(raw []byte) (Payload, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Payload{}, err
	}

	data, err := hex.DecodeString(env.Data)
	if err != nil {
		return Payload{}, err
	}
	pub, err := hex.DecodeString(env.PubKey)
	if err != nil {
		return Payload{}, err
	}
	sig, err := hex.DecodeString(env.Signature)
	if err != nil {
		return Payload{}, err
	}

	if len(pub) != ed25519.PublicKeySize || !ed25519.Verify(pub, data, sig) {
		return Payload{}, ErrInvalidSignature
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, err
	}
	return p, nil
}

type config struct {
	signer Signer
	now    func() time.Time
	nonce  func() string
}

// Option configures a Builder.
type Option func(*config)

// New returns a Builder for chainID. By default transfers are signed with
// KeySigner and nonces are random UUIDs.
func New(chainID string, opts ...Option) *builder {
	cfg := config{
		signer: KeySigner{},
		now:    time.Now,
		nonce:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &builder{
		chainID: chainID,
		signer:  cfg.signer,
		now:     cfg.now,
		nonce:   cfg.nonce,
	}
}

// WithSigner replaces the default KeySigner.
func WithSigner(s Signer) Option {
	return func(c *config) {
		c.signer = s
	}
}

// WithClock overrides the clock used for payload timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithNonce overrides the nonce generator.
func WithNonce(f func() string) Option {
	return func(c *config) {
		c.nonce = f
	}
}
