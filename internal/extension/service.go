package extension

import (
	"context"
	"errors"

	"github.com/gabapcia/tokensend/internal/pkg/logger"
	"github.com/gabapcia/tokensend/internal/transfer"
)

// ChainStatus is the result of HasChain.
type ChainStatus int

const (
	ChainNotFound ChainStatus = iota
	ChainFound
	ExtensionAbsent
)

func (s ChainStatus) String() string {
	switch s {
	case ChainFound:
		return "found"
	case ExtensionAbsent:
		return "extension absent"
	default:
		return "not found"
	}
}

// Service exposes the extension for the configured chain.
type Service interface {
	IsInstalled(ctx context.Context) bool
	HasChain(ctx context.Context) (ChainStatus, error)
	Enable(ctx context.Context) error
	GetKey(ctx context.Context) (Key, error)
	SuggestChain(ctx context.Context) error
	Signer() transfer.Signer
}

type service struct {
	locator Locator
	chain   Chain
}

var _ Service = (*service)(nil)

// IsInstalled reports whether the extension can be reached right now.
func (s *service) IsInstalled(ctx context.Context) bool {
	_, err := s.locator.Locate(ctx)
	return err == nil
}

// HasChain reports whether the extension knows the chain. An extension that
// answers with ErrUnknownChain yields ChainNotFound rather than an error.
func (s *service) HasChain(ctx context.Context) (ChainStatus, error) {
	ext, err := s.locator.Locate(ctx)
	if errors.Is(err, ErrExtensionNotFound) {
		return ExtensionAbsent, nil
	}
	if err != nil {
		return ChainNotFound, err
	}

	if _, err := ext.GetOfflineSignerAuto(ctx, s.chain.ID); err != nil {
		if errors.Is(err, ErrUnknownChain) {
			logger.Debug(ctx, "chain not registered in extension", "chain.id", s.chain.ID)
			return ChainNotFound, nil
		}
		return ChainNotFound, err
	}

	return ChainFound, nil
}

func (s *service) Enable(ctx context.Context) error {
	ext, err := s.locator.Locate(ctx)
	if err != nil {
		return err
	}
	return ext.Enable(ctx, s.chain.ID)
}

func (s *service) GetKey(ctx context.Context) (Key, error) {
	ext, err := s.locator.Locate(ctx)
	if err != nil {
		return Key{}, err
	}
	return ext.GetKey(ctx, s.chain.ID)
}

// SuggestChain registers the chain with the extension.
func (s *service) SuggestChain(ctx context.Context) error {
	ext, err := s.locator.Locate(ctx)
	if err != nil {
		return err
	}

	info := NewChainInfo(s.chain)
	if err := ext.ExperimentalSuggestChain(ctx, info); err != nil {
		return err
	}

	logger.Info(ctx, "chain suggested to extension", "chain.id", info.ChainID, "chain.bech32_prefix", info.Bech32Config.Bech32PrefixAccAddr)
	return nil
}

// Signer returns a transfer.Signer that delegates to the extension's offline
// signer for the transfer source account.
func (s *service) Signer() transfer.Signer {
	return signer{s: s}
}

type signer struct {
	s *service
}

func (sg signer) Sign(ctx context.Context, req transfer.Request, payload []byte) (transfer.Signature, error) {
	ext, err := sg.s.locator.Locate(ctx)
	if err != nil {
		return transfer.Signature{}, err
	}

	offline, err := ext.GetOfflineSignerAuto(ctx, sg.s.chain.ID)
	if err != nil {
		return transfer.Signature{}, err
	}

	sig, err := offline.SignDirect(ctx, req.Source, payload)
	if err != nil {
		return transfer.Signature{}, err
	}

	return transfer.Signature{PubKey: sig.PubKey, Signature: sig.Signature}, nil
}

// New returns a Service for chain using locator to find the extension.
func New(locator Locator, chain Chain) *service {
	return &service{
		locator: locator,
		chain:   chain,
	}
}
