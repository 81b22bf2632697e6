// Package extension adapts an external signing extension: capability checks,
// chain registration, key retrieval and transfer signing.
//
// The extension is looked up on every call through a Locator, so it may be
// installed or removed while the wallet runs. When it is absent every
// operation fails with ErrExtensionNotFound.
package extension

import (
	"context"
	"errors"
)

var (
	// ErrExtensionNotFound is returned when no extension can be reached.
	ErrExtensionNotFound = errors.New("extension not found")

	// ErrExtensionRejected is returned when the user or the extension declines an action.
	ErrExtensionRejected = errors.New("extension rejected the request")

	// ErrUnknownChain is returned by an extension that has no entry for the chain.
	ErrUnknownChain = errors.New("chain not registered in extension")
)

// Key is the account key the extension exposes for a chain.
type Key struct {
	Name          string `json:"name"`
	Algo          string `json:"algo"`
	PubKey        []byte `json:"pubKey"`
	Address       []byte `json:"address"`
	Bech32Address string `json:"bech32Address"`
	IsNanoLedger  bool   `json:"isNanoLedger"`
}

// DirectSignature is a signature produced by an OfflineSigner.
type DirectSignature struct {
	PubKey    []byte `json:"pubKey"`
	Signature []byte `json:"signature"`
}

// OfflineSigner signs documents for one chain without broadcasting them.
type OfflineSigner interface {
	SignDirect(ctx context.Context, signerAddress string, doc []byte) (DirectSignature, error)
}

// Extension is the surface of the signing extension used by the wallet.
type Extension interface {
	Enable(ctx context.Context, chainID string) error
	GetKey(ctx context.Context, chainID string) (Key, error)
	GetOfflineSignerAuto(ctx context.Context, chainID string) (OfflineSigner, error)
	ExperimentalSuggestChain(ctx context.Context, info ChainInfo) error
}

// Locator finds the extension. It returns ErrExtensionNotFound when absent.
type Locator interface {
	Locate(ctx context.Context) (Extension, error)
}

type absent struct{}

func (absent) Locate(context.Context) (Extension, error) {
	return nil, ErrExtensionNotFound
}

// Absent is a Locator for environments without an extension.
func Absent() Locator {
	return absent{}
}
