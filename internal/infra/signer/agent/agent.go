// Package agent reaches the signing extension through its local JSON-RPC
// agent. The agent exposes the extension methods one to one.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/tokensend/internal/extension"
	"github.com/gabapcia/tokensend/internal/pkg/transport/jsonrpc"
)

// Error codes returned by the agent in JSON-RPC error objects.
const (
	codeUserRejected = 4001
	codeUnknownChain = 4004
)

const (
	methodPing                     = "ping"
	methodEnable                   = "enable"
	methodGetKey                   = "getKey"
	methodGetOfflineSignerAuto     = "getOfflineSignerAuto"
	methodSignDirect               = "signDirect"
	methodExperimentalSuggestChain = "experimentalSuggestChain"
)

// Locator finds the agent by pinging it on every lookup.
type Locator struct {
	rpc jsonrpc.Client
}

var _ extension.Locator = (*Locator)(nil)

// NewLocator returns a Locator for the agent behind rpc.
func NewLocator(rpc jsonrpc.Client) *Locator {
	return &Locator{rpc: rpc}
}

// Locate implements extension.Locator. An agent that does not answer the
// ping is reported as extension.ErrExtensionNotFound.
func (l *Locator) Locate(ctx context.Context) (extension.Extension, error) {
	if _, err := l.rpc.Fetch(ctx, methodPing); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", extension.ErrExtensionNotFound, err)
	}

	return &client{rpc: l.rpc}, nil
}

type client struct {
	rpc jsonrpc.Client
}

var _ extension.Extension = (*client)(nil)

func (c *client) Enable(ctx context.Context, chainID string) error {
	_, err := c.call(ctx, methodEnable, chainID)
	return err
}

func (c *client) GetKey(ctx context.Context, chainID string) (extension.Key, error) {
	raw, err := c.call(ctx, methodGetKey, chainID)
	if err != nil {
		return extension.Key{}, err
	}

	var key extension.Key
	if err := json.Unmarshal(raw, &key); err != nil {
		return extension.Key{}, err
	}
	return key, nil
}

// GetOfflineSignerAuto asks the agent for a signer of chainID. The agent
// answers with the signing mode it picked; only "direct" is supported.
func (c *client) GetOfflineSignerAuto(ctx context.Context, chainID string) (extension.OfflineSigner, error) {
	raw, err := c.call(ctx, methodGetOfflineSignerAuto, chainID)
	if err != nil {
		return nil, err
	}

	var result struct {
		Mode string `json:"mode"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	if result.Mode != "" && result.Mode != "direct" {
		return nil, fmt.Errorf("unsupported signing mode %q", result.Mode)
	}

	return &offlineSigner{client: c, chainID: chainID}, nil
}

func (c *client) ExperimentalSuggestChain(ctx context.Context, info extension.ChainInfo) error {
	_, err := c.call(ctx, methodExperimentalSuggestChain, info)
	return err
}

func (c *client) call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	raw, err := c.rpc.Fetch(ctx, method, params...)
	if err != nil {
		return nil, mapError(method, err)
	}
	return raw, nil
}

// mapError turns agent error codes into the extension error taxonomy.
func mapError(method string, err error) error {
	var providerErr *jsonrpc.ProviderError
	if !errors.As(err, &providerErr) {
		return err
	}

	switch providerErr.Code {
	case codeUserRejected:
		return fmt.Errorf("%w: %s: %s", extension.ErrExtensionRejected, method, providerErr.Message)
	case codeUnknownChain:
		return fmt.Errorf("%w: %s", extension.ErrUnknownChain, providerErr.Message)
	default:
		return fmt.Errorf("%s: %w", method, err)
	}
}

type offlineSigner struct {
	client  *client
	chainID string
}

var _ extension.OfflineSigner = (*offlineSigner)(nil)

func (s *offlineSigner) SignDirect(ctx context.Context, signerAddress string, doc []byte) (extension.DirectSignature, error) {
	raw, err := s.client.call(ctx, methodSignDirect, s.chainID, signerAddress, doc)
	if err != nil {
		return extension.DirectSignature{}, err
	}

	var sig extension.DirectSignature
	if err := json.Unmarshal(raw, &sig); err != nil {
		return extension.DirectSignature{}, err
	}
	return sig, nil
}
