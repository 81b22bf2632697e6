// Package namada talks to a Namada ledger node: ABCI queries over HTTP
// JSON-RPC and transaction broadcast with block events over WebSocket.
package namada

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/tokensend/internal/broadcast"
	"github.com/gabapcia/tokensend/internal/pkg/format"
	"github.com/gabapcia/tokensend/internal/pkg/transport/jsonrpc"

	"github.com/shopspring/decimal"
)

const (
	pathEpoch   = "/shell/epoch"
	pathBalance = "/shell/value/#:token/balance/#:owner"
	pathHasKey  = "/shell/has_key/#:address/?"
)

var (
	// ErrQueryFailed is returned when the node answers a query with a non-zero code.
	ErrQueryFailed = errors.New("abci query failed")

	// ErrMalformedValue is returned when a query value cannot be decoded.
	ErrMalformedValue = errors.New("malformed query value")
)

type abciQueryResult struct {
	Response struct {
		Code  uint32 `json:"code"`
		Log   string `json:"log"`
		Info  string `json:"info"`
		Value []byte `json:"value"`
	} `json:"response"`
}

// Client runs read-only queries against the node. Every call goes to the
// node; nothing is cached.
type Client struct {
	rpc jsonrpc.Client
}

// NewClient returns a Client using rpc.
func NewClient(rpc jsonrpc.Client) *Client {
	return &Client{rpc: rpc}
}

// QueryBalance returns the balance of owner in token, in display units. An
// owner without a balance entry has zero.
func (c *Client) QueryBalance(ctx context.Context, token, owner string) (decimal.Decimal, error) {
	value, err := c.query(ctx, format.Route(pathBalance, map[string]string{"token": token, "owner": owner}))
	if err != nil {
		return decimal.Zero, err
	}

	if len(value) == 0 {
		return decimal.Zero, nil
	}

	micro, err := decodeU64(value)
	if err != nil {
		return decimal.Zero, err
	}

	return format.AmountFromMicro(decimal.NewFromBigInt(new(big.Int).SetUint64(micro), 0)), nil
}

// QueryEpoch returns the current epoch.
func (c *Client) QueryEpoch(ctx context.Context) (uint64, error) {
	value, err := c.query(ctx, pathEpoch)
	if err != nil {
		return 0, err
	}

	return decodeU64(value)
}

// IsKnownAddress reports whether address exists on the ledger.
func (c *Client) IsKnownAddress(ctx context.Context, address string) (bool, error) {
	value, err := c.query(ctx, format.Route(pathHasKey, map[string]string{"address": address}))
	if err != nil {
		return false, err
	}

	switch {
	case len(value) == 0:
		return false, nil
	case len(value) == 1 && value[0] <= 1:
		return value[0] == 1, nil
	default:
		return false, fmt.Errorf("%w: expected a boolean, got %d bytes", ErrMalformedValue, len(value))
	}
}

func (c *Client) query(ctx context.Context, path string) ([]byte, error) {
	raw, err := c.rpc.Fetch(ctx, "abci_query", path, "", "0", false)
	if err != nil {
		return nil, fmt.Errorf("%w: abci_query %s: %w", broadcast.ErrNetwork, path, err)
	}

	var result abciQueryResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}

	if result.Response.Code != 0 {
		return nil, fmt.Errorf("%w: %s: code %d: %s", ErrQueryFailed, path, result.Response.Code, result.Response.Info)
	}

	return result.Response.Value, nil
}

func decodeU64(value []byte) (uint64, error) {
	if len(value) != 8 {
		return 0, fmt.Errorf("%w: expected 8 bytes, got %d", ErrMalformedValue, len(value))
	}
	return binary.LittleEndian.Uint64(value), nil
}
