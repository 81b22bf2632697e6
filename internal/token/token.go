// Package token holds the registry of transferable token types and their
// on-chain metadata.
package token

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknownType is returned when a token type is not in the registry.
var ErrUnknownType = errors.New("unknown token type")

// Type is the ticker-like key of a registered token, e.g. "NAM".
type Type string

const (
	NAM  Type = "NAM"
	ATOM Type = "ATOM"
	ETH  Type = "ETH"
	DOT  Type = "DOT"
	BTC  Type = "BTC"
)

// Token describes a registered token.
type Token struct {
	Type        Type
	Symbol      string
	CoinGeckoID string // price-feed identifier
	CoinType    uint32 // BIP-44 coin type
	Address     string // on-chain address of the token, set from configuration
}

// MinimalDenom returns the micro-unit denomination, e.g. "uatom".
func (t Token) MinimalDenom() string {
	return "u" + strings.ToLower(t.Symbol)
}

var defaults = map[Type]Token{
	NAM:  {Type: NAM, Symbol: "NAM", CoinGeckoID: "namada", CoinType: 877},
	ATOM: {Type: ATOM, Symbol: "ATOM", CoinGeckoID: "cosmos", CoinType: 118},
	ETH:  {Type: ETH, Symbol: "ETH", CoinGeckoID: "ethereum", CoinType: 60},
	DOT:  {Type: DOT, Symbol: "DOT", CoinGeckoID: "polkadot", CoinType: 354},
	BTC:  {Type: BTC, Symbol: "BTC", CoinGeckoID: "bitcoin", CoinType: 0},
}

// Registry resolves token types to their metadata. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	tokens map[Type]Token
}

// NewRegistry builds a Registry from the built-in token list, assigning the
// on-chain address of each type found in addresses. Keys are matched
// case-insensitively; unknown keys fail with ErrUnknownType.
func NewRegistry(addresses map[string]string) (*Registry, error) {
	tokens := maps.Clone(defaults)
	for key, addr := range addresses {
		typ := Type(strings.ToUpper(strings.TrimSpace(key)))
		tok, ok := tokens[typ]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownType, key)
		}
		tok.Address = addr
		tokens[typ] = tok
	}

	return &Registry{tokens: tokens}, nil
}

// Lookup returns the token registered under typ.
func (r *Registry) Lookup(typ Type) (Token, error) {
	tok, ok := r.tokens[Type(strings.ToUpper(string(typ)))]
	if !ok {
		return Token{}, fmt.Errorf("%w: %s", ErrUnknownType, typ)
	}
	return tok, nil
}

// List returns every registered token ordered by type.
func (r *Registry) List() []Token {
	keys := slices.Sorted(maps.Keys(r.tokens))
	out := make([]Token, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.tokens[k])
	}
	return out
}
