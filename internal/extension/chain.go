package extension

import (
	"fmt"

	"github.com/gabapcia/tokensend/internal/token"
)

const (
	// restPort is the port of the node REST API advertised to the extension.
	restPort = 1317

	bech32PrefixMainnet = "namada"
	bech32PrefixTestnet = "atest"

	currencyDecimals = 6
)

// Chain describes the ledger the wallet is connected to.
type Chain struct {
	ID          string
	Name        string
	Protocol    string // "http" or "https"
	Host        string
	Port        int // omitted from the RPC URL when zero
	Development bool
	StakeToken  token.Token
}

// RPCURL returns the node RPC endpoint.
func (c Chain) RPCURL() string {
	if c.Port == 0 {
		return fmt.Sprintf("%s://%s", c.Protocol, c.Host)
	}
	return fmt.Sprintf("%s://%s:%d", c.Protocol, c.Host, c.Port)
}

// RESTURL returns the node REST endpoint.
func (c Chain) RESTURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Protocol, c.Host, restPort)
}

// Bech32Prefix returns the account address prefix of the chain.
func (c Chain) Bech32Prefix() string {
	if c.Development {
		return bech32PrefixTestnet
	}
	return bech32PrefixMainnet
}

// ChainInfo is the chain registration document understood by the extension.
type ChainInfo struct {
	RPC           string       `json:"rpc"`
	REST          string       `json:"rest"`
	ChainID       string       `json:"chainId"`
	ChainName     string       `json:"chainName"`
	StakeCurrency Currency     `json:"stakeCurrency"`
	BIP44         BIP44        `json:"bip44"`
	Bech32Config  Bech32Config `json:"bech32Config"`
	Currencies    []Currency   `json:"currencies"`
	FeeCurrencies []Currency   `json:"feeCurrencies"`
	GasPriceStep  GasPriceStep `json:"gasPriceStep"`
}

type Currency struct {
	CoinDenom        string `json:"coinDenom"`
	CoinMinimalDenom string `json:"coinMinimalDenom"`
	CoinDecimals     int    `json:"coinDecimals"`
	CoinGeckoID      string `json:"coinGeckoId,omitempty"`
}

type BIP44 struct {
	CoinType uint32 `json:"coinType"`
}

type Bech32Config struct {
	Bech32PrefixAccAddr  string `json:"bech32PrefixAccAddr"`
	Bech32PrefixAccPub   string `json:"bech32PrefixAccPub"`
	Bech32PrefixValAddr  string `json:"bech32PrefixValAddr"`
	Bech32PrefixValPub   string `json:"bech32PrefixValPub"`
	Bech32PrefixConsAddr string `json:"bech32PrefixConsAddr"`
	Bech32PrefixConsPub  string `json:"bech32PrefixConsPub"`
}

type GasPriceStep struct {
	Low     float64 `json:"low"`
	Average float64 `json:"average"`
	High    float64 `json:"high"`
}

// NewChainInfo builds the registration document for c.
func NewChainInfo(c Chain) ChainInfo {
	prefix := c.Bech32Prefix()

	currency := Currency{
		CoinDenom:        c.StakeToken.Symbol,
		CoinMinimalDenom: c.StakeToken.MinimalDenom(),
		CoinDecimals:     currencyDecimals,
		CoinGeckoID:      c.StakeToken.CoinGeckoID,
	}

	return ChainInfo{
		RPC:           c.RPCURL(),
		REST:          c.RESTURL(),
		ChainID:       c.ID,
		ChainName:     c.Name,
		StakeCurrency: currency,
		BIP44:         BIP44{CoinType: c.StakeToken.CoinType},
		Bech32Config: Bech32Config{
			Bech32PrefixAccAddr:  prefix,
			Bech32PrefixAccPub:   prefix + "pub",
			Bech32PrefixValAddr:  prefix + "valoper",
			Bech32PrefixValPub:   prefix + "valoperpub",
			Bech32PrefixConsAddr: prefix + "valcons",
			Bech32PrefixConsPub:  prefix + "valconspub",
		},
		Currencies:    []Currency{currency},
		FeeCurrencies: []Currency{currency},
		GasPriceStep:  GasPriceStep{Low: 0.01, Average: 0.025, High: 0.03},
	}
}
