// Package config loads the tokensend configuration from environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/tokensend/internal/extension"
	"github.com/gabapcia/tokensend/internal/pkg/validator"
	"github.com/gabapcia/tokensend/internal/token"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// ErrRedisAddrRequired is returned when the redis storage driver is selected
// without an address.
var ErrRedisAddrRequired = errors.New("REDIS_ADDR is required with the redis storage driver")

type LedgerConfig struct {
	RPCURL         string        `envconfig:"RPC_URL" default:"http://127.0.0.1:26657" validate:"required,url"`
	WSURL          string        `envconfig:"WS_URL" default:"ws://127.0.0.1:26657/websocket" validate:"required,url"`
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	RetryMax       int           `envconfig:"RETRY_MAX" default:"0" validate:"gte=0"`
	DialRetries    uint          `envconfig:"DIAL_RETRIES" default:"1" validate:"gte=1"`
	DialRetryDelay time.Duration `envconfig:"DIAL_RETRY_DELAY" default:"500ms"`
}

type ChainConfig struct {
	ID       string `envconfig:"ID" default:"internal-devnet" validate:"required"`
	Name     string `envconfig:"NAME" default:"Namada Devnet" validate:"required"`
	Protocol string `envconfig:"PROTOCOL" default:"http" validate:"oneof=http https"`
	Host     string `envconfig:"HOST" default:"127.0.0.1" validate:"required,hostname|ip"`
	Port     int    `envconfig:"PORT" default:"26657" validate:"gte=0,lte=65535"`
}

type SignerConfig struct {
	AgentURL string `envconfig:"AGENT_URL" validate:"omitempty,url"`
}

type AccountConfig struct {
	Alias      string     `envconfig:"ALIAS" default:"default" validate:"required"`
	Address    string     `envconfig:"ADDRESS" validate:"omitempty,bech32"`
	Token      token.Type `envconfig:"TOKEN" default:"NAM" validate:"required"`
	SigningKey string     `envconfig:"SIGNING_KEY" validate:"omitempty,hexadecimal"`
}

type StorageConfig struct {
	Driver string `envconfig:"DRIVER" default:"memory" validate:"oneof=memory redis"`
}

type RedisConfig struct {
	Addr     string `envconfig:"ADDR"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`

	KeyPrefix string `envconfig:"KEY_PREFIX" default:"tokensend"`
}

type TelemetryConfig struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"tokensend" validate:"required"`
}

// Config is the full application configuration.
type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"development" validate:"oneof=development production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Ledger    LedgerConfig    `envconfig:"LEDGER"`
	Chain     ChainConfig     `envconfig:"CHAIN"`
	Signer    SignerConfig    `envconfig:"SIGNER"`
	Account   AccountConfig   `envconfig:"ACCOUNT"`
	Storage   StorageConfig   `envconfig:"STORAGE"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	Telemetry TelemetryConfig `envconfig:"TELEMETRY"`

	// FiatRate is the fiat value of one token unit.
	FiatRate decimal.Decimal `envconfig:"FIAT_RATE" default:"0"`

	// TokenAddresses maps token types to their on-chain address,
	// e.g. "NAM:tnam1...,ATOM:tnam1...".
	TokenAddresses map[string]string `envconfig:"TOKEN_ADDRESSES"`
}

// DefaultEnvFile is read by Load when no env file is given.
const DefaultEnvFile = ".env"

// Load reads the configuration from the environment and validates it.
// Variables found in envFiles (DefaultEnvFile when none is given) are added
// to the environment first; variables already set take precedence and
// missing files are skipped.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the field constraints and the cross-field rules.
func (c Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	if c.Storage.Driver == StorageRedis && c.Redis.Addr == "" {
		return ErrRedisAddrRequired
	}

	if c.FiatRate.IsNegative() {
		return fmt.Errorf("FIAT_RATE must not be negative: %s", c.FiatRate)
	}

	return nil
}

// Development reports whether the application targets a development chain.
func (c Config) Development() bool {
	return c.AppEnv == EnvDevelopment
}

// Tokens builds the token registry with the configured addresses.
func (c Config) Tokens() (*token.Registry, error) {
	return token.NewRegistry(c.TokenAddresses)
}

// ExtensionChain builds the chain description advertised to the extension.
func (c Config) ExtensionChain(stake token.Token) extension.Chain {
	return extension.Chain{
		ID:          c.Chain.ID,
		Name:        c.Chain.Name,
		Protocol:    c.Chain.Protocol,
		Host:        c.Chain.Host,
		Port:        c.Chain.Port,
		Development: c.Development(),
		StakeToken:  stake,
	}
}
