package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/tokensend/internal/broadcast"
	"github.com/gabapcia/tokensend/internal/config"
	"github.com/gabapcia/tokensend/internal/extension"
	"github.com/gabapcia/tokensend/internal/handlers/cli"
	"github.com/gabapcia/tokensend/internal/infra/ledger/namada"
	"github.com/gabapcia/tokensend/internal/infra/signer/agent"
	"github.com/gabapcia/tokensend/internal/infra/storage/memory"
	"github.com/gabapcia/tokensend/internal/infra/storage/redis"
	"github.com/gabapcia/tokensend/internal/pkg/format"
	"github.com/gabapcia/tokensend/internal/pkg/logger"
	"github.com/gabapcia/tokensend/internal/pkg/resilience/retry"
	"github.com/gabapcia/tokensend/internal/pkg/telemetry"
	httpclient "github.com/gabapcia/tokensend/internal/pkg/transport/http"
	"github.com/gabapcia/tokensend/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/tokensend/internal/sendflow"
	"github.com/gabapcia/tokensend/internal/transfer"
)

// store is a storage backend serving both balances and the transaction log.
type store interface {
	sendflow.BalanceStore
	sendflow.TransactionLog
	io.Closer
}

func newStore(ctx context.Context, cfg config.Config) (store, error) {
	if cfg.Storage.Driver == config.StorageRedis {
		return redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithKeyPrefix(cfg.Redis.KeyPrefix),
		)
	}
	return memory.New(), nil
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdown := telemetry.ShutdownFunc(telemetry.Nop)
	if cfg.Telemetry.Enabled {
		if shutdown, err = telemetry.Init(ctx, cfg.Telemetry.ServiceName); err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
	}
	defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()

	// Stdout carries the command output.
	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithOutput(os.Stderr)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	tokens, err := cfg.Tokens()
	if err != nil {
		return err
	}

	stake, err := tokens.Lookup(cfg.Account.Token)
	if err != nil {
		return err
	}

	st, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}
	defer st.Close()

	httpClient := httpclient.NewClient(
		httpclient.WithTimeout(cfg.Ledger.Timeout),
		httpclient.WithRetryMax(cfg.Ledger.RetryMax),
		httpclient.WithRequestLogging(cfg.LogLevel == "debug"),
	).StandardClient()

	ledger := namada.NewClient(jsonrpc.NewClient(httpClient, cfg.Ledger.RPCURL))

	broadcaster := broadcast.New(
		namada.NewStreamDialer(cfg.Ledger.WSURL),
		broadcast.WithRetry(retry.New(
			retry.WithAttempts(cfg.Ledger.DialRetries),
			retry.WithDelay(cfg.Ledger.DialRetryDelay),
		)),
	)
	defer broadcaster.Close()

	var (
		wallet        cli.Wallet
		builderOpts   []transfer.Option
		addressPrefix = cfg.ExtensionChain(stake).Bech32Prefix()
	)
	if cfg.Signer.AgentURL != "" {
		ext := extension.New(
			agent.NewLocator(jsonrpc.NewClient(httpClient, cfg.Signer.AgentURL)),
			cfg.ExtensionChain(stake),
		)
		wallet = ext
		if cfg.Account.SigningKey == "" {
			builderOpts = append(builderOpts, transfer.WithSigner(ext.Signer()))
		}
	}

	form := sendflow.New(
		ledger,
		transfer.New(cfg.Chain.ID, builderOpts...),
		broadcaster,
		sendflow.WithBalanceStore(st),
		sendflow.WithTransactionLog(st),
		sendflow.WithFiatRate(cfg.FiatRate),
		sendflow.WithAddressPrefix(addressPrefix),
	)

	return cli.Run(ctx, cli.Dependencies{
		Form:    form,
		Wallet:  wallet,
		History: st,
		Tokens:  tokens,
		Account: cli.AccountDefaults{
			Alias:      cfg.Account.Alias,
			Address:    cfg.Account.Address,
			Token:      cfg.Account.Token,
			SigningKey: cfg.Account.SigningKey,
		},
		Currency: format.DefaultCurrency,
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
