package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/tokensend/internal/extension"
	"github.com/gabapcia/tokensend/internal/pkg/format"
	"github.com/gabapcia/tokensend/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// ErrNoWallet is returned by connect when no signing agent is configured.
var ErrNoWallet = errors.New("no signing agent configured")

// connectCommand returns a CLI command that connects the signing agent,
// registering the chain in it first when the agent does not know it.
//
// Usage example:
//
//	tokensend connect
func connectCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "connect",
		Description: "Connect the signing agent and register the chain in it if needed.",
		Usage:       "Enables the signing agent for the configured chain and prints the account key.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if deps.Wallet == nil {
				return ErrNoWallet
			}

			if !deps.Wallet.IsInstalled(ctx) {
				return extension.ErrExtensionNotFound
			}

			status, err := deps.Wallet.HasChain(ctx)
			if err != nil {
				return err
			}

			switch status {
			case extension.ExtensionAbsent:
				return extension.ErrExtensionNotFound
			case extension.ChainNotFound:
				logger.Info(ctx, "registering chain in signing agent")
				if err := deps.Wallet.SuggestChain(ctx); err != nil {
					return err
				}
			}

			if err := deps.Wallet.Enable(ctx); err != nil {
				return err
			}

			key, err := deps.Wallet.GetKey(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Connected %s (%s)\n", key.Name, format.ShortenAddress(key.Bech32Address))
			return nil
		},
	}
}
