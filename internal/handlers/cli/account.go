package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gabapcia/tokensend/internal/pkg/format"
	"github.com/gabapcia/tokensend/internal/sendflow"
	"github.com/gabapcia/tokensend/internal/token"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
)

// accountFlags are the flags selecting the account a command works on.
func accountFlags(defaults AccountDefaults) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "alias",
			Usage: "Local name of the account",
			Value: defaults.Alias,
		},
		&cli.StringFlag{
			Name:  "address",
			Usage: "Address of the account on the ledger",
			Value: defaults.Address,
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "Token to use (e.g., NAM, ATOM)",
			Value: string(defaults.Token),
		},
	}
}

// resolveAccount builds the account selected by the account flags. Without an
// address the signing agent key, when available, is used.
func resolveAccount(ctx context.Context, c *cli.Command, deps Dependencies) (sendflow.Account, error) {
	tok, err := deps.Tokens.Lookup(token.Type(c.String("token")))
	if err != nil {
		return sendflow.Account{}, err
	}

	account := sendflow.Account{
		Alias:      c.String("alias"),
		Address:    c.String("address"),
		Token:      tok,
		SigningKey: deps.Account.SigningKey,
	}

	if account.Address == "" && deps.Wallet != nil && deps.Account.SigningKey == "" {
		key, err := deps.Wallet.GetKey(ctx)
		if err != nil {
			return sendflow.Account{}, fmt.Errorf("resolve account address: %w", err)
		}
		account.Address = key.Bech32Address
	}

	return account, nil
}

func printBalance(w io.Writer, deps Dependencies, view sendflow.View) error {
	fiat, err := format.Currency(deps.Currency, view.Fiat, language.AmericanEnglish)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s: %s %s (%s)\n", view.Alias, view.Balance.String(), view.Token.Symbol, fiat)
	return err
}

// balanceCommand returns a CLI command that loads and prints an account balance.
//
// Usage example:
//
//	tokensend balance --alias alice --token NAM
func balanceCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Show the balance of an account and its fiat value.",
		Usage:       "Queries the ledger for the account balance.",
		Flags:       accountFlags(deps.Account),
		Action: func(ctx context.Context, c *cli.Command) error {
			account, err := resolveAccount(ctx, c, deps)
			if err != nil {
				return err
			}

			if err := deps.Form.Mount(ctx, account); err != nil {
				return err
			}

			return printBalance(c.Root().Writer, deps, deps.Form.View())
		},
	}
}
