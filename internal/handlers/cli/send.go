package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/tokensend/internal/sendflow"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// ErrInvalidAmount is returned when the amount flag is not a decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// sendCommand returns a CLI command that sends tokens to a target address
// and waits for the ledger to include the transfer.
//
// Usage example:
//
//	tokensend send --alias alice --target tnam1... --amount 1.5
func sendCommand(deps Dependencies) *cli.Command {
	flags := append(accountFlags(deps.Account),
		&cli.StringFlag{
			Name:     "target",
			Usage:    "Address receiving the tokens",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "Amount to send, in token units",
			Required: true,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Maximum time to wait for the confirmation (0 waits forever)",
		},
	)

	return &cli.Command{
		Name:        "send",
		Description: "Send tokens from an account and wait for the ledger to confirm the transfer.",
		Usage:       "Signs, broadcasts and confirms a token transfer.",
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			amount, err := decimal.NewFromString(c.String("amount"))
			if err != nil {
				return fmt.Errorf("%w: %s", ErrInvalidAmount, c.String("amount"))
			}

			account, err := resolveAccount(ctx, c, deps)
			if err != nil {
				return err
			}

			if err := deps.Form.Mount(ctx, account); err != nil {
				return err
			}

			if err := deps.Form.SetTarget(ctx, c.String("target")); err != nil {
				return err
			}
			deps.Form.SetAmount(amount)

			if blockers := deps.Form.Blockers(); len(blockers) > 0 {
				return errors.Join(blockers...)
			}

			if timeout := c.Duration("timeout"); timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			w := c.Root().Writer
			record, err := deps.Form.Submit(ctx)
			view := deps.Form.View()
			fmt.Fprintln(w, view.Status)
			if err != nil {
				return err
			}

			printConfirmation(c, record, view)
			return nil
		},
	}
}

func printConfirmation(c *cli.Command, record sendflow.TransactionRecord, view sendflow.View) {
	w := c.Root().Writer

	fmt.Fprintf(w, "Hash: %s\n", record.Hash)
	if view.LastConfirmation != nil {
		fmt.Fprintf(w, "Applied hash: %s\n", view.LastConfirmation.AppliedHash)
		fmt.Fprintf(w, "Gas used: %s\n", view.LastConfirmation.Gas.String())
	}
	fmt.Fprintf(w, "Confirmed at: %s\n", time.UnixMilli(record.Timestamp).UTC().Format(time.RFC3339))
}
