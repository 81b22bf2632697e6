package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/tokensend/internal/pkg/format"

	"github.com/urfave/cli/v3"
)

// historyCommand returns a CLI command that lists confirmed transfers,
// optionally restricted to one account.
//
// Usage example:
//
//	tokensend history --alias alice
func historyCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "List the transfers confirmed by the ledger, oldest first.",
		Usage:       "Prints the transaction log.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "alias",
				Usage: "Only list transfers sent from this account",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			records, err := deps.History.ListTransactions(ctx)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			alias := c.String("alias")
			for _, r := range records {
				if alias != "" && r.Alias != alias {
					continue
				}

				fmt.Fprintf(w, "%s  %s  %s %s -> %s  %s\n",
					format.StringFromTimestamp(r.Timestamp),
					r.Alias,
					r.Amount.String(),
					r.TokenType,
					format.ShortenAddress(r.Target),
					format.TruncateInMiddle(r.AppliedHash, 8, 8),
				)
			}

			return nil
		},
	}
}
