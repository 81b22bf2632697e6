package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/tokensend/internal/extension"
	"github.com/gabapcia/tokensend/internal/sendflow"
	"github.com/gabapcia/tokensend/internal/token"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// Form is the send workflow driven by the send and balance commands.
type Form interface {
	Mount(ctx context.Context, account sendflow.Account) error
	SetTarget(ctx context.Context, target string) error
	SetAmount(amount decimal.Decimal)
	Blockers() []error
	Submit(ctx context.Context) (sendflow.TransactionRecord, error)
	View() sendflow.View
}

// Wallet is the browser-extension style signer the connect command talks to.
type Wallet interface {
	IsInstalled(ctx context.Context) bool
	HasChain(ctx context.Context) (extension.ChainStatus, error)
	Enable(ctx context.Context) error
	GetKey(ctx context.Context) (extension.Key, error)
	SuggestChain(ctx context.Context) error
}

// History lists confirmed transfers.
type History interface {
	ListTransactions(ctx context.Context) ([]sendflow.TransactionRecord, error)
}

// AccountDefaults seeds the account flags shared by balance and send.
type AccountDefaults struct {
	Alias      string
	Address    string
	Token      token.Type
	SigningKey string
}

// Dependencies holds everything the commands need.
type Dependencies struct {
	Form     Form
	Wallet   Wallet // nil when no signing agent is configured
	History  History
	Tokens   *token.Registry
	Account  AccountDefaults
	Currency string // ISO 4217 code of the fiat balance
}

// newApp builds the tokensend command tree.
func newApp(deps Dependencies, out io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "tokensend",
		Description:           "Command-line wallet for sending tokens on a Namada ledger.",
		Usage:                 "tokensend [command] [flags]",
		Writer:                out,
		Commands: []*cli.Command{
			connectCommand(deps),
			balanceCommand(deps),
			sendCommand(deps),
			historyCommand(deps),
		},
	}
}

// Run initializes and executes the tokensend CLI application.
//
// It registers all available commands:
//
//   - `connect`: Connects the signing agent and registers the chain in it.
//   - `balance`: Shows the balance of an account.
//   - `send`: Sends tokens and waits for the ledger to confirm them.
//   - `history`: Lists confirmed transfers.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps, os.Stdout).Run(ctx, os.Args)
}
