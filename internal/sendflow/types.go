package sendflow

import (
	"github.com/gabapcia/tokensend/internal/token"

	"github.com/shopspring/decimal"
)

// State is the step of the send workflow.
type State int

const (
	Idle State = iota
	BalanceLoading
	Ready
	Submitting
	AwaitingConfirmation
	Confirmed
)

func (s State) String() string {
	switch s {
	case BalanceLoading:
		return "balance_loading"
	case Ready:
		return "ready"
	case Submitting:
		return "submitting"
	case AwaitingConfirmation:
		return "awaiting_confirmation"
	case Confirmed:
		return "confirmed"
	default:
		return "idle"
	}
}

// Account is the sending account mounted on a Form.
type Account struct {
	Alias      string
	Address    string // established address on the ledger
	Token      token.Token
	SigningKey string // hex ed25519 key, empty when an extension signs
}

// BalanceRecord is the last known balance of an account.
type BalanceRecord struct {
	Alias string          `json:"alias"`
	Token decimal.Decimal `json:"token"`
	Fiat  decimal.Decimal `json:"fiat"`
}

// TransactionRecord is an entry of the append-only transaction log.
type TransactionRecord struct {
	Alias       string          `json:"alias"`
	Hash        string          `json:"hash"`
	AppliedHash string          `json:"appliedHash"`
	TokenType   token.Type      `json:"tokenType"`
	Target      string          `json:"target"`
	Amount      decimal.Decimal `json:"amount"`
	Gas         int64           `json:"gas"`
	Timestamp   int64           `json:"timestamp"` // unix milliseconds
}

// Confirmation holds the details of the last confirmed transfer for display.
type Confirmation struct {
	Gas         decimal.Decimal // gas used, in display units
	AppliedHash string
}

// View is a consistent snapshot of a Form.
type View struct {
	State            State
	Alias            string
	Token            token.Token
	Balance          decimal.Decimal
	Fiat             decimal.Decimal
	Target           string
	TargetValid      bool
	ValidatingTarget bool
	TargetError      string
	Amount           decimal.Decimal
	AmountError      string
	Status           string
	InFlight         bool
	CanSubmit        bool
	LastConfirmation *Confirmation
}
