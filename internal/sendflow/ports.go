package sendflow

import (
	"context"

	"github.com/gabapcia/tokensend/internal/broadcast"
	"github.com/gabapcia/tokensend/internal/transfer"

	"github.com/shopspring/decimal"
)

// Ledger runs the read-only node queries used by the form.
type Ledger interface {
	QueryBalance(ctx context.Context, token, owner string) (decimal.Decimal, error)
	QueryEpoch(ctx context.Context) (uint64, error)
	IsKnownAddress(ctx context.Context, address string) (bool, error)
}

// TransferBuilder signs transfers.
type TransferBuilder interface {
	Build(ctx context.Context, req transfer.Request) (transfer.SignedTransfer, error)
}

// Broadcaster submits signed transfers and reports their inclusion.
type Broadcaster interface {
	Submit(ctx context.Context, hash string, payload []byte, h broadcast.Handlers) error
}

// BalanceStore keeps the last known balance per account alias.
type BalanceStore interface {
	SetBalance(ctx context.Context, record BalanceRecord) error
	Balance(ctx context.Context, alias string) (BalanceRecord, error)
}

// TransactionLog is the append-only log of confirmed transfers.
type TransactionLog interface {
	AppendTransaction(ctx context.Context, record TransactionRecord) error
	ListTransactions(ctx context.Context) ([]TransactionRecord, error)
}

type nopBalanceStore struct{}

func (nopBalanceStore) SetBalance(context.Context, BalanceRecord) error { return nil }

func (nopBalanceStore) Balance(context.Context, string) (BalanceRecord, error) {
	return BalanceRecord{}, ErrRecordNotFound
}

type nopTransactionLog struct{}

func (nopTransactionLog) AppendTransaction(context.Context, TransactionRecord) error { return nil }

func (nopTransactionLog) ListTransactions(context.Context) ([]TransactionRecord, error) {
	return nil, nil
}

var (
	_ BalanceStore   = nopBalanceStore{}
	_ TransactionLog = nopTransactionLog{}
)
