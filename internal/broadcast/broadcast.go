// Package broadcast submits signed transactions to the ledger over a
// streaming connection and correlates block inclusion events back to the
// submitter that is waiting for them.
//
// A Service keeps a correlation table keyed by the normalized transaction
// hash. Each Submit registers one waiter; inclusion events are dispatched to
// the matching waiter only, which is removed on match. The connection is
// opened lazily by the first Submit of a cycle, shared by every waiter of that
// cycle and closed by the Service once the table is empty or the stream fails.
//
// There is no built-in confirmation timeout. A transaction that is never
// included keeps its waiter and the connection alive until the submitter's
// context ends, so callers that care should pass a context with a deadline.
package broadcast

import (
	"context"
	"errors"
)

var (
	// ErrNetwork wraps every transport level failure: dialing, sending,
	// node rejection and stream loss.
	ErrNetwork = errors.New("network error")

	// ErrInvalidHash is returned when the submitted hash is not hex.
	ErrInvalidHash = errors.New("invalid transaction hash")

	// ErrAlreadyPending is returned when a waiter for the same hash exists.
	ErrAlreadyPending = errors.New("transaction already pending")

	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("broadcast service closed")

	// ErrRejected is returned when the node refuses a transaction at check time.
	ErrRejected = errors.New("transaction rejected by node")

	// ErrStreamClosed is reported to pending waiters when the event stream
	// ends without an error.
	ErrStreamClosed = errors.New("event stream closed")
)

// Acknowledgement is the node's receipt of a broadcast transaction. It does
// not imply inclusion in a block.
type Acknowledgement struct {
	Hash string
	Code uint32
	Log  string
}

// InclusionEvent reports one transaction applied in a new block.
type InclusionEvent struct {
	Hash    string
	GasUsed int64
	Code    int64
	Height  int64
	Log     string
}

// Handlers receive the asynchronous outcome of a submission. Every field is
// optional. OnBroadcast always precedes OnNext, and exactly one of
// OnComplete (after OnNext) or OnError ends a successful Submit.
type Handlers struct {
	OnBroadcast func(ctx context.Context, ack Acknowledgement)
	OnNext      func(ctx context.Context, ev InclusionEvent)
	OnError     func(ctx context.Context, err error)
	OnComplete  func(ctx context.Context)
}

// Connection is a streaming link to a ledger node.
type Connection interface {
	// BroadcastTx sends a signed transaction and returns the node receipt.
	BroadcastTx(ctx context.Context, payload []byte) (Acknowledgement, error)

	// Events yields inclusion events for every transaction applied in new
	// blocks. The channel is closed when the connection ends.
	Events() <-chan InclusionEvent

	// Err reports why Events was closed, or nil after a clean Close.
	Err() error

	// Close releases the connection. It is called exactly once by the Service.
	Close() error
}

// Dialer opens Connections.
type Dialer interface {
	Dial(ctx context.Context) (Connection, error)
}
