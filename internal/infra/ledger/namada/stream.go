package namada

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/gabapcia/tokensend/internal/broadcast"
	"github.com/gabapcia/tokensend/internal/pkg/logger"
	"github.com/gabapcia/tokensend/internal/pkg/transport/wsrpc"
	"github.com/gabapcia/tokensend/internal/pkg/x/chflow"
)

const newBlockQuery = "tm.event='NewBlock'"

// Keys of the NewBlock event attributes describing applied transactions.
// Each holds one entry per transaction, in the same order.
const (
	eventAppliedHash    = "applied.hash"
	eventAppliedGasUsed = "applied.gas_used"
	eventAppliedCode    = "applied.code"
	eventAppliedHeight  = "applied.height"
	eventAppliedLog     = "applied.log"
)

const eventBufferSize = 16

type newBlockNotification struct {
	Events map[string][]string `json:"events"`
}

type broadcastTxResult struct {
	Code uint32 `json:"code"`
	Log  string `json:"log"`
	Hash string `json:"hash"`
}

// StreamDialer opens WebSocket connections subscribed to new blocks.
type StreamDialer struct {
	endpoint string
	opts     []wsrpc.Option
}

var _ broadcast.Dialer = (*StreamDialer)(nil)

// NewStreamDialer returns a Dialer for the node WebSocket endpoint, e.g.
// "ws://127.0.0.1:26657/websocket".
func NewStreamDialer(endpoint string, opts ...wsrpc.Option) *StreamDialer {
	return &StreamDialer{endpoint: endpoint, opts: opts}
}

// Dial implements broadcast.Dialer.
func (d *StreamDialer) Dial(ctx context.Context) (broadcast.Connection, error) {
	conn, err := wsrpc.Dial(ctx, d.endpoint, d.opts...)
	if err != nil {
		return nil, err
	}

	notes, err := conn.Subscribe(ctx, newBlockQuery)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("subscribe %s: %w", newBlockQuery, err)
	}

	streamCtx, cancel := context.WithCancel(context.Background())
	s := &stream{
		conn:   conn,
		events: make(chan broadcast.InclusionEvent, eventBufferSize),
		cancel: cancel,
	}

	go func() {
		defer close(s.events)
		chflow.Expand(streamCtx, notes, s.events, s.inclusionEvents)
	}()

	logger.Debug(ctx, "ledger stream opened", "endpoint", d.endpoint)
	return s, nil
}

type stream struct {
	conn   *wsrpc.Conn
	events chan broadcast.InclusionEvent
	cancel context.CancelFunc
	closed atomic.Bool
}

var _ broadcast.Connection = (*stream)(nil)

func (s *stream) BroadcastTx(ctx context.Context, payload []byte) (broadcast.Acknowledgement, error) {
	raw, err := s.conn.Call(ctx, "broadcast_tx_sync", map[string]string{
		"tx": base64.StdEncoding.EncodeToString(payload),
	})
	if err != nil {
		return broadcast.Acknowledgement{}, err
	}

	var result broadcastTxResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return broadcast.Acknowledgement{}, err
	}

	return broadcast.Acknowledgement{Hash: result.Hash, Code: result.Code, Log: result.Log}, nil
}

func (s *stream) Events() <-chan broadcast.InclusionEvent {
	return s.events
}

func (s *stream) Err() error {
	err := s.conn.Err()
	if s.closed.Load() && errors.Is(err, wsrpc.ErrConnClosed) {
		return nil
	}
	return err
}

func (s *stream) Close() error {
	s.closed.Store(true)
	s.cancel()
	return s.conn.Close()
}

// inclusionEvents splits a NewBlock notification into one event per applied
// transaction.
func (s *stream) inclusionEvents(raw json.RawMessage) []broadcast.InclusionEvent {
	var note newBlockNotification
	if err := json.Unmarshal(raw, &note); err != nil {
		logger.Warn(context.Background(), "discarding malformed block notification", "error", err)
		return nil
	}

	return parseAppliedEvents(note.Events)
}

func parseAppliedEvents(events map[string][]string) []broadcast.InclusionEvent {
	hashes := events[eventAppliedHash]
	out := make([]broadcast.InclusionEvent, 0, len(hashes))
	for i, hash := range hashes {
		out = append(out, broadcast.InclusionEvent{
			Hash:    hash,
			GasUsed: intAt(events[eventAppliedGasUsed], i),
			Code:    intAt(events[eventAppliedCode], i),
			Height:  intAt(events[eventAppliedHeight], i),
			Log:     stringAt(events[eventAppliedLog], i),
		})
	}
	return out
}

func stringAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func intAt(values []string, i int) int64 {
	n, err := strconv.ParseInt(stringAt(values, i), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
