// Package wsrpc is a JSON-RPC 2.0 client over a single WebSocket connection.
// It multiplexes request/response calls with server-pushed subscription
// notifications, as exposed by Tendermint-style node endpoints.
//
// Notifications for a subscription carry the id of the subscribe call,
// optionally suffixed with "#event".
package wsrpc

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/tokensend/internal/pkg/logger"
	"github.com/gabapcia/tokensend/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/tokensend/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrConnClosed is returned by calls made on, or interrupted by, a closed connection.
var ErrConnClosed = errors.New("websocket connection closed")

const eventIDSuffix = "#event"

type config struct {
	handshakeTimeout   time.Duration
	writeTimeout       time.Duration
	subscriptionBuffer int
}

// Option configures Dial.
type Option func(*config)

// WithHandshakeTimeout bounds the WebSocket opening handshake. Default: 10 seconds.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *config) {
		c.handshakeTimeout = d
	}
}

// WithWriteTimeout bounds a single frame write. Default: 10 seconds.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) {
		c.writeTimeout = d
	}
}

// WithSubscriptionBuffer sets the per-subscription notification buffer. Default: 16.
func WithSubscriptionBuffer(n int) Option {
	return func(c *config) {
		c.subscriptionBuffer = n
	}
}

// Conn is a live JSON-RPC WebSocket connection. It is safe for concurrent use.
type Conn struct {
	ws  *websocket.Conn
	cfg config

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan jsonrpc.Response
	subs    map[string]chan json.RawMessage
	err     error

	ctx       context.Context // ends when the connection is torn down
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// Dial opens a WebSocket to endpoint and starts reading from it.
func Dial(ctx context.Context, endpoint string, opts ...Option) (*Conn, error) {
	cfg := config{
		handshakeTimeout:   10 * time.Second,
		writeTimeout:       10 * time.Second,
		subscriptionBuffer: 16,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dialer := websocket.Dialer{HandshakeTimeout: cfg.handshakeTimeout}
	ws, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	connCtx, cancel := context.WithCancel(context.Background())
	c := &Conn{
		ws:      ws,
		cfg:     cfg,
		pending: make(map[string]chan jsonrpc.Response),
		subs:    make(map[string]chan json.RawMessage),
		ctx:     connCtx,
		cancel:  cancel,
	}

	go c.readLoop()
	return c, nil
}

// Call sends a request and waits for its response.
func (c *Conn) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	id := uuid.NewString()
	respCh := make(chan jsonrpc.Response, 1)

	if err := c.register(id, respCh); err != nil {
		return nil, err
	}
	defer c.unregister(id)

	if err := c.write(jsonrpc.NewRequest(id, method, params)); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.ctx.Done():
		return nil, c.Err()
	case resp := <-respCh:
		if err := resp.Err(); err != nil {
			return nil, err
		}
		return resp.Result, nil
	}
}

// Subscribe issues a "subscribe" call for query and returns the channel of
// notification results. The channel is closed when the connection ends.
func (c *Conn) Subscribe(ctx context.Context, query string) (<-chan json.RawMessage, error) {
	id := uuid.NewString()
	respCh := make(chan jsonrpc.Response, 1)
	notes := make(chan json.RawMessage, c.cfg.subscriptionBuffer)

	if err := c.register(id, respCh); err != nil {
		return nil, err
	}
	defer c.unregister(id)

	c.mu.Lock()
	c.subs[id] = notes
	c.mu.Unlock()

	// The channel is left for the garbage collector on failure: only
	// readLoop closes subscription channels.
	fail := func(err error) (<-chan json.RawMessage, error) {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
		return nil, err
	}

	if err := c.write(jsonrpc.NewRequest(id, "subscribe", map[string]string{"query": query})); err != nil {
		return fail(err)
	}

	select {
	case <-ctx.Done():
		return fail(ctx.Err())
	case <-c.ctx.Done():
		return nil, c.Err()
	case resp := <-respCh:
		if err := resp.Err(); err != nil {
			return fail(err)
		}
		return notes, nil
	}
}

// Done is closed once the connection has been torn down.
func (c *Conn) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Err reports why the connection ended, or nil while it is alive.
func (c *Conn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close tears the connection down. Only the first call has an effect.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.terminate(ErrConnClosed)

		c.writeMu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.writeMu.Unlock()

		err = c.ws.Close()
	})
	return err
}

func (c *Conn) register(id string, ch chan jsonrpc.Response) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}

	c.pending[id] = ch
	return nil
}

func (c *Conn) unregister(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *Conn) write(req jsonrpc.Request) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.ws.SetWriteDeadline(time.Now().Add(c.cfg.writeTimeout)); err != nil {
		return err
	}

	return c.ws.WriteJSON(req)
}

// terminate records the terminal error and wakes pending calls.
// The first error wins.
func (c *Conn) terminate(err error) {
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()

	c.cancel()
}

func (c *Conn) closeSubscriptions() {
	c.mu.Lock()
	subs := c.subs
	c.subs = make(map[string]chan json.RawMessage)
	c.mu.Unlock()

	for _, ch := range subs {
		close(ch)
	}
}

func (c *Conn) readLoop() {
	defer c.closeSubscriptions()

	for {
		var msg jsonrpc.Response
		if err := c.ws.ReadJSON(&msg); err != nil {
			var (
				syntaxErr *json.SyntaxError
				typeErr   *json.UnmarshalTypeError
			)
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				logger.Warn(c.ctx, "discarding malformed websocket frame", "error", err)
				continue
			}

			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				err = ErrConnClosed
			}
			c.terminate(err)
			_ = c.ws.Close()
			return
		}

		c.dispatch(msg)
	}
}

func (c *Conn) dispatch(msg jsonrpc.Response) {
	c.mu.Lock()
	respCh, isCall := c.pending[msg.ID]
	subCh, isNote := c.subs[strings.TrimSuffix(msg.ID, eventIDSuffix)]
	c.mu.Unlock()

	switch {
	case isCall && !strings.HasSuffix(msg.ID, eventIDSuffix):
		select {
		case respCh <- msg:
		default:
		}
	case isNote:
		if len(msg.Result) == 0 || string(msg.Result) == "{}" {
			return
		}
		// Subscription channels are only closed by readLoop, so this cannot race a close.
		chflow.Send(c.ctx, subCh, msg.Result)
	default:
		logger.Debug(c.ctx, "ignoring websocket message without a listener", "rpc.id", msg.ID)
	}
}
