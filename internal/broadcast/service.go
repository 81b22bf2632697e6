package broadcast

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/gabapcia/tokensend/internal/pkg/logger"
	"github.com/gabapcia/tokensend/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/tokensend/internal/broadcast"

// Service submits transactions and waits for their inclusion.
type Service interface {
	// Submit broadcasts payload and registers h to be called when the
	// transaction identified by hash is included in a block.
	//
	// Errors up to and including the node acknowledgement are returned
	// directly and no handler is called. Once Submit returns nil the outcome
	// is reported through h only.
	Submit(ctx context.Context, hash string, payload []byte, h Handlers) error

	// Pending returns the number of waiters in the correlation table.
	Pending() int

	// Close fails every pending waiter with ErrClosed and releases the
	// connection. Later Submits return ErrClosed.
	Close() error
}

type service struct {
	dialer Dialer
	retry  retry.Retry

	mu       sync.Mutex
	closed   bool
	conn     Connection
	waiters  map[string]*waiter
	inflight int // submissions between register and settle

	submitted metric.Int64Counter
	confirmed metric.Int64Counter
	unmatched metric.Int64Counter
}

var _ Service = (*service)(nil)

// NormalizeHash returns the correlation key of a transaction hash.
func NormalizeHash(hash string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(hash))
	if key == "" {
		return "", ErrInvalidHash
	}
	if _, err := hex.DecodeString(key); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	return key, nil
}

func (s *service) Submit(ctx context.Context, hash string, payload []byte, h Handlers) error {
	key, err := NormalizeHash(hash)
	if err != nil {
		return err
	}

	w := newWaiter(ctx, key, h)

	// Held until OnBroadcast returns so a racing match waits for it.
	w.mu.Lock()

	conn, err := s.register(ctx, w)
	if err != nil {
		w.mu.Unlock()
		return err
	}

	ack, err := conn.BroadcastTx(ctx, payload)
	if err == nil && ack.Code != 0 {
		err = fmt.Errorf("%w: code %d: %s", ErrRejected, ack.Code, ack.Log)
	}
	if err != nil {
		w.failed = true
		w.markDone()
		w.mu.Unlock()
		s.settle(w, true)
		return fmt.Errorf("%w: broadcast %s: %w", ErrNetwork, key, err)
	}

	w.broadcast(ack)
	w.mu.Unlock()
	s.settle(w, false)

	s.submitted.Add(ctx, 1)
	logger.Debug(ctx, "transaction acknowledged", "tx.hash", key)

	go s.watch(w)
	return nil
}

func (s *service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.waiters)
}

func (s *service) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	conn := s.conn
	s.conn = nil
	pending := s.waiters
	s.waiters = make(map[string]*waiter)
	s.mu.Unlock()

	for _, w := range pending {
		go w.fail(ErrClosed)
	}

	if conn != nil {
		return conn.Close()
	}
	return nil
}

// register adds w to the table, dialing a connection if none is open.
func (s *service) register(ctx context.Context, w *waiter) (Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	if _, ok := s.waiters[w.hash]; ok {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyPending, w.hash)
	}

	if s.conn == nil {
		conn, err := s.dial(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: dial: %w", ErrNetwork, err)
		}
		s.conn = conn
		go s.pump(conn)
	}

	s.waiters[w.hash] = w
	s.inflight++
	return s.conn, nil
}

// settle ends the broadcast phase of w, dropping it from the table when
// remove is set, and releases the connection if nothing needs it anymore.
func (s *service) settle(w *waiter, remove bool) {
	s.mu.Lock()
	s.inflight--
	if remove && s.waiters[w.hash] == w {
		delete(s.waiters, w.hash)
	}
	idle := s.releaseLocked()
	s.mu.Unlock()

	s.closeConn(w.ctx, idle)
}

func (s *service) dial(ctx context.Context) (Connection, error) {
	if s.retry == nil {
		return s.dialer.Dial(ctx)
	}

	var conn Connection
	err := s.retry.Execute(ctx, func() error {
		var err error
		conn, err = s.dialer.Dial(ctx)
		return err
	})
	return conn, err
}

// unregister removes w if it is still in the table and reports whether it did.
func (s *service) unregister(w *waiter) bool {
	s.mu.Lock()
	if s.waiters[w.hash] != w {
		s.mu.Unlock()
		return false
	}
	delete(s.waiters, w.hash)
	idle := s.releaseLocked()
	s.mu.Unlock()

	s.closeConn(w.ctx, idle)
	return true
}

// releaseLocked detaches the connection once no waiter or broadcast needs
// it. The caller must close the returned connection after dropping s.mu.
func (s *service) releaseLocked() Connection {
	if len(s.waiters) > 0 || s.inflight > 0 || s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	return conn
}

func (s *service) closeConn(ctx context.Context, conn Connection) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		logger.Warn(ctx, "failed to close ledger connection", "error", err)
	}
}

// watch removes w when its submitter's context ends before inclusion.
func (s *service) watch(w *waiter) {
	select {
	case <-w.done:
	case <-w.ctx.Done():
		if s.unregister(w) {
			w.fail(w.ctx.Err())
		}
	}
}

// pump dispatches the events of conn until its stream ends.
func (s *service) pump(conn Connection) {
	ctx := context.Background()

	for ev := range conn.Events() {
		s.dispatch(ctx, ev)
	}

	s.terminate(ctx, conn)
}

func (s *service) dispatch(ctx context.Context, ev InclusionEvent) {
	key := strings.ToUpper(strings.TrimSpace(ev.Hash))

	s.mu.Lock()
	w, ok := s.waiters[key]
	var idle Connection
	if ok {
		delete(s.waiters, key)
		idle = s.releaseLocked()
	}
	s.mu.Unlock()

	if !ok {
		s.unmatched.Add(ctx, 1)
		logger.Debug(ctx, "ignoring inclusion event without waiter", "tx.hash", key, "block.height", ev.Height)
		return
	}

	s.confirmed.Add(ctx, 1)
	logger.Info(ctx, "transaction included", "tx.hash", key, "block.height", ev.Height, "tx.gas_used", ev.GasUsed)

	go w.finish(ev)
	s.closeConn(ctx, idle)
}

// terminate fails every waiter still relying on conn after its stream ended.
func (s *service) terminate(ctx context.Context, conn Connection) {
	s.mu.Lock()
	if s.conn != conn {
		// Already released or closed by the service.
		s.mu.Unlock()
		return
	}
	s.conn = nil
	pending := s.waiters
	s.waiters = make(map[string]*waiter)
	s.mu.Unlock()

	s.closeConn(ctx, conn)

	cause := conn.Err()
	if cause == nil {
		cause = ErrStreamClosed
	}
	err := fmt.Errorf("%w: %w", ErrNetwork, cause)

	logger.Error(ctx, "ledger event stream ended", "error", cause, "pending", len(pending))
	for _, w := range pending {
		go w.fail(err)
	}
}

type config struct {
	retry         retry.Retry
	meterProvider metric.MeterProvider
}

// Option configures the Service.
type Option func(*config)

// New returns a Service that opens connections with dialer. Dial failures are
// not retried unless WithRetry is given.
func New(dialer Dialer, opts ...Option) *service {
	cfg := config{
		retry:         nil,
		meterProvider: otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)

	return &service{
		dialer:    dialer,
		retry:     cfg.retry,
		waiters:   make(map[string]*waiter),
		submitted: mustCounter(meter, "tokensend.broadcast.submitted", "Transactions acknowledged by the node"),
		confirmed: mustCounter(meter, "tokensend.broadcast.confirmed", "Transactions matched to an inclusion event"),
		unmatched: mustCounter(meter, "tokensend.broadcast.unmatched_events", "Inclusion events without a waiter"),
	}
}

func mustCounter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		panic(fmt.Sprintf("broadcast: creating counter %s: %v", name, err))
	}
	return c
}

// WithRetry retries failed dials with r.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithMeterProvider overrides the global MeterProvider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}
