// Package sendflow drives the token send workflow: it loads the account
// balance, validates the target and amount, and submits the transfer through
// epoch query, signing, broadcast and confirmation.
//
// A Form is safe for concurrent use. Network calls run outside its lock, and
// balance and target lookups carry a generation number so a response that
// arrives after a newer request is discarded.
package sendflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/tokensend/internal/broadcast"
	"github.com/gabapcia/tokensend/internal/pkg/address"
	"github.com/gabapcia/tokensend/internal/pkg/format"
	"github.com/gabapcia/tokensend/internal/pkg/logger"
	"github.com/gabapcia/tokensend/internal/transfer"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/tokensend/internal/sendflow"

// Status and field messages shown to the user.
const (
	StatusSubmitting = "Submitting token transfer"
	StatusConnected  = "Successfully connected to ledger"

	MessageInvalidTarget = "Target is invalid"
	MessageInvalidAmount = "Invalid amount!"
)

func statusTransferred(amount decimal.Decimal, symbol string) string {
	return fmt.Sprintf("Successfully transferred %s of %s!", amount.String(), symbol)
}

func statusFailed(err error) string {
	return fmt.Sprintf("Transfer failed: %v", err)
}

// Form is the send form of one mounted account.
type Form struct {
	ledger      Ledger
	builder     TransferBuilder
	broadcaster Broadcaster
	balances    BalanceStore
	txlog       TransactionLog

	addressPrefix string
	fiatRate      decimal.Decimal
	now           func() time.Time

	tracer    trace.Tracer
	confirmed metric.Int64Counter

	mu               sync.Mutex
	state            State
	account          Account
	balance          decimal.Decimal
	target           string
	targetValid      bool
	validatingTarget bool
	amount           decimal.Decimal
	inFlight         bool
	status           string
	lastConfirmation *Confirmation

	balanceGen uint64
	targetGen  uint64
}

// Mount attaches account to the form, resets the inputs and loads the
// balance. A cached balance, if any, is shown while the live query runs.
func (f *Form) Mount(ctx context.Context, account Account) error {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	f.account = account
	f.balance = decimal.Zero
	f.target = ""
	f.targetValid = false
	f.validatingTarget = false
	f.targetGen++
	f.amount = decimal.Zero
	f.status = ""
	f.lastConfirmation = nil
	f.mu.Unlock()

	if rec, err := f.balances.Balance(ctx, account.Alias); err == nil {
		f.mu.Lock()
		if f.account.Alias == account.Alias {
			f.balance = rec.Token
		}
		f.mu.Unlock()
	} else if !errors.Is(err, ErrRecordNotFound) {
		logger.Warn(ctx, "failed to read cached balance", "account.alias", account.Alias, "error", err)
	}

	return f.RefreshBalance(ctx)
}

// RefreshBalance re-queries the mounted account balance and stores it.
func (f *Form) RefreshBalance(ctx context.Context) error {
	f.mu.Lock()
	account := f.account
	f.balanceGen++
	gen := f.balanceGen
	if !f.inFlight {
		f.state = BalanceLoading
	}
	f.mu.Unlock()

	// Nothing to query for an account without an address or a token address.
	if account.Address == "" || account.Token.Address == "" {
		f.mu.Lock()
		if gen == f.balanceGen && !f.inFlight {
			f.state = Ready
		}
		f.mu.Unlock()
		return nil
	}

	balance, err := f.ledger.QueryBalance(ctx, account.Token.Address, account.Address)

	f.mu.Lock()
	if gen != f.balanceGen {
		f.mu.Unlock()
		logger.Debug(ctx, "discarding stale balance", "account.alias", account.Alias)
		return nil
	}
	if err != nil {
		if !f.inFlight {
			f.state = Idle
		}
		f.mu.Unlock()
		return fmt.Errorf("query balance: %w", err)
	}
	f.balance = balance
	if !f.inFlight {
		f.state = Ready
	}
	f.mu.Unlock()

	f.storeBalance(ctx, account.Alias, balance)
	return nil
}

// SetTarget updates the target address and validates it: locally first,
// then against the ledger. Validation never blocks other setters. An error is
// only returned when the ledger could not be asked.
func (f *Form) SetTarget(ctx context.Context, target string) error {
	target = strings.TrimSpace(target)

	f.mu.Lock()
	f.target = target
	f.targetValid = false
	f.validatingTarget = false
	f.targetGen++
	gen := f.targetGen

	if target == "" || !f.wellFormed(target) {
		f.mu.Unlock()
		return nil
	}
	f.validatingTarget = true
	f.mu.Unlock()

	known, err := f.ledger.IsKnownAddress(ctx, target)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.targetGen {
		logger.Debug(ctx, "discarding stale target validation", "target", target)
		return nil
	}
	f.validatingTarget = false
	if err != nil {
		return fmt.Errorf("validate target: %w", err)
	}
	f.targetValid = known
	return nil
}

func (f *Form) wellFormed(target string) bool {
	if f.addressPrefix == "" {
		return address.IsValid(target)
	}
	_, err := address.Expect(target, f.addressPrefix)
	return err == nil
}

// SetAmount updates the amount to send, in display units.
func (f *Form) SetAmount(amount decimal.Decimal) {
	f.mu.Lock()
	f.amount = amount
	f.mu.Unlock()
}

// Blockers lists every reason the form cannot be submitted right now.
func (f *Form) Blockers() []error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.blockersLocked()
}

// CanSubmit reports whether Submit would start a transfer.
func (f *Form) CanSubmit() bool {
	return len(f.Blockers()) == 0
}

func (f *Form) blockersLocked() []error {
	var blockers []error

	if f.inFlight {
		blockers = append(blockers, ErrSubmissionInFlight)
	} else if f.state != Ready && f.state != Confirmed {
		blockers = append(blockers, ErrNotReady)
	}

	switch {
	case f.target == "":
		blockers = append(blockers, ErrEmptyTarget)
	case f.validatingTarget:
		blockers = append(blockers, ErrTargetPending)
	case !f.targetValid:
		blockers = append(blockers, ErrInvalidTarget)
	}

	if !f.amount.IsPositive() {
		blockers = append(blockers, ErrZeroAmount)
	} else if _, err := format.MicroUnits(f.amount); err != nil {
		blockers = append(blockers, ErrAmountPrecision)
	}

	if f.amount.GreaterThan(f.balance) {
		blockers = append(blockers, ErrInsufficientBalance)
	}

	return blockers
}

// View returns a snapshot of the form.
func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := View{
		State:            f.state,
		Alias:            f.account.Alias,
		Token:            f.account.Token,
		Balance:          f.balance,
		Fiat:             f.balance.Mul(f.fiatRate),
		Target:           f.target,
		TargetValid:      f.targetValid,
		ValidatingTarget: f.validatingTarget,
		Amount:           f.amount,
		Status:           f.status,
		InFlight:         f.inFlight,
		CanSubmit:        len(f.blockersLocked()) == 0,
	}

	if f.target != "" && !f.validatingTarget && !f.targetValid {
		v.TargetError = MessageInvalidTarget
	}
	if f.amount.GreaterThan(f.balance) {
		v.AmountError = MessageInvalidAmount
	}
	if f.lastConfirmation != nil {
		c := *f.lastConfirmation
		v.LastConfirmation = &c
	}

	return v
}

// submission carries one Submit call through its asynchronous steps.
type submission struct {
	account Account
	target  string
	amount  decimal.Decimal
	hash    string

	span    trace.Span
	once    sync.Once
	outcome chan submissionOutcome
}

type submissionOutcome struct {
	record TransactionRecord
	err    error
}

// settle runs fn for the first outcome only.
func (s *submission) settle(fn func() submissionOutcome) {
	s.once.Do(func() {
		s.outcome <- fn()
	})
}

// Submit sends the transfer and blocks until it is confirmed, fails, or ctx
// ends. The outcome is also reflected in the form status.
//
// There is no built-in confirmation timeout: pass a ctx with a deadline to
// bound the wait.
func (f *Form) Submit(ctx context.Context) (TransactionRecord, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return TransactionRecord{}, ErrSubmissionInFlight
	}
	if blockers := f.blockersLocked(); len(blockers) > 0 {
		f.mu.Unlock()
		return TransactionRecord{}, errors.Join(blockers...)
	}
	f.inFlight = true
	f.state = Submitting
	f.status = StatusSubmitting
	f.lastConfirmation = nil
	sub := &submission{
		account: f.account,
		target:  f.target,
		amount:  f.amount,
		outcome: make(chan submissionOutcome, 1),
	}
	f.mu.Unlock()

	ctx, sub.span = f.tracer.Start(ctx, "sendflow.Submit", trace.WithAttributes(
		attribute.String("account.alias", sub.account.Alias),
		attribute.String("token.symbol", sub.account.Token.Symbol),
		attribute.String("transfer.amount", sub.amount.String()),
	))
	defer sub.span.End()

	logger.Info(ctx, "submitting transfer", "account.alias", sub.account.Alias, "transfer.target", sub.target, "transfer.amount", sub.amount.String())

	if err := f.send(ctx, sub); err != nil {
		sub.settle(func() submissionOutcome { return f.fail(ctx, sub, err) })
	}

	select {
	case out := <-sub.outcome:
		return out.record, out.err
	case <-ctx.Done():
		sub.settle(func() submissionOutcome { return f.fail(ctx, sub, ctx.Err()) })
		out := <-sub.outcome
		return out.record, out.err
	}
}

// send runs the strictly ordered part of a submission: epoch, sign, broadcast.
func (f *Form) send(ctx context.Context, sub *submission) error {
	epoch, err := f.ledger.QueryEpoch(ctx)
	if err != nil {
		return fmt.Errorf("query epoch: %w", err)
	}

	micro, err := format.MicroUnits(sub.amount)
	if err != nil {
		return err
	}

	tx, err := f.builder.Build(ctx, transfer.Request{
		Source:     sub.account.Address,
		Target:     sub.target,
		Token:      sub.account.Token.Address,
		Amount:     micro,
		Epoch:      epoch,
		SigningKey: sub.account.SigningKey,
	})
	if err != nil {
		return err
	}
	sub.hash = tx.Hash
	sub.span.SetAttributes(attribute.String("tx.hash", tx.Hash), attribute.Int64("ledger.epoch", int64(epoch)))

	return f.broadcaster.Submit(ctx, tx.Hash, tx.Bytes, broadcast.Handlers{
		OnBroadcast: func(ctx context.Context, ack broadcast.Acknowledgement) {
			f.mu.Lock()
			f.status = StatusConnected
			f.state = AwaitingConfirmation
			f.mu.Unlock()
			sub.span.AddEvent("broadcast acknowledged")
		},
		OnNext: func(ctx context.Context, ev broadcast.InclusionEvent) {
			sub.settle(func() submissionOutcome { return f.confirm(ctx, sub, ev) })
		},
		OnError: func(ctx context.Context, err error) {
			sub.settle(func() submissionOutcome { return f.fail(ctx, sub, err) })
		},
	})
}

// confirm applies an inclusion event: balance refresh, log append and form
// reset. The steps are independent; a failing one is logged and the others
// still run.
func (f *Form) confirm(ctx context.Context, sub *submission, ev broadcast.InclusionEvent) submissionOutcome {
	if ev.Code != 0 {
		return f.fail(ctx, sub, fmt.Errorf("%w: code %d: %s", ErrTransferFailed, ev.Code, ev.Log))
	}

	// The submitter may stop waiting; the bookkeeping must still happen.
	ctx = context.WithoutCancel(ctx)

	account := sub.account
	record := TransactionRecord{
		Alias:       account.Alias,
		Hash:        sub.hash,
		AppliedHash: ev.Hash,
		TokenType:   account.Token.Type,
		Target:      sub.target,
		Amount:      sub.amount,
		Gas:         ev.GasUsed,
		Timestamp:   f.now().UnixMilli(),
	}

	balance, balanceErr := f.ledger.QueryBalance(ctx, account.Token.Address, account.Address)
	if balanceErr != nil {
		logger.Warn(ctx, "failed to refresh balance after transfer", "account.alias", account.Alias, "error", balanceErr)
	} else {
		f.storeBalance(ctx, account.Alias, balance)
	}

	if err := f.txlog.AppendTransaction(ctx, record); err != nil {
		logger.Error(ctx, "failed to append transaction record", "tx.hash", record.Hash, "error", err)
	}

	f.mu.Lock()
	if balanceErr == nil && f.account.Alias == account.Alias {
		f.balanceGen++
		f.balance = balance
	}
	f.amount = decimal.Zero
	f.inFlight = false
	f.state = Confirmed
	f.status = statusTransferred(sub.amount, account.Token.Symbol)
	f.lastConfirmation = &Confirmation{
		Gas:         format.AmountFromMicro(decimal.NewFromInt(ev.GasUsed)),
		AppliedHash: ev.Hash,
	}
	f.mu.Unlock()

	f.confirmed.Add(ctx, 1, metric.WithAttributes(attribute.String("token.symbol", account.Token.Symbol)))
	sub.span.SetStatus(codes.Ok, "")
	logger.Info(ctx, "transfer confirmed", "tx.hash", record.Hash, "tx.applied_hash", record.AppliedHash, "tx.gas_used", record.Gas)

	return submissionOutcome{record: record}
}

func (f *Form) fail(ctx context.Context, sub *submission, err error) submissionOutcome {
	f.mu.Lock()
	f.inFlight = false
	f.state = Ready
	f.status = statusFailed(err)
	f.mu.Unlock()

	sub.span.RecordError(err)
	sub.span.SetStatus(codes.Error, err.Error())
	logger.Error(ctx, "transfer failed", "tx.hash", sub.hash, "error", err)

	return submissionOutcome{err: err}
}

func (f *Form) storeBalance(ctx context.Context, alias string, balance decimal.Decimal) {
	rec := BalanceRecord{Alias: alias, Token: balance, Fiat: balance.Mul(f.fiatRate)}
	if err := f.balances.SetBalance(ctx, rec); err != nil {
		logger.Warn(ctx, "failed to store balance", "account.alias", alias, "error", err)
	}
}

type config struct {
	balances       BalanceStore
	txlog          TransactionLog
	addressPrefix  string
	fiatRate       decimal.Decimal
	now            func() time.Time
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option configures a Form.
type Option func(*config)

// New returns an Idle Form. Without WithBalanceStore and WithTransactionLog
// balances and confirmed transfers are not persisted.
func New(ledger Ledger, builder TransferBuilder, broadcaster Broadcaster, opts ...Option) *Form {
	cfg := config{
		balances:       nopBalanceStore{},
		txlog:          nopTransactionLog{},
		fiatRate:       decimal.Zero,
		now:            time.Now,
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	confirmed, err := cfg.meterProvider.Meter(instrumentationName).Int64Counter(
		"tokensend.transfers.confirmed",
		metric.WithDescription("Transfers confirmed on the ledger"),
	)
	if err != nil {
		panic(fmt.Sprintf("sendflow: creating counter: %v", err))
	}

	return &Form{
		ledger:        ledger,
		builder:       builder,
		broadcaster:   broadcaster,
		balances:      cfg.balances,
		txlog:         cfg.txlog,
		addressPrefix: cfg.addressPrefix,
		fiatRate:      cfg.fiatRate,
		now:           cfg.now,
		tracer:        cfg.tracerProvider.Tracer(instrumentationName),
		confirmed:     confirmed,
		state:         Idle,
	}
}

// WithBalanceStore persists balances to s.
func WithBalanceStore(s BalanceStore) Option {
	return func(c *config) {
		c.balances = s
	}
}

// WithTransactionLog appends confirmed transfers to l.
func WithTransactionLog(l TransactionLog) Option {
	return func(c *config) {
		c.txlog = l
	}
}

// WithAddressPrefix restricts targets to addresses with the given bech32 prefix.
func WithAddressPrefix(prefix string) Option {
	return func(c *config) {
		c.addressPrefix = prefix
	}
}

// WithFiatRate sets the fiat value of one token unit.
func WithFiatRate(rate decimal.Decimal) Option {
	return func(c *config) {
		c.fiatRate = rate
	}
}

// WithClock overrides the clock used to timestamp records.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithTracerProvider overrides the global TracerProvider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider overrides the global MeterProvider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}
