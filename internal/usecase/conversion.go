package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wallet-dashboard/internal/clock"
	"wallet-dashboard/internal/domain"
)

// DefaultDebounce is the quiet period before a conversion request is sent.
const DefaultDebounce = 500 * time.Millisecond

// ConversionPhase is the estimator's state machine position.
type ConversionPhase string

const (
	PhaseIdle       ConversionPhase = "idle"
	PhaseNone       ConversionPhase = "none"
	PhaseDebouncing ConversionPhase = "debouncing"
	PhaseInFlight   ConversionPhase = "in-flight"
	PhaseSettled    ConversionPhase = "settled"
	PhaseFailed     ConversionPhase = "failed"
)

// Pending reports whether a quote for the latest input is still coming.
func (p ConversionPhase) Pending() bool {
	return p == PhaseDebouncing || p == PhaseInFlight
}

// ConversionInput is the raw user input the estimator last saw.
type ConversionInput struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// ConversionState is a snapshot for the presentation layer. Quote is the
// last settled quote; Stale marks it as not matching the current input.
// Err is kept apart from Quote so both stay observable after a failure.
type ConversionState struct {
	Phase ConversionPhase         `json:"phase"`
	Input ConversionInput         `json:"input"`
	Quote *domain.ConversionQuote `json:"quote,omitempty"`
	Stale bool                    `json:"stale"`
	Err   error                   `json:"-"`
}

// ConversionEstimator debounces conversion requests as the user types.
// Only the response for the latest input is ever applied.
type ConversionEstimator struct {
	converter Converter
	clock     clock.Clock
	window    time.Duration
	logger    *zap.Logger
	listener  func(ConversionState)

	mu         sync.Mutex
	generation uint64
	timer      clock.Timer
	cancel     context.CancelFunc
	lastQuote  *domain.ConversionQuote
	state      ConversionState
	closed     bool

	notifyMu sync.Mutex
}

// EstimatorOption configures a ConversionEstimator.
type EstimatorOption func(*ConversionEstimator)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) EstimatorOption {
	return func(e *ConversionEstimator) { e.window = d }
}

// WithListener registers f to receive every state transition.
func WithListener(f func(ConversionState)) EstimatorOption {
	return func(e *ConversionEstimator) { e.listener = f }
}

// NewConversionEstimator creates an idle estimator quoting through converter.
func NewConversionEstimator(converter Converter, clk clock.Clock, logger *zap.Logger, opts ...EstimatorOption) *ConversionEstimator {
	e := &ConversionEstimator{
		converter: converter,
		clock:     clk,
		window:    DefaultDebounce,
		logger:    logger,
		state:     ConversionState{Phase: PhaseIdle},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.window <= 0 {
		e.window = DefaultDebounce
	}
	return e
}

// Update records new input and restarts the debounce window. Empty,
// non-numeric or non-positive amounts settle to PhaseNone immediately
// without a request; so do invalid currencies, with Err set.
func (e *ConversionEstimator) Update(amount, from, to string) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.dropPendingLocked()
	gen := e.generation
	input := ConversionInput{Amount: amount, From: from, To: to}

	value, ok := parsePositiveAmount(amount)
	if !ok {
		e.state = ConversionState{Phase: PhaseNone, Input: input}
		snapshot := e.state
		e.mu.Unlock()
		e.notify(snapshot)
		return
	}
	fromCode, err := domain.NormalizeCurrency(from)
	var toCode string
	if err == nil {
		toCode, err = domain.NormalizeCurrency(to)
	}
	if err != nil {
		e.state = ConversionState{Phase: PhaseNone, Input: input, Err: err}
		snapshot := e.state
		e.mu.Unlock()
		e.notify(snapshot)
		return
	}

	e.state = e.pendingStateLocked(PhaseDebouncing, input)
	e.timer = e.clock.AfterFunc(e.window, func() { e.fire(gen, value, fromCode, toCode) })
	snapshot := e.state
	e.mu.Unlock()
	e.notify(snapshot)
}

// State returns the current snapshot.
func (e *ConversionEstimator) State() ConversionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Close stops the debounce timer and drops any in-flight request.
func (e *ConversionEstimator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.dropPendingLocked()
}

// dropPendingLocked invalidates every outstanding timer and request by
// moving to a new generation.
func (e *ConversionEstimator) dropPendingLocked() {
	e.generation++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *ConversionEstimator) pendingStateLocked(phase ConversionPhase, input ConversionInput) ConversionState {
	return ConversionState{
		Phase: phase,
		Input: input,
		Quote: e.lastQuote,
		Stale: e.lastQuote != nil,
	}
}

func (e *ConversionEstimator) fire(gen uint64, amount decimal.Decimal, from, to string) {
	e.mu.Lock()
	if gen != e.generation || e.closed {
		e.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.timer = nil
	e.state = e.pendingStateLocked(PhaseInFlight, e.state.Input)
	snapshot := e.state
	e.mu.Unlock()
	e.notify(snapshot)

	go e.request(ctx, cancel, gen, amount, from, to)
}

func (e *ConversionEstimator) request(ctx context.Context, cancel context.CancelFunc, gen uint64, amount decimal.Decimal, from, to string) {
	defer cancel()
	quote, err := e.converter.Convert(ctx, amount, from, to)

	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		e.logger.Debug("discarding superseded conversion response",
			zap.String("amount", amount.String()), zap.String("from", from), zap.String("to", to))
		return
	}
	e.cancel = nil
	if err != nil {
		e.logger.Warn("conversion failed", zap.String("from", from), zap.String("to", to), zap.Error(err))
		e.state = ConversionState{
			Phase: PhaseFailed,
			Input: e.state.Input,
			Quote: e.lastQuote,
			Stale: e.lastQuote != nil,
			Err:   err,
		}
	} else {
		e.lastQuote = quote
		e.state = ConversionState{Phase: PhaseSettled, Input: e.state.Input, Quote: quote}
	}
	snapshot := e.state
	e.mu.Unlock()
	e.notify(snapshot)
}

func (e *ConversionEstimator) notify(s ConversionState) {
	if e.listener == nil {
		return
	}
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()
	e.listener(s)
}

func parsePositiveAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
