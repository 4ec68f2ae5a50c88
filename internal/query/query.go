package query

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Status is the lifecycle phase of a query
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// State is a snapshot of a query. Value keeps the last successful result
// while a newer request is loading.
type State[T any] struct {
	Status Status
	Value  T
	Err    error
}

// Fetcher performs one request for the given arguments
type Fetcher[A, T any] func(ctx context.Context, args A) (T, error)

// Controller owns the asynchronous lifecycle of one logical query. Only the
// most recently started request may commit its result; earlier requests are
// cancelled and their late results discarded.
type Controller[A, T any] struct {
	name   string
	fetch  Fetcher[A, T]
	logger *zap.Logger

	mu          sync.Mutex
	state       State[T]
	generation  uint64
	cancel      context.CancelFunc
	args        A
	hasArgs     bool
	subscribers []func(State[T])

	notifyMu sync.Mutex
	inflight sync.WaitGroup
}

// NewController creates an idle controller
func NewController[A, T any](name string, fetch Fetcher[A, T], logger *zap.Logger) *Controller[A, T] {
	return &Controller[A, T]{
		name:   name,
		fetch:  fetch,
		logger: logger.Named("query").With(zap.String("query", name)),
	}
}

// Run starts a request for args, superseding any request in flight
func (c *Controller[A, T]) Run(ctx context.Context, args A) {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	if c.cancel != nil {
		c.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.args = args
	c.hasArgs = true
	c.state = State[T]{Status: Loading, Value: c.state.Value}
	c.inflight.Add(1)
	c.mu.Unlock()

	c.notify()

	go func() {
		defer c.inflight.Done()
		defer cancel()
		value, err := c.fetch(reqCtx, args)
		c.settle(generation, value, err)
	}()
}

// Refetch reruns the last request. It does nothing before the first Run.
func (c *Controller[A, T]) Refetch(ctx context.Context) {
	c.mu.Lock()
	args, ok := c.args, c.hasArgs
	c.mu.Unlock()

	if ok {
		c.Run(ctx, args)
	}
}

// Clear returns to Idle with no value; pending results are discarded
func (c *Controller[A, T]) Clear() {
	c.mu.Lock()
	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = State[T]{}
	c.mu.Unlock()

	c.notify()
}

// State returns the current snapshot
func (c *Controller[A, T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to be called after every state change. fn must not
// call Run, Refetch or Clear.
func (c *Controller[A, T]) Subscribe(fn func(State[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Wait blocks until every started request has settled
func (c *Controller[A, T]) Wait() {
	c.inflight.Wait()
}

func (c *Controller[A, T]) settle(generation uint64, value T, err error) {
	c.mu.Lock()
	if generation != c.generation {
		c.mu.Unlock()
		c.logger.Debug("discarding superseded result", zap.Uint64("generation", generation))
		return
	}
	c.cancel = nil
	if err != nil {
		c.logger.Warn("query failed", zap.Error(err))
		c.state = State[T]{Status: Error, Err: err}
	} else {
		c.state = State[T]{Status: Success, Value: value}
	}
	c.mu.Unlock()

	c.notify()
}

// notify delivers the current state, so the last delivery always matches State()
func (c *Controller[A, T]) notify() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	state := c.state
	subscribers := make([]func(State[T]), len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(state)
	}
}
