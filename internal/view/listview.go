// Package view holds the polled list state shown by the dashboard tabs.
package view

import (
	"context"
	"github.com/rookgm/orderdash/internal/logger"
	"github.com/rookgm/orderdash/internal/worker"
	"go.uber.org/zap"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the refresh interval of a list view
const DefaultInterval = 5 * time.Second

// State is observable state of a list view
type State string

const (
	StateLoading State = "LOADING"
	StateLoaded  State = "LOADED"
	StateError   State = "ERROR"
)

// FetchFunc fetches the full list
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Snapshot is a consistent copy of list view state
type Snapshot[T any] struct {
	State     State     `json:"state"`
	Items     []T       `json:"items"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListView holds a list refreshed from a fetch function on a fixed interval.
// A failed refresh keeps the previously held list and sets the error message.
type ListView[T any] struct {
	name     string
	fetch    FetchFunc[T]
	interval time.Duration
	errMsg   string

	mu        sync.RWMutex
	items     []T
	err       string
	loading   bool
	updatedAt time.Time

	inflight atomic.Bool

	lifeMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	// generation increases on every Deactivate, stale responses are dropped
	generation atomic.Uint64
}

// New creates new list view. errMsg is the message displayed on failed fetch.
func New[T any](name string, fetch FetchFunc[T], interval time.Duration, errMsg string) *ListView[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &ListView[T]{
		name:     name,
		fetch:    fetch,
		interval: interval,
		errMsg:   errMsg,
		items:    []T{},
		loading:  true,
	}
}

// Activate starts fetching: once immediately, then every interval
// until Deactivate is called or ctx is done
func (v *ListView[T]) Activate(ctx context.Context) {
	v.lifeMu.Lock()
	defer v.lifeMu.Unlock()

	if v.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	v.cancel = cancel
	v.done = done

	poller := worker.NewPoller(v.name, v.interval, true, func(ctx context.Context) {
		v.Refresh(ctx)
	})

	go func() {
		defer close(done)
		poller.Run(ctx)
	}()
}

// Deactivate stops the refresh timer and waits for the poller to exit.
// Responses of requests still in flight are discarded.
func (v *ListView[T]) Deactivate() {
	v.lifeMu.Lock()
	cancel, done := v.cancel, v.done
	if cancel == nil {
		v.lifeMu.Unlock()
		return
	}
	v.generation.Add(1)
	v.cancel, v.done = nil, nil
	v.lifeMu.Unlock()

	cancel()
	<-done
}

// Active reports whether the view is polling
func (v *ListView[T]) Active() bool {
	v.lifeMu.Lock()
	defer v.lifeMu.Unlock()
	return v.cancel != nil
}

// Refresh fetches the list once. It returns false without fetching when
// another fetch is still in flight.
func (v *ListView[T]) Refresh(ctx context.Context) bool {
	if !v.inflight.CompareAndSwap(false, true) {
		logger.Log.Debug("fetch skipped, previous one in flight", zap.String("view", v.name))
		return false
	}
	defer v.inflight.Store(false)

	gen := v.generation.Load()

	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	items, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.loading = false
	if gen != v.generation.Load() || ctx.Err() != nil {
		logger.Log.Debug("fetch result discarded, view deactivated", zap.String("view", v.name))
		return true
	}

	if err != nil {
		logger.Log.Error("fetch list error", zap.String("view", v.name), zap.Error(err))
		v.err = v.errMsg
		return true
	}

	if items == nil {
		items = []T{}
	}
	v.items = items
	v.err = ""
	v.updatedAt = time.Now()
	return true
}

// Snapshot returns current state with a copy of held items
func (v *ListView[T]) Snapshot() Snapshot[T] {
	v.mu.RLock()
	defer v.mu.RUnlock()

	items := make([]T, len(v.items))
	copy(items, v.items)

	state := StateLoaded
	switch {
	case v.loading && len(v.items) == 0:
		state = StateLoading
	case v.err != "":
		state = StateError
	}

	return Snapshot[T]{
		State:     state,
		Items:     items,
		Error:     v.err,
		UpdatedAt: v.updatedAt,
	}
}
