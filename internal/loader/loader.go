// Package loader holds the entity fetch hooks: resources that load a collection or
// a single record, keep {data, loading, error} and can be refetched on demand.
// Errors stop here; callers read them from State.
package loader

import (
	"context"
	"sync"

	"github.com/dharmayuga/dharmayuga/internal/monitoring"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/dharmayuga/dharmayuga/pkg/retry"
)

type State[T any] struct {
	Data    T      `json:"data"`
	Loading bool   `json:"loading"`
	Err     string `json:"error,omitempty"`
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

type options struct {
	logger logger.Logger
	retry  retry.Config
}

type Option func(*options)

func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithRetry(cfg retry.Config) Option {
	return func(o *options) { o.retry = cfg }
}

func buildOptions(opts []Option) options {
	o := options{
		logger: logger.Discard(),
		retry:  retry.NoRetry(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type Resource[T any] struct {
	name  string
	fetch FetchFunc[T]
	opts  options

	initial      T
	clearOnError bool

	mu     sync.RWMutex
	state  State[T]
	loaded bool
	gen    uint64
}

func newResource[T any](name string, initial T, clearOnError bool, fetch FetchFunc[T], opts []Option) *Resource[T] {
	o := buildOptions(opts)
	return &Resource[T]{
		name:         name,
		fetch:        fetch,
		opts:         o,
		initial:      initial,
		clearOnError: clearOnError,
		state:        State[T]{Data: initial, Loading: true},
	}
}

// NewCollection loads an ordered collection. Zero rows is an empty slice, never an error.
func NewCollection[T any](name string, fetch FetchFunc[[]T], opts ...Option) *Resource[[]T] {
	return newResource[[]T](name, []T{}, false, func(ctx context.Context) ([]T, error) {
		items, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	}, opts)
}

// NewSingle loads exactly one record. A fetch error leaves Data nil.
func NewSingle[T any](name string, fetch FetchFunc[*T], opts ...Option) *Resource[*T] {
	return newResource[*T](name, nil, true, fetch, opts)
}

// State returns a snapshot of the resource.
func (r *Resource[T]) State() State[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Loaded reports whether at least one fetch has finished.
func (r *Resource[T]) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Refetch runs the query again and returns the resulting state.
// A result superseded by a newer Refetch is dropped.
func (r *Resource[T]) Refetch(ctx context.Context) State[T] {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.state.Loading = true
	r.mu.Unlock()

	var data T
	err := retry.Do(ctx, r.opts.logger, r.name, func() error {
		var err error
		data, err = r.fetch(ctx)
		return err
	}, r.opts.retry)

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		return r.state
	}

	r.state.Loading = false
	r.loaded = true

	if err != nil {
		r.state.Err = errors.GetMessage(err)
		if r.clearOnError {
			r.state.Data = r.initial
		}
		monitoring.FetchFailures.WithLabelValues(r.name).Inc()
		r.opts.logger.Error("Failed to fetch", "resource", r.name, "error", err)
		return r.state
	}

	r.state.Data = data
	r.state.Err = ""
	return r.state
}

// Update applies fn to the loaded data, for local reflection of committed mutations.
func (r *Resource[T]) Update(fn func(T) T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Data = fn(r.state.Data)
}

func (r *Resource[T]) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.loaded = false
	r.state = State[T]{Data: r.initial, Loading: true}
}
