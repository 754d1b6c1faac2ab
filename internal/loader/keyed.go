package loader

import (
	"context"
	"slices"
	"sync"
)

type KeyedFetchFunc[T any] func(ctx context.Context, keys []string) (T, error)

// Keyed is a resource parameterized by parent identifiers. It refetches when the
// identifiers change and never fetches while any of them is empty.
type Keyed[T any] struct {
	*Resource[T]

	mu   sync.Mutex
	keys []string
}

func newKeyed[T any](build func(fetch FetchFunc[T]) *Resource[T], fetch KeyedFetchFunc[T]) *Keyed[T] {
	k := &Keyed[T]{}
	k.Resource = build(func(ctx context.Context) (T, error) {
		return fetch(ctx, k.Keys())
	})
	return k
}

func NewKeyedCollection[T any](name string, fetch KeyedFetchFunc[[]T], opts ...Option) *Keyed[[]T] {
	return newKeyed(func(f FetchFunc[[]T]) *Resource[[]T] {
		return NewCollection[T](name, f, opts...)
	}, fetch)
}

func NewKeyedSingle[T any](name string, fetch KeyedFetchFunc[*T], opts ...Option) *Keyed[*T] {
	return newKeyed(func(f FetchFunc[*T]) *Resource[*T] {
		return NewSingle[T](name, f, opts...)
	}, fetch)
}

func (k *Keyed[T]) Keys() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return slices.Clone(k.keys)
}

// SetKeys points the resource at new parent identifiers and fetches if they changed.
// It returns false without fetching when any key is empty.
func (k *Keyed[T]) SetKeys(ctx context.Context, keys ...string) bool {
	if !validKeys(keys) {
		return false
	}

	k.mu.Lock()
	if slices.Equal(k.keys, keys) && k.Resource.Loaded() {
		k.mu.Unlock()
		return true
	}
	k.keys = slices.Clone(keys)
	k.mu.Unlock()

	k.Resource.reset()
	k.Resource.Refetch(ctx)
	return true
}

// Refetch reloads the current keys; it is a no-op until valid keys are set.
func (k *Keyed[T]) Refetch(ctx context.Context) State[T] {
	if !validKeys(k.Keys()) {
		return k.State()
	}
	return k.Resource.Refetch(ctx)
}

func validKeys(keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, key := range keys {
		if key == "" {
			return false
		}
	}
	return true
}
