package cache

import "context"

// Collection caches a list of records keyed by id.
type Collection[T any] struct {
	entry *entry[[]T]
	keyOf func(T) string
}

func New[T any](name string, fetch FetchFunc[[]T], keyOf func(T) string, opts ...Option) *Collection[T] {
	return &Collection[T]{
		entry: newEntry(name, fetch, opts),
		keyOf: keyOf,
	}
}

// Get returns the cached records, refreshing them once the TTL has passed.
// The slice is always usable: on a failed refresh it holds the last known
// records, or none. A non-nil error means the failure was hard (see IsHard).
func (c *Collection[T]) Get(ctx context.Context) ([]T, error) {
	items, err := c.entry.get(ctx)
	out := make([]T, len(items))
	copy(out, items)
	return out, err
}

// Upsert replaces the record with item's key, or appends item. The TTL window
// is left as is.
func (c *Collection[T]) Upsert(item T) {
	key := c.keyOf(item)
	c.entry.mutate(func(items []T) []T {
		out := make([]T, 0, len(items)+1)
		replaced := false
		for _, existing := range items {
			if c.keyOf(existing) != key {
				out = append(out, existing)
				continue
			}
			if !replaced {
				out = append(out, item)
				replaced = true
			}
		}
		if !replaced {
			out = append(out, item)
		}
		return out
	})
}

func (c *Collection[T]) Remove(key string) {
	c.entry.mutate(func(items []T) []T {
		out := make([]T, 0, len(items))
		for _, existing := range items {
			if c.keyOf(existing) != key {
				out = append(out, existing)
			}
		}
		return out
	})
}

// Find returns the cached record with key without triggering a fetch.
func (c *Collection[T]) Find(key string) (T, bool) {
	c.entry.mu.Lock()
	defer c.entry.mu.Unlock()
	for _, item := range c.entry.value {
		if c.keyOf(item) == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Invalidate drops the cached records so the next Get fetches.
func (c *Collection[T]) Invalidate() {
	c.entry.invalidate(false)
}

// Reset forgets everything, including the last error.
func (c *Collection[T]) Reset() {
	c.entry.invalidate(true)
}

func (c *Collection[T]) Status() Status {
	return c.entry.status()
}
