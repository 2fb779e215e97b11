package cache

import "context"

// Value caches a single remote value such as the user's preferences.
type Value[V any] struct {
	entry *entry[V]
}

func NewValue[V any](name string, fetch FetchFunc[V], opts ...Option) *Value[V] {
	return &Value[V]{entry: newEntry(name, fetch, opts)}
}

// Get returns the cached value, refreshing it once the TTL has passed. ok is
// false when nothing has ever been fetched successfully.
func (v *Value[V]) Get(ctx context.Context) (val V, ok bool, err error) {
	val, err = v.entry.get(ctx)
	return val, v.entry.status().HasValue, err
}

// Set stores val as if it had just been fetched.
func (v *Value[V]) Set(val V) {
	v.entry.set(val)
}

func (v *Value[V]) Invalidate() {
	v.entry.invalidate(false)
}

func (v *Value[V]) Reset() {
	v.entry.invalidate(true)
}

func (v *Value[V]) Status() Status {
	return v.entry.status()
}
