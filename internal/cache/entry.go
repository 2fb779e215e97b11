// Package cache holds last-known-good copies of remote resources for a fixed
// TTL and keeps serving them when a refresh fails.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

// DefaultTTL is how long a fetched value is served without asking the store again.
const DefaultTTL = 60 * time.Second

const flightKey = "fetch"

type FetchFunc[V any] func(ctx context.Context) (V, error)

type Option func(*options)

type options struct {
	ttl     time.Duration
	now     func() time.Time
	logger  *zap.Logger
	onError func(name string, err error)
}

func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithErrorHook is called for every failed refresh, including the ones that
// were absorbed by serving stale data.
func WithErrorHook(hook func(name string, err error)) Option {
	return func(o *options) {
		o.onError = hook
	}
}

func buildOptions(opts []Option) options {
	o := options{ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Status describes what a cache currently holds.
type Status struct {
	Name      string
	FetchedAt time.Time
	HasValue  bool
	Stale     bool
	LastErr   error
}

// IsHard reports whether a fetch error must reach the caller. Unauthorized,
// malformed and upstream errors are hard; anything else is a transient
// transport failure that the cache absorbs.
func IsHard(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrMalformedResponse) ||
		errors.Is(err, domain.ErrUpstream)
}

// entry is the TTL and sequencing core shared by Collection and Value.
type entry[V any] struct {
	name  string
	opts  options
	fetch FetchFunc[V]

	flight singleflight.Group

	mu         sync.Mutex
	value      V
	hasValue   bool
	fetchedAt  time.Time
	lastErr    error
	issued     uint64
	generation uint64
}

func newEntry[V any](name string, fetch FetchFunc[V], opts []Option) *entry[V] {
	return &entry[V]{name: name, fetch: fetch, opts: buildOptions(opts)}
}

func (e *entry[V]) freshLocked(now time.Time) bool {
	return e.hasValue && now.Sub(e.fetchedAt) < e.opts.ttl
}

// get returns the cached value while fresh and refreshes it otherwise.
// Concurrent callers of an expired entry share one fetch.
func (e *entry[V]) get(ctx context.Context) (V, error) {
	e.mu.Lock()
	if e.freshLocked(e.opts.now()) {
		v := e.value
		e.mu.Unlock()
		return v, nil
	}
	e.mu.Unlock()

	res, err, _ := e.flight.Do(flightKey, func() (any, error) {
		return e.refresh(ctx)
	})
	v, _ := res.(V)
	return v, err
}

func (e *entry[V]) refresh(ctx context.Context) (V, error) {
	e.mu.Lock()
	e.issued++
	seq, gen := e.issued, e.generation
	e.mu.Unlock()

	fetched, err := e.fetch(ctx)

	e.mu.Lock()
	// A newer fetch or a local mutation happened while this one was in flight.
	superseded := seq != e.issued || gen != e.generation
	if err != nil {
		if !superseded {
			e.lastErr = err
		}
		current, stale := e.value, e.hasValue
		e.mu.Unlock()

		if superseded {
			e.logSuperseded(seq)
		} else {
			e.report(err, stale)
		}
		if IsHard(err) {
			return current, err
		}
		return current, nil
	}
	defer e.mu.Unlock()

	if superseded {
		e.logSuperseded(seq)
		if e.hasValue {
			return e.value, nil
		}
		return fetched, nil
	}

	e.value = fetched
	e.hasValue = true
	e.fetchedAt = e.opts.now()
	e.lastErr = nil
	return e.value, nil
}

func (e *entry[V]) logSuperseded(seq uint64) {
	e.logger().Debug("discarding superseded fetch",
		zap.String("cache", e.name),
		zap.Uint64("seq", seq),
	)
}

func (e *entry[V]) report(err error, stale bool) {
	e.logger().Warn("cache refresh failed",
		zap.String("cache", e.name),
		zap.Bool("serving_stale", stale),
		zap.Bool("hard", IsHard(err)),
		zap.Error(err),
	)
	if e.opts.onError != nil {
		e.opts.onError(e.name, err)
	}
}

func (e *entry[V]) logger() *zap.Logger {
	if e.opts.logger != nil {
		return e.opts.logger
	}
	return zap.L()
}

// mutate applies fn to the cached value under the lock and supersedes any
// fetch in flight. fn only runs when a value is cached.
func (e *entry[V]) mutate(fn func(V) V) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.supersedeLocked()
	if e.hasValue {
		e.value = fn(e.value)
	}
}

// set stores v as a freshly fetched value.
func (e *entry[V]) set(v V) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.supersedeLocked()
	e.value = v
	e.hasValue = true
	e.fetchedAt = e.opts.now()
	e.lastErr = nil
}

func (e *entry[V]) invalidate(clearErr bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.supersedeLocked()
	var zero V
	e.value = zero
	e.hasValue = false
	e.fetchedAt = time.Time{}
	if clearErr {
		e.lastErr = nil
	}
}

func (e *entry[V]) supersedeLocked() {
	e.generation++
	e.flight.Forget(flightKey)
}

func (e *entry[V]) status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{
		Name:      e.name,
		FetchedAt: e.fetchedAt,
		HasValue:  e.hasValue,
		Stale:     e.hasValue && !e.freshLocked(e.opts.now()),
		LastErr:   e.lastErr,
	}
}
