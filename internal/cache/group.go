package cache

import (
	"context"
	"fmt"
	"sync"
)

type PartitionFetchFunc[T any] func(ctx context.Context, partition string) ([]T, error)

// Group is a set of collections sharing a fetcher, one per partition, e.g.
// time blocks per calendar date.
type Group[T any] struct {
	name  string
	fetch PartitionFetchFunc[T]
	keyOf func(T) string
	opts  []Option

	mu    sync.Mutex
	parts map[string]*Collection[T]
}

func NewGroup[T any](name string, fetch PartitionFetchFunc[T], keyOf func(T) string, opts ...Option) *Group[T] {
	return &Group[T]{
		name:  name,
		fetch: fetch,
		keyOf: keyOf,
		opts:  opts,
		parts: make(map[string]*Collection[T]),
	}
}

func (g *Group[T]) partition(part string) *Collection[T] {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.parts[part]
	if !ok {
		c = New(fmt.Sprintf("%s[%s]", g.name, part), func(ctx context.Context) ([]T, error) {
			return g.fetch(ctx, part)
		}, g.keyOf, g.opts...)
		g.parts[part] = c
	}
	return c
}

func (g *Group[T]) snapshot() []*Collection[T] {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Collection[T], 0, len(g.parts))
	for _, c := range g.parts {
		out = append(out, c)
	}
	return out
}

func (g *Group[T]) Get(ctx context.Context, part string) ([]T, error) {
	return g.partition(part).Get(ctx)
}

// Upsert places item in part and removes it from every other partition, so a
// record that moved keeps exactly one cached copy.
func (g *Group[T]) Upsert(part string, item T) {
	target := g.partition(part)
	key := g.keyOf(item)
	for _, c := range g.snapshot() {
		if c != target {
			c.Remove(key)
		}
	}
	target.Upsert(item)
}

func (g *Group[T]) Remove(key string) {
	for _, c := range g.snapshot() {
		c.Remove(key)
	}
}

// Find looks key up in every partition without fetching.
func (g *Group[T]) Find(key string) (T, bool) {
	for _, c := range g.snapshot() {
		if item, ok := c.Find(key); ok {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (g *Group[T]) Invalidate(part string) {
	g.partition(part).Invalidate()
}

func (g *Group[T]) InvalidateAll() {
	for _, c := range g.snapshot() {
		c.Invalidate()
	}
}

// Reset drops every partition.
func (g *Group[T]) Reset() {
	for _, c := range g.snapshot() {
		c.Reset()
	}
	g.mu.Lock()
	g.parts = make(map[string]*Collection[T])
	g.mu.Unlock()
}

func (g *Group[T]) Status(part string) Status {
	return g.partition(part).Status()
}
