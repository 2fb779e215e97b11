package cache_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/cache"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type item struct {
	ID    string
	Title string
}

func keyOf(i item) string {
	return i.ID
}

// scriptedFetcher returns the queued results in order, repeating the last one.
type scriptedFetcher struct {
	mu      sync.Mutex
	calls   int
	results []fetchResult
}

type fetchResult struct {
	items []item
	err   error
}

func (f *scriptedFetcher) push(items []item, err error) {
	f.mu.Lock()
	f.results = append(f.results, fetchResult{items: items, err: err})
	f.mu.Unlock()
}

func (f *scriptedFetcher) fetch(context.Context) ([]item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	r := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return r.items, r.err
}

func (f *scriptedFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newCollection(f *scriptedFetcher, clock *fakeClock, opts ...cache.Option) *cache.Collection[item] {
	opts = append([]cache.Option{cache.WithClock(clock.Now)}, opts...)
	return cache.New("items", f.fetch, keyOf, opts...)
}

var errNetwork = errors.New("dial tcp: connection refused")

func TestCollection_ServesFromCacheWithinTTL(t *testing.T) {
	clock := newFakeClock()
	f := &scriptedFetcher{}
	f.push([]item{{ID: "1", Title: "a"}}, nil)
	c := newCollection(f, clock)

	first, err := c.Get(context.Background())
	require.NoError(t, err)
	clock.Advance(59 * time.Second)
	second, err := c.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.Calls())
}

func TestCollection_RefetchesAfterTTL(t *testing.T) {
	clock := newFakeClock()
	f := &scriptedFetcher{}
	f.push([]item{{ID: "1", Title: "a"}}, nil)
	f.push([]item{{ID: "1", Title: "b"}}, nil)
	c := newCollection(f, clock)

	_, err := c.Get(context.Background())
	require.NoError(t, err)
	clock.Advance(cache.DefaultTTL)
	got, err := c.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []item{{ID: "1", Title: "b"}}, got)
	assert.Equal(t, 2, f.Calls())
}

func TestCollection_StaleFallbackOnTransientFailure(t *testing.T) {
	clock := newFakeClock()
	f := &scriptedFetcher{}
	f.push([]item{{ID: "1", Title: "a"}}, nil)
	f.push(nil, errNetwork)

	var hooked []error
	c := newCollection(f, clock, cache.WithErrorHook(func(name string, err error) {
		hooked = append(hooked, err)
	}))

	v, err := c.Get(context.Background())
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)

	got, err := c.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, v, got)
	status := c.Status()
	assert.True(t, status.HasValue)
	assert.True(t, status.Stale)
	assert.ErrorIs(t, status.LastErr, errNetwork)
	assert.Equal(t, []error{errNetwork}, hooked)
}

func TestCollection_EmptyWhenNothingCachedAndFetchFails(t *testing.T) {
	f := &scriptedFetcher{}
	f.push(nil, errNetwork)
	c := newCollection(f, newFakeClock())

	got, err := c.Get(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.False(t, c.Status().HasValue)
	assert.ErrorIs(t, c.Status().LastErr, errNetwork)
}

func TestCollection_HardErrorsReachCallerAndKeepCache(t *testing.T) {
	for _, hard := range []error{domain.ErrUnauthorized, domain.ErrMalformedResponse, domain.ErrUpstream} {
		t.Run(hard.Error(), func(t *testing.T) {
			clock := newFakeClock()
			f := &scriptedFetcher{}
			f.push([]item{{ID: "1", Title: "a"}}, nil)
			f.push(nil, fmt.Errorf("GET /tasks: %w", hard))
			c := newCollection(f, clock)

			_, err := c.Get(context.Background())
			require.NoError(t, err)
			clock.Advance(2 * time.Minute)

			got, err := c.Get(context.Background())

			require.ErrorIs(t, err, hard)
			assert.Equal(t, []item{{ID: "1", Title: "a"}}, got)
			assert.True(t, c.Status().HasValue)
		})
	}
}

func TestCollection_UpsertReplacesExistingVersionOnce(t *testing.T) {
	f := &scriptedFetcher{}
	f.push([]item{{ID: "1", Title: "old"}, {ID: "2", Title: "other"}}, nil)
	c := newCollection(f, newFakeClock())
	_, err := c.Get(context.Background())
	require.NoError(t, err)

	c.Upsert(item{ID: "1", Title: "new"})
	got, err := c.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "1", Title: "new"}, {ID: "2", Title: "other"}}, got)
	assert.Equal(t, 1, f.Calls())
}

func TestCollection_UpsertAppendsNewItem(t *testing.T) {
	f := &scriptedFetcher{}
	f.push([]item{{ID: "1"}}, nil)
	c := newCollection(f, newFakeClock())
	_, err := c.Get(context.Background())
	require.NoError(t, err)

	c.Upsert(item{ID: "2"})
	got, _ := c.Get(context.Background())

	assert.Equal(t, []item{{ID: "1"}, {ID: "2"}}, got)
}

func TestCollection_Remove(t *testing.T) {
	f := &scriptedFetcher{}
	f.push([]item{{ID: "1"}, {ID: "2"}}, nil)
	c := newCollection(f, newFakeClock())
	_, err := c.Get(context.Background())
	require.NoError(t, err)

	c.Remove("1")
	got, _ := c.Get(context.Background())

	assert.Equal(t, []item{{ID: "2"}}, got)
	_, found := c.Find("1")
	assert.False(t, found)
}

func TestCollection_InvalidateForcesFetch(t *testing.T) {
	f := &scriptedFetcher{}
	f.push([]item{{ID: "1"}}, nil)
	c := newCollection(f, newFakeClock())
	_, err := c.Get(context.Background())
	require.NoError(t, err)

	c.Invalidate()
	_, err = c.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, f.Calls())
}

func TestCollection_ResetClearsError(t *testing.T) {
	f := &scriptedFetcher{}
	f.push(nil, errNetwork)
	c := newCollection(f, newFakeClock())
	_, _ = c.Get(context.Background())
	require.Error(t, c.Status().LastErr)

	c.Reset()

	assert.NoError(t, c.Status().LastErr)
	assert.False(t, c.Status().HasValue)
}

func TestCollection_GetReturnsCopy(t *testing.T) {
	f := &scriptedFetcher{}
	f.push([]item{{ID: "1", Title: "a"}}, nil)
	c := newCollection(f, newFakeClock())

	got, _ := c.Get(context.Background())
	got[0].Title = "mutated"
	again, _ := c.Get(context.Background())

	assert.Equal(t, "a", again[0].Title)
}

func TestCollection_DiscardsFetchSupersededByInvalidate(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex
	fetch := func(context.Context) ([]item, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(started)
			<-release
			return []item{{ID: "1", Title: "late"}}, nil
		}
		return []item{{ID: "1", Title: "fresh"}}, nil
	}
	c := cache.New("items", fetch, keyOf)

	done := make(chan []item)
	go func() {
		got, _ := c.Get(context.Background())
		done <- got
	}()
	<-started
	c.Invalidate()
	close(release)

	late := <-done
	assert.Equal(t, "late", late[0].Title)
	assert.False(t, c.Status().HasValue, "superseded result must not be stored")

	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", got[0].Title)
}

func TestCollection_FailedFetchAfterResetLeavesNoError(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var hooked int
	fetch := func(context.Context) ([]item, error) {
		close(started)
		<-release
		return nil, errNetwork
	}
	c := cache.New("items", fetch, keyOf, cache.WithErrorHook(func(string, error) { hooked++ }))

	done := make(chan error)
	go func() {
		_, err := c.Get(context.Background())
		done <- err
	}()
	<-started
	c.Reset()
	close(release)

	require.NoError(t, <-done)
	st := c.Status()
	assert.NoError(t, st.LastErr, "a failure from before the reset must not be recorded")
	assert.False(t, st.HasValue)
	assert.Zero(t, hooked)
}

func TestCollection_ConcurrentAccess(t *testing.T) {
	f := &scriptedFetcher{}
	f.push([]item{{ID: "seed"}}, nil)
	clock := newFakeClock()
	c := newCollection(f, clock)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = c.Get(context.Background())
			c.Upsert(item{ID: fmt.Sprintf("%d", i)})
			clock.Advance(time.Second)
			_, _ = c.Get(context.Background())
		}(i)
	}
	wg.Wait()

	got, err := c.Get(context.Background())
	require.NoError(t, err)
	seen := map[string]int{}
	for _, it := range got {
		seen[it.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %s cached %d times", id, n)
	}
}

func TestValue_GetAndSet(t *testing.T) {
	clock := newFakeClock()
	calls := 0
	v := cache.NewValue("prefs", func(context.Context) (string, error) {
		calls++
		if calls > 1 {
			return "", errNetwork
		}
		return "monday", nil
	}, cache.WithClock(clock.Now))

	got, ok, err := v.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "monday", got)

	v.Set("sunday")
	got, _, _ = v.Get(context.Background())
	assert.Equal(t, "sunday", got)
	assert.Equal(t, 1, calls)

	clock.Advance(time.Hour)
	got, ok, err = v.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sunday", got)
}

func TestValue_NotOKWhenNeverFetched(t *testing.T) {
	v := cache.NewValue("prefs", func(context.Context) (int, error) {
		return 0, errNetwork
	})

	_, ok, err := v.Get(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGroup_UpsertMovesItemBetweenPartitions(t *testing.T) {
	data := map[string][]item{
		"2026-03-11": {{ID: "1", Title: "moving"}},
		"2026-03-12": {{ID: "2", Title: "stays"}},
	}
	g := cache.NewGroup("blocks", func(_ context.Context, part string) ([]item, error) {
		return data[part], nil
	}, keyOf)

	_, err := g.Get(context.Background(), "2026-03-11")
	require.NoError(t, err)
	_, err = g.Get(context.Background(), "2026-03-12")
	require.NoError(t, err)

	g.Upsert("2026-03-12", item{ID: "1", Title: "moved"})

	first, _ := g.Get(context.Background(), "2026-03-11")
	second, _ := g.Get(context.Background(), "2026-03-12")
	assert.Empty(t, first)
	assert.Equal(t, []item{{ID: "2", Title: "stays"}, {ID: "1", Title: "moved"}}, second)

	found, ok := g.Find("1")
	require.True(t, ok)
	assert.Equal(t, "moved", found.Title)

	g.Remove("1")
	second, _ = g.Get(context.Background(), "2026-03-12")
	assert.Equal(t, []item{{ID: "2", Title: "stays"}}, second)
}

func TestGroup_Reset(t *testing.T) {
	calls := 0
	g := cache.NewGroup("blocks", func(_ context.Context, part string) ([]item, error) {
		calls++
		return []item{{ID: part}}, nil
	}, keyOf)

	_, _ = g.Get(context.Background(), "a")
	g.Reset()
	_, _ = g.Get(context.Background(), "a")

	assert.Equal(t, 2, calls)
}
