// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Status is where a query is in its lifecycle
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the state of one query as seen by a page
type Result[T any] struct {
	Status Status
	Data   T
	Err    error
}

func (r Result[T]) IsLoading() bool { return r.Status == StatusLoading }
func (r Result[T]) IsError() bool   { return r.Status == StatusError }
func (r Result[T]) IsSuccess() bool { return r.Status == StatusSuccess }

// Loading is the result of a query that has not settled, or is disabled
func Loading[T any]() Result[T] {
	return Result[T]{Status: StatusLoading}
}

type entry struct {
	done      chan struct{}
	value     any
	err       error
	settledAt time.Time

	// refreshing is set on a stale entry while its replacement is in flight;
	// guarded by Cache.mu
	refreshing bool
}

// Cache stores query results by key and shares in-flight calls
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry

	ttl          time.Duration
	fetchTimeout time.Duration
	now          func() time.Time
}

func NewCache(ttl, fetchTimeout time.Duration) *Cache {
	return &Cache{
		entries:      make(map[string]*entry),
		ttl:          ttl,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

// Fetch returns the cached result for key, calling fn when there is no
// entry. At most one call per key is in flight. The call is detached from
// ctx: it keeps running after the caller stops waiting and its result is
// cached. Fetch waits up to wait for the call to settle, then reports Loading.
// Past the TTL the old value is still returned while fn refetches it in the
// background.
func Fetch[T any](ctx context.Context, c *Cache, key string, wait time.Duration, fn func(context.Context) (T, error)) Result[T] {
	e := c.lookup(key, func(fetchCtx context.Context) (any, error) {
		return fn(fetchCtx)
	})

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-e.done:
	case <-timer.C:
		slog.Debug("query still loading", "key", key, "waited", wait)
		return Loading[T]()
	case <-ctx.Done():
		return Loading[T]()
	}

	if e.err != nil {
		return Result[T]{Status: StatusError, Err: e.err}
	}
	data, ok := e.value.(T)
	if !ok {
		return Result[T]{Status: StatusError, Err: fmt.Errorf("query %q: cached %T, want %T", key, e.value, data)}
	}
	return Result[T]{Status: StatusSuccess, Data: data}
}

func (c *Cache) lookup(key string, fn func(context.Context) (any, error)) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if ok && !settled(e) {
		return e
	}
	if ok && e.err == nil {
		if c.now().Sub(e.settledAt) >= c.ttl && !e.refreshing {
			// Keep serving the stale value until the refetch succeeds
			e.refreshing = true
			go c.run(key, &entry{done: make(chan struct{})}, e, fn)
		}
		return e
	}

	e = &entry{done: make(chan struct{})}
	c.entries[key] = e
	go c.run(key, e, nil, fn)
	return e
}

func settled(e *entry) bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// run settles e. When e refreshes stale, e replaces stale only on success;
// a failed refresh keeps stale and lets the next lookup try again.
func (c *Cache) run(key string, e, stale *entry, fn func(context.Context) (any, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	value, err := fn(ctx)
	if err != nil {
		slog.Debug("query failed", "key", key, "error", err)
	}

	c.mu.Lock()
	e.value = value
	e.err = err
	e.settledAt = c.now()
	switch {
	case stale != nil && err == nil:
		if c.entries[key] == stale {
			c.entries[key] = e
		}
	case stale != nil:
		stale.refreshing = false
	case err != nil && c.entries[key] == e:
		delete(c.entries, key)
	}
	c.mu.Unlock()
	close(e.done)
}

// Len reports the number of entries, in flight or settled
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
