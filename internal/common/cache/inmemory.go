package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

const cleanInterval = time.Minute

// InMemoryClient is a process-local Client backed by a sync.Map. Values are
// stored JSON-encoded so cached objects cannot be mutated through shared
// pointers. Expired keys are reaped by a background sweeper.
type InMemoryClient[T any] struct {
	entries sync.Map
	done    chan struct{}
}

type storedValue struct {
	payload []byte
	expAt   time.Time
}

func (v storedValue) expired() bool {
	return !v.expAt.IsZero() && v.expAt.Before(time.Now())
}

func NewInMemoryClient[T any]() *InMemoryClient[T] {
	c := &InMemoryClient[T]{done: make(chan struct{})}
	go c.sweep()
	return c
}

func (c *InMemoryClient[T]) Get(_ context.Context, key string) (result T, err error) {
	raw, ok := c.entries.Load(key)
	if !ok {
		return result, ErrNotExists
	}

	val := raw.(storedValue)
	if val.expired() {
		c.entries.Delete(key)
		return result, ErrNotExists
	}

	if err = json.Unmarshal(val.payload, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (c *InMemoryClient[T]) Set(_ context.Context, key string, object T, ttl time.Duration) error {
	payload, err := json.Marshal(object)
	if err != nil {
		return err
	}

	val := storedValue{payload: payload}
	if ttl > 0 {
		val.expAt = time.Now().Add(ttl)
	}

	c.entries.Store(key, val)
	return nil
}

func (c *InMemoryClient[T]) Delete(_ context.Context, key string) error {
	c.entries.Delete(key)
	return nil
}

func (c *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	result, err := c.Get(ctx, opts.Key)
	if err == nil {
		return result, nil
	}

	if opts.Callback == nil {
		return result, ErrCallbackNotProvided
	}

	result, err = opts.Callback()
	if err != nil {
		return result, err
	}

	if err := c.Set(ctx, opts.Key, result, opts.TTL); err != nil {
		return result, err
	}
	return result, nil
}

func (c *InMemoryClient[T]) Close() {
	close(c.done)
}

func (c *InMemoryClient[T]) sweep() {
	ticker := time.NewTicker(cleanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.entries.Range(func(key, raw any) bool {
				if raw.(storedValue).expired() {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}
