package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/amansinghal116/polyglotlab/internal/translator"
)

// Cache lazily loads and retains one translation capability per language
// pair for the lifetime of the process. The check-then-load sequence is
// serialized per pair: concurrent first use of a cold pair triggers exactly
// one load, with the other callers waiting for its result. Failed loads are
// not retained, so a later call may retry.
type Cache struct {
	loader translator.Loader

	mu       sync.Mutex
	loaded   map[Pair]translator.Capability
	inflight map[Pair]chan struct{}
}

func NewCache(loader translator.Loader) *Cache {
	return &Cache{
		loader:   loader,
		loaded:   make(map[Pair]translator.Capability),
		inflight: make(map[Pair]chan struct{}),
	}
}

// GetOrLoad returns the capability for a pair, loading it on first use.
// Unsupported pairs fail with ErrUnsupportedPair before any load is
// attempted.
func (c *Cache) GetOrLoad(ctx context.Context, p Pair) (translator.Capability, error) {
	modelID, err := Resolve(p)
	if err != nil {
		return nil, err
	}

	for {
		c.mu.Lock()
		if capability, ok := c.loaded[p]; ok {
			c.mu.Unlock()
			return capability, nil
		}
		if done, ok := c.inflight[p]; ok {
			c.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			// The loading call finished; re-check whether it succeeded.
			continue
		}
		done := make(chan struct{})
		c.inflight[p] = done
		c.mu.Unlock()

		capability, err := c.loader.Load(ctx, p.Source, p.Target, modelID)

		c.mu.Lock()
		delete(c.inflight, p)
		if err == nil {
			c.loaded[p] = capability
		}
		c.mu.Unlock()
		close(done)

		if err != nil {
			return nil, fmt.Errorf("failed to load model for %s: %w", p, err)
		}
		return capability, nil
	}
}

// Loaded reports whether a pair's capability is already in the cache.
func (c *Cache) Loaded(p Pair) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.loaded[p]
	return ok
}

// Preload loads the given pairs concurrently and returns how many loaded
// successfully. Errors are collected per pair rather than aborting the rest;
// the per-pair serialization in GetOrLoad still holds, so duplicate pairs in
// the list cost only one load.
func (c *Cache) Preload(ctx context.Context, pairs []Pair) (int, []error) {
	type outcome struct {
		pair Pair
		err  error
	}

	results := make(chan outcome, len(pairs))

	var wg sync.WaitGroup
	for _, p := range pairs {
		wg.Add(1)
		go func(p Pair) {
			defer wg.Done()
			_, err := c.GetOrLoad(ctx, p)
			results <- outcome{pair: p, err: err}
		}(p)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var errs []error
	succeeded := 0
	for r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.pair, r.err))
		} else {
			succeeded++
		}
	}
	return succeeded, errs
}
