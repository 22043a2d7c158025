package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amansinghal116/polyglotlab/internal/translator"
)

type countingLoader struct {
	loads   atomic.Int32
	delay   time.Duration
	failing atomic.Bool
}

func (l *countingLoader) Name() string { return "counting" }

func (l *countingLoader) Load(ctx context.Context, sourceCode, targetCode, modelID string) (translator.Capability, error) {
	l.loads.Add(1)
	if l.delay > 0 {
		time.Sleep(l.delay)
	}
	if l.failing.Load() {
		return nil, errors.New("load failed")
	}
	return echoCapability{prefix: fmt.Sprintf("[%s] ", targetCode)}, nil
}

type echoCapability struct {
	prefix string
}

func (c echoCapability) Translate(ctx context.Context, text string, maxLength int) (string, error) {
	return c.prefix + text, nil
}

func TestCache_GetOrLoad_Idempotent(t *testing.T) {
	loader := &countingLoader{}
	cache := NewCache(loader)
	pair := Pair{Source: "en", Target: "fr"}

	first, err := cache.GetOrLoad(context.Background(), pair)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cache.GetOrLoad(context.Background(), pair)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loader.loads.Load() != 1 {
		t.Errorf("expected exactly one load, got %d", loader.loads.Load())
	}
	if first != second {
		t.Error("expected the same capability instance from both calls")
	}
}

func TestCache_GetOrLoad_DistinctPairs(t *testing.T) {
	loader := &countingLoader{}
	cache := NewCache(loader)

	if _, err := cache.GetOrLoad(context.Background(), Pair{"en", "fr"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cache.GetOrLoad(context.Background(), Pair{"fr", "en"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loader.loads.Load() != 2 {
		t.Errorf("expected two loads for two directions, got %d", loader.loads.Load())
	}
}

func TestCache_GetOrLoad_UnsupportedPair(t *testing.T) {
	loader := &countingLoader{}
	cache := NewCache(loader)

	_, err := cache.GetOrLoad(context.Background(), Pair{"de", "sv"})
	if !errors.Is(err, ErrUnsupportedPair) {
		t.Fatalf("expected ErrUnsupportedPair, got %v", err)
	}
	if loader.loads.Load() != 0 {
		t.Error("unsupported pair must not reach the loader")
	}
}

func TestCache_ConcurrentFirstUse_LoadsOnce(t *testing.T) {
	loader := &countingLoader{delay: 20 * time.Millisecond}
	cache := NewCache(loader)
	pair := Pair{Source: "en", Target: "sv"}

	const callers = 16
	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.GetOrLoad(context.Background(), pair)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if loader.loads.Load() != 1 {
		t.Errorf("expected exactly one load under concurrent first use, got %d", loader.loads.Load())
	}
}

func TestCache_FailedLoadNotCached(t *testing.T) {
	loader := &countingLoader{}
	loader.failing.Store(true)
	cache := NewCache(loader)
	pair := Pair{Source: "en", Target: "de"}

	if _, err := cache.GetOrLoad(context.Background(), pair); err == nil {
		t.Fatal("expected load error")
	}
	if cache.Loaded(pair) {
		t.Error("failed load must not be retained")
	}

	loader.failing.Store(false)
	if _, err := cache.GetOrLoad(context.Background(), pair); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if loader.loads.Load() != 2 {
		t.Errorf("expected two load attempts, got %d", loader.loads.Load())
	}
}

func TestCache_Preload(t *testing.T) {
	loader := &countingLoader{delay: 5 * time.Millisecond}
	cache := NewCache(loader)

	pairs := []Pair{
		{"en", "fr"},
		{"en", "de"},
		{"en", "fr"}, // duplicate costs no extra load
		{"de", "sv"}, // unsupported
	}

	succeeded, errs := cache.Preload(context.Background(), pairs)
	if succeeded != 3 {
		t.Errorf("expected 3 successful preloads, got %d", succeeded)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Error(), "de->sv") {
		t.Errorf("error should name the failing pair, got %v", errs[0])
	}
	if loader.loads.Load() != 2 {
		t.Errorf("expected 2 loads (duplicate deduplicated), got %d", loader.loads.Load())
	}
}
