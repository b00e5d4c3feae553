package tokens

import (
	"sync"
	"testing"
)

func TestCache_BuildsCounterOnce(t *testing.T) {
	builds := 0
	cache := NewCacheWithFactory(func(modelID string) Counter {
		builds++
		return NewEstimatingCounter()
	})

	first := cache.CounterFor("claude-sonnet-4")
	second := cache.CounterFor("claude-sonnet-4")

	if first != second {
		t.Error("expected the same counter instance on repeat lookups")
	}
	if builds != 1 {
		t.Errorf("factory ran %d times, expected 1", builds)
	}
	if cache.Len() != 1 {
		t.Errorf("cache holds %d counters, expected 1", cache.Len())
	}
}

func TestCache_DistinctModels(t *testing.T) {
	cache := NewCacheWithFactory(func(modelID string) Counter {
		return NewEstimatingCounter()
	})

	cache.CounterFor("opus")
	cache.CounterFor("sonnet")
	cache.CounterFor("haiku")

	if cache.Len() != 3 {
		t.Errorf("cache holds %d counters, expected 3", cache.Len())
	}
}

func TestCache_Count(t *testing.T) {
	cache := NewCacheWithFactory(func(modelID string) Counter {
		return NewEstimatingCounter()
	})

	if got := cache.Count("sonnet", "test"); got != 1 {
		t.Errorf("Count = %d, expected 1", got)
	}
	if got := cache.Count("sonnet", ""); got != 0 {
		t.Errorf("Count of empty text = %d, expected 0", got)
	}
}

func TestCache_NilFactoryUsesDefault(t *testing.T) {
	cache := NewCacheWithFactory(nil)

	counter := cache.CounterFor("unknown-model-xyz")
	if counter == nil {
		t.Fatal("expected a counter for an unknown model")
	}
	if counter.Count("") != 0 {
		t.Error("empty text should count as 0 tokens")
	}
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCacheWithFactory(func(modelID string) Counter {
		return NewEstimatingCounter()
	})
	models := []string{"opus", "sonnet", "haiku", "gpt-4o"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cache.Count(models[(i+j)%len(models)], "concurrent access test")
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() != len(models) {
		t.Errorf("cache holds %d counters, expected %d", cache.Len(), len(models))
	}
}

func BenchmarkCache_CounterFor(b *testing.B) {
	cache := NewCacheWithFactory(func(modelID string) Counter {
		return NewEstimatingCounter()
	})
	cache.CounterFor("sonnet")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.CounterFor("sonnet")
	}
}
