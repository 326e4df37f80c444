package search

import (
	"context"
	"sync"
	"time"
)

// EngineResult holds one engine's outcome for a query.
type EngineResult struct {
	Engine string
	URLs   []string
	Err    error
}

// MultiResult aggregates a fan-out of one query across engines.
type MultiResult struct {
	// URLs are the merged results, unique, in first-seen order across
	// engines in construction order.
	URLs     []string
	ByEngine []EngineResult
	Duration time.Duration
}

// Multi queries several engines with the same query.
type Multi struct {
	engines []Engine
}

// NewMulti creates a Multi over the given engines.
func NewMulti(engines []Engine) *Multi {
	return &Multi{engines: engines}
}

// Search fans the query out to every engine concurrently. A failing
// engine is captured in its EngineResult rather than aborting the
// fan-out.
func (m *Multi) Search(ctx context.Context, query string) *MultiResult {
	start := time.Now()
	results := make([]EngineResult, len(m.engines))

	var wg sync.WaitGroup
	for i, eng := range m.engines {
		wg.Add(1)
		go func(i int, e Engine) {
			defer wg.Done()
			urls, err := e.Search(ctx, query)
			results[i] = EngineResult{Engine: e.Name(), URLs: urls, Err: err}
		}(i, eng)
	}
	wg.Wait()

	res := &MultiResult{ByEngine: results}
	seen := make(map[string]bool)
	for _, er := range results {
		for _, u := range er.URLs {
			if !seen[u] {
				seen[u] = true
				res.URLs = append(res.URLs, u)
			}
		}
	}
	res.Duration = time.Since(start)
	return res
}
