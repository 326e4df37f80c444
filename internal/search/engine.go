// Package search implements pluggable web-search providers behind a
// single engine contract.
package search

import (
	"context"
)

// Credentials holds the named secrets an engine is constructed with
// (e.g. "key", "secret", "type"). Fixed for the engine's lifetime and
// never logged.
type Credentials map[string]string

// Engine represents one web-search provider integration.
type Engine interface {
	// Name returns the provider name (e.g. "Bing", "Yahoo! BOSS").
	Name() string

	// Requirements returns the module paths this engine needs beyond
	// the core, so callers can check feasibility before use.
	Requirements() []string

	// Search queries the provider and returns result URLs in the
	// provider's relevance order. Zero results is an empty slice with
	// a nil error; a *QueryError is returned only for transport,
	// status, or decoding failures.
	Search(ctx context.Context, query string) ([]string, error)
}
