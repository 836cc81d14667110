// Package cache provides the two caching layers in front of the engine: an
// in-process LRU for scoring results and a Redis-backed cache for dashboard
// aggregates, the latter guarded by a circuit breaker so a Redis outage
// degrades to direct database reads instead of failing requests.
package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/disease-risk-server/internal/domain"
)

// PredictionCache memoizes scoring results keyed by the full request inputs.
// Scoring is deterministic over the immutable knowledge base, so entries
// never need invalidation, only eviction.
type PredictionCache struct {
	lru *lru.Cache[string, *domain.PredictionResult]
}

// NewPredictionCache creates an LRU prediction cache with the given capacity.
func NewPredictionCache(size int) (*PredictionCache, error) {
	c, err := lru.New[string, *domain.PredictionResult](size)
	if err != nil {
		return nil, fmt.Errorf("creating prediction cache: %w", err)
	}
	return &PredictionCache{lru: c}, nil
}

// Key derives a cache key from the scoring inputs. Symptoms are sorted into a
// copy first so the key is order-insensitive, matching set semantics.
func Key(disease string, symptoms []string, demo domain.Demographics) string {
	sorted := make([]string, len(symptoms))
	copy(sorted, symptoms)
	sort.Strings(sorted)

	payload, _ := json.Marshal(struct {
		Disease  string              `json:"disease"`
		Symptoms []string            `json:"symptoms"`
		Demo     domain.Demographics `json:"demo"`
	}{disease, sorted, demo})

	sum := sha256.Sum256(payload)
	return fmt.Sprintf("predict:%x", sum[:16])
}

// Get returns the cached result for a key, if present.
func (c *PredictionCache) Get(key string) (*domain.PredictionResult, bool) {
	return c.lru.Get(key)
}

// Put stores a result under a key.
func (c *PredictionCache) Put(key string, res *domain.PredictionResult) {
	c.lru.Add(key, res)
}

// Len returns the number of cached entries.
func (c *PredictionCache) Len() int {
	return c.lru.Len()
}
