// Package cache keeps recent combined search results in a bounded, expiring
// in-memory cache in front of the catalogue client.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/ONSdigital/dp-healthdata-discovery/metrics"
	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/goccy/go-json"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

//go:generate moq -out mocks_test.go -pkg cache . Client

// Client is the catalogue client being cached
type Client interface {
	Search(ctx context.Context, term string, types []models.ResourceType, filters *models.SearchFilters, page, perPage int) models.SearchResult
	GetDataset(ctx context.Context, id string) (models.Dataset, error)
	SearchDatasets(ctx context.Context, term string, filters *models.SearchFilters, page, perPage int) ([]models.Dataset, error)
}

// SearchCache caches unified searches of the wrapped client. Only complete
// results are stored: a result with any failed resource type is returned
// but not cached. Callers get their own copy of the result lists. Other calls
// pass straight through.
type SearchCache struct {
	Client
	lru *expirable.LRU[string, models.SearchResult]
}

// New wraps client with a cache of at most size results, each kept for ttl
func New(client Client, size int, ttl time.Duration) *SearchCache {
	return &SearchCache{
		Client: client,
		lru:    expirable.NewLRU[string, models.SearchResult](size, nil, ttl),
	}
}

// Search returns the cached result for an identical request, otherwise
// searches and caches the result
func (c *SearchCache) Search(ctx context.Context, term string, types []models.ResourceType, filters *models.SearchFilters, page, perPage int) models.SearchResult {
	key, err := fingerprint(term, types, filters, page, perPage)
	if err != nil {
		log.Warn(ctx, "unable to fingerprint search, bypassing cache", log.Data{"error": err.Error()})
		return c.Client.Search(ctx, term, types, filters, page, perPage)
	}

	if r, ok := c.lru.Get(key); ok {
		metrics.RecordCacheHit()
		return r.Clone()
	}
	metrics.RecordCacheMiss()

	r := c.Client.Search(ctx, term, types, filters, page, perPage)
	if len(r.Failures) == 0 {
		c.lru.Add(key, r.Clone())
	}
	return r
}

// Len is the number of cached results
func (c *SearchCache) Len() int {
	return c.lru.Len()
}

// Purge empties the cache
func (c *SearchCache) Purge() {
	c.lru.Purge()
}

type request struct {
	Term    string                `json:"term"`
	Types   []models.ResourceType `json:"types"`
	Filters *models.SearchFilters `json:"filters"`
	Page    int                   `json:"page"`
	PerPage int                   `json:"per_page"`
}

func fingerprint(term string, types []models.ResourceType, filters *models.SearchFilters, page, perPage int) (string, error) {
	b, err := json.Marshal(request{Term: term, Types: types, Filters: filters, Page: page, PerPage: perPage})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
