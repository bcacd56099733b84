// Package search interprets free text queries and runs them across the
// catalogue, deriving facets and suggestions from the combined result.
package search

import (
	"context"
	"strings"
	"time"

	"github.com/ONSdigital/dp-healthdata-discovery/metrics"
	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/ONSdigital/log.go/v2/log"
)

//go:generate moq -out mocks_test.go -pkg search . GatewayClient

const (
	defaultSimilarLimit = 5
	maxSimilarKeywords  = 3
	minAbstractWordLen  = 6
)

// GatewayClient is the part of the catalogue client used by the searcher
type GatewayClient interface {
	Search(ctx context.Context, term string, types []models.ResourceType, filters *models.SearchFilters, page, perPage int) models.SearchResult
	GetDataset(ctx context.Context, id string) (models.Dataset, error)
	SearchDatasets(ctx context.Context, term string, filters *models.SearchFilters, page, perPage int) ([]models.Dataset, error)
}

// Query is a search request
type Query struct {
	Text                string
	ParseQuery          bool
	IncludeDataUses     bool
	IncludePublications bool
	Page                int
	PerPage             int
}

// NewQuery returns a query with the usual defaults: parsing on, data uses
// included, publications left out, first page of 25
func NewQuery(text string) Query {
	return Query{
		Text:            text,
		ParseQuery:      true,
		IncludeDataUses: true,
		Page:            models.DefaultPage,
		PerPage:         models.DefaultPerPage,
	}
}

// EnhancedSearchResult is a search result with the views derived from it
type EnhancedSearchResult struct {
	Results        models.SearchResult  `json:"results"`
	Filters        models.SearchFilters `json:"filters"`
	SearchTerm     string               `json:"search_term"`
	Facets         []Facet              `json:"facets"`
	Suggestions    []Suggestion         `json:"suggestions"`
	Interpretation string               `json:"interpretation,omitempty"`
	TotalCount     int                  `json:"total_count"`
	SearchTime     time.Duration        `json:"-"`
	SearchTimeMS   float64              `json:"search_time_ms"`
}

// Searcher runs interpreted searches against the catalogue
type Searcher struct {
	client  GatewayClient
	timeout time.Duration
}

// Option customises a Searcher
type Option func(*Searcher)

// WithTimeout bounds a whole unified search. Resource types still running
// when it expires count as failed and return no results.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// NewSearcher creates a searcher on top of client
func NewSearcher(client GatewayClient, opts ...Option) *Searcher {
	s := &Searcher{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search runs q across datasets and, as requested, data uses and
// publications. It never fails: resource types that could not be searched
// come back empty and are listed in Results.Failures.
func (s *Searcher) Search(ctx context.Context, q Query) EnhancedSearchResult {
	start := time.Now()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	term := q.Text
	var filters *models.SearchFilters
	interpretation := ""

	if q.ParseQuery {
		cleaned, parsed := ParseQuery(q.Text)
		interpretation = Interpretation(q.Text, parsed)
		if cleaned != "" {
			term = cleaned
		}
		filters = &parsed
	}

	types := []models.ResourceType{models.ResourceDataset}
	if q.IncludeDataUses {
		types = append(types, models.ResourceDataUseRegister)
	}
	if q.IncludePublications {
		types = append(types, models.ResourcePublication)
	}

	results := s.client.Search(ctx, term, types, filters, q.Page, q.PerPage)
	results.Normalise()
	elapsed := time.Since(start)

	out := EnhancedSearchResult{
		Results:        results,
		SearchTerm:     term,
		Facets:         Facets(results),
		Suggestions:    Suggestions(q.Text, results),
		Interpretation: interpretation,
		TotalCount:     results.TotalResults(),
		SearchTime:     elapsed,
		SearchTimeMS:   float64(elapsed.Microseconds()) / 1000,
	}
	if filters != nil {
		out.Filters = *filters
	}

	metrics.RecordSearch(elapsed.Seconds(), out.TotalCount)
	log.Info(ctx, "search completed", log.Data{
		"query":       q.Text,
		"search_term": term,
		"total_count": out.TotalCount,
		"failed":      len(results.Failures),
		"duration":    elapsed.String(),
	})

	return out
}

// FindSimilarDatasets searches with up to three keywords of the reference
// dataset, falling back to long words of its abstract, and leaves the
// reference dataset out. The list is empty when the reference dataset cannot
// be fetched or has nothing to search with; the lookup error is returned.
func (s *Searcher) FindSimilarDatasets(ctx context.Context, id string, limit int) ([]models.Dataset, error) {
	if limit < 1 {
		limit = defaultSimilarLimit
	}

	ref, err := s.client.GetDataset(ctx, id)
	if err != nil {
		log.Warn(ctx, "similar datasets: reference dataset lookup failed", log.Data{"id": id, "error": err.Error()})
		return []models.Dataset{}, err
	}

	keywords := similarityKeywords(ref)
	if len(keywords) == 0 {
		return []models.Dataset{}, nil
	}

	found, _ := s.client.SearchDatasets(ctx, strings.Join(keywords, " "), nil, models.DefaultPage, limit+1)

	out := make([]models.Dataset, 0, limit)
	for _, d := range found {
		if d.ID == ref.ID || d.ID == id {
			continue
		}
		out = append(out, d)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func similarityKeywords(d models.Dataset) []string {
	if d.Metadata == nil {
		return nil
	}

	var keywords []string
	for _, k := range d.Metadata.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
		if len(keywords) == maxSimilarKeywords {
			return keywords
		}
	}
	if len(keywords) > 0 {
		return keywords
	}

	for _, w := range strings.Fields(strings.ToLower(d.Metadata.Abstract)) {
		w = strings.Trim(w, ".,;:!?()[]\"'")
		if len([]rune(w)) >= minAbstractWordLen {
			keywords = append(keywords, w)
		}
		if len(keywords) == maxSimilarKeywords {
			break
		}
	}
	return keywords
}

// PublisherDatasets lists the datasets of one publisher. It is best-effort
// like any dataset search.
func (s *Searcher) PublisherDatasets(ctx context.Context, publisher string, page, perPage int) ([]models.Dataset, error) {
	filters := &models.SearchFilters{}
	filters.AddPublisher(strings.TrimSpace(publisher))
	return s.client.SearchDatasets(ctx, "", filters, page, perPage)
}
