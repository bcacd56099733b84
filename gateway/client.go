// Package gateway is the client of the federated health data catalogue API.
//
// Single resource getters propagate every failure. Search and export calls
// are best-effort: a failure is logged and replaced by an empty list (or the
// configured fallback data), and is returned alongside the list so callers
// can report it.
package gateway

import (
	"context"
	"iter"
	"net/url"
	"strings"

	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/ONSdigital/log.go/v2/log"
	"golang.org/x/sync/errgroup"
)

//go:generate moq -out mocks_test.go -pkg gateway . Requester FallbackProvider

const (
	// MinQueryLength is the shortest non-empty search term sent upstream
	MinQueryLength = 3

	// DefaultIterPerPage is the page size used by the Iter functions
	DefaultIterPerPage = 100

	// DefaultMaxConcurrency bounds the parallel calls of a unified search
	DefaultMaxConcurrency = 5
)

// Requester performs a single request against the catalogue API
type Requester interface {
	Do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error)
}

// Client exposes the catalogue resources
type Client struct {
	requester      Requester
	webURL         string
	maxConcurrency int
	fallback       FallbackProvider
}

// Option customises a Client
type Option func(*Client)

// WithWebURL sets the public website used by WebURL
func WithWebURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.webURL = strings.TrimRight(u, "/")
		}
	}
}

// WithMaxConcurrency bounds the parallel calls of a unified search. Values
// below 1 make the search sequential.
func WithMaxConcurrency(n int) Option {
	return func(c *Client) {
		c.maxConcurrency = n
	}
}

// WithFallback sets the provider consulted when a best-effort call fails
func WithFallback(f FallbackProvider) Option {
	return func(c *Client) {
		c.fallback = f
	}
}

// New creates a client talking to the catalogue API through a Transport
func New(cfg Config, opts ...Option) *Client {
	return NewWithRequester(NewTransport(cfg), opts...)
}

// NewWithRequester creates a client on top of an existing requester
func NewWithRequester(r Requester, opts ...Option) *Client {
	c := &Client{
		requester:      r,
		webURL:         models.DefaultWebBaseURL,
		maxConcurrency: DefaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxConcurrency < 1 {
		c.maxConcurrency = 1
	}
	return c
}

// GetDataset returns a single dataset
func (c *Client) GetDataset(ctx context.Context, id string) (models.Dataset, error) {
	return get(ctx, c, datasets, id)
}

// SearchDatasets searches datasets. All filters are forwarded.
func (c *Client) SearchDatasets(ctx context.Context, term string, filters *models.SearchFilters, page, perPage int) ([]models.Dataset, error) {
	return search(ctx, c, datasets, term, filters, page, perPage)
}

// ListDatasets returns one page of the dataset list
func (c *Client) ListDatasets(ctx context.Context, page, perPage int) (models.PaginatedResponse[models.Dataset], error) {
	return list(ctx, c, datasets, page, perPage)
}

// IterDatasets lazily walks every dataset from the first page
func (c *Client) IterDatasets(ctx context.Context, perPage int) iter.Seq2[models.Dataset, error] {
	return iterate(ctx, c, datasets, perPage)
}

// ExportDatasets returns the bulk dataset export
func (c *Client) ExportDatasets(ctx context.Context) ([]models.Dataset, error) {
	return export(ctx, c, datasets)
}

// GetDataUse returns a single data use register entry
func (c *Client) GetDataUse(ctx context.Context, id string) (models.DataUseRegister, error) {
	return get(ctx, c, dataUses, id)
}

// SearchDataUses searches the data use register. Only the publisher and
// organisation sector filters apply to data uses.
func (c *Client) SearchDataUses(ctx context.Context, term string, filters *models.SearchFilters, page, perPage int) ([]models.DataUseRegister, error) {
	var f *models.SearchFilters
	if filters != nil {
		f = &models.SearchFilters{
			Publisher:          append([]string(nil), filters.Publisher...),
			OrganisationSector: append([]models.OrganisationSector(nil), filters.OrganisationSector...),
		}
	}
	return search(ctx, c, dataUses, term, f, page, perPage)
}

// ListDataUses returns one page of the data use register
func (c *Client) ListDataUses(ctx context.Context, page, perPage int) (models.PaginatedResponse[models.DataUseRegister], error) {
	return list(ctx, c, dataUses, page, perPage)
}

// IterDataUses lazily walks the whole data use register
func (c *Client) IterDataUses(ctx context.Context, perPage int) iter.Seq2[models.DataUseRegister, error] {
	return iterate(ctx, c, dataUses, perPage)
}

// ExportDataUses returns the bulk data use register export
func (c *Client) ExportDataUses(ctx context.Context) ([]models.DataUseRegister, error) {
	return export(ctx, c, dataUses)
}

// GetPublication returns a single publication
func (c *Client) GetPublication(ctx context.Context, id string) (models.Publication, error) {
	return get(ctx, c, publications, id)
}

// SearchPublications searches publications
func (c *Client) SearchPublications(ctx context.Context, term string, page, perPage int) ([]models.Publication, error) {
	return search(ctx, c, publications, term, nil, page, perPage)
}

// ListPublications returns one page of publications
func (c *Client) ListPublications(ctx context.Context, page, perPage int) (models.PaginatedResponse[models.Publication], error) {
	return list(ctx, c, publications, page, perPage)
}

// IterPublications lazily walks every publication
func (c *Client) IterPublications(ctx context.Context, perPage int) iter.Seq2[models.Publication, error] {
	return iterate(ctx, c, publications, perPage)
}

// GetTool returns a single tool
func (c *Client) GetTool(ctx context.Context, id string) (models.Tool, error) {
	return get(ctx, c, tools, id)
}

// SearchTools searches tools
func (c *Client) SearchTools(ctx context.Context, term string, page, perPage int) ([]models.Tool, error) {
	return search(ctx, c, tools, term, nil, page, perPage)
}

// ListTools returns one page of tools
func (c *Client) ListTools(ctx context.Context, page, perPage int) (models.PaginatedResponse[models.Tool], error) {
	return list(ctx, c, tools, page, perPage)
}

// IterTools lazily walks every tool
func (c *Client) IterTools(ctx context.Context, perPage int) iter.Seq2[models.Tool, error] {
	return iterate(ctx, c, tools, perPage)
}

// GetCollection returns a single collection
func (c *Client) GetCollection(ctx context.Context, id string) (models.Collection, error) {
	return get(ctx, c, collections, id)
}

// SearchCollections searches collections
func (c *Client) SearchCollections(ctx context.Context, term string, page, perPage int) ([]models.Collection, error) {
	return search(ctx, c, collections, term, nil, page, perPage)
}

// ListCollections returns one page of collections
func (c *Client) ListCollections(ctx context.Context, page, perPage int) (models.PaginatedResponse[models.Collection], error) {
	return list(ctx, c, collections, page, perPage)
}

// IterCollections lazily walks every collection
func (c *Client) IterCollections(ctx context.Context, perPage int) iter.Seq2[models.Collection, error] {
	return iterate(ctx, c, collections, perPage)
}

// GetTeam returns a single team (data custodian)
func (c *Client) GetTeam(ctx context.Context, id string) (models.Team, error) {
	return get(ctx, c, teams, id)
}

// ListTeams returns one page of teams
func (c *Client) ListTeams(ctx context.Context, page, perPage int) (models.PaginatedResponse[models.Team], error) {
	return list(ctx, c, teams, page, perPage)
}

// IterTeams lazily walks every team
func (c *Client) IterTeams(ctx context.Context, perPage int) iter.Seq2[models.Team, error] {
	return iterate(ctx, c, teams, perPage)
}

// ListPublishers returns one page of data publishers. It is best-effort.
func (c *Client) ListPublishers(ctx context.Context, page, perPage int) ([]models.Team, error) {
	p, err := list(ctx, c, publishers, page, perPage)
	if err != nil {
		return fallback(ctx, c, publishers, "list", "", err)
	}
	return p.Data, nil
}

// Search runs one search per requested resource type (all searchable types
// when none are given) and combines the results. Calls run in parallel up to
// the configured concurrency. A failed call leaves its list empty and is
// recorded in the result's Failures; the other types are unaffected.
// Filters only narrow the dataset search.
func (c *Client) Search(ctx context.Context, term string, types []models.ResourceType, filters *models.SearchFilters, page, perPage int) models.SearchResult {
	if len(types) == 0 {
		types = models.SearchableResourceTypes()
	}
	types = uniqueTypes(types)

	result := models.NewSearchResult()
	errs := make([]error, len(types))

	var g errgroup.Group
	g.SetLimit(c.maxConcurrency)

	for i, rt := range types {
		g.Go(func() error {
			var err error
			switch rt {
			case models.ResourceDataset:
				result.Datasets, err = c.SearchDatasets(ctx, term, filters, page, perPage)
			case models.ResourceDataUseRegister:
				// parsed filters are dataset facets; data uses are searched on the term alone
				result.DataUses, err = search(ctx, c, dataUses, term, nil, page, perPage)
			case models.ResourcePublication:
				result.Publications, err = c.SearchPublications(ctx, term, page, perPage)
			case models.ResourceTool:
				result.Tools, err = c.SearchTools(ctx, term, page, perPage)
			case models.ResourceCollection:
				result.Collections, err = c.SearchCollections(ctx, term, page, perPage)
			default:
				err = &APIError{Message: "resource type " + string(rt) + " is not searchable"}
			}
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err == nil {
			continue
		}
		result.Failures[types[i]] = err
		log.Warn(ctx, "unified search: resource type failed", log.Data{
			"resource_type": types[i],
			"error":         err.Error(),
		})
	}

	result.Normalise()
	return result
}

func uniqueTypes(types []models.ResourceType) []models.ResourceType {
	seen := make(map[models.ResourceType]bool, len(types))
	out := make([]models.ResourceType, 0, len(types))
	for _, rt := range types {
		if !seen[rt] {
			seen[rt] = true
			out = append(out, rt)
		}
	}
	return out
}

var webPaths = map[string]string{
	"dataset":         "dataset",
	"datause":         "datause",
	"dur":             "datause",
	"datauseregister": "datause",
	"publication":     "publication",
	"tool":            "tool",
	"collection":      "collection",
	"team":            "data-custodian",
	"publisher":       "data-custodian",
	"dataprovider":    "data-custodian",
}

// WebURL returns the public web page of a resource. Unknown types are used
// as the path segment unchanged.
func (c *Client) WebURL(resourceType, id string) string {
	path, ok := webPaths[strings.ToLower(resourceType)]
	if !ok {
		path = resourceType
	}
	return c.webURL + "/" + path + "/" + id
}
