package gateway

import (
	"context"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/ONSdigital/dp-healthdata-discovery/mapper"
	"github.com/ONSdigital/dp-healthdata-discovery/metrics"
	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
)

// resource describes one catalogue resource type: where it lives and how
// its raw objects are mapped
type resource[T any] struct {
	kind  models.ResourceType
	name  string
	path  string
	parse func(map[string]interface{}) T
}

var (
	datasets     = resource[models.Dataset]{models.ResourceDataset, "dataset", "/datasets", mapper.ParseDataset}
	dataUses     = resource[models.DataUseRegister]{models.ResourceDataUseRegister, "data use", "/dur", mapper.ParseDataUse}
	publications = resource[models.Publication]{models.ResourcePublication, "publication", "/publications", mapper.ParsePublication}
	tools        = resource[models.Tool]{models.ResourceTool, "tool", "/tools", mapper.ParseTool}
	collections  = resource[models.Collection]{models.ResourceCollection, "collection", "/collections", mapper.ParseCollection}
	teams        = resource[models.Team]{models.ResourceDataProvider, "team", "/teams", mapper.ParseTeam}
	publishers   = resource[models.Team]{models.ResourceDataProvider, "publisher", "/publishers", mapper.ParseTeam}
)

// tooShort reports whether a non-empty term has fewer than MinQueryLength
// non-whitespace characters
func tooShort(term string) bool {
	if term == "" {
		return false
	}
	n := 0
	for _, r := range term {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n < MinQueryLength
}

func pageParams(page, perPage int) (int, int) {
	if page < 1 {
		page = models.DefaultPage
	}
	if perPage < 1 {
		perPage = models.DefaultPerPage
	}
	return page, perPage
}

func get[T any](ctx context.Context, c *Client, r resource[T], id string) (T, error) {
	var zero T

	id = strings.TrimSpace(id)
	if id == "" {
		return zero, &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: "empty id"},
			ResourceType: r.name,
		}
	}

	resp, err := c.requester.Do(ctx, http.MethodGet, r.path+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			nf.ResourceType = r.name
			nf.ID = id
		}
		return zero, err
	}
	if resp.Kind != ContentJSON {
		return zero, unexpectedContent(resp)
	}

	return r.parse(mapper.Unwrap(resp.Data)), nil
}

func search[T any](ctx context.Context, c *Client, r resource[T], term string, filters *models.SearchFilters, page, perPage int) ([]T, error) {
	if tooShort(term) {
		log.Info(ctx, "search term too short, skipping request", log.Data{
			"term":          term,
			"resource_type": r.kind,
			"min_length":    MinQueryLength,
		})
		return []T{}, nil
	}

	page, perPage = pageParams(page, perPage)

	body := map[string]interface{}{}
	if filters != nil {
		for k, v := range filters.ToMap() {
			body[k] = v
		}
	}
	body["search"] = term
	body["type"] = string(r.kind)
	body["page"] = page
	body["perPage"] = perPage

	resp, err := c.requester.Do(ctx, http.MethodPost, "/search", nil, body)
	if err == nil && resp.Kind != ContentJSON {
		err = unexpectedContent(resp)
	}
	if err != nil {
		return fallback(ctx, c, r, "search", term, err)
	}

	return mapper.Items(resp.Data, r.parse), nil
}

func list[T any](ctx context.Context, c *Client, r resource[T], page, perPage int) (models.PaginatedResponse[T], error) {
	page, perPage = pageParams(page, perPage)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))

	resp, err := c.requester.Do(ctx, http.MethodGet, r.path, query, nil)
	if err == nil && resp.Kind != ContentJSON {
		err = unexpectedContent(resp)
	}
	if err != nil {
		return models.PaginatedResponse[T]{Data: []T{}, CurrentPage: page, PerPage: perPage, LastPage: page}, err
	}

	return mapper.ParsePaginated(resp.Data, page, perPage, r.parse), nil
}

// iterate fetches one page at a time, only when the consumer asks for the
// next item beyond the current page. A failed fetch is yielded once and ends
// the sequence.
func iterate[T any](ctx context.Context, c *Client, r resource[T], perPage int) iter.Seq2[T, error] {
	if perPage < 1 {
		perPage = DefaultIterPerPage
	}

	return func(yield func(T, error) bool) {
		for page := 1; ; page++ {
			p, err := list(ctx, c, r, page, perPage)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}

			for _, item := range p.Data {
				if !yield(item, nil) {
					return
				}
			}

			if !p.HasMore() || len(p.Data) == 0 {
				return
			}
		}
	}
}

func export[T any](ctx context.Context, c *Client, r resource[T]) ([]T, error) {
	resp, err := c.requester.Do(ctx, http.MethodGet, r.path+"/export", nil, nil)
	if err != nil {
		return fallback(ctx, c, r, "export", "", err)
	}

	switch resp.Kind {
	case ContentJSON:
		return mapper.Items(resp.Data, r.parse), nil
	case ContentCSV:
		rows, err := csvRecords(resp.Text)
		if err != nil {
			return fallback(ctx, c, r, "export", "", err)
		}
		return mapper.ParseAll(rows, r.parse), nil
	}

	return fallback(ctx, c, r, "export", "", unexpectedContent(resp))
}

// fallback implements the best-effort policy: the failure is logged and
// counted, then replaced by the fallback provider's items or an empty list.
// The underlying error is still returned so callers can report it.
func fallback[T any](ctx context.Context, c *Client, r resource[T], operation, term string, err error) ([]T, error) {
	log.Error(ctx, "catalogue "+operation+" failed, returning best-effort result", err, log.Data{
		"resource_type": r.kind,
		"term":          term,
	})
	metrics.RecordBestEffortFailure(operation, string(r.kind))

	if c.fallback == nil {
		return []T{}, err
	}

	items := mapper.ParseAll(c.fallback.Items(r.kind, term), r.parse)
	log.Info(ctx, "serving fallback data", log.Data{
		"resource_type": r.kind,
		"count":         len(items),
	})
	return items, err
}

func unexpectedContent(resp *Response) error {
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    "unexpected content type " + strconv.Quote(resp.ContentType),
	}
}
