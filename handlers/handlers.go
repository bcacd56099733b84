package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ONSdigital/dp-healthdata-discovery/export"
	"github.com/ONSdigital/dp-healthdata-discovery/gateway"
	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/ONSdigital/dp-healthdata-discovery/search"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

//go:generate moq -out mocks_test.go -pkg handlers . Searcher CatalogueClient

const (
	requestIDHeader     = "X-Request-Id"
	defaultSimilarLimit = 5
)

// Searcher is an interface with the methods required to run interpreted searches
type Searcher interface {
	Search(ctx context.Context, q search.Query) search.EnhancedSearchResult
	FindSimilarDatasets(ctx context.Context, id string, limit int) ([]models.Dataset, error)
	PublisherDatasets(ctx context.Context, publisher string, page, perPage int) ([]models.Dataset, error)
}

// CatalogueClient is an interface with the methods required to look up single catalogue resources
type CatalogueClient interface {
	GetDataset(ctx context.Context, id string) (models.Dataset, error)
	GetDataUse(ctx context.Context, id string) (models.DataUseRegister, error)
	ListPublishers(ctx context.Context, page, perPage int) ([]models.Team, error)
}

// ClientError is an interface that can be used to retrieve the status code if a client has errored
type ClientError interface {
	error
	Code() int
}

type badRequest struct {
	msg string
}

func (e badRequest) Error() string { return e.msg }
func (e badRequest) Code() int     { return http.StatusBadRequest }

func setStatusCode(req *http.Request, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var cerr ClientError
	if errors.As(err, &cerr) {
		if cerr.Code() == http.StatusNotFound || cerr.Code() == http.StatusBadRequest {
			status = cerr.Code()
		}
	}
	log.Error(req.Context(), "setting response status", err, log.Data{"status": status})

	body := map[string]string{"error": http.StatusText(status)}
	if status != http.StatusInternalServerError {
		body["error"] = err.Error()
	}
	writeJSON(req, w, status, body)
}

func writeJSON(req *http.Request, w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error(req.Context(), "error marshalling response", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(b); err != nil {
		log.Error(req.Context(), "error writing response", err)
	}
}

// RequestID makes the inbound X-Request-Id, or a new one when absent, the id
// of every catalogue request made while handling the request
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, req.WithContext(gateway.WithRequestID(req.Context(), id)))
	})
}

// Search runs the query in the q parameter and returns the enhanced result
func Search(s Searcher, defaultPerPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		q, err := readQuery(req, defaultPerPage)
		if err != nil {
			setStatusCode(req, w, err)
			return
		}

		writeJSON(req, w, http.StatusOK, s.Search(req.Context(), q))
	}
}

// Export runs the query in the q parameter and returns the combined result
// as a CSV or JSON attachment. Rows link to resources through link.
func Export(s Searcher, link export.Linker, defaultPerPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		format, err := export.ParseFormat(req.URL.Query().Get("format"))
		if err != nil {
			setStatusCode(req, w, badRequest{err.Error()})
			return
		}

		q, err := readQuery(req, defaultPerPage)
		if err != nil {
			setStatusCode(req, w, err)
			return
		}

		result := s.Search(ctx, q)
		body, err := export.Render(result.Results, format, link)
		if err != nil {
			log.Error(ctx, "error exporting search results", err, log.Data{"format": format})
			setStatusCode(req, w, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "healthdata-search."+string(format)))
		if _, err = w.Write([]byte(body)); err != nil {
			log.Error(ctx, "error writing export", err)
		}
	}
}

// Dataset returns a single dataset
func Dataset(cli CatalogueClient) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id := mux.Vars(req)["id"]

		d, err := cli.GetDataset(req.Context(), id)
		if err != nil {
			log.Error(req.Context(), "error getting dataset", err, log.Data{"id": id})
			setStatusCode(req, w, err)
			return
		}

		writeJSON(req, w, http.StatusOK, d)
	}
}

// SimilarDatasets returns datasets sharing the keywords of a dataset
func SimilarDatasets(s Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id := mux.Vars(req)["id"]

		limit, err := intParam(req, "limit", defaultSimilarLimit)
		if err != nil {
			setStatusCode(req, w, err)
			return
		}

		datasets, err := s.FindSimilarDatasets(req.Context(), id, limit)
		if err != nil {
			setStatusCode(req, w, err)
			return
		}

		writeJSON(req, w, http.StatusOK, map[string]interface{}{"items": datasets, "count": len(datasets)})
	}
}

// DataUse returns a single data use register entry
func DataUse(cli CatalogueClient) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id := mux.Vars(req)["id"]

		du, err := cli.GetDataUse(req.Context(), id)
		if err != nil {
			log.Error(req.Context(), "error getting data use", err, log.Data{"id": id})
			setStatusCode(req, w, err)
			return
		}

		writeJSON(req, w, http.StatusOK, du)
	}
}

// Publishers lists publishing teams. Upstream failures give an empty list.
func Publishers(cli CatalogueClient, defaultPerPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		page, perPage, err := pageParams(req, defaultPerPage)
		if err != nil {
			setStatusCode(req, w, err)
			return
		}

		teams, err := cli.ListPublishers(req.Context(), page, perPage)
		if err != nil {
			log.Warn(req.Context(), "publisher listing incomplete", log.Data{"error": err.Error()})
		}

		writeJSON(req, w, http.StatusOK, map[string]interface{}{"items": teams, "count": len(teams), "page": page, "per_page": perPage})
	}
}

// PublisherDatasets lists the datasets of the publisher named in the path.
// Upstream failures give an empty list.
func PublisherDatasets(s Searcher, defaultPerPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		name := mux.Vars(req)["name"]

		page, perPage, err := pageParams(req, defaultPerPage)
		if err != nil {
			setStatusCode(req, w, err)
			return
		}

		datasets, err := s.PublisherDatasets(req.Context(), name, page, perPage)
		if err != nil {
			log.Warn(req.Context(), "publisher datasets incomplete", log.Data{"publisher": name, "error": err.Error()})
		}

		writeJSON(req, w, http.StatusOK, map[string]interface{}{"publisher": name, "items": datasets, "count": len(datasets)})
	}
}

func readQuery(req *http.Request, defaultPerPage int) (search.Query, error) {
	values := req.URL.Query()

	text := strings.TrimSpace(values.Get("q"))
	if text == "" {
		return search.Query{}, badRequest{"missing query parameter q"}
	}

	q := search.NewQuery(text)
	var err error
	if q.ParseQuery, err = boolParam(req, "parse", q.ParseQuery); err != nil {
		return q, err
	}
	if q.IncludeDataUses, err = boolParam(req, "data_uses", q.IncludeDataUses); err != nil {
		return q, err
	}
	if q.IncludePublications, err = boolParam(req, "publications", q.IncludePublications); err != nil {
		return q, err
	}
	if q.Page, q.PerPage, err = pageParams(req, defaultPerPage); err != nil {
		return q, err
	}
	return q, nil
}

func pageParams(req *http.Request, defaultPerPage int) (page, perPage int, err error) {
	if page, err = intParam(req, "page", models.DefaultPage); err != nil {
		return 0, 0, err
	}
	if perPage, err = intParam(req, "per_page", defaultPerPage); err != nil {
		return 0, 0, err
	}
	return page, perPage, nil
}

func intParam(req *http.Request, key string, def int) (int, error) {
	v := req.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, badRequest{fmt.Sprintf("%s must be a positive integer", key)}
	}
	return n, nil
}

func boolParam(req *http.Request, key string, def bool) (bool, error) {
	v := req.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, badRequest{fmt.Sprintf("%s must be true or false", key)}
	}
	return b, nil
}
