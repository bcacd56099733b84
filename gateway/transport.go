package gateway

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ONSdigital/dp-healthdata-discovery/metrics"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public catalogue API
const DefaultBaseURL = "https://api.www.healthdatagateway.org/api/v1"

const userAgent = "dp-healthdata-discovery"

// Config holds the transport settings supplied by the caller
type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	MaxRetries        int
	BackoffFactor     time.Duration
	MaxBackoff        time.Duration
	RequestsPerSecond float64
}

func (cfg Config) withDefaults() Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	// resty's jitter needs a positive base wait
	if cfg.BackoffFactor < time.Millisecond {
		cfg.BackoffFactor = time.Millisecond
	}
	if cfg.MaxBackoff < cfg.BackoffFactor {
		cfg.MaxBackoff = cfg.BackoffFactor
	}
	return cfg
}

// ContentKind tags the body of a successful response
type ContentKind string

// Possible content kinds
const (
	ContentJSON ContentKind = "json"
	ContentCSV  ContentKind = "csv"
	ContentText ContentKind = "text"
)

// Response is the parsed body of a successful request. JSON bodies are
// decoded into Data (a top level array is held under "data"); CSV and any
// other content is kept as Text.
type Response struct {
	StatusCode  int
	Kind        ContentKind
	ContentType string
	Data        map[string]interface{}
	Text        string
}

// Transport issues requests against the catalogue API with a bounded
// timeout, a fixed retry budget and an optional client side rate limit.
// It is safe for concurrent use.
type Transport struct {
	client  *resty.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// NewTransport creates a transport from cfg
func NewTransport(cfg Config) *Transport {
	cfg = cfg.withDefaults()

	t := &Transport{timeout: cfg.Timeout}
	if cfg.RequestsPerSecond > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	t.client = resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetLogger(restyLogger{}).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(cfg.BackoffFactor).
		SetRetryMaxWaitTime(cfg.MaxBackoff).
		SetRetryAfter(retryAfterResponse).
		AddRetryCondition(shouldRetry).
		AddRetryHook(onRetry).
		OnBeforeRequest(t.wait)

	if cfg.APIKey != "" {
		t.client.SetAuthToken(cfg.APIKey)
	}

	return t
}

// Do issues a request and parses a successful response. Failures are
// returned as one of the error kinds of this package.
func (t *Transport) Do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error) {
	start := time.Now()

	req := t.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", RequestID(ctx))
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)

	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}
	metrics.RecordRequest(method, status, time.Since(start).Seconds())

	if err != nil {
		return nil, t.networkError(err, path)
	}

	return parseResponse(resp)
}

func (t *Transport) wait(_ *resty.Client, req *resty.Request) error {
	if t.limiter == nil {
		return nil
	}
	if err := t.limiter.Wait(req.Context()); err != nil {
		return &limiterError{cause: err}
	}
	return nil
}

func (t *Transport) networkError(err error, path string) error {
	var le *limiterError
	if errors.As(err, &le) {
		err = le.cause
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{
			APIError: APIError{Message: fmt.Sprintf("request timed out: %v", err), URL: path},
			Timeout:  t.timeout,
			Cause:    err,
		}
	}
	return &ConnectionError{
		APIError: APIError{Message: err.Error(), URL: path},
		Cause:    err,
	}
}

type limiterError struct {
	cause error
}

func (e *limiterError) Error() string {
	return "rate limiter: " + e.cause.Error()
}

func (e *limiterError) Unwrap() error {
	return e.cause
}

// retryableMethods are the methods that may be repeated. POST is only used
// for read-only search.
var retryableMethods = map[string]bool{
	http.MethodGet:  true,
	http.MethodPost: true,
}

var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

func shouldRetry(resp *resty.Response, err error) bool {
	if resp != nil && resp.Request != nil {
		if !retryableMethods[resp.Request.Method] {
			return false
		}
		if resp.Request.Context().Err() != nil {
			return false
		}
	}

	if err != nil {
		var le *limiterError
		if errors.As(err, &le) {
			return false
		}
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}

	return resp != nil && retryableStatuses[resp.StatusCode()]
}

func onRetry(resp *resty.Response, err error) {
	if resp == nil || resp.Request == nil {
		return
	}

	ctx := resp.Request.Context()
	status := resp.StatusCode()
	logData := log.Data{
		"method":  resp.Request.Method,
		"url":     resp.Request.URL,
		"status":  status,
		"attempt": resp.Request.Attempt,
	}
	if err != nil {
		logData["error"] = err.Error()
	}

	log.Warn(ctx, "catalogue api request failed with a retryable error", logData)
	metrics.RecordRetry(resp.Request.Method, status)
}

// retryAfterResponse honours the Retry-After header of a 429. A zero result
// makes resty fall back to exponential backoff.
func retryAfterResponse(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	if resp == nil || resp.StatusCode() != http.StatusTooManyRequests {
		return 0, nil
	}
	return retryAfter(resp.Header()), nil
}

func parseResponse(resp *resty.Response) (*Response, error) {
	status := resp.StatusCode()
	contentType := resp.Header().Get("Content-Type")
	raw := resp.Body()

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		var body map[string]interface{}
		if isJSON(contentType) {
			body, _ = decodeJSON(raw)
		}
		return nil, classify(status, resp.Request.URL, resp.Header(), body, string(raw))
	}

	out := &Response{StatusCode: status, ContentType: contentType}

	switch {
	case isJSON(contentType):
		data, err := decodeJSON(raw)
		if err != nil {
			return nil, &APIError{
				StatusCode: status,
				Message:    "invalid json response: " + err.Error(),
				URL:        resp.Request.URL,
			}
		}
		out.Kind = ContentJSON
		out.Data = data
	case strings.Contains(contentType, "text/csv"):
		out.Kind = ContentCSV
		out.Text = string(raw)
	default:
		out.Kind = ContentText
		out.Text = string(raw)
	}

	return out, nil
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "json")
}

// decodeJSON decodes a JSON body into a map, wrapping anything that is not
// an object under "data"
func decodeJSON(raw []byte) (map[string]interface{}, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return map[string]interface{}{}, nil
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	if m, ok := v.(map[string]interface{}); ok {
		return m, nil
	}
	return map[string]interface{}{"data": v}, nil
}

type requestIDKey struct{}

// WithRequestID returns a context carrying id, sent as X-Request-Id on
// outbound requests
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id held by ctx, or a new one
func RequestID(ctx context.Context) string {
	if ctx != nil {
		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
			return id
		}
	}
	return uuid.NewString()
}

// restyLogger routes resty's own messages into structured logging
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	log.Error(context.Background(), "http client error", errors.Errorf(format, v...))
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	log.Info(context.Background(), "http client warning", log.Data{"detail": fmt.Sprintf(format, v...)})
}

func (restyLogger) Debugf(string, ...interface{}) {}
