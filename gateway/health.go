package gateway

import (
	"context"
	"net/http"

	health "github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
)

const (
	msgHealthy       = "catalogue api is ok"
	msgProbeHealthy  = "catalogue api health endpoint unavailable, search probe succeeded"
	msgRateLimited   = "catalogue api is rate limiting requests"
	msgUnhealthy     = "catalogue api is unavailable"
	healthProbeTerm  = "test"
	healthEndpoint   = "/health"
	healthProbeRoute = "/search"
)

// Checker reports the state of the catalogue API. The /health endpoint is
// tried first; when it fails a one item dataset search decides between
// WARNING and CRITICAL.
func (c *Client) Checker(ctx context.Context, state *health.CheckState) error {
	if _, err := c.requester.Do(ctx, http.MethodGet, healthEndpoint, nil, nil); err == nil {
		return state.Update(health.StatusOK, msgHealthy, http.StatusOK)
	}

	probe := map[string]interface{}{
		"search":  healthProbeTerm,
		"type":    string(datasets.kind),
		"page":    1,
		"perPage": 1,
	}
	_, err := c.requester.Do(ctx, http.MethodPost, healthProbeRoute, nil, probe)
	if err == nil {
		return state.Update(health.StatusWarning, msgProbeHealthy, http.StatusOK)
	}

	code := 0
	if apiErr, ok := AsAPIError(err); ok {
		code = apiErr.Code()
	}
	if code == http.StatusTooManyRequests {
		return state.Update(health.StatusWarning, msgRateLimited, code)
	}

	log.Warn(ctx, "catalogue api health probe failed", log.Data{"error": err.Error(), "status": code})
	return state.Update(health.StatusCritical, msgUnhealthy, code)
}
