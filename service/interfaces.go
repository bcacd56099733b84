package service

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-healthdata-discovery/config"
	"github.com/ONSdigital/dp-healthdata-discovery/models"
)

//go:generate moq -out mocks_test.go -pkg service . Initialiser HealthChecker HTTPServer GatewayClient

// Initialiser defines the methods to initialise external services
type Initialiser interface {
	DoGetHTTPServer(bindAddr string, router http.Handler) HTTPServer
	DoGetHealthCheck(cfg *config.Config, buildTime, gitCommit, version string) (HealthChecker, error)
	DoGetGatewayClient(cfg *config.Config) (GatewayClient, error)
}

// HealthChecker defines the required methods from Healthcheck
type HealthChecker interface {
	Handler(w http.ResponseWriter, req *http.Request)
	Start(ctx context.Context)
	Stop()
	AddCheck(name string, checker healthcheck.Checker) (err error)
}

// HTTPServer defines the required methods from the HTTP server
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// GatewayClient is the catalogue client used by the service
type GatewayClient interface {
	Search(ctx context.Context, term string, types []models.ResourceType, filters *models.SearchFilters, page, perPage int) models.SearchResult
	GetDataset(ctx context.Context, id string) (models.Dataset, error)
	SearchDatasets(ctx context.Context, term string, filters *models.SearchFilters, page, perPage int) ([]models.Dataset, error)
	GetDataUse(ctx context.Context, id string) (models.DataUseRegister, error)
	ListPublishers(ctx context.Context, page, perPage int) ([]models.Team, error)
	Checker(ctx context.Context, state *healthcheck.CheckState) error
	WebURL(resourceType, id string) string
}
