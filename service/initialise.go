package service

import (
	"net/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-healthdata-discovery/config"
	"github.com/ONSdigital/dp-healthdata-discovery/gateway"
	dphttp "github.com/ONSdigital/dp-net/http"
)

// ExternalServiceList holds the initialiser and initialisation state of external services
type ExternalServiceList struct {
	HealthCheck   bool
	GatewayClient bool
	Init          Initialiser
}

// NewServiceList creates a new service list with the provided initialiser
func NewServiceList(initialiser Initialiser) *ExternalServiceList {
	return &ExternalServiceList{
		Init: initialiser,
	}
}

// Init implements the Initialiser interface to initialise dependencies
type Init struct{}

// GetHTTPServer creates an http server
func (e *ExternalServiceList) GetHTTPServer(bindAddr string, router http.Handler) HTTPServer {
	return e.Init.DoGetHTTPServer(bindAddr, router)
}

// GetHealthCheck creates a healthcheck with versionInfo and sets the HealthCheck flag to true
func (e *ExternalServiceList) GetHealthCheck(cfg *config.Config, buildTime, gitCommit, version string) (HealthChecker, error) {
	hc, err := e.Init.DoGetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	e.HealthCheck = true
	return hc, nil
}

// GetGatewayClient creates the catalogue client and sets the GatewayClient flag to true
func (e *ExternalServiceList) GetGatewayClient(cfg *config.Config) (GatewayClient, error) {
	client, err := e.Init.DoGetGatewayClient(cfg)
	if err != nil {
		return nil, err
	}
	e.GatewayClient = true
	return client, nil
}

// DoGetHTTPServer creates an HTTP Server with the provided bind address and router
func (e *Init) DoGetHTTPServer(bindAddr string, router http.Handler) HTTPServer {
	s := dphttp.NewServer(bindAddr, router)
	s.HandleOSSignals = false
	return s
}

// DoGetHealthCheck creates a healthcheck with versionInfo
func (e *Init) DoGetHealthCheck(cfg *config.Config, buildTime, gitCommit, version string) (HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	hc := healthcheck.New(versionInfo, cfg.HealthCheckCriticalTimeout, cfg.HealthCheckInterval)
	return &hc, nil
}

// DoGetGatewayClient creates the catalogue client
func (e *Init) DoGetGatewayClient(cfg *config.Config) (GatewayClient, error) {
	opts, err := cfg.GatewayOptions()
	if err != nil {
		return nil, err
	}
	return gateway.New(cfg.Gateway(), opts...), nil
}
