package service

import (
	"context"

	"github.com/ONSdigital/dp-healthdata-discovery/cache"
	"github.com/ONSdigital/dp-healthdata-discovery/config"
	"github.com/ONSdigital/dp-healthdata-discovery/handlers"
	"github.com/ONSdigital/dp-healthdata-discovery/search"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service contains all the configs, server and clients to run the health data discovery service
type Service struct {
	Config        *config.Config
	HealthCheck   HealthChecker
	Server        HTTPServer
	GatewayClient GatewayClient
	Searcher      *search.Searcher
	ServiceList   *ExternalServiceList
}

// Run the service
func Run(ctx context.Context, cfg *config.Config, serviceList *ExternalServiceList, buildTime, gitCommit, version string, svcErrors chan error) (svc *Service, err error) {
	log.Info(ctx, "running service", log.Data{
		"bind_addr":       cfg.BindAddr,
		"gateway_api_url": cfg.GatewayAPIURL,
		"search_cache":    cfg.CacheEnabled(),
	})

	// Initialise Service struct
	svc = &Service{
		Config:      cfg,
		ServiceList: serviceList,
	}

	// Initialise clients
	svc.GatewayClient, err = serviceList.GetGatewayClient(cfg)
	if err != nil {
		log.Error(ctx, "failed to create catalogue client", err)
		return nil, err
	}

	var searchClient search.GatewayClient = svc.GatewayClient
	if cfg.CacheEnabled() {
		searchClient = cache.New(svc.GatewayClient, cfg.SearchCacheSize, cfg.SearchCacheTTL)
	}
	svc.Searcher = search.NewSearcher(searchClient, search.WithTimeout(cfg.SearchTimeout))

	// Get healthcheck with checkers
	svc.HealthCheck, err = serviceList.GetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		log.Error(ctx, "failed to create health check", err)
		return nil, err
	}
	if err := svc.registerCheckers(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to register checkers")
	}

	router := svc.router()
	svc.Server = serviceList.GetHTTPServer(cfg.BindAddr, router)

	// Start Healthcheck and HTTP Server
	svc.HealthCheck.Start(ctx)
	go func() {
		if err := svc.Server.ListenAndServe(); err != nil {
			svcErrors <- errors.Wrap(err, "failure in http listen and serve")
		}
	}()

	return svc, nil
}

func (svc *Service) router() *mux.Router {
	perPage := svc.Config.DefaultPerPage

	router := mux.NewRouter()
	router.Use(handlers.RequestID)
	router.StrictSlash(true).Path("/health").HandlerFunc(svc.HealthCheck.Handler)
	router.StrictSlash(true).Path("/metrics").Handler(promhttp.Handler())

	router.StrictSlash(true).Path("/search").Methods("GET").HandlerFunc(handlers.Search(svc.Searcher, perPage))
	router.StrictSlash(true).Path("/search/export").Methods("GET").HandlerFunc(handlers.Export(svc.Searcher, svc.GatewayClient.WebURL, perPage))
	router.StrictSlash(true).Path("/datasets/{id}").Methods("GET").HandlerFunc(handlers.Dataset(svc.GatewayClient))
	router.StrictSlash(true).Path("/datasets/{id}/similar").Methods("GET").HandlerFunc(handlers.SimilarDatasets(svc.Searcher))
	router.StrictSlash(true).Path("/data-uses/{id}").Methods("GET").HandlerFunc(handlers.DataUse(svc.GatewayClient))
	router.StrictSlash(true).Path("/publishers").Methods("GET").HandlerFunc(handlers.Publishers(svc.GatewayClient, perPage))
	router.StrictSlash(true).Path("/publishers/{name}/datasets").Methods("GET").HandlerFunc(handlers.PublisherDatasets(svc.Searcher, perPage))

	return router
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.Config.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	ctx, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	go func() {
		defer cancel()

		// stop healthcheck, as it depends on everything else
		if svc.ServiceList.HealthCheck {
			svc.HealthCheck.Stop()
		}

		// stop any incoming requests
		if err := svc.Server.Shutdown(ctx); err != nil {
			log.Error(ctx, "failed to shutdown http server", err)
			hasShutdownError = true
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-ctx.Done()

	// timeout expired
	if ctx.Err() == context.DeadlineExceeded {
		log.Error(ctx, "shutdown timed out", ctx.Err())
		return ctx.Err()
	}

	// other error
	if hasShutdownError {
		err := errors.New("failed to shutdown gracefully")
		log.Error(ctx, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(ctx, "graceful shutdown was successful")
	return nil
}

func (svc *Service) registerCheckers(ctx context.Context) (err error) {
	hasErrors := false

	if err = svc.HealthCheck.AddCheck("Health Data Research Gateway API", svc.GatewayClient.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "failed to add catalogue api checker", err)
	}

	if hasErrors {
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}
