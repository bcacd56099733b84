// Package cli contains the healthdata command line tool
package cli

import (
	"context"

	"github.com/ONSdigital/dp-healthdata-discovery/config"
	"github.com/ONSdigital/dp-healthdata-discovery/gateway"
	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/spf13/cobra"
)

//go:generate moq -out mocks_test.go -pkg cli . Client

// Client is the catalogue client used by the commands
type Client interface {
	Search(ctx context.Context, term string, types []models.ResourceType, filters *models.SearchFilters, page, perPage int) models.SearchResult
	GetDataset(ctx context.Context, id string) (models.Dataset, error)
	SearchDatasets(ctx context.Context, term string, filters *models.SearchFilters, page, perPage int) ([]models.Dataset, error)
	GetDataUse(ctx context.Context, id string) (models.DataUseRegister, error)
	ListPublishers(ctx context.Context, page, perPage int) ([]models.Team, error)
	ExportDataUses(ctx context.Context) ([]models.DataUseRegister, error)
	WebURL(resourceType, id string) string
}

// ClientFactory creates the catalogue client once configuration is loaded
type ClientFactory func(cfg *config.Config) (Client, error)

// GatewayClient is the ClientFactory used outside tests
func GatewayClient(cfg *config.Config) (Client, error) {
	opts, err := cfg.GatewayOptions()
	if err != nil {
		return nil, err
	}
	return gateway.New(cfg.Gateway(), opts...), nil
}

type app struct {
	newClient ClientFactory
	cfg       *config.Config
	client    Client
}

// NewRootCmd builds the command tree. Configuration comes from the same
// environment variables as the service.
func NewRootCmd(newClient ClientFactory) *cobra.Command {
	a := &app{newClient: newClient}

	root := &cobra.Command{
		Use:   "healthdata",
		Short: "Search and explore UK health datasets",
		Long: `healthdata searches the Health Data Research Gateway catalogue.

Example usage:
  healthdata search diabetes
  healthdata search "cancer data in Wales" --export csv
  healthdata search cardiovascular --publications --facets
  healthdata dataset <id> --similar
  healthdata data-use <id>
  healthdata publishers
  healthdata export-dur --publisher Leeds --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.AddCommand(
		a.searchCmd(),
		a.datasetCmd(),
		a.dataUseCmd(),
		a.publishersCmd(),
		a.exportDURCmd(),
	)
	return root
}

// Execute runs the command line tool against the live catalogue
func Execute() error {
	return NewRootCmd(GatewayClient).Execute()
}

func (a *app) init() error {
	if a.client != nil {
		return nil
	}

	cfg, err := config.Get()
	if err != nil {
		return err
	}
	client, err := a.newClient(cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.client = client
	return nil
}
