package models

import "time"

// DefaultWebBaseURL is the public web front end of the catalogue
const DefaultWebBaseURL = "https://www.healthdatagateway.org"

// Publisher contains the organisation that publishes a dataset
type Publisher struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Logo         string `json:"logo,omitempty"`
	Description  string `json:"description,omitempty"`
	ContactPoint string `json:"contact_point,omitempty"`
	MemberOf     string `json:"member_of,omitempty"`
}

// DatasetMetadata contains the descriptive metadata of a dataset version
type DatasetMetadata struct {
	Identifier  string     `json:"identifier,omitempty"`
	Version     string     `json:"version,omitempty"`
	Issued      string     `json:"issued,omitempty"`
	Modified    string     `json:"modified,omitempty"`
	Title       string     `json:"title"`
	Abstract    string     `json:"abstract,omitempty"`
	Description string     `json:"description,omitempty"`
	Keywords    []string   `json:"keywords"`
	Publisher   *Publisher `json:"publisher,omitempty"`

	Spatial               string `json:"spatial,omitempty"`
	TemporalCoverageStart string `json:"temporal_coverage_start,omitempty"`
	TemporalCoverageEnd   string `json:"temporal_coverage_end,omitempty"`
	PopulationSize        int    `json:"population_size,omitempty"`

	AccessRights      string `json:"access_rights,omitempty"`
	AccessRequestCost string `json:"access_request_cost,omitempty"`
	DeliveryLeadTime  string `json:"delivery_lead_time,omitempty"`
	AccessEnvironment string `json:"access_environment,omitempty"`

	ConformsTo     string   `json:"conforms_to,omitempty"`
	Language       string   `json:"language,omitempty"`
	Format         []string `json:"format,omitempty"`
	LinkedDatasets []string `json:"linked_datasets,omitempty"`
}

// Dataset is a catalogued data resource
type Dataset struct {
	ID       string           `json:"id"`
	PID      string           `json:"pid,omitempty"`
	Name     string           `json:"name,omitempty"`
	Status   DatasetStatus    `json:"status"`
	Metadata *DatasetMetadata `json:"metadata,omitempty"`

	TeamID string `json:"team_id,omitempty"`
	Team   *Team  `json:"team,omitempty"`
	UserID string `json:"user_id,omitempty"`

	DursCount         int `json:"durs_count"`
	PublicationsCount int `json:"publications_count"`
	ToolsCount        int `json:"tools_count"`
	CollectionsCount  int `json:"collections_count"`

	IsCohortDiscovery bool       `json:"is_cohort_discovery"`
	Versions          []string   `json:"versions,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`

	// Raw is the upstream object the dataset was mapped from. It is only for
	// pass-through display of fields that are not modelled.
	Raw map[string]interface{} `json:"-"`
}

// Title returns the metadata title, then the dataset name
func (d Dataset) Title() string {
	if d.Metadata != nil && d.Metadata.Title != "" {
		return d.Metadata.Title
	}
	if d.Name != "" {
		return d.Name
	}
	return "Untitled"
}

// PublisherName returns the metadata publisher, then the owning team
func (d Dataset) PublisherName() string {
	if d.Metadata != nil && d.Metadata.Publisher != nil && d.Metadata.Publisher.Name != "" {
		return d.Metadata.Publisher.Name
	}
	if d.Team != nil && d.Team.Name != "" {
		return d.Team.Name
	}
	return "Unknown"
}

// Abstract returns the metadata abstract, falling back to its description
func (d Dataset) Abstract() string {
	if d.Metadata == nil {
		return ""
	}
	if d.Metadata.Abstract != "" {
		return d.Metadata.Abstract
	}
	return d.Metadata.Description
}

// Keywords returns the metadata keywords in upstream order
func (d Dataset) Keywords() []string {
	if d.Metadata == nil {
		return nil
	}
	return d.Metadata.Keywords
}
