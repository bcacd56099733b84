package models

import "strings"

// ResourceType identifies an independently searchable catalogue entity
type ResourceType string

// Resource types understood by the gateway search endpoint
const (
	ResourceDataset         ResourceType = "dataset"
	ResourceDataUseRegister ResourceType = "dataUseRegister"
	ResourcePublication     ResourceType = "publication"
	ResourceTool            ResourceType = "tool"
	ResourceCollection      ResourceType = "collection"
	ResourceDataProvider    ResourceType = "dataProvider"
)

// SearchableResourceTypes returns the resource types a unified search covers by default
func SearchableResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceDataset,
		ResourceDataUseRegister,
		ResourcePublication,
		ResourceTool,
		ResourceCollection,
	}
}

// DatasetStatus is the publication status of a dataset
type DatasetStatus string

// Dataset statuses
const (
	DatasetStatusDraft    DatasetStatus = "draft"
	DatasetStatusPending  DatasetStatus = "pending"
	DatasetStatusActive   DatasetStatus = "active"
	DatasetStatusRejected DatasetStatus = "rejected"
	DatasetStatusArchived DatasetStatus = "archived"
)

// ParseDatasetStatus converts an upstream status value, returning
// DatasetStatusActive for empty or unrecognised values.
func ParseDatasetStatus(s string) DatasetStatus {
	switch st := DatasetStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case DatasetStatusDraft, DatasetStatusPending, DatasetStatusActive, DatasetStatusRejected, DatasetStatusArchived:
		return st
	}
	return DatasetStatusActive
}

// AccessType describes how researchers reach the data of a data use
type AccessType string

// Access types. The zero value means the access type is unknown.
const (
	AccessTypeOpen        AccessType = "open"
	AccessTypeSafeguarded AccessType = "safeguarded"
	AccessTypeControlled  AccessType = "controlled"
)

// ParseAccessType converts an upstream access type. Unrecognised values
// resolve to the zero AccessType rather than an error.
func ParseAccessType(s string) AccessType {
	switch at := AccessType(strings.ToLower(strings.TrimSpace(s))); at {
	case AccessTypeOpen, AccessTypeSafeguarded, AccessTypeControlled:
		return at
	}
	return ""
}

// OrganisationSector is the sector of the organisation behind a data use
type OrganisationSector string

// Organisation sectors. The zero value means no sector was supplied.
const (
	SectorNHS        OrganisationSector = "NHS"
	SectorAcademia   OrganisationSector = "Academia"
	SectorGovernment OrganisationSector = "Government"
	SectorCharity    OrganisationSector = "Charity"
	SectorCommercial OrganisationSector = "Commercial"
	SectorOther      OrganisationSector = "Other"
)

var sectors = []OrganisationSector{SectorNHS, SectorAcademia, SectorGovernment, SectorCharity, SectorCommercial, SectorOther}

// ParseOrganisationSector converts an upstream sector. An empty value stays
// empty, matching is case-insensitive and anything unrecognised becomes
// SectorOther.
func ParseOrganisationSector(s string) OrganisationSector {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, sector := range sectors {
		if strings.EqualFold(s, string(sector)) {
			return sector
		}
	}
	return SectorOther
}
