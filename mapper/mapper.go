// Package mapper translates raw catalogue JSON into the domain model. Every
// function is total: missing or malformed fields resolve to defaults. Where
// the upstream API is inconsistent the snake_case name is tried before the
// camelCase one.
package mapper

import (
	"github.com/ONSdigital/dp-healthdata-discovery/models"
)

// metadataPaths is the order in which a dataset's descriptive metadata is
// probed. The first non-empty object wins.
var metadataPaths = []string{
	"latest_metadata.metadata.metadata",
	"latestMetadata.metadata.metadata",
	"latest_metadata.metadata",
	"latestMetadata.metadata",
	"metadata.metadata",
	"metadata",
}

// ParseDataset maps a raw dataset object
func ParseDataset(raw map[string]interface{}) models.Dataset {
	name := str(raw, "name")

	d := models.Dataset{
		ID:                str(raw, "id"),
		PID:               str(raw, "pid"),
		Name:              name,
		Status:            models.ParseDatasetStatus(str(raw, "status")),
		TeamID:            str(raw, "team_id", "teamId"),
		UserID:            str(raw, "user_id", "userId"),
		DursCount:         count(raw, "durs_count", "dursCount"),
		PublicationsCount: count(raw, "publications_count", "publicationsCount"),
		ToolsCount:        count(raw, "tools_count", "toolsCount"),
		CollectionsCount:  count(raw, "collections_count", "collectionsCount"),
		IsCohortDiscovery: boolean(raw, false, "is_cohort_discovery", "isCohortDiscovery"),
		Versions:          stringList(raw, "versions"),
		CreatedAt:         timestamp(raw, "created_at", "createdAt"),
		UpdatedAt:         timestamp(raw, "updated_at", "updatedAt"),
		Raw:               raw,
	}

	if meta := object(raw, metadataPaths...); meta != nil {
		m := ParseDatasetMetadata(meta, name)
		d.Metadata = &m
	}

	if team := object(raw, "team"); team != nil {
		t := ParseTeam(team)
		d.Team = &t
	}

	return d
}

// ParseDatasetMetadata maps a metadata object. Both the flat layout and the
// sectioned layout (summary, coverage, accessibility, ...) are understood.
// fallbackTitle is used when the metadata has no title.
func ParseDatasetMetadata(raw map[string]interface{}, fallbackTitle string) models.DatasetMetadata {
	m := models.DatasetMetadata{
		Identifier:  str(raw, "identifier", "required.gatewayId", "summary.datasetId"),
		Version:     str(raw, "version", "required.version"),
		Issued:      str(raw, "issued", "required.issued"),
		Modified:    str(raw, "modified", "required.modified"),
		Title:       str(raw, "title", "summary.title"),
		Abstract:    str(raw, "abstract", "summary.abstract"),
		Description: str(raw, "description", "summary.description", "documentation.description"),
		Keywords:    stringList(raw, "keywords", "summary.keywords"),

		Spatial:               joined(raw, "spatial", "coverage.spatial"),
		TemporalCoverageStart: str(raw, "temporal_coverage_start", "temporalCoverageStart", "provenance.temporal.startDate"),
		TemporalCoverageEnd:   str(raw, "temporal_coverage_end", "temporalCoverageEnd", "provenance.temporal.endDate"),
		PopulationSize:        count(raw, "population_size", "populationSize", "summary.populationSize"),

		AccessRights:      str(raw, "access_rights", "accessRights", "accessibility.access.accessRights"),
		AccessRequestCost: joined(raw, "access_request_cost", "accessRequestCost", "accessibility.access.accessRequestCost"),
		DeliveryLeadTime:  str(raw, "delivery_lead_time", "deliveryLeadTime", "accessibility.access.deliveryLeadTime"),
		AccessEnvironment: str(raw, "access_environment", "accessEnvironment", "accessibility.access.accessServiceCategory"),

		ConformsTo:     joined(raw, "conforms_to", "conformsTo", "accessibility.formatAndStandards.conformsTo"),
		Language:       joined(raw, "language", "accessibility.formatAndStandards.language"),
		Format:         stringList(raw, "format", "accessibility.formatAndStandards.format"),
		LinkedDatasets: stringList(raw, "linked_datasets", "linkedDatasets", "linkage.datasetLinkage.isDerivedFrom"),
	}

	if m.Title == "" {
		m.Title = fallbackTitle
	}

	if v, ok := first(raw, "publisher", "summary.publisher"); ok {
		m.Publisher = ParsePublisher(v)
	}

	return m
}

// ParsePublisher maps a publisher given either as an object or a bare name.
// It returns nil when nothing usable is present.
func ParsePublisher(v interface{}) *models.Publisher {
	switch val := v.(type) {
	case string:
		if val == "" {
			return nil
		}
		return &models.Publisher{Name: val}
	case map[string]interface{}:
		if len(val) == 0 {
			return nil
		}
		return &models.Publisher{
			ID:           str(val, "id", "identifier", "gatewayId"),
			Name:         str(val, "name", "publisherName"),
			Logo:         str(val, "logo"),
			Description:  str(val, "description"),
			ContactPoint: str(val, "contact_point", "contactPoint"),
			MemberOf:     str(val, "member_of", "memberOf"),
		}
	}
	return nil
}

// ParseTeam maps a raw team / data custodian object
func ParseTeam(raw map[string]interface{}) models.Team {
	return models.Team{
		ID:           str(raw, "id"),
		PID:          str(raw, "pid"),
		Name:         str(raw, "name"),
		Introduction: str(raw, "introduction"),
		ContactPoint: str(raw, "contact_point", "contactPoint"),
		TeamLogo:     str(raw, "team_logo", "teamLogo"),
		URL:          str(raw, "url"),
		Service:      str(raw, "service"),
		MemberOf:     str(raw, "member_of", "memberOf"),

		Enabled:                  boolean(raw, true, "enabled"),
		AllowsMessaging:          boolean(raw, false, "allows_messaging", "allowsMessaging"),
		WorkflowEnabled:          boolean(raw, false, "workflow_enabled", "workflowEnabled"),
		AccessRequestsManagement: boolean(raw, false, "access_requests_management", "accessRequestsManagement"),
		Uses5Safes:               boolean(raw, false, "uses_5_safes", "uses5Safes"),
		IsQuestionBank:           boolean(raw, false, "is_question_bank", "isQuestionBank"),
		IsDAR:                    boolean(raw, false, "is_dar", "isDar"),
		IsAdmin:                  boolean(raw, false, "is_admin", "isAdmin"),
		HasPublishedDARTemplate:  boolean(raw, false, "has_published_dar_template", "hasPublishedDarTemplate"),

		Aliases:   stringList(raw, "aliases"),
		UpdatedAt: str(raw, "updated_at", "updatedAt"),
		Raw:       raw,
	}
}
