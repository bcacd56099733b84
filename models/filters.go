package models

import (
	"net/url"
	"strconv"
)

// SearchFilters contains the structured constraints of a catalogue search.
// The list fields behave as ordered sets: adding a value twice keeps the
// first occurrence only.
type SearchFilters struct {
	Query              string               `json:"query,omitempty"`
	ResourceType       ResourceType         `json:"resource_type,omitempty"`
	GeographicCoverage []string             `json:"geographic_coverage,omitempty"`
	Publisher          []string             `json:"publisher,omitempty"`
	OrganisationSector []OrganisationSector `json:"organisation_sector,omitempty"`
	Keywords           []string             `json:"keywords,omitempty"`
	DataUseLimitation  []string             `json:"data_use_limitation,omitempty"`
	AccessService      []string             `json:"access_service,omitempty"`
	DateRangeStart     string               `json:"date_range_start,omitempty"`
	DateRangeEnd       string               `json:"date_range_end,omitempty"`
	Page               int                  `json:"page,omitempty"`
	PerPage            int                  `json:"per_page,omitempty"`
	SortBy             string               `json:"sort_by,omitempty"`
	SortOrder          string               `json:"sort_order,omitempty"`

	// Extra holds additional upstream filter keys. They are sent as given and
	// take precedence over the modelled fields.
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// AddGeographicCoverage records a region, reporting whether it was new
func (f *SearchFilters) AddGeographicCoverage(region string) bool {
	return addUnique(&f.GeographicCoverage, region)
}

// AddPublisher records a publisher name, reporting whether it was new
func (f *SearchFilters) AddPublisher(name string) bool {
	return addUnique(&f.Publisher, name)
}

// AddKeyword records a keyword, reporting whether it was new
func (f *SearchFilters) AddKeyword(keyword string) bool {
	return addUnique(&f.Keywords, keyword)
}

// AddOrganisationSector records a sector, reporting whether it was new
func (f *SearchFilters) AddOrganisationSector(sector OrganisationSector) bool {
	if sector == "" {
		return false
	}
	for _, s := range f.OrganisationSector {
		if s == sector {
			return false
		}
	}
	f.OrganisationSector = append(f.OrganisationSector, sector)
	return true
}

// HasConstraints reports whether any region, publisher, sector or keyword is set
func (f SearchFilters) HasConstraints() bool {
	return len(f.GeographicCoverage) > 0 || len(f.Publisher) > 0 ||
		len(f.OrganisationSector) > 0 || len(f.Keywords) > 0
}

// Clone returns a deep copy of the filters
func (f SearchFilters) Clone() SearchFilters {
	c := f
	c.GeographicCoverage = append([]string(nil), f.GeographicCoverage...)
	c.Publisher = append([]string(nil), f.Publisher...)
	c.OrganisationSector = append([]OrganisationSector(nil), f.OrganisationSector...)
	c.Keywords = append([]string(nil), f.Keywords...)
	c.DataUseLimitation = append([]string(nil), f.DataUseLimitation...)
	c.AccessService = append([]string(nil), f.AccessService...)
	if f.Extra != nil {
		c.Extra = make(map[string]interface{}, len(f.Extra))
		for k, v := range f.Extra {
			c.Extra[k] = v
		}
	}
	return c
}

// ToMap flattens the filters into the upstream parameter shape. Unset
// fields are omitted rather than sent as null.
func (f SearchFilters) ToMap() map[string]interface{} {
	params := map[string]interface{}{}

	if f.Query != "" {
		params["search"] = f.Query
	}
	if f.ResourceType != "" {
		params["type"] = string(f.ResourceType)
	}
	if len(f.GeographicCoverage) > 0 {
		params["geographicCoverage"] = f.GeographicCoverage
	}
	if len(f.Publisher) > 0 {
		params["publisher"] = f.Publisher
	}
	if len(f.OrganisationSector) > 0 {
		sectors := make([]string, 0, len(f.OrganisationSector))
		for _, s := range f.OrganisationSector {
			sectors = append(sectors, string(s))
		}
		params["organisationSector"] = sectors
	}
	if len(f.Keywords) > 0 {
		params["keywords"] = f.Keywords
	}
	if len(f.DataUseLimitation) > 0 {
		params["dataUseLimitation"] = f.DataUseLimitation
	}
	if len(f.AccessService) > 0 {
		params["accessService"] = f.AccessService
	}
	if f.DateRangeStart != "" {
		params["dateRangeStart"] = f.DateRangeStart
	}
	if f.DateRangeEnd != "" {
		params["dateRangeEnd"] = f.DateRangeEnd
	}
	if f.Page > 0 {
		params["page"] = f.Page
	}
	if f.PerPage > 0 {
		params["perPage"] = f.PerPage
	}
	if f.SortBy != "" {
		params["sortBy"] = f.SortBy
	}
	if f.SortOrder != "" {
		params["sortOrder"] = f.SortOrder
	}
	for k, v := range f.Extra {
		if v != nil {
			params[k] = v
		}
	}

	return params
}

// ToValues flattens the filters into query string values, repeating the key
// for every element of a list.
func (f SearchFilters) ToValues() url.Values {
	return MapToValues(f.ToMap())
}

// MapToValues converts a flat parameter map into query string values
func MapToValues(params map[string]interface{}) url.Values {
	values := url.Values{}
	for k, v := range params {
		switch val := v.(type) {
		case string:
			values.Set(k, val)
		case int:
			values.Set(k, strconv.Itoa(val))
		case bool:
			values.Set(k, strconv.FormatBool(val))
		case float64:
			values.Set(k, strconv.FormatFloat(val, 'f', -1, 64))
		case []string:
			for _, s := range val {
				values.Add(k, s)
			}
		case []interface{}:
			for _, s := range val {
				if str, ok := s.(string); ok {
					values.Add(k, str)
				}
			}
		}
	}
	return values
}

func addUnique(list *[]string, value string) bool {
	if value == "" {
		return false
	}
	for _, v := range *list {
		if v == value {
			return false
		}
	}
	*list = append(*list, value)
	return true
}
