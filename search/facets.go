package search

import (
	"sort"

	"github.com/ONSdigital/dp-healthdata-discovery/models"
)

const maxPublisherBuckets = 10

// Facet is a count of distinct values of one field over a result set
type Facet struct {
	Name    string   `json:"name"`
	Field   string   `json:"field"`
	Buckets []Bucket `json:"buckets"`
}

// Bucket is one value of a facet and the number of results having it
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Facets aggregates publishers over the datasets (top 10) and organisation
// sectors over the data uses. Buckets are ordered by count, ties keeping
// first-seen order. A facet with no values is left out.
func Facets(r models.SearchResult) []Facet {
	facets := []Facet{}

	publishers := newCounter()
	for _, d := range r.Datasets {
		publishers.add(d.PublisherName())
	}
	if buckets := publishers.buckets(maxPublisherBuckets); len(buckets) > 0 {
		facets = append(facets, Facet{Name: "Publisher", Field: "publisher", Buckets: buckets})
	}

	sectors := newCounter()
	for _, du := range r.DataUses {
		if du.OrganisationSector != "" {
			sectors.add(string(du.OrganisationSector))
		}
	}
	if buckets := sectors.buckets(0); len(buckets) > 0 {
		facets = append(facets, Facet{Name: "Organisation Sector", Field: "organisation_sector", Buckets: buckets})
	}

	return facets
}

type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// buckets returns the counts in descending order, at most limit of them
// when limit is positive
func (c *counter) buckets(limit int) []Bucket {
	out := make([]Bucket, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, Bucket{Key: k, Count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
