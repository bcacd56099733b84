package models

import (
	"maps"
	"slices"
)

// SearchResult contains the combined results of a search across resource
// types. Every list is non-nil once built with NewSearchResult.
type SearchResult struct {
	Datasets     []Dataset         `json:"datasets"`
	DataUses     []DataUseRegister `json:"data_uses"`
	Publications []Publication     `json:"publications"`
	Tools        []Tool            `json:"tools"`
	Collections  []Collection      `json:"collections"`

	// Failures records the resource types whose search failed and was
	// replaced by an empty list.
	Failures map[ResourceType]error `json:"-"`
}

// NewSearchResult returns a result with every list empty
func NewSearchResult() SearchResult {
	return SearchResult{
		Datasets:     []Dataset{},
		DataUses:     []DataUseRegister{},
		Publications: []Publication{},
		Tools:        []Tool{},
		Collections:  []Collection{},
		Failures:     map[ResourceType]error{},
	}
}

// TotalResults is the number of items across every resource type
func (r SearchResult) TotalResults() int {
	return len(r.Datasets) + len(r.DataUses) + len(r.Publications) + len(r.Tools) + len(r.Collections)
}

// Failed reports whether the search for a resource type failed
func (r SearchResult) Failed(rt ResourceType) bool {
	_, ok := r.Failures[rt]
	return ok
}

// Normalise replaces nil lists with empty ones
func (r *SearchResult) Normalise() {
	if r.Datasets == nil {
		r.Datasets = []Dataset{}
	}
	if r.DataUses == nil {
		r.DataUses = []DataUseRegister{}
	}
	if r.Publications == nil {
		r.Publications = []Publication{}
	}
	if r.Tools == nil {
		r.Tools = []Tool{}
	}
	if r.Collections == nil {
		r.Collections = []Collection{}
	}
}

// Clone copies the result lists and failures so the copy can be changed
// without affecting r. Items are copied by value; their own slices are shared.
func (r SearchResult) Clone() SearchResult {
	c := SearchResult{
		Datasets:     slices.Clone(r.Datasets),
		DataUses:     slices.Clone(r.DataUses),
		Publications: slices.Clone(r.Publications),
		Tools:        slices.Clone(r.Tools),
		Collections:  slices.Clone(r.Collections),
		Failures:     maps.Clone(r.Failures),
	}
	c.Normalise()
	if c.Failures == nil {
		c.Failures = map[ResourceType]error{}
	}
	return c
}
