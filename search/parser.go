package search

import (
	"sort"
	"strings"

	"github.com/ONSdigital/dp-healthdata-discovery/models"
)

// ParseQuery turns free text into a cleaned search term and the filters it
// implies. Condition and data type words become keywords and stay in the
// term; region and publisher words become filters and are removed, as are
// filler words. Extraction repeats on the cleaned text until it no longer
// changes, so the returned term parses to itself.
func ParseQuery(query string) (string, models.SearchFilters) {
	var filters models.SearchFilters

	working := query
	for {
		remove := extract(working, &filters)
		next := clean(working, remove)
		if next == working {
			break
		}
		working = next
	}

	return working, filters
}

// extract records the filters found in text and returns the matched text
// that must be removed from the term
func extract(text string, filters *models.SearchFilters) []string {
	var remove []string

	for _, t := range conditionTerms {
		if t.match(text) != "" {
			filters.AddKeyword(t.key)
		}
	}

	for _, t := range regionTerms {
		if m := t.match(text); m != "" {
			filters.AddGeographicCoverage(t.label)
			remove = append(remove, m)
		}
	}

	for _, t := range dataTypeTerms {
		if t.match(text) != "" {
			filters.AddKeyword(t.key)
		}
	}

	for _, t := range publisherTerms {
		if m := t.match(text); m != "" {
			for _, name := range publisherNames[t.key] {
				filters.AddPublisher(name)
			}
			remove = append(remove, m)
		}
	}

	return remove
}

func clean(text string, remove []string) string {
	sort.SliceStable(remove, func(i, j int) bool {
		return len(remove[i]) > len(remove[j])
	})
	for _, r := range remove {
		text = exactPattern(r).ReplaceAllString(text, " ")
	}

	text = fillerPattern.ReplaceAllString(text, " ")

	return strings.Join(strings.Fields(text), " ")
}

// Interpretation describes the parsed filters for display
func Interpretation(query string, filters models.SearchFilters) string {
	var parts []string
	if len(filters.Keywords) > 0 {
		parts = append(parts, "topics: "+strings.Join(filters.Keywords, ", "))
	}
	if len(filters.GeographicCoverage) > 0 {
		parts = append(parts, "region: "+strings.Join(filters.GeographicCoverage, ", "))
	}
	if len(filters.Publisher) > 0 {
		parts = append(parts, "publishers: "+strings.Join(filters.Publisher, ", "))
	}

	if len(parts) == 0 {
		return "Searching for: " + query
	}
	return "Searching for: " + strings.Join(parts, " | ")
}
