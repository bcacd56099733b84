package search

import (
	"github.com/ONSdigital/dp-healthdata-discovery/models"
)

const (
	maxSuggestions = 5

	// suggestions are only offered for sparse result sets
	suggestionThreshold = 5

	publisherSuggestionScore = 0.8
	conditionSuggestionScore = 0.6
)

// Suggestion types
const (
	SuggestionPublisher = "publisher"
	SuggestionCondition = "condition"
)

// Suggestion is a refined query worth trying
type Suggestion struct {
	Text     string            `json:"text"`
	Type     string            `json:"type"`
	Score    float64           `json:"score"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Suggestions proposes refinements when fewer than 5 datasets were found:
// publishers the query does not name yet and, when at least one dataset was
// found, conditions the query does not mention. The two kinds alternate,
// publishers first, up to 5 suggestions.
func Suggestions(query string, r models.SearchResult) []Suggestion {
	out := []Suggestion{}
	if len(r.Datasets) >= suggestionThreshold {
		return out
	}

	var publishers, conditions []Suggestion

	for _, t := range publisherTerms {
		if t.match(query) != "" {
			continue
		}
		name := publisherNames[t.key][0]
		publishers = append(publishers, Suggestion{
			Text:     query + " " + name,
			Type:     SuggestionPublisher,
			Score:    publisherSuggestionScore,
			Metadata: map[string]string{"publisher": name},
		})
	}

	if len(r.Datasets) > 0 {
		for _, t := range conditionTerms {
			if t.match(query) != "" || t.keyMatch.MatchString(query) {
				continue
			}
			conditions = append(conditions, Suggestion{
				Text:  query + " " + t.key,
				Type:  SuggestionCondition,
				Score: conditionSuggestionScore,
			})
		}
	}

	for i := 0; len(out) < maxSuggestions && (i < len(publishers) || i < len(conditions)); i++ {
		if i < len(publishers) {
			out = append(out, publishers[i])
		}
		if i < len(conditions) && len(out) < maxSuggestions {
			out = append(out, conditions[i])
		}
	}

	return out
}
