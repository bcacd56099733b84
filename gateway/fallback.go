package gateway

import (
	"io"
	"os"
	"strings"

	"github.com/ONSdigital/dp-healthdata-discovery/models"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// FallbackProvider supplies raw, API shaped objects for a resource type when
// the live catalogue cannot be reached
type FallbackProvider interface {
	Items(rt models.ResourceType, term string) []map[string]interface{}
}

// StaticFallback serves a fixed document of catalogue objects, keyed by
// resource type:
//
//	{"dataset": [{...}], "dataUseRegister": [{...}], "dataProvider": [{...}]}
type StaticFallback struct {
	items map[models.ResourceType][]map[string]interface{}
}

// NewStaticFallback creates a fallback serving items
func NewStaticFallback(items map[models.ResourceType][]map[string]interface{}) *StaticFallback {
	if items == nil {
		items = map[models.ResourceType][]map[string]interface{}{}
	}
	return &StaticFallback{items: items}
}

// LoadStaticFallback reads a fallback document
func LoadStaticFallback(r io.Reader) (*StaticFallback, error) {
	var doc map[models.ResourceType][]map[string]interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode fallback data")
	}
	return NewStaticFallback(doc), nil
}

// LoadStaticFallbackFile reads a fallback document from disk
func LoadStaticFallbackFile(path string) (*StaticFallback, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open fallback data")
	}
	defer f.Close()

	return LoadStaticFallback(f)
}

// Items returns the objects of rt whose text contains every word of term,
// ignoring case. An empty term matches everything.
func (f *StaticFallback) Items(rt models.ResourceType, term string) []map[string]interface{} {
	words := strings.Fields(strings.ToLower(term))

	out := []map[string]interface{}{}
	for _, item := range f.items[rt] {
		if matchesAll(item, words) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll(item map[string]interface{}, words []string) bool {
	if len(words) == 0 {
		return true
	}

	var sb strings.Builder
	collectText(item, &sb)
	text := strings.ToLower(sb.String())

	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

func collectText(v interface{}, sb *strings.Builder) {
	switch val := v.(type) {
	case string:
		sb.WriteString(val)
		sb.WriteByte(' ')
	case map[string]interface{}:
		for _, child := range val {
			collectText(child, sb)
		}
	case []interface{}:
		for _, child := range val {
			collectText(child, sb)
		}
	}
}
