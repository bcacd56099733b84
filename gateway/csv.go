package gateway

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// csvRecords reads a CSV export into raw objects keyed by the header row.
// Header names are normalised to snake_case ("Project Title" becomes
// "project_title") so that the resource mappers apply unchanged.
func csvRecords(text string) ([]map[string]interface{}, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(text, "\uFEFF")))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return []map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv header")
	}
	for i, h := range header {
		header[i] = csvKey(h)
	}

	out := []map[string]interface{}{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read csv row")
		}

		rec := map[string]interface{}{}
		for i, v := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if v = strings.TrimSpace(v); v != "" {
				rec[header[i]] = v
			}
		}
		if len(rec) > 0 {
			out = append(out, rec)
		}
	}

	return out, nil
}

func csvKey(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Join(strings.FieldsFunc(h, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/'
	}), "_")
}
