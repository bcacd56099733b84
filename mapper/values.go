package mapper

import (
	"strconv"
	"strings"
	"time"
)

// lookup resolves a dotted path such as "summary.title" within a raw object
func lookup(raw map[string]interface{}, path string) (interface{}, bool) {
	current := raw
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := current[part]
		if !ok || v == nil {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := v.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// first returns the value of the first path that is present and non-null
func first(raw map[string]interface{}, paths ...string) (interface{}, bool) {
	if raw == nil {
		return nil, false
	}
	for _, p := range paths {
		if v, ok := lookup(raw, p); ok {
			return v, true
		}
	}
	return nil, false
}

func str(raw map[string]interface{}, paths ...string) string {
	v, ok := first(raw, paths...)
	if !ok {
		return ""
	}
	return toString(v)
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case interface{ String() string }:
		return val.String()
	}
	return ""
}

func integer(raw map[string]interface{}, paths ...string) int {
	v, ok := first(raw, paths...)
	if !ok {
		return 0
	}
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case int64:
		return int(val)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		return n
	case interface{ Int64() (int64, error) }:
		n, err := val.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	}
	return 0
}

func count(raw map[string]interface{}, paths ...string) int {
	if n := integer(raw, paths...); n > 0 {
		return n
	}
	return 0
}

func boolean(raw map[string]interface{}, def bool, paths ...string) bool {
	v, ok := first(raw, paths...)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case int:
		return val != 0
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

// stringList accepts a JSON list or a ';' / ',' delimited string. Object
// elements contribute their first naming field. The result is never nil.
func stringList(raw map[string]interface{}, paths ...string) []string {
	out := []string{}
	v, ok := first(raw, paths...)
	if !ok {
		return out
	}
	switch val := v.(type) {
	case []interface{}:
		for _, item := range val {
			var s string
			if m, isMap := item.(map[string]interface{}); isMap {
				s = str(m, "title", "name", "version", "id")
			} else {
				s = toString(item)
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range val {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, s := range strings.FieldsFunc(val, func(r rune) bool { return r == ';' || r == ',' }) {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// joined renders a list or scalar as a single comma separated string
func joined(raw map[string]interface{}, paths ...string) string {
	v, ok := first(raw, paths...)
	if !ok {
		return ""
	}
	if _, isList := v.([]interface{}); isList {
		return strings.Join(stringList(raw, paths...), ", ")
	}
	return toString(v)
}

func object(raw map[string]interface{}, paths ...string) map[string]interface{} {
	for _, p := range paths {
		if v, ok := lookup(raw, p); ok {
			if m, isMap := v.(map[string]interface{}); isMap && len(m) > 0 {
				return m
			}
		}
	}
	return nil
}

func objects(raw map[string]interface{}, paths ...string) []map[string]interface{} {
	v, ok := first(raw, paths...)
	if !ok {
		return nil
	}
	list, isList := v.([]interface{})
	if !isList {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if m, isMap := item.(map[string]interface{}); isMap && len(m) > 0 {
			out = append(out, m)
		}
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func timestamp(raw map[string]interface{}, paths ...string) *time.Time {
	s := strings.TrimSpace(str(raw, paths...))
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
