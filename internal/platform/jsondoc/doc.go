package jsondoc

import (
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// Doc is a schema-tolerant view over a decoded JSON object. Upstream
// documents drift across seasons (absent fields, nulled fields, numbers
// serialized as strings), so every accessor declares its default instead of
// failing: numbers default to 0, booleans to false, strings to "".
type Doc map[string]any

// Decode parses a raw JSON object into a Doc. An empty body decodes to an
// empty Doc rather than an error.
func Decode(raw []byte) (Doc, error) {
	if len(raw) == 0 {
		return Doc{}, nil
	}

	var out map[string]any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return Doc(out), nil
}

func (d Doc) IsEmpty() bool {
	return len(d) == 0
}

// Doc walks nested objects along path, returning an empty Doc when any hop
// is absent or not an object.
func (d Doc) Doc(path ...string) Doc {
	current := d
	for _, key := range path {
		next, ok := current[key].(map[string]any)
		if !ok {
			return Doc{}
		}
		current = Doc(next)
	}
	return current
}

// List returns the array of objects at path, or nil when absent.
func (d Doc) List(path ...string) []Doc {
	if len(path) == 0 {
		return nil
	}
	parent := d.Doc(path[:len(path)-1]...)

	raw, ok := parent[path[len(path)-1]].([]any)
	if !ok {
		return nil
	}

	out := make([]Doc, 0, len(raw))
	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Doc(obj))
		}
	}
	return out
}

func (d Doc) Str(path ...string) string {
	value, ok := d.lookup(path)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func (d Doc) Int(path ...string) int64 {
	value, ok := d.lookup(path)
	if !ok {
		return 0
	}
	return coerceInt(value)
}

func (d Doc) Float(path ...string) float64 {
	value, ok := d.lookup(path)
	if !ok {
		return 0
	}
	switch v := value.(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func (d Doc) Bool(path ...string) bool {
	value, ok := d.lookup(path)
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false" && v != "0"
	case float64:
		return v != 0
	default:
		return false
	}
}

// Ref returns the `$ref` pointer string nested under path.
func (d Doc) Ref(path ...string) string {
	return d.Doc(path...).Str("$ref")
}

func (d Doc) Has(path ...string) bool {
	_, ok := d.lookup(path)
	return ok
}

// RequiredInt is for fields with no sensible default, like upstream IDs:
// absence or a non-numeric value is an error the caller must surface.
func (d Doc) RequiredInt(path ...string) (int64, error) {
	value, ok := d.lookup(path)
	if !ok {
		return 0, &MissingFieldError{Field: strings.Join(path, ".")}
	}

	switch v := value.(type) {
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, &MissingFieldError{Field: strings.Join(path, ".")}
		}
		return parsed, nil
	case float64:
		return int64(v), nil
	default:
		return 0, &MissingFieldError{Field: strings.Join(path, ".")}
	}
}

// MissingFieldError reports a required field absent from an upstream document.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "document is missing required field " + e.Field
}

func (d Doc) lookup(path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	parent := d.Doc(path[:len(path)-1]...)
	value, ok := parent[path[len(path)-1]]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func coerceInt(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			if f, ferr := strconv.ParseFloat(strings.TrimSpace(v), 64); ferr == nil {
				return int64(f)
			}
			return 0
		}
		return parsed
	default:
		return 0
	}
}
