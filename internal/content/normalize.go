package content

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Body is a normalized record body keyed by column. Values are string,
// []string, bool or int according to the field kind.
type Body map[string]any

// ValidObject reports whether payload is a well-formed JSON object.
func ValidObject(payload []byte) bool {
	return gjson.ValidBytes(payload) && gjson.ParseBytes(payload).IsObject()
}

// ID returns the trimmed "id" of a payload, or "" when absent or not a
// scalar.
func ID(payload []byte) string {
	r := gjson.GetBytes(payload, "id")
	switch r.Type {
	case gjson.String, gjson.Number:
		return strings.TrimSpace(r.String())
	default:
		return ""
	}
}

// NormalizeCreate resolves every field of s to a concrete value. It never
// fails: malformed payloads yield a body of defaults.
func (s *Schema) NormalizeCreate(payload []byte) Body {
	doc := gjson.ParseBytes(payload)
	body := make(Body, len(s.Fields))
	for _, f := range s.Fields {
		body[f.Column] = f.coerce(doc.Get(f.Key))
	}
	return body
}

// NormalizeUpdate keeps only fields present and non-null in payload, so
// absent fields leave stored values untouched.
func (s *Schema) NormalizeUpdate(payload []byte) Body {
	doc := gjson.ParseBytes(payload)
	body := make(Body)
	for _, f := range s.Fields {
		r := doc.Get(f.Key)
		if !r.Exists() || r.Type == gjson.Null {
			continue
		}
		body[f.Column] = f.coerce(r)
	}
	return body
}

func (f Field) coerce(r gjson.Result) any {
	switch f.Kind {
	case List:
		return toList(r)
	case Flag:
		return toFlag(r, f.Default)
	case Number:
		return toNumber(r)
	default:
		return toText(r)
	}
}

func toText(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number, gjson.True, gjson.False:
		return r.Raw
	default:
		return ""
	}
}

// toList keeps non-blank strings (trimmed) and non-zero numbers; nulls,
// booleans, zeros and nested values are dropped.
func toList(r gjson.Result) []string {
	out := []string{}
	appendEntry := func(e gjson.Result) {
		switch e.Type {
		case gjson.String:
			if v := strings.TrimSpace(e.Str); v != "" {
				out = append(out, v)
			}
		case gjson.Number:
			if e.Num != 0 {
				out = append(out, e.Raw)
			}
		}
	}
	if r.IsArray() {
		for _, e := range r.Array() {
			appendEntry(e)
		}
		return out
	}
	appendEntry(r)
	return out
}

func toFlag(r gjson.Result, def bool) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		switch v := strings.ToLower(strings.TrimSpace(r.Str)); v {
		case "on", "yes":
			return true
		case "off", "no":
			return false
		default:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return def
			}
			return b
		}
	default:
		return def
	}
}

func toNumber(r gjson.Result) int {
	switch r.Type {
	case gjson.Number:
		return truncate(r.Num)
	case gjson.True:
		return 1
	case gjson.String:
		v := strings.TrimSpace(r.Str)
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return truncate(f)
		}
		return 0
	default:
		return 0
	}
}

func truncate(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}
