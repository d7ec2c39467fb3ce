package dto

import (
	"encoding/json"
	"math"

	"github.com/dtroode/mediavault-server/internal/model"
)

// fields reads typed values out of a decoded JSON object and records type
// errors. A field that fails to decode is reported once and left unset.
type fields struct {
	raw  map[string]any
	errs *ValidationError
}

func newFields(raw map[string]any) fields {
	if raw == nil {
		raw = map[string]any{}
	}
	return fields{raw: raw, errs: &ValidationError{}}
}

func (f fields) optionalString(key string, transform func(string) string) *string {
	v, ok := f.raw[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		f.errs.Add(key, "%s must be a string", key)
		return nil
	}
	if transform != nil {
		s = transform(s)
	}
	return &s
}

func (f fields) requiredString(key string, transform func(string) string) string {
	if _, ok := f.raw[key]; !ok {
		f.errs.Add(key, "%s is required", key)
		return ""
	}
	s := f.optionalString(key, transform)
	if s == nil {
		return ""
	}
	return *s
}

func (f fields) nullableString(key string, transform func(string) string) model.Nullable[string] {
	v, ok := f.raw[key]
	if !ok {
		return model.Nullable[string]{}
	}
	if v == nil {
		return model.Null[string]()
	}
	s := f.optionalString(key, transform)
	if s == nil {
		return model.Nullable[string]{}
	}
	return model.NewNullable(*s)
}

func (f fields) nullableInt64(key string) model.Nullable[int64] {
	v, ok := f.raw[key]
	if !ok {
		return model.Nullable[int64]{}
	}
	if v == nil {
		return model.Null[int64]()
	}
	n, ok := toInt64(v)
	if !ok {
		f.errs.Add(key, "%s must be an integer number", key)
		return model.Nullable[int64]{}
	}
	return model.NewNullable(n)
}

// optionalBool reads a boolean. Loose booleans also accept string and
// numeric forms; strict ones require a JSON boolean.
func (f fields) optionalBool(key string, loose bool) *bool {
	v, ok := f.raw[key]
	if !ok {
		return nil
	}
	if b, ok := v.(bool); ok {
		return &b
	}
	if loose && v != nil {
		if b, err := ToBoolean(v); err == nil {
			return &b
		}
	}
	f.errs.Add(key, "%s must be a boolean value", key)
	return nil
}

func (f fields) optionalObject(key string) map[string]any {
	v, ok := f.raw[key]
	if !ok {
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		f.errs.Add(key, "%s must be an object", key)
		return nil
	}
	return obj
}

func (f fields) optionalList(key string) ([]any, bool) {
	v, ok := f.raw[key]
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	if !ok {
		f.errs.Add(key, "%s must be an array", key)
		return nil, false
	}
	return list, true
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if fl, err := n.Float64(); err == nil {
			return floatToInt64(fl)
		}
	}
	return 0, false
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
