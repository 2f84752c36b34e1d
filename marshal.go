package formtree

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// MarshalJSON renders the object with fields in insertion order, which the
// stdlib map encoding would sort away.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders padded slots that were never assigned as null.
func (a *Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, elem := range a.elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		value, err := json.Marshal(elem)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalYAML preserves field order via yaml.MapSlice.
func (o *Object) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, 0, len(o.fields))
	for _, f := range o.fields {
		out = append(out, yaml.MapItem{Key: f.Key, Value: f.Value})
	}
	return out, nil
}

// MarshalYAML renders the elements, padding included, as a plain sequence.
func (a *Array) MarshalYAML() (any, error) {
	out := make([]any, len(a.elems))
	copy(out, a.elems)
	return out, nil
}

// Interface converts the document into plain map[string]any / []any values,
// losing key order but gaining compatibility with tooling that walks
// standard JSON shapes (JSONPath selection in particular). File leaves
// become their metadata maps.
func (o *Object) Interface() map[string]any {
	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		out[f.Key] = plain(f.Value)
	}
	return out
}

func plain(value any) any {
	switch v := value.(type) {
	case *Object:
		return v.Interface()
	case *Array:
		out := make([]any, len(v.elems))
		for i, elem := range v.elems {
			out[i] = plain(elem)
		}
		return out
	case *File:
		meta := map[string]any{
			"ref":      v.Ref,
			"filename": v.Filename,
			"size":     v.Size,
		}
		if v.ContentType != "" {
			meta["content_type"] = v.ContentType
		}
		return meta
	default:
		return value
	}
}
