// Package formtree decodes flat form entries with dotted, bracket-indexed
// paths into a single nested document, the way a JSON body would arrive
// already structured.
//
// Each entry path names a location in the result: "a.b" nests objects,
// "a[2]" addresses an explicit array position, and "a[]" appends at the next
// free one. A leading marker on the path coerces the value: "+" to a number,
// "&" to a boolean, "-" to null. Conflicting entries (the same path assigned
// twice, an object addressed as an array, explicit and auto indices mixed on
// one array) abort the decode.
package formtree

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
)

// TransformFunc maps a raw entry to the path and leaf value actually
// inserted into the tree. fallback is always the built-in DefaultTransform
// so custom implementations can delegate for the cases they do not handle.
type TransformFunc func(entry Entry, fallback TransformFunc) (Entry, error)

// Options configures a Decode call.
type Options struct {
	// RemoveEmptyString skips entries whose transformed value is the empty
	// string; skipped entries do not participate in conflict detection.
	RemoveEmptyString bool

	// Transform overrides per-entry path/value interpretation.
	// Nil means DefaultTransform.
	Transform TransformFunc
}

// Decode builds the nested document described by entries, consuming the
// sequence exactly once, in order. The first path-syntax, duplicate-key,
// mixed-array, or transform failure aborts the decode and leaves the rest of
// the sequence unconsumed. The returned root is always an object.
func Decode(entries iter.Seq[Entry], opts Options) (*Object, error) {
	transform := opts.Transform
	if transform == nil {
		transform = DefaultTransform
	}

	root := &Object{}
	for entry := range entries {
		transformed, err := transform(entry, DefaultTransform)
		if err != nil {
			return nil, err
		}

		if opts.RemoveEmptyString {
			if s, ok := transformed.Value.(string); ok && s == "" {
				continue
			}
		}

		segs, err := parsePath(transformed.Path)
		if err != nil {
			return nil, err
		}

		if err := root.insert(segs, transformed.Value); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// DecodeSlice decodes an already-collected entry slice.
func DecodeSlice(entries []Entry, opts Options) (*Object, error) {
	return Decode(slices.Values(entries), opts)
}

// DefaultTransform implements the built-in path markers: "+" parses the
// value as a number, "&" compares it literally against "true", "-" discards
// it in favor of null. The marker never reaches the path parser. Unmarked
// entries pass through unchanged.
func DefaultTransform(entry Entry, _ TransformFunc) (Entry, error) {
	if entry.Path == "" {
		return entry, nil
	}

	switch entry.Path[0] {
	case '+':
		s, err := stringValue(entry)
		if err != nil {
			return Entry{}, err
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("%w: %q: %q is not a number", ErrTransform, entry.Path, s)
		}
		return Entry{Path: entry.Path[1:], Value: n}, nil
	case '&':
		s, err := stringValue(entry)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Path: entry.Path[1:], Value: s == "true"}, nil
	case '-':
		return Entry{Path: entry.Path[1:], Value: nil}, nil
	default:
		return entry, nil
	}
}

// stringValue rejects blob values for markers that coerce string content.
func stringValue(entry Entry) (string, error) {
	s, ok := entry.Value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q: marker %q requires a string value, got %T", ErrTransform, entry.Path, entry.Path[0], entry.Value)
	}
	return s, nil
}
