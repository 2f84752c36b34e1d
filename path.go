package formtree

import (
	"fmt"
	"strconv"
	"strings"
)

// segment represents a single step in a parsed entry path.
// It is either an object key or an array index; an index is either an
// explicit non-negative position or an auto-append slot ("[]").
type segment struct {
	isIndex bool
	auto    bool
	index   int
	name    string
}

// String renders the segment as it appears in a path, without the leading
// dot for key segments.
func (s segment) String() string {
	if !s.isIndex {
		return s.name
	}
	if s.auto {
		return "[]"
	}
	return "[" + strconv.Itoa(s.index) + "]"
}

// parsePath compiles a dotted, bracket-indexed path into its ordered segment
// sequence. The grammar is `part ('.' part)*` where each part is a non-empty
// name (no '.' or '[') followed by zero or more bracket pairs; an empty
// bracket means auto-append, digits mean an explicit position.
func parsePath(path string) ([]segment, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrPathSyntax)
	}

	var segs []segment
	rest := path
	for {
		end := strings.IndexAny(rest, ".[")
		if end == -1 {
			end = len(rest)
		}
		if end == 0 {
			return nil, fmt.Errorf("%w: %q: empty name", ErrPathSyntax, path)
		}
		segs = append(segs, segment{name: rest[:end]})
		rest = rest[end:]

		for strings.HasPrefix(rest, "[") {
			closing := strings.IndexByte(rest, ']')
			if closing == -1 {
				return nil, fmt.Errorf("%w: %q: unterminated bracket", ErrPathSyntax, path)
			}
			index, err := parseIndex(rest[1:closing])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrPathSyntax, path, err)
			}
			segs = append(segs, index)
			rest = rest[closing+1:]
		}

		switch {
		case rest == "":
			return segs, nil
		case rest[0] == '.':
			rest = rest[1:]
		default:
			return nil, fmt.Errorf("%w: %q: unexpected %q after index", ErrPathSyntax, path, rest[0])
		}
	}
}

// parseIndex interprets bracket content: empty means auto-append, otherwise
// only digits are accepted. "0" and "00" both mean position zero.
func parseIndex(content string) (segment, error) {
	if content == "" {
		return segment{isIndex: true, auto: true}, nil
	}
	for i := 0; i < len(content); i++ {
		if content[i] < '0' || content[i] > '9' {
			return segment{}, fmt.Errorf("non-numeric index %q", content)
		}
	}
	index, err := strconv.Atoi(content)
	if err != nil {
		return segment{}, fmt.Errorf("index %q out of range", content)
	}
	return segment{isIndex: true, index: index}, nil
}
