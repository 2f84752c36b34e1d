// Package query evaluates JSONPath expressions against a decoded document.
package query

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/formtree"
)

var (
	// ErrInvalidExpression indicates a JSONPath expression that does not compile.
	ErrInvalidExpression = errors.New("query: invalid expression")

	// ErrNotFound indicates the expression matched nothing.
	ErrNotFound = errors.New("query: no match")
)

// Select returns every value the JSONPath expression matches in doc.
// Supports standard RFC 9535 syntax (e.g. "$.user.name", "$.items[0]").
func Select(doc *formtree.Object, expr string) ([]any, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, expr, err)
	}

	results := path.Select(doc.Interface())
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, expr)
	}

	return []any(results), nil
}

// SelectOne returns the first match of the expression.
func SelectOne(doc *formtree.Object, expr string) (any, error) {
	results, err := Select(doc, expr)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}
