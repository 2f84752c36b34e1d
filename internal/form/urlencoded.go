package form

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jacoelho/formtree"
)

// ParseQuery decodes an application/x-www-form-urlencoded body.
// Unlike url.ParseQuery it keeps entries in wire order, which the decoder
// relies on for auto-append arrays and object key order.
func ParseQuery(query string) ([]formtree.Entry, error) {
	var entries []formtree.Entry
	for pair := range strings.SplitSeq(query, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")

		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("form: invalid key %q: %w", key, err)
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("form: invalid value for %q: %w", decodedKey, err)
		}

		entries = append(entries, formtree.Entry{Path: decodedKey, Value: decodedValue})
	}
	return entries, nil
}
