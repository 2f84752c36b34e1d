// Package form produces ordered formtree entries from the two standard form
// body encodings. Wire order is preserved, which rules out url.Values.
package form

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/jacoelho/formtree"
)

var (
	ErrContentType = errors.New("form: unsupported content type")
	ErrNoBoundary  = errors.New("form: multipart content type missing boundary")
)

// Read decodes a form body according to its Content-Type header value and
// returns the entries in wire order.
func Read(r io.Reader, contentType string) ([]formtree.Entry, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentType, err)
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		body, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("form: read body: %w", err)
		}
		return ParseQuery(string(body))
	case strings.HasPrefix(mediaType, "multipart/"):
		boundary, ok := params["boundary"]
		if !ok {
			return nil, ErrNoBoundary
		}
		return ReadMultipart(r, boundary)
	default:
		return nil, fmt.Errorf("%w: %q", ErrContentType, mediaType)
	}
}
