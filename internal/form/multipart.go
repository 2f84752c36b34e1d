package form

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/jacoelho/formtree"
)

// ReadMultipart decodes a multipart/form-data body into entries, in part
// order. Field parts become string values; file parts become opaque
// formtree.File handles, each with a fresh UUID ref so callers can correlate
// the decoded document with stored uploads.
func ReadMultipart(r io.Reader, boundary string) ([]formtree.Entry, error) {
	reader := multipart.NewReader(r, boundary)

	var entries []formtree.Entry
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("form: read part: %w", err)
		}

		name := part.FormName()
		if name == "" {
			return nil, fmt.Errorf("form: part %d has no field name", len(entries))
		}

		data, err := io.ReadAll(part)
		if err != nil {
			return nil, fmt.Errorf("form: read part %q: %w", name, err)
		}

		if filename := part.FileName(); filename != "" {
			entries = append(entries, formtree.Entry{
				Path: name,
				Value: &formtree.File{
					Ref:         uuid.NewString(),
					Filename:    filename,
					ContentType: part.Header.Get("Content-Type"),
					Size:        int64(len(data)),
					Data:        data,
				},
			})
			continue
		}

		entries = append(entries, formtree.Entry{Path: name, Value: string(data)})
	}
}
