// Package output renders decoded documents to a writer.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format selects the rendering of a decoded document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("output: unknown format")

// ParseFormat validates a format name from configuration.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatYAML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Render writes value to w in the requested format, newline-terminated.
// JSON output is indented with indent spaces; zero means compact.
func Render(w io.Writer, value any, format Format, indent int) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		if indent > 0 {
			encoder.SetIndent("", strings.Repeat(" ", indent))
		}
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("output: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("output: encode yaml: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("output: write: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
