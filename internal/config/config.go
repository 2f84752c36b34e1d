package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/formtree/internal/exit"
	"github.com/jacoelho/formtree/internal/output"
)

const (
	// DefaultContentType is assumed when no content type is given.
	DefaultContentType = "application/x-www-form-urlencoded"

	// DefaultIndent is the JSON indentation width.
	DefaultIndent = 2
)

var (
	ErrNoArguments  = errors.New("no arguments provided")
	ErrTooManyFiles = errors.New("at most one input file may be given")
	ErrBadIndent    = errors.New("indent must be non-negative")
)

// Config represents the complete configuration for the formtree tool.
type Config struct {
	// InputFile is the form body to read; empty means stdin.
	InputFile string

	// ContentType selects the body decoder (urlencoded or multipart,
	// boundary included in the media type parameters).
	ContentType string

	// Format is the output rendering.
	Format output.Format

	// Select is an optional JSONPath expression applied to the document.
	Select string

	// RemoveEmptyString drops entries whose value is the empty string.
	RemoveEmptyString bool

	// Indent is the JSON indentation width; zero means compact.
	Indent int
}

// Input opens the configured input source. The caller owns the closer.
func (c *Config) Input() (io.ReadCloser, error) {
	if c.InputFile == "" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(c.InputFile)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	return f, nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Indent < 0 {
		return ErrBadIndent
	}

	if c.InputFile != "" {
		if _, err := os.Stat(c.InputFile); err != nil {
			return fmt.Errorf("input file %s not found: %w", c.InputFile, err)
		}
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		contentType = fs.String("content-type", DefaultContentType, "Content type of the form body")
		format      = fs.String("format", string(output.FormatJSON), "Output format: json or yaml")
		selectExpr  = fs.String("select", "", "JSONPath expression applied to the decoded document")
		removeEmpty = fs.Bool("remove-empty", false, "Skip entries whose value is the empty string")
		indent      = fs.Int("indent", DefaultIndent, "JSON indentation width (0 for compact)")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	files := fs.Args()
	if len(files) > 1 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrTooManyFiles, Usage())
	}

	parsedFormat, err := output.ParseFormat(*format)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	config := &Config{
		ContentType:       *contentType,
		Format:            parsedFormat,
		Select:            *selectExpr,
		RemoveEmptyString: *removeEmpty,
		Indent:            *indent,
	}
	if len(files) == 1 {
		config.InputFile = files[0]
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `formtree - decode bracket-path form entries into a nested document

Usage: formtree [options] [file]

Reads a form body from file (or stdin) and prints the nested document it
describes. Paths like "user.name", "tags[]" and "items[2].id" nest objects
and arrays; "+", "&" and "-" path markers coerce values to number, boolean
and null.

Options:
  --content-type TYPE   Content type of the body (default: application/x-www-form-urlencoded;
                        multipart requires the boundary parameter)
  --format FORMAT       Output format: json or yaml (default: json)
  --select EXPR         JSONPath expression applied to the decoded document
  --remove-empty        Skip entries whose value is the empty string
  --indent N            JSON indentation width, 0 for compact (default: 2)
  -h, --help            Show this help message

Examples:
  echo 'a.b=1&tags[]=x&tags[]=y' | formtree                 # Decode urlencoded stdin
  formtree --format yaml body.txt                           # Decode a file to YAML
  formtree --select '$.tags[0]' body.txt                    # Extract one value
  formtree --content-type 'multipart/form-data; boundary=b' # Decode multipart stdin`
}
