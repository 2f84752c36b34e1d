package config

import (
	"testing"

	"github.com/jacoelho/formtree/internal/output"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, exitResult := Parse([]string{"formtree"})
	if exitResult != nil {
		t.Fatalf("Parse exit result = %+v", exitResult)
	}

	if cfg.ContentType != DefaultContentType {
		t.Fatalf("ContentType = %q, want %q", cfg.ContentType, DefaultContentType)
	}
	if cfg.Format != output.FormatJSON {
		t.Fatalf("Format = %q, want json", cfg.Format)
	}
	if cfg.Indent != DefaultIndent {
		t.Fatalf("Indent = %d, want %d", cfg.Indent, DefaultIndent)
	}
	if cfg.InputFile != "" {
		t.Fatalf("InputFile = %q, want stdin", cfg.InputFile)
	}
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, exitResult := Parse([]string{
		"formtree",
		"-format", "yaml",
		"-select", "$.a",
		"-remove-empty",
		"-indent", "0",
	})
	if exitResult != nil {
		t.Fatalf("Parse exit result = %+v", exitResult)
	}

	if cfg.Format != output.FormatYAML {
		t.Fatalf("Format = %q, want yaml", cfg.Format)
	}
	if cfg.Select != "$.a" {
		t.Fatalf("Select = %q, want $.a", cfg.Select)
	}
	if !cfg.RemoveEmptyString {
		t.Fatal("RemoveEmptyString not set")
	}
	if cfg.Indent != 0 {
		t.Fatalf("Indent = %d, want 0", cfg.Indent)
	}
}

func TestParseRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, exitResult := Parse([]string{"formtree", "-format", "xml"})
	if exitResult == nil || exitResult.ExitCode == 0 {
		t.Fatalf("expected error exit result, got %+v", exitResult)
	}
}

func TestParseRejectsMultipleFiles(t *testing.T) {
	t.Parallel()

	_, exitResult := Parse([]string{"formtree", "a.txt", "b.txt"})
	if exitResult == nil || exitResult.ExitCode == 0 {
		t.Fatalf("expected error exit result, got %+v", exitResult)
	}
}

func TestParseMissingInputFile(t *testing.T) {
	t.Parallel()

	_, exitResult := Parse([]string{"formtree", "does-not-exist.txt"})
	if exitResult == nil || exitResult.ExitCode == 0 {
		t.Fatalf("expected error exit result, got %+v", exitResult)
	}
}

func TestParseHelp(t *testing.T) {
	t.Parallel()

	_, exitResult := Parse([]string{"formtree", "-h"})
	if exitResult == nil || exitResult.ExitCode != 0 {
		t.Fatalf("expected success exit result, got %+v", exitResult)
	}
}
