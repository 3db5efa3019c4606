package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/openfacet/openfacet/pkg/value"
)

// Format identifies a document syntax.
type Format string

const (
	// FormatJSON is a JSON document.
	FormatJSON Format = "json"

	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"

	// FormatCUE is a CUE document.
	FormatCUE Format = "cue"

	// FormatStarlark is a Starlark script whose exported globals form the
	// document.
	FormatStarlark Format = "starlark"
)

// DetectFormat derives the document format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	case ".star", ".bzl":
		return FormatStarlark, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Options configures a Loader.
type Options struct {
	// DefaultFormat is used when the source name carries no recognized
	// extension. Empty means extension detection is mandatory.
	DefaultFormat Format `validate:"omitempty,oneof=json yaml cue starlark"`

	// StarlarkTimeout bounds Starlark script evaluation. Zero selects the
	// default of 30 seconds.
	StarlarkTimeout time.Duration `validate:"min=0"`

	// MaxDepth bounds how deeply a loaded document may nest. Zero means
	// unbounded.
	MaxDepth int `validate:"min=0"`
}

// Document is a parsed document: a value graph plus its provenance.
type Document struct {
	// Source is the file path or caller-supplied name the document was
	// parsed from.
	Source string

	// Format is the syntax the document was parsed as.
	Format Format

	// Root is the value graph.
	Root value.Value

	// ParsedAt is when parsing completed.
	ParsedAt time.Time
}
