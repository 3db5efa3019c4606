package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/openfacet/openfacet/pkg/value"
)

// defaultStarlarkTimeout bounds script evaluation when Options leaves it
// unset.
const defaultStarlarkTimeout = 30 * time.Second

// Loader parses documents in several syntaxes into value graphs.
type Loader struct {
	opts     Options
	cuectx   *cue.Context
	validate *validator.Validate
}

// NewLoader creates a loader after validating the options.
func NewLoader(opts Options) (*Loader, error) {
	v := validator.New()
	if err := v.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid loader options: %w", err)
	}
	if opts.StarlarkTimeout == 0 {
		opts.StarlarkTimeout = defaultStarlarkTimeout
	}
	return &Loader{
		opts:     opts,
		cuectx:   cuecontext.New(),
		validate: v,
	}, nil
}

// Load reads and parses the document at path, deriving the format from the
// file extension (falling back to Options.DefaultFormat).
func (l *Loader) Load(ctx context.Context, path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	format, err := DetectFormat(path)
	if err != nil {
		if l.opts.DefaultFormat == "" {
			return nil, err
		}
		format = l.opts.DefaultFormat
	}

	return l.LoadSource(ctx, path, data, format)
}

// LoadSource parses an in-memory document under the given name and format.
func (l *Loader) LoadSource(ctx context.Context, name string, src []byte, format Format) (*Document, error) {
	start := time.Now()

	var doc *Document
	var err error
	switch format {
	case FormatJSON:
		doc, err = l.parseJSON(name, src)
	case FormatYAML:
		doc, err = l.parseYAML(name, src)
	case FormatCUE:
		doc, err = l.parseCUE(name, src)
	case FormatStarlark:
		doc, err = l.parseStarlark(ctx, name, src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if l.opts.MaxDepth > 0 && exceedsDepth(doc.Root, l.opts.MaxDepth) {
		return nil, &DepthError{Source: name, Limit: l.opts.MaxDepth}
	}

	log.Debug().
		Str("source", name).
		Str("format", string(format)).
		Dur("duration", time.Since(start)).
		Msg("Document parsed")

	return doc, nil
}

// exceedsDepth reports whether v nests containers beyond the given number
// of levels. A flat document occupies one level. Loaded documents are
// acyclic, so the walk terminates.
func exceedsDepth(v value.Value, remaining int) bool {
	switch value.KindOf(v) {
	case value.KindList, value.KindRecord, value.KindMap, value.KindSet:
		if remaining <= 0 {
			return true
		}
	default:
		return false
	}

	exceeded := false
	deeper := func(child value.Value) bool {
		exceeded = exceedsDepth(child, remaining-1)
		return !exceeded
	}
	switch n := v.(type) {
	case *value.List:
		n.Range(func(_ int, item value.Value) bool { return deeper(item) })
	case *value.Record:
		n.Range(func(_ string, item value.Value) bool { return deeper(item) })
	case *value.Map:
		n.Range(func(k, item value.Value) bool { return deeper(k) && deeper(item) })
	case *value.Set:
		n.Range(func(item value.Value) bool { return deeper(item) })
	}
	return exceeded
}

// parseJSON decodes a JSON document.
func (l *Loader) parseJSON(name string, src []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &ParseError{Source: name, Message: err.Error(), Err: err}
	}

	root, err := FromGo(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert JSON document %s: %w", name, err)
	}
	return &Document{Source: name, Format: FormatJSON, Root: root, ParsedAt: time.Now()}, nil
}

// parseYAML decodes a YAML document.
func (l *Loader) parseYAML(name string, src []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, &ParseError{Source: name, Message: err.Error(), Err: err}
	}

	root, err := FromGo(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML document %s: %w", name, err)
	}
	return &Document{Source: name, Format: FormatYAML, Root: root, ParsedAt: time.Now()}, nil
}
