package config

import (
	"fmt"
	"time"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
)

// parseCUE compiles a CUE source and converts the resulting value into a
// value graph.
func (l *Loader) parseCUE(name string, src []byte) (*Document, error) {
	val := l.cuectx.CompileBytes(src, cue.Filename(name))
	if err := val.Err(); err != nil {
		return nil, convertCUEError(name, err)
	}

	// Concrete documents only; incomplete values surface as decode errors
	// with positions.
	var raw any
	if err := val.Decode(&raw); err != nil {
		return nil, convertCUEError(name, err)
	}

	root, err := FromGo(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert CUE document %s: %w", name, err)
	}
	return &Document{Source: name, Format: FormatCUE, Root: root, ParsedAt: time.Now()}, nil
}

// convertCUEError maps a CUE error to a ParseError, keeping the first
// reported position.
func convertCUEError(name string, err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &ParseError{Source: name, Message: err.Error(), Err: err}
	}

	first := errs[0]
	pe := &ParseError{
		Source:  name,
		Message: cueerrors.Details(first, nil),
		Err:     err,
	}
	if pos := cueerrors.Positions(first); len(pos) > 0 {
		pe.Line = pos[0].Line()
		pe.Column = pos[0].Column()
	}
	return pe
}
