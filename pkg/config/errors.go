package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for the loader surface.
var (
	// ErrUnknownFormat is returned when no format can be derived for a
	// source and no default is configured.
	ErrUnknownFormat = errors.New("config: unknown document format")

	// ErrUnsupportedType is returned when a decoded Go value has no
	// value-graph representation.
	ErrUnsupportedType = errors.New("config: unsupported value type")

	// ErrMaxDepth is returned when a document nests deeper than
	// Options.MaxDepth allows.
	ErrMaxDepth = errors.New("config: maximum document depth exceeded")
)

// DepthError reports a document whose nesting exceeds the configured bound.
type DepthError struct {
	// Source is the file path or document name.
	Source string

	// Limit is the configured Options.MaxDepth.
	Limit int
}

// Error implements the error interface.
func (e *DepthError) Error() string {
	return fmt.Sprintf("%s: document nesting exceeds %d levels", e.Source, e.Limit)
}

// Unwrap returns ErrMaxDepth so callers can test with errors.Is.
func (e *DepthError) Unwrap() error {
	return ErrMaxDepth
}

// ParseError describes a syntax or decode failure with source position
// information where the underlying parser provides it.
type ParseError struct {
	// Source is the file path or document name.
	Source string

	// Line and Column locate the failure, zero when unknown.
	Line   int
	Column int

	// Message is the parser's description of the failure.
	Message string

	// Err is the underlying parser error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
