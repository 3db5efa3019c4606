// Package config parses documents into value graphs.
//
// A Loader accepts JSON, YAML, CUE and Starlark sources and produces a
// Document whose Root is a graph of pkg/value nodes, ready for the clone,
// freeze, equality and diff engines. The format is derived from the file
// extension (.json, .yaml/.yml, .cue, .star) or forced through
// Options.DefaultFormat.
//
//	loader, err := config.NewLoader(config.Options{})
//	if err != nil { ... }
//	doc, err := loader.Load(ctx, "deploy.cue")
//	if err != nil { ... }
//	frozen := value.Freeze(value.Clone(doc.Root))
//
// Starlark scripts are evaluated with a bounded timeout; their exported
// globals (names without a leading underscore) become the fields of the
// document record. CUE sources must be concrete. Parse failures are
// reported as *ParseError with source position where the underlying parser
// provides one.
//
// FromGo and ToGo bridge between plain decoded Go values and value graphs
// for callers that hold their data as map[string]any trees.
package config
