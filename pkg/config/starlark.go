package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/openfacet/openfacet/pkg/value"
)

// parseStarlark executes a Starlark script and collects its exported
// globals (names not starting with underscore) into a record. Evaluation
// runs in its own goroutine so a runaway script cannot outlive the
// configured timeout.
func (l *Loader) parseStarlark(ctx context.Context, name string, src []byte) (*Document, error) {
	evalCtx, cancel := context.WithTimeout(ctx, l.opts.StarlarkTimeout)
	defer cancel()

	type evalResult struct {
		root value.Value
		err  error
	}
	resultCh := make(chan evalResult, 1)

	go func() {
		root, err := evalStarlark(name, src)
		resultCh <- evalResult{root: root, err: err}
	}()

	select {
	case <-evalCtx.Done():
		return nil, fmt.Errorf("starlark evaluation of %s timed out after %v", name, l.opts.StarlarkTimeout)
	case res := <-resultCh:
		if res.err != nil {
			return nil, res.err
		}
		return &Document{Source: name, Format: FormatStarlark, Root: res.root, ParsedAt: time.Now()}, nil
	}
}

func evalStarlark(name string, src []byte) (value.Value, error) {
	thread := &starlark.Thread{
		Name: "openfacet",
		Print: func(_ *starlark.Thread, _ string) {
			// Script output is discarded; documents communicate through
			// globals only.
		},
	}

	predeclared := starlark.StringDict{
		"struct": starlarkstruct.Default,
	}

	globals, err := starlark.ExecFile(thread, name, src, predeclared)
	if err != nil {
		return nil, convertStarlarkError(name, err)
	}

	root := value.NewRecord()
	for gname, gval := range globals {
		if strings.HasPrefix(gname, "_") {
			continue
		}
		v, err := fromStarlark(gval)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", gname, err)
		}
		if err := root.Set(gname, v); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// fromStarlark converts a Starlark value into a value-graph node. Dicts
// with string keys become records; dicts with other keys become maps.
func fromStarlark(v starlark.Value) (value.Value, error) {
	switch n := v.(type) {
	case starlark.NoneType:
		return value.Null, nil
	case starlark.Bool:
		return value.Bool(n), nil
	case starlark.Int:
		i, ok := n.Int64()
		if !ok {
			return nil, fmt.Errorf("%w: integer too large", ErrUnsupportedType)
		}
		return value.Number(i), nil
	case starlark.Float:
		return value.Number(n), nil
	case starlark.String:
		return value.String(n), nil
	case *starlark.List:
		l := value.NewList()
		for i := 0; i < n.Len(); i++ {
			item, err := fromStarlark(n.Index(i))
			if err != nil {
				return nil, err
			}
			if err := l.Append(item); err != nil {
				return nil, err
			}
		}
		return l, nil
	case starlark.Tuple:
		l := value.NewList()
		for i := 0; i < n.Len(); i++ {
			item, err := fromStarlark(n.Index(i))
			if err != nil {
				return nil, err
			}
			if err := l.Append(item); err != nil {
				return nil, err
			}
		}
		return l, nil
	case *starlark.Dict:
		stringKeyed := true
		for _, item := range n.Items() {
			if _, ok := item[0].(starlark.String); !ok {
				stringKeyed = false
				break
			}
		}
		if stringKeyed {
			r := value.NewRecord()
			for _, item := range n.Items() {
				val, err := fromStarlark(item[1])
				if err != nil {
					return nil, err
				}
				if err := r.Set(string(item[0].(starlark.String)), val); err != nil {
					return nil, err
				}
			}
			return r, nil
		}
		m := value.NewMap()
		for _, item := range n.Items() {
			key, err := fromStarlark(item[0])
			if err != nil {
				return nil, err
			}
			val, err := fromStarlark(item[1])
			if err != nil {
				return nil, err
			}
			m.Set(key, val)
		}
		return m, nil
	case *starlark.Set:
		s := value.NewSet()
		iter := n.Iterate()
		defer iter.Done()
		var elem starlark.Value
		for iter.Next(&elem) {
			member, err := fromStarlark(elem)
			if err != nil {
				return nil, err
			}
			s.Add(member)
		}
		return s, nil
	case *starlarkstruct.Struct:
		r := value.NewRecord()
		for _, attr := range n.AttrNames() {
			av, err := n.Attr(attr)
			if err != nil {
				continue
			}
			val, err := fromStarlark(av)
			if err != nil {
				return nil, err
			}
			if err := r.Set(attr, val); err != nil {
				return nil, err
			}
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: starlark %s", ErrUnsupportedType, v.Type())
	}
}

// convertStarlarkError maps a Starlark evaluation error to a ParseError
// with position information where available.
func convertStarlarkError(name string, err error) error {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) && len(evalErr.CallStack) > 0 {
		pos := evalErr.CallStack.At(0).Pos
		return &ParseError{
			Source:  name,
			Line:    int(pos.Line),
			Column:  int(pos.Col),
			Message: evalErr.Msg,
			Err:     err,
		}
	}
	return &ParseError{Source: name, Message: err.Error(), Err: err}
}
