// Package filter compiles boolean selection rules over diff entries.
// Rules are expr expressions with access to the entry's path, kind
// and directory flags, e.g.
//
//	path matches "^vendor/" or kind == "typeMismatch"
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"dirmerge/treediff"
)

type Filter struct {
	src  string
	prog *vm.Program
}

// Compile builds a filter from src. The empty rule matches every
// entry.
func Compile(src string) (*Filter, error) {
	if src == "" {
		return &Filter{}, nil
	}
	prog, err := expr.Compile(src, expr.Env(envOf(treediff.Entry{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

// Match evaluates the filter against one entry.
func (f *Filter) Match(e treediff.Entry) (bool, error) {
	if f == nil || f.prog == nil {
		return true, nil
	}
	out, err := expr.Run(f.prog, envOf(e))
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: non-boolean result %T", f.src, out)
	}
	return b, nil
}

func envOf(e treediff.Entry) map[string]any {
	return map[string]any{
		"path":       e.Path,
		"kind":       e.Kind.String(),
		"leftIsDir":  e.LeftIsDir != nil && *e.LeftIsDir,
		"rightIsDir": e.RightIsDir != nil && *e.RightIsDir,
	}
}
