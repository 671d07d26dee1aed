package navigator

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/ormasoftchile/nodescope/pkg/walker"
)

// filterEnv is the expression environment for one entry.
func filterEnv(e walker.Entry) map[string]any {
	return map[string]any{
		"name":  e.Name(),
		"kind":  e.Kind.String(),
		"path":  e.JoinedPath(),
		"depth": len(e.Path),
	}
}

// FilterEntries keeps the entries for which the expression evaluates to
// true. Expressions see name, kind, path (strings) and depth (int), e.g.
// `kind == "DataPoint" && depth > 1`.
func FilterEntries(entries []walker.Entry, expression string) ([]walker.Entry, error) {
	expression = strings.TrimSpace(expression)
	program, err := expr.Compile(expression,
		expr.Env(filterEnv(walker.Entry{Kind: 0, Path: []string{""}})),
		expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, err)
	}

	var out []walker.Entry
	for _, e := range entries {
		keep, err := expr.Run(program, filterEnv(e))
		if err != nil {
			return nil, fmt.Errorf("eval filter %q: %w", expression, err)
		}
		if keep == true {
			out = append(out, e)
		}
	}
	return out, nil
}
