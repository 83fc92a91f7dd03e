package stage

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/runnel/colpath"
	"github.com/signadot/runnel/stream"
	"github.com/signadot/runnel/value"
)

var whereSym = &whereSymbol{stageName: whereName}

// Where keeps the values for which a boolean expression holds. The
// expression sees the current value as "doc" plus its provenance as
// "source" and "index".
func Where() Symbol {
	return whereSym
}

const whereName stageName = "where"

type whereSymbol struct {
	stageName
}

func (s whereSymbol) Synopsis() string {
	return "where <expr>"
}

func (s whereSymbol) Instance(args []string) (Stage, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s stage expects one expression, got %v", s, args)
	}
	// compile once up front so syntax errors surface when the
	// pipeline is built, not at the first value
	if _, err := expr.Compile(args[0], whereOpts(value.Null())...); err != nil {
		return nil, fmt.Errorf("%s stage: %w", s, err)
	}
	return &whereStage{src: args[0]}, nil
}

type whereStage struct {
	src string
}

func (st *whereStage) Wrap(src stream.Source) stream.Source {
	return stream.Filter(src, func(v *value.Value) (bool, error) {
		prg, err := expr.Compile(st.src, whereOpts(v)...)
		if err != nil {
			return false, fmt.Errorf("where %q: %w", st.src, err)
		}
		res, err := expr.Run(prg, whereEnv(v))
		if err != nil {
			return false, fmt.Errorf("where %q: %w", st.src, err)
		}
		b, ok := res.(bool)
		if !ok {
			return false, fmt.Errorf("where %q: returned type %T, want bool", st.src, res)
		}
		return b, nil
	})
}

func whereOpts(v *value.Value) []expr.Option {
	return []expr.Option{
		expr.AsBool(),
		expr.Function("getpath", func(params ...any) (any, error) {
			p, err := colpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			res, err := value.GetPath(v, p)
			if err != nil {
				return nil, err
			}
			return toEnv(res), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func whereEnv(v *value.Value) map[string]any {
	return map[string]any{
		"doc":    toEnv(v),
		"source": v.Tag.Source,
		"index":  v.Tag.Doc,
	}
}
