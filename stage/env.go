package stage

import (
	"github.com/signadot/runnel/value"
)

// toEnv converts v into plain Go data for expression evaluation.
// Record field order is not preserved; expressions address fields by
// name.
func toEnv(v *value.Value) any {
	switch v.Kind {
	case value.NullKind:
		return nil
	case value.BoolKind:
		return v.Bool
	case value.StringKind:
		return v.String
	case value.NumberKind:
		if v.Int64 != nil {
			return *v.Int64
		}
		if v.Float64 != nil {
			return *v.Float64
		}
		return int64(0)
	case value.RecordKind:
		m := make(map[string]any, len(v.Names))
		for i, name := range v.Names {
			m[name] = toEnv(v.Values[i])
		}
		return m
	case value.ListKind:
		res := make([]any, 0, len(v.Values))
		for _, e := range v.Values {
			res = append(res, toEnv(e))
		}
		return res
	}
	return nil
}
