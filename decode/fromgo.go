package decode

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/signadot/runnel/value"
)

// FromGo converts a decoded Go value into a *value.Value. Record
// field order follows yaml.MapSlice order; plain maps are sorted by
// key to keep the result deterministic.
func FromGo(x any) (*value.Value, error) {
	switch t := x.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.FromBool(t), nil
	case string:
		return value.FromString(t), nil
	case int:
		return value.FromInt(int64(t)), nil
	case int64:
		return value.FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return value.FromFloat(float64(t)), nil
		}
		return value.FromInt(int64(t)), nil
	case float64:
		return value.FromFloat(t), nil
	case time.Time:
		return value.FromString(t.Format(time.RFC3339)), nil
	case yaml.MapSlice:
		kvs := make([]value.KeyVal, 0, len(t))
		for _, item := range t {
			k, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported key type %T", item.Key)
			}
			v, err := FromGo(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, value.KeyVal{Key: k, Val: v})
		}
		return value.FromKeyVals(kvs), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(t))
		kvs := make([]value.KeyVal, 0, len(keys))
		for _, k := range keys {
			v, err := FromGo(t[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, value.KeyVal{Key: k, Val: v})
		}
		return value.FromKeyVals(kvs), nil
	case []any:
		elems := make([]*value.Value, 0, len(t))
		for _, e := range t {
			v, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return value.FromSlice(elems), nil
	}
	return nil, fmt.Errorf("unsupported value %T", x)
}
