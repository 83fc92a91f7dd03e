package value

import (
	"fmt"

	"github.com/signadot/runnel/colpath"
)

// PathError reports a column path that does not resolve against a
// value: a missing field, an out-of-range index, or a descent into a
// scalar.
type PathError struct {
	Path    *colpath.Path // the full requested path
	Segment string        // rendering of the segment that failed
	Reason  string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("column path %s: at %s: %s", e.Path, e.Segment, e.Reason)
}

// TransformError wraps a failure of the transform applied at the end
// of a path.
type TransformError struct {
	Path *colpath.Path
	Err  error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform at %s: %v", e.Path, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// GetPath returns the sub-value of v at p. The result is shared with
// v, not copied. A nil p addresses v itself.
func GetPath(v *Value, p *colpath.Path) (*Value, error) {
	res := v
	for q := p; q != nil; q = q.Next {
		switch {
		case q.Field != nil:
			if res.Kind != RecordKind {
				return nil, &PathError{Path: p, Segment: q.SegmentString(), Reason: fmt.Sprintf("expected record, got %s", res.Kind)}
			}
			fv := res.Field(*q.Field)
			if fv == nil {
				return nil, &PathError{Path: p, Segment: q.SegmentString(), Reason: "no such field"}
			}
			res = fv
		case q.Index != nil:
			if res.Kind != ListKind {
				return nil, &PathError{Path: p, Segment: q.SegmentString(), Reason: fmt.Sprintf("expected list, got %s", res.Kind)}
			}
			idx := *q.Index
			if idx < 0 || idx >= len(res.Values) {
				return nil, &PathError{Path: p, Segment: q.SegmentString(), Reason: fmt.Sprintf("index out of bounds %d (len %d)", idx, len(res.Values))}
			}
			res = res.Values[idx]
		default:
			return nil, &PathError{Path: p, Segment: q.SegmentString(), Reason: "empty segment"}
		}
	}
	return res, nil
}

// SwapPath returns a copy of v with the sub-value at p replaced by
// fn's result. fn receives the located sub-value. Only the spine from
// the root to that location is rebuilt; every node off the spine is
// shared with v. On error the input is untouched and no value is
// returned: a path that fails to resolve yields a *PathError naming
// the failing segment, and a failing fn yields a *TransformError.
func SwapPath(v *Value, p *colpath.Path, fn func(old *Value) (*Value, error)) (*Value, error) {
	return swapPath(v, p, p, fn)
}

func swapPath(v *Value, full, p *colpath.Path, fn func(old *Value) (*Value, error)) (*Value, error) {
	if p == nil {
		nv, err := fn(v)
		if err != nil {
			return nil, &TransformError{Path: full, Err: err}
		}
		return nv, nil
	}
	switch {
	case p.Field != nil:
		if v.Kind != RecordKind {
			return nil, &PathError{Path: full, Segment: p.SegmentString(), Reason: fmt.Sprintf("expected record, got %s", v.Kind)}
		}
		for i := range v.Names {
			if v.Names[i] != *p.Field {
				continue
			}
			nv, err := swapPath(v.Values[i], full, p.Next, fn)
			if err != nil {
				return nil, err
			}
			vals := make([]*Value, len(v.Values))
			copy(vals, v.Values)
			vals[i] = nv
			res := *v
			res.Values = vals
			return &res, nil
		}
		return nil, &PathError{Path: full, Segment: p.SegmentString(), Reason: "no such field"}
	case p.Index != nil:
		if v.Kind != ListKind {
			return nil, &PathError{Path: full, Segment: p.SegmentString(), Reason: fmt.Sprintf("expected list, got %s", v.Kind)}
		}
		idx := *p.Index
		if idx < 0 || idx >= len(v.Values) {
			return nil, &PathError{Path: full, Segment: p.SegmentString(), Reason: fmt.Sprintf("index out of bounds %d (len %d)", idx, len(v.Values))}
		}
		nv, err := swapPath(v.Values[idx], full, p.Next, fn)
		if err != nil {
			return nil, err
		}
		vals := make([]*Value, len(v.Values))
		copy(vals, v.Values)
		vals[idx] = nv
		res := *v
		res.Values = vals
		return &res, nil
	default:
		return nil, &PathError{Path: full, Segment: p.SegmentString(), Reason: "empty segment"}
	}
}
