// Package value defines the structured datum flowing through a
// pipeline: a scalar, an ordered record, or a list, together with the
// Tag saying where it came from.
//
// Values are never mutated once built. Every transformation rebuilds
// the changed part of the tree and shares the rest with its input, so
// a Value may always be held by reference without copying.
package value

import (
	"maps"
	"slices"
)

// Value is one structured datum. The payload depends on Kind:
// scalar kinds use String, Bool, Int64 or Float64; RecordKind uses
// the parallel Names and Values slices (field order is meaningful and
// survives every rebuild); ListKind uses Values alone.
type Value struct {
	Kind Kind
	Tag  Tag

	Names  []string
	Values []*Value

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
}

func FromString(v string) *Value {
	return &Value{Kind: StringKind, String: v}
}

func FromInt(v int64) *Value {
	return &Value{Kind: NumberKind, Int64: &v}
}

func FromFloat(v float64) *Value {
	return &Value{Kind: NumberKind, Float64: &v}
}

func FromBool(v bool) *Value {
	return &Value{Kind: BoolKind, Bool: v}
}

func Null() *Value {
	return &Value{Kind: NullKind}
}

// KeyVal is one record field for FromKeyVals.
type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals builds a record preserving the given field order.
func FromKeyVals(kvs []KeyVal) *Value {
	res := &Value{
		Kind:   RecordKind,
		Names:  make([]string, len(kvs)),
		Values: make([]*Value, len(kvs)),
	}
	for i := range kvs {
		res.Names[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds a record from a Go map, ordering fields by sorted
// key.
func FromMap(m map[string]*Value) *Value {
	keys := slices.Sorted(maps.Keys(m))
	res := &Value{
		Kind:   RecordKind,
		Names:  keys,
		Values: make([]*Value, len(keys)),
	}
	for i, k := range keys {
		res.Values[i] = m[k]
	}
	return res
}

// FromSlice builds a list over vs; the slice is not copied.
func FromSlice(vs []*Value) *Value {
	return &Value{Kind: ListKind, Values: vs}
}

// Field returns the value of the named record field, or nil.
func (v *Value) Field(name string) *Value {
	n := len(v.Names)
	for i := range n {
		if v.Names[i] == name {
			return v.Values[i]
		}
	}
	return nil
}

// Index returns element i of a list, or nil when out of range.
func (v *Value) Index(i int) *Value {
	if i < 0 || i >= len(v.Values) {
		return nil
	}
	return v.Values[i]
}

// WithTag returns a copy of v carrying tag t; the payload is shared.
func (v *Value) WithTag(t Tag) *Value {
	nv := *v
	nv.Tag = t
	return &nv
}

// Retag returns a copy of v with every node's tag set to t.
func Retag(v *Value, t Tag) *Value {
	nv := *v
	nv.Tag = t
	if v.Values != nil {
		nv.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			nv.Values[i] = Retag(vv, t)
		}
	}
	return &nv
}

// Clone deep-copies v.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	nv := *v
	if v.Names != nil {
		nv.Names = slices.Clone(v.Names)
	}
	if v.Values != nil {
		nv.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			nv.Values[i] = vv.Clone()
		}
	}
	if v.Int64 != nil {
		x := *v.Int64
		nv.Int64 = &x
	}
	if v.Float64 != nil {
		x := *v.Float64
		nv.Float64 = &x
	}
	return &nv
}
