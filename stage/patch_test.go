package stage

import (
	"testing"

	"github.com/signadot/runnel/stream"
	"github.com/signadot/runnel/value"
)

func TestPatchStage(t *testing.T) {
	in := rec(
		kv("a", value.FromInt(1)),
		kv("b", value.FromString("s")),
	).WithTag(value.Tag{Source: "doc.yaml", Doc: 4})
	tests := []struct {
		patch string
		field string
		want  *value.Value // nil: the field must be absent
	}{
		{patch: `[{"op":"add","path":"/c","value":3}]`, field: "c", want: value.FromInt(3)},
		{patch: `[{"op":"replace","path":"/a","value":"x"}]`, field: "a", want: value.FromString("x")},
		{patch: `[{"op":"remove","path":"/b"}]`, field: "b", want: nil},
		{patch: `[{"op":"copy","from":"/a","path":"/c"}]`, field: "c", want: value.FromInt(1)},
		{patch: `[{"op":"test","path":"/a","value":1}]`, field: "a", want: value.FromInt(1)},
		{patch: "- op: add\n  path: /c\n  value: yaml-form\n", field: "c", want: value.FromString("yaml-form")},
	}
	for i, tc := range tests {
		st, err := Patch().Instance([]string{tc.patch})
		if err != nil {
			t.Fatalf("test case %d: %v", i, err)
		}
		vs, err := stream.Collect(st.Wrap(stream.FromValues(in)))
		if err != nil {
			t.Fatalf("test case %d: %v", i, err)
		}
		if len(vs) != 1 {
			t.Fatalf("test case %d: got %d values", i, len(vs))
		}
		if vs[0].Tag != in.Tag {
			t.Errorf("test case %d: got tag %s want %s", i, vs[0].Tag, in.Tag)
		}
		got := vs[0].Field(tc.field)
		switch {
		case tc.want == nil:
			if got != nil {
				t.Errorf("test case %d: field %s survived removal", i, tc.field)
			}
		case got == nil || !value.Equal(got, tc.want):
			t.Errorf("test case %d: field %s wrong", i, tc.field)
		}
	}
}

func TestPatchStageFailure(t *testing.T) {
	st, err := Patch().Instance([]string{`[{"op":"test","path":"/a","value":2}]`})
	if err != nil {
		t.Fatal(err)
	}
	src := st.Wrap(stream.FromValues(
		rec(kv("a", value.FromInt(1))),
		rec(kv("a", value.FromInt(2))),
	))
	vs, err := stream.Collect(src)
	if err == nil {
		t.Fatal("expected test op failure")
	}
	if len(vs) != 0 {
		t.Errorf("got %d values before failure", len(vs))
	}
	if _, err := src.Next(); err == nil {
		t.Errorf("stream continued after failure")
	}
}
