package stage

import (
	"testing"

	"github.com/signadot/runnel/stream"
	"github.com/signadot/runnel/value"
)

func whereDocs() []*value.Value {
	return []*value.Value{
		rec(kv("a", value.FromInt(1)), kv("name", value.FromString("x"))).
			WithTag(value.Tag{Source: "in", Doc: 0}),
		rec(kv("a", value.FromInt(2)), kv("name", value.FromString("y"))).
			WithTag(value.Tag{Source: "in", Doc: 1}),
		rec(kv("a", value.FromInt(3)), kv("name", value.FromString("z"))).
			WithTag(value.Tag{Source: "other", Doc: 2}),
	}
}

func runWhere(t *testing.T, src string, docs []*value.Value) []*value.Value {
	t.Helper()
	st, err := Where().Instance([]string{src})
	if err != nil {
		t.Fatal(err)
	}
	vs, err := stream.Collect(st.Wrap(stream.FromValues(docs...)))
	if err != nil {
		t.Fatal(err)
	}
	return vs
}

func TestWhereStage(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []string
	}{
		{name: "field-compare", expr: `doc.a > 1`, want: []string{"y", "z"}},
		{name: "string-field", expr: `doc.name == "x"`, want: []string{"x"}},
		{name: "source", expr: `source == "in"`, want: []string{"x", "y"}},
		{name: "index", expr: `index < 1`, want: []string{"x"}},
		{name: "conjunction", expr: `doc.a >= 2 && source == "in"`, want: []string{"y"}},
		{name: "getpath", expr: `getpath("name") == "z"`, want: []string{"z"}},
		{name: "none", expr: `false`, want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vs := runWhere(t, tc.expr, whereDocs())
			if len(vs) != len(tc.want) {
				t.Fatalf("got %d values, want %d", len(vs), len(tc.want))
			}
			for i, v := range vs {
				if got := v.Field("name").String; got != tc.want[i] {
					t.Errorf("value %d: got %q want %q", i, got, tc.want[i])
				}
			}
		})
	}
}

func TestWhereGetenv(t *testing.T) {
	t.Setenv("RUNNEL_TEST_NAME", "y")
	vs := runWhere(t, `doc.name == getenv("RUNNEL_TEST_NAME")`, whereDocs())
	if len(vs) != 1 || vs[0].Field("name").String != "y" {
		t.Errorf("got %v", vs)
	}
}

func TestWhereGetpathMissing(t *testing.T) {
	st, err := Where().Instance([]string{`getpath("missing") == 1`})
	if err != nil {
		t.Fatal(err)
	}
	_, err = stream.Collect(st.Wrap(stream.FromValues(whereDocs()...)))
	if err == nil {
		t.Errorf("expected error for unresolved path")
	}
}

func TestWhereNonBool(t *testing.T) {
	st, err := Where().Instance([]string{`doc.a`})
	if err != nil {
		// dynamic result types may already be rejected at compile
		return
	}
	if _, err := stream.Collect(st.Wrap(stream.FromValues(whereDocs()...))); err == nil {
		t.Errorf("expected error for non-boolean expression")
	}
}
