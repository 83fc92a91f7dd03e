package runnel

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/stream"
	"github.com/signadot/runnel/value"
)

func rec(kvs ...value.KeyVal) *value.Value {
	return value.FromKeyVals(kvs)
}

func kv(k string, v *value.Value) value.KeyVal {
	return value.KeyVal{Key: k, Val: v}
}

func TestLexPipeline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{name: "single", in: "set x", want: [][]string{{"set", "x"}}},
		{name: "two-stages", in: "set x a | get a", want: [][]string{{"set", "x", "a"}, {"get", "a"}}},
		{name: "quoted-pipe", in: `where 'a | b'`, want: [][]string{{"where", "a | b"}}},
		{name: "double-quotes", in: `set "two words" a`, want: [][]string{{"set", "two words", "a"}}},
		{name: "escaped-quote", in: `set 'don\'t'`, want: [][]string{{"set", "don't"}}},
		{name: "empty-word", in: `set '' a`, want: [][]string{{"set", "", "a"}}},
		{name: "tight-pipe", in: "get a|get b", want: [][]string{{"get", "a"}, {"get", "b"}}},
		{name: "adjacent-quotes", in: `set a'b c'`, want: [][]string{{"set", "ab c"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := lexPipeline(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("lex mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestLexPipelineErrors(t *testing.T) {
	bad := []string{"", "set x |", "| set x", "set x | | get a", "set 'x", `get "y`}
	for i, in := range bad {
		if _, err := lexPipeline(in); err == nil {
			t.Errorf("test case %d: lexed %q", i, in)
		}
	}
}

func TestParsePipeline(t *testing.T) {
	p, err := ParsePipeline(`set robalino a | where 'doc.a == "robalino"'`)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 2 {
		t.Errorf("got %d stages", p.Len())
	}
	if got := p.String(); got != "set | where" {
		t.Errorf("got %q", got)
	}
}

func TestParsePipelineErrors(t *testing.T) {
	bad := []string{
		"frobnicate x",
		"set",
		"get a.b | where",
		"set x 'a",
	}
	for i, in := range bad {
		if _, err := ParsePipeline(in); err == nil {
			t.Errorf("test case %d: parsed %q", i, in)
		}
	}
}

func TestPipelineChain(t *testing.T) {
	p, err := ParsePipeline("set x a | get a")
	if err != nil {
		t.Fatal(err)
	}
	src := p.Chain(stream.FromValues(
		rec(kv("a", value.FromInt(1)), kv("b", value.FromInt(2))),
		rec(kv("a", value.FromString("y"))),
	))
	vs, err := stream.Collect(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 2 {
		t.Fatalf("got %d values", len(vs))
	}
	for i, v := range vs {
		if v.Kind != value.StringKind || v.String != "x" {
			t.Errorf("value %d: got %+v", i, v)
		}
	}
}

func TestPipelineChainEmpty(t *testing.T) {
	p := &Pipeline{}
	src := stream.FromValues(value.FromInt(1))
	if p.Chain(src) != stream.Source(src) {
		t.Errorf("empty pipeline rewrapped its source")
	}
}

func TestRun(t *testing.T) {
	p, err := ParsePipeline("set done")
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	enc := encode.NewEncoder(buf)
	src := p.Chain(stream.FromValues(value.FromInt(1), value.FromInt(2)))
	if err := Run(src, enc); err != nil {
		t.Fatal(err)
	}
	want := "done\n---\ndone\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRunStopsAtFailure(t *testing.T) {
	p, err := ParsePipeline("set done a")
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	src := p.Chain(stream.FromValues(
		rec(kv("a", value.FromInt(1))),
		rec(kv("b", value.FromInt(2))),
		rec(kv("a", value.FromInt(3))),
	))
	err = Run(src, encode.NewEncoder(buf))
	pe := &value.PathError{}
	if !errors.As(err, &pe) {
		t.Fatalf("got %T: %v", err, err)
	}
	got := buf.String()
	if !strings.Contains(got, "a: done") || strings.Contains(got, "3") {
		t.Errorf("got partial output %q", got)
	}
}
