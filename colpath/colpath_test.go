package colpath

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string // "" means the input renders back unchanged
	}{
		{
			name: "single field",
			path: "a",
		},
		{
			name: "nested fields",
			path: "a.b.c",
		},
		{
			name: "field then index",
			path: "a[0]",
		},
		{
			name: "index then field",
			path: "a[0].b",
		},
		{
			name: "adjacent indices",
			path: "a[0][1]",
		},
		{
			name: "quoted field with dot",
			path: "'field.with.dots'.c",
		},
		{
			name: "quoted field with space",
			path: "'field name'",
		},
		{
			name: "double quoted field",
			path: `"it's"`,
		},
		{
			name: "quoted field without special bytes renders bare",
			path: "'plain'",
			want: "plain",
		},
		{
			name: "escaped quote in field",
			path: `'don\'t'`,
			want: `"don't"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.path, err)
			}
			want := tt.want
			if want == "" {
				want = tt.path
			}
			if got := p.String(); got != want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.path, got, want)
			}
			// the rendering must parse back to the same segments
			q, err := Parse(p.String())
			if err != nil {
				t.Fatalf("reparse %q: %v", p.String(), err)
			}
			if !reflect.DeepEqual(p.Segments(), q.Segments()) {
				t.Errorf("reparse %q: segments %v != %v", p.String(), q.Segments(), p.Segments())
			}
		})
	}
}

func TestParseSegments(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		fields  []string // expected Field per segment; "" means Index
		indices []int
	}{
		{
			name:    "fields only",
			path:    "a.b",
			fields:  []string{"a", "b"},
			indices: []int{-1, -1},
		},
		{
			name:    "mixed",
			path:    "a[2].b",
			fields:  []string{"a", "", "b"},
			indices: []int{-1, 2, -1},
		},
		{
			name:    "quoted keeps raw name",
			path:    "'a.b'",
			fields:  []string{"a.b"},
			indices: []int{-1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.path, err)
			}
			if p.Len() != len(tt.fields) {
				t.Fatalf("Parse(%q): %d segments, want %d", tt.path, p.Len(), len(tt.fields))
			}
			i := 0
			for q := p; q != nil; q = q.Next {
				switch {
				case tt.fields[i] != "":
					if q.Field == nil || *q.Field != tt.fields[i] {
						t.Errorf("segment %d: want field %q, got %s", i, tt.fields[i], q.SegmentString())
					}
				default:
					if q.Index == nil || *q.Index != tt.indices[i] {
						t.Errorf("segment %d: want index %d, got %s", i, tt.indices[i], q.SegmentString())
					}
				}
				i++
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		msg  string
	}{
		{
			name: "leading dot",
			path: ".a",
			msg:  "empty segment",
		},
		{
			name: "trailing dot",
			path: "a.",
			msg:  "empty segment",
		},
		{
			name: "double dot",
			path: "a..b",
			msg:  "empty segment",
		},
		{
			name: "unterminated index",
			path: "a[1",
			msg:  "unterminated index",
		},
		{
			name: "non numeric index",
			path: "a[x]",
			msg:  "invalid index",
		},
		{
			name: "negative index",
			path: "a[-1]",
			msg:  "invalid index",
		},
		{
			name: "wildcard index",
			path: "a[*]",
			msg:  "invalid index",
		},
		{
			name: "unterminated quote",
			path: "'a",
			msg:  "unterminated quote",
		},
		{
			name: "junk after quote",
			path: "'a'b",
			msg:  "unexpected",
		},
		{
			name: "junk after index",
			path: "a[0]b",
			msg:  "unexpected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.path)
			if err == nil {
				t.Fatalf("Parse(%q): no error", tt.path)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Parse(%q): error %q does not mention %q", tt.path, err, tt.msg)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	paths, err := ParseAll([]string{"a", "b[0]"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	if _, err := ParseAll([]string{"a", ""}); err == nil {
		t.Errorf("empty column path accepted")
	}
}

func TestEmptyPath(t *testing.T) {
	p, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if p != nil {
		t.Fatalf("Parse(\"\") = %v, want nil", p)
	}
	if p.Len() != 0 || p.String() != "" || p.Segments() != nil {
		t.Errorf("nil path: Len=%d String=%q Segments=%v", p.Len(), p.String(), p.Segments())
	}
}
