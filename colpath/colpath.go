// Package colpath implements column paths: ordered sequences of field
// and index segments addressing a nested location inside a structured
// value.
//
// Syntax:
//   - "a.b" → field a, then field b
//   - "a[0]" → field a, then list element 0
//   - "'dotted.name'.c" → quoted field containing a dot, then field c
//   - "" → no segments (the whole value)
//
// Field names containing path syntax (dots, brackets, quotes, spaces)
// are quoted with single or double quotes; quotes are only recognized
// at the start of a segment.
package colpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is one segment of a column path, linked to the segments below
// it. Exactly one of Field and Index is set.
type Path struct {
	Field *string
	Index *int
	Next  *Path
}

// Parse parses a column path string. An empty string parses to nil,
// which addresses the whole value; callers that require an address
// must reject empty paths themselves (see ParseAll).
//
// Returns an error naming the offset of the first invalid byte.
func Parse(path string) (*Path, error) {
	if path == "" {
		return nil, nil
	}
	var (
		root = &Path{}
		cur  = root
		i    = 0
		n    = len(path)
	)
	for {
		switch {
		case i < n && path[i] == '[':
			j := strings.IndexByte(path[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("column path %q: unterminated index at offset %d", path, i)
			}
			idx, err := strconv.Atoi(path[i+1 : i+j])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("column path %q: invalid index %q at offset %d", path, path[i+1:i+j], i+1)
			}
			cur.Index = &idx
			i += j + 1
		case i < n && (path[i] == '\'' || path[i] == '"'):
			field, rest, err := readQuoted(path[i:])
			if err != nil {
				return nil, fmt.Errorf("column path %q: %v at offset %d", path, err, i)
			}
			cur.Field = &field
			i = n - len(rest)
		default:
			j := i
			for j < n && path[j] != '.' && path[j] != '[' {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("column path %q: empty segment at offset %d", path, i)
			}
			field := path[i:j]
			cur.Field = &field
			i = j
		}
		if i == n {
			return root, nil
		}
		// a '.' introduces a field segment; '[' abuts the previous one
		switch path[i] {
		case '.':
			i++
		case '[':
		default:
			return nil, fmt.Errorf("column path %q: unexpected %q at offset %d", path, path[i:i+1], i)
		}
		next := &Path{}
		cur.Next = next
		cur = next
	}
}

// MustParse is Parse, panicking on error. Intended for fixed paths.
func MustParse(path string) *Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseAll parses each path in order. Unlike Parse, empty paths are
// rejected: a list of addresses has no use for "the whole value".
func ParseAll(paths []string) ([]*Path, error) {
	res := make([]*Path, 0, len(paths))
	for _, s := range paths {
		if s == "" {
			return nil, fmt.Errorf("empty column path")
		}
		p, err := Parse(s)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

// String renders the path in parseable form, quoting field names that
// need it.
func (p *Path) String() string {
	var b strings.Builder
	first := true
	for q := p; q != nil; q = q.Next {
		if q.Field != nil && !first {
			b.WriteByte('.')
		}
		b.WriteString(q.SegmentString())
		first = false
	}
	return b.String()
}

// SegmentString renders this segment alone, without the rest of the
// path.
func (p *Path) SegmentString() string {
	switch {
	case p.Field != nil:
		if quoteField(*p.Field) {
			return quote(*p.Field)
		}
		return *p.Field
	case p.Index != nil:
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// Segments returns the rendered segments in order.
func (p *Path) Segments() []string {
	var res []string
	for q := p; q != nil; q = q.Next {
		res = append(res, q.SegmentString())
	}
	return res
}

// Len returns the number of segments.
func (p *Path) Len() int {
	n := 0
	for q := p; q != nil; q = q.Next {
		n++
	}
	return n
}
