// Package encode renders values as text: YAML-style block documents
// for people, one-line JSON for wires and debug output. Rendering is
// token-at-a-time so terminal colors can wrap individual fields,
// separators and scalars.
package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/runnel/value"
)

type EncState struct {
	format Format
	Color  func(k value.Kind, a ColorAttr, s string) string
}

// Encode renders v to w. YAML output ends with a newline; JSON output
// is a single line without one (see Encoder for document framing).
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case JSONFormat:
		return encodeJSON(v, w, es)
	default:
		return encodeYAML(v, w, es)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, k value.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

func encodeYAML(v *value.Value, w io.Writer, es *EncState) error {
	switch {
	case v.Kind == value.RecordKind && len(v.Names) > 0:
		return encodeFields(v, w, 0, false, es)
	case v.Kind == value.ListKind && len(v.Values) > 0:
		return encodeElems(v, w, 0, false, es)
	default:
		return writeString(w, leafString(v, es)+"\n")
	}
}

func encodeFields(v *value.Value, w io.Writer, depth int, afterMarker bool, es *EncState) error {
	for i, name := range v.Names {
		prefix := indentOf(depth)
		if afterMarker && i == 0 {
			prefix = ""
		}
		if err := writeString(w, prefix); err != nil {
			return err
		}
		key := name
		if needsQuote(key) {
			key = quoteString(key)
		}
		if err := writeString(w, applyColor(es, value.RecordKind, FieldColor, key)); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, value.RecordKind, SepColor, ":")); err != nil {
			return err
		}
		fv := v.Values[i]
		switch {
		case fv.Kind == value.RecordKind && len(fv.Names) > 0:
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			if err := encodeFields(fv, w, depth+1, false, es); err != nil {
				return err
			}
		case fv.Kind == value.ListKind && len(fv.Values) > 0:
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			if err := encodeElems(fv, w, depth+1, false, es); err != nil {
				return err
			}
		default:
			if err := writeString(w, " "+leafString(fv, es)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeElems(v *value.Value, w io.Writer, depth int, afterMarker bool, es *EncState) error {
	for i := range v.Values {
		prefix := indentOf(depth)
		if afterMarker && i == 0 {
			prefix = ""
		}
		if err := writeString(w, prefix); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, value.ListKind, SepColor, "-")+" "); err != nil {
			return err
		}
		ev := v.Values[i]
		switch {
		case ev.Kind == value.RecordKind && len(ev.Names) > 0:
			if err := encodeFields(ev, w, depth+1, true, es); err != nil {
				return err
			}
		case ev.Kind == value.ListKind && len(ev.Values) > 0:
			if err := encodeElems(ev, w, depth+1, true, es); err != nil {
				return err
			}
		default:
			if err := writeString(w, leafString(ev, es)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// leafString renders anything that fits after a key or marker on one
// line: scalars and empty containers.
func leafString(v *value.Value, es *EncState) string {
	switch v.Kind {
	case value.RecordKind:
		return applyColor(es, v.Kind, SepColor, "{}")
	case value.ListKind:
		return applyColor(es, v.Kind, SepColor, "[]")
	}
	return scalarString(v, es)
}

func scalarString(v *value.Value, es *EncState) string {
	switch v.Kind {
	case value.NullKind:
		return applyColor(es, v.Kind, ValueColor, "null")
	case value.BoolKind:
		return applyColor(es, v.Kind, ValueColor, strconv.FormatBool(v.Bool))
	case value.NumberKind:
		return applyColor(es, v.Kind, ValueColor, numberString(v))
	case value.StringKind:
		s := v.String
		if needsQuote(s) {
			s = quoteString(s)
		}
		return applyColor(es, v.Kind, ValueColor, s)
	}
	return ""
}

func indentOf(depth int) string {
	return strings.Repeat("  ", depth)
}

// needsQuote reports whether s must be quoted to stay a string in
// block output.
func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	switch s {
	case "true", "false", "null", "~", "yes", "no", "on", "off":
		return true
	}
	if strings.ContainsAny(s, ":#{}[],&*!|>'\"%@`\r\n\t") {
		return true
	}
	switch s[0] {
	case '-', '?', ' ', '+', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	if s[len(s)-1] == ' ' {
		return true
	}
	return false
}

func quoteString(s string) string {
	return strconv.Quote(s)
}

func numberString(v *value.Value) string {
	if v.Int64 != nil {
		return strconv.FormatInt(*v.Int64, 10)
	}
	if v.Float64 != nil {
		f := *v.Float64
		switch {
		case math.IsNaN(f):
			return ".nan"
		case math.IsInf(f, 1):
			return ".inf"
		case math.IsInf(f, -1):
			return "-.inf"
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	}
	return "0"
}
