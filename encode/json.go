package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/signadot/runnel/value"
)

func encodeJSON(v *value.Value, w io.Writer, es *EncState) error {
	switch v.Kind {
	case value.RecordKind:
		if err := writeString(w, applyColor(es, v.Kind, SepColor, "{")); err != nil {
			return err
		}
		for i, name := range v.Names {
			if i > 0 {
				if err := writeString(w, applyColor(es, v.Kind, SepColor, ",")); err != nil {
					return err
				}
			}
			key, err := jsonString(name)
			if err != nil {
				return err
			}
			if err := writeString(w, applyColor(es, v.Kind, FieldColor, key)); err != nil {
				return err
			}
			if err := writeString(w, applyColor(es, v.Kind, SepColor, ":")); err != nil {
				return err
			}
			if err := encodeJSON(v.Values[i], w, es); err != nil {
				return err
			}
		}
		return writeString(w, applyColor(es, v.Kind, SepColor, "}"))
	case value.ListKind:
		if err := writeString(w, applyColor(es, v.Kind, SepColor, "[")); err != nil {
			return err
		}
		for i, ev := range v.Values {
			if i > 0 {
				if err := writeString(w, applyColor(es, v.Kind, SepColor, ",")); err != nil {
					return err
				}
			}
			if err := encodeJSON(ev, w, es); err != nil {
				return err
			}
		}
		return writeString(w, applyColor(es, v.Kind, SepColor, "]"))
	case value.StringKind:
		s, err := jsonString(v.String)
		if err != nil {
			return err
		}
		return writeString(w, applyColor(es, v.Kind, ValueColor, s))
	case value.NumberKind:
		s, err := jsonNumber(v)
		if err != nil {
			return err
		}
		return writeString(w, applyColor(es, v.Kind, ValueColor, s))
	case value.BoolKind:
		return writeString(w, applyColor(es, v.Kind, ValueColor, strconv.FormatBool(v.Bool)))
	case value.NullKind:
		return writeString(w, applyColor(es, v.Kind, ValueColor, "null"))
	}
	return fmt.Errorf("cannot encode kind %s as json", v.Kind)
}

func jsonString(s string) (string, error) {
	d, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func jsonNumber(v *value.Value) (string, error) {
	if v.Int64 != nil {
		return strconv.FormatInt(*v.Int64, 10), nil
	}
	if v.Float64 != nil {
		f := *v.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("cannot encode %v as json", f)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return "0", nil
}
