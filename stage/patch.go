package stage

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/runnel/decode"
	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/stream"
	"github.com/signadot/runnel/value"
)

var patchSym = &patchSymbol{stageName: patchName}

// Patch applies an RFC 6902 JSON patch to each value. The patch
// document may be written in YAML or JSON.
func Patch() Symbol {
	return patchSym
}

const patchName stageName = "patch"

type patchSymbol struct {
	stageName
}

func (s patchSymbol) Synopsis() string {
	return "patch <rfc-6902-patch>"
}

func (s patchSymbol) Instance(args []string) (Stage, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s stage expects one patch document, got %v", s, args)
	}
	pv, err := decode.Parse([]byte(args[0]), "patch")
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", s, err)
	}
	data, err := jsonBytes(pv)
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", s, err)
	}
	p, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", s, err)
	}
	return &patchStage{patch: p}, nil
}

type patchStage struct {
	patch jsonpatch.Patch
}

func (st *patchStage) Wrap(src stream.Source) stream.Source {
	return stream.Map(src, func(v *value.Value) (*value.Value, error) {
		data, err := jsonBytes(v)
		if err != nil {
			return nil, fmt.Errorf("patch: %w", err)
		}
		out, err := st.patch.Apply(data)
		if err != nil {
			return nil, fmt.Errorf("patch %s: %w", v.Tag, err)
		}
		res, err := decode.Parse(out, v.Tag.Source)
		if err != nil {
			return nil, fmt.Errorf("patch: %w", err)
		}
		return value.Retag(res, v.Tag), nil
	})
}

func jsonBytes(v *value.Value) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, encode.EncodeFormat(encode.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
