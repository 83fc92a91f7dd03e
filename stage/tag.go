package stage

import (
	"fmt"

	"github.com/signadot/runnel/stream"
	"github.com/signadot/runnel/value"
)

var tagSym = &tagSymbol{stageName: tagName}

// Tag rewrites provenance: every node of each passing value is
// retagged with the given source name and the value's position in
// the stream.
func Tag() Symbol {
	return tagSym
}

const tagName stageName = "tag"

type tagSymbol struct {
	stageName
}

func (s tagSymbol) Synopsis() string {
	return "tag <source-name>"
}

func (s tagSymbol) Instance(args []string) (Stage, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s stage expects one source name, got %v", s, args)
	}
	return &tagStage{source: args[0]}, nil
}

type tagStage struct {
	source string
}

func (st *tagStage) Wrap(src stream.Source) stream.Source {
	n := 0
	return stream.Map(src, func(v *value.Value) (*value.Value, error) {
		res := value.Retag(v, value.Tag{Source: st.source, Doc: n})
		n++
		return res, nil
	})
}
