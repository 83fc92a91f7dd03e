package stage

import (
	"fmt"

	"github.com/signadot/runnel/colpath"
	"github.com/signadot/runnel/stream"
)

var setSym = &setSymbol{stageName: setName}

// Set replaces each value, or addressed locations within it, with a
// fixed string.
func Set() Symbol {
	return setSym
}

const setName stageName = "set"

type setSymbol struct {
	stageName
}

func (s setSymbol) Synopsis() string {
	return "set <replacement> [<column-path> ...]"
}

func (s setSymbol) Instance(args []string) (Stage, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%s stage expects a replacement, got %v", s, args)
	}
	ps, err := colpath.ParseAll(args[1:])
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", s, err)
	}
	return &setStage{
		cfg: &stream.ReplaceConfig{Replacement: args[0], Paths: ps},
	}, nil
}

type setStage struct {
	cfg *stream.ReplaceConfig
}

func (st *setStage) Wrap(src stream.Source) stream.Source {
	return stream.NewReplacer(src, st.cfg)
}
