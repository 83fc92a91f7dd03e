package stage

import (
	"fmt"

	"github.com/signadot/runnel/colpath"
	"github.com/signadot/runnel/stream"
	"github.com/signadot/runnel/value"
)

var getSym = &getSymbol{stageName: getName}

// Get projects each value to the sub-value at a column path.
func Get() Symbol {
	return getSym
}

const getName stageName = "get"

type getSymbol struct {
	stageName
}

func (s getSymbol) Synopsis() string {
	return "get <column-path>"
}

func (s getSymbol) Instance(args []string) (Stage, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s stage expects one column path, got %v", s, args)
	}
	if args[0] == "" {
		return nil, fmt.Errorf("%s stage: empty column path", s)
	}
	p, err := colpath.Parse(args[0])
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", s, err)
	}
	return &getStage{path: p}, nil
}

type getStage struct {
	path *colpath.Path
}

func (st *getStage) Wrap(src stream.Source) stream.Source {
	return stream.Map(src, func(v *value.Value) (*value.Value, error) {
		return value.GetPath(v, st.path)
	})
}
