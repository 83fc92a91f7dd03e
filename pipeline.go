package runnel

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/runnel/debug"
	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/stage"
	"github.com/signadot/runnel/stream"
)

// A Pipeline is an ordered chain of configured stages.
type Pipeline struct {
	stages []stage.Stage
	names  []string
}

// ParsePipeline parses a pipeline description: stages separated by
// '|', each a stage name followed by arguments. Quoting makes '|'
// and whitespace literal, so
//
//	set robalino a 'b.c' | where 'doc.a == "robalino"'
//
// builds a two-stage pipeline.
func ParsePipeline(src string) (*Pipeline, error) {
	parts, err := lexPipeline(src)
	if err != nil {
		return nil, fmt.Errorf("pipeline %q: %w", src, err)
	}
	p := &Pipeline{}
	for _, words := range parts {
		sym := stage.Lookup(words[0])
		if sym == nil {
			return nil, fmt.Errorf("pipeline %q: no stage %q", src, words[0])
		}
		st, err := sym.Instance(words[1:])
		if err != nil {
			return nil, fmt.Errorf("pipeline %q: %w", src, err)
		}
		p.stages = append(p.stages, st)
		p.names = append(p.names, sym.String())
	}
	if debug.Stage() {
		debug.Logf("parsed pipeline %s\n", p)
	}
	return p, nil
}

// Chain wraps src with each stage in order; the first stage sees the
// source, the last produces the pipeline output.
func (p *Pipeline) Chain(src stream.Source) stream.Source {
	for _, st := range p.stages {
		src = st.Wrap(src)
	}
	return src
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

func (p *Pipeline) String() string {
	return strings.Join(p.names, " | ")
}

// Run drains src, writing each produced value to enc. The first
// failure ends the run and is returned; values already written stay
// written.
func Run(src stream.Source, enc *encode.Encoder) error {
	for {
		v, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := enc.Write(v); err != nil {
			return err
		}
	}
}
