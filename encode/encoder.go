package encode

import (
	"io"

	"github.com/signadot/runnel/value"
)

// An Encoder writes a sequence of documents to one destination. YAML
// documents after the first are introduced with a "---" separator;
// JSON documents are newline-delimited.
type Encoder struct {
	w    io.Writer
	opts []EncodeOption
	es   EncState
	n    int
}

func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	e := &Encoder{w: w, opts: opts}
	for _, opt := range opts {
		opt(&e.es)
	}
	return e
}

// Write renders v as the next document in the sequence.
func (e *Encoder) Write(v *value.Value) error {
	if e.es.format.IsYAML() && e.n > 0 {
		if err := writeString(e.w, "---\n"); err != nil {
			return err
		}
	}
	if err := Encode(v, e.w, e.opts...); err != nil {
		return err
	}
	e.n++
	if e.es.format.IsJSON() {
		return writeString(e.w, "\n")
	}
	return nil
}

// N returns the number of documents written so far.
func (e *Encoder) N() int {
	return e.n
}
