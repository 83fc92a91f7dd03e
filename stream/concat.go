package stream

import (
	"io"

	"github.com/signadot/runnel/value"
)

// Concat produces the values of each source in turn. A failure in
// any source ends the whole sequence.
func Concat(srcs ...Source) Source {
	return &concatSource{srcs: srcs}
}

type concatSource struct {
	srcs []Source
	at   int
	done bool
}

func (c *concatSource) Next() (*value.Value, error) {
	if c.done {
		return nil, io.EOF
	}
	for c.at < len(c.srcs) {
		v, err := c.srcs[c.at].Next()
		if err == io.EOF {
			c.at++
			continue
		}
		if err != nil {
			c.done = true
			return nil, err
		}
		return v, nil
	}
	c.done = true
	return nil, io.EOF
}
