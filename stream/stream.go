package stream

import (
	"io"

	"github.com/signadot/runnel/value"
)

// Source produces a sequence of values. Next returns io.EOF when the
// sequence is exhausted; any other error is a produced failure and
// ends the sequence.
type Source interface {
	Next() (*value.Value, error)
}

// Values is a Source over a fixed slice.
type Values struct {
	vs []*value.Value
	at int
}

func FromValues(vs ...*value.Value) *Values {
	return &Values{vs: vs}
}

func (s *Values) Next() (*value.Value, error) {
	if s.at >= len(s.vs) {
		return nil, io.EOF
	}
	v := s.vs[s.at]
	s.at++
	return v, nil
}

// Collect drains src. On failure it returns the values emitted before
// the error together with that error.
func Collect(src Source) ([]*value.Value, error) {
	var res []*value.Value
	for {
		v, err := src.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		res = append(res, v)
	}
}
