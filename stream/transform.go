package stream

import (
	"io"

	"github.com/signadot/runnel/value"
)

// MapFunc transforms one value.
type MapFunc func(*value.Value) (*value.Value, error)

// Map applies f to each value pulled from src. f's first error ends
// the stream.
func Map(src Source, f MapFunc) Source {
	return &mapSource{src: src, f: f}
}

type mapSource struct {
	src  Source
	f    MapFunc
	done bool
}

func (m *mapSource) Next() (*value.Value, error) {
	if m.done {
		return nil, io.EOF
	}
	v, err := m.src.Next()
	if err != nil {
		m.done = true
		return nil, err
	}
	res, err := m.f(v)
	if err != nil {
		m.done = true
		return nil, err
	}
	return res, nil
}

// Filter keeps the values for which pred returns true. The first
// predicate error ends the stream.
func Filter(src Source, pred func(*value.Value) (bool, error)) Source {
	return &filterSource{src: src, pred: pred}
}

type filterSource struct {
	src  Source
	pred func(*value.Value) (bool, error)
	done bool
}

func (f *filterSource) Next() (*value.Value, error) {
	for {
		if f.done {
			return nil, io.EOF
		}
		v, err := f.src.Next()
		if err != nil {
			f.done = true
			return nil, err
		}
		keep, err := f.pred(v)
		if err != nil {
			f.done = true
			return nil, err
		}
		if keep {
			return v, nil
		}
	}
}
