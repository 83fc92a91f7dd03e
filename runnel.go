// Package runnel streams structured documents through small
// transformation pipelines. Documents decode from YAML or JSON into
// immutable tagged values, flow through registered stages one item at
// a time, and encode back out. The central stage, set, writes a fixed
// string over addressed columns of each passing value.
package runnel

import (
	"github.com/signadot/runnel/colpath"
	"github.com/signadot/runnel/stream"
	"github.com/signadot/runnel/value"
)

// Replace applies replacement to v at the given column paths, or to
// the whole of v when no paths are given.
func Replace(v *value.Value, replacement string, paths ...string) (*value.Value, error) {
	ps, err := colpath.ParseAll(paths)
	if err != nil {
		return nil, err
	}
	return stream.Replace(v, &stream.ReplaceConfig{
		Replacement: replacement,
		Paths:       ps,
	})
}

// Get returns the sub-value of v at path.
func Get(v *value.Value, path string) (*value.Value, error) {
	p, err := colpath.Parse(path)
	if err != nil {
		return nil, err
	}
	return value.GetPath(v, p)
}
