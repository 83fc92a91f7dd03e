package stream

import (
	"io"

	"github.com/signadot/runnel/colpath"
	"github.com/signadot/runnel/debug"
	"github.com/signadot/runnel/value"
)

// ReplaceConfig is the invariant state of one replacement run: the
// text to write and the column paths addressing where to write it.
// Empty Paths means the whole value is replaced. A config is built
// once per run, shared by reference, and never modified.
type ReplaceConfig struct {
	Replacement string
	Paths       []*colpath.Path
}

// Replace applies cfg to a single value. With no paths the result is
// the replacement itself under v's own tag. Otherwise each path is
// applied in order against the result of the previous application, so
// overlapping paths see earlier edits. The update is atomic: either
// every path applied and the folded value is returned, or the first
// failure is returned and no value escapes.
func Replace(v *value.Value, cfg *ReplaceConfig) (*value.Value, error) {
	if len(cfg.Paths) == 0 {
		return replacement(cfg, v.Tag), nil
	}
	return replacePaths(v, cfg)
}

// replacePaths folds the configured paths over v, left to right.
func replacePaths(v *value.Value, cfg *ReplaceConfig) (*value.Value, error) {
	res := v
	for _, p := range cfg.Paths {
		var err error
		res, err = value.SwapPath(res, p, func(old *value.Value) (*value.Value, error) {
			return replacement(cfg, old.Tag), nil
		})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// replacement builds the new leaf for one location: a string value
// carrying cfg.Replacement, tagged with the provenance of the value
// being replaced.
func replacement(cfg *ReplaceConfig, at value.Tag) *value.Value {
	return value.FromString(cfg.Replacement).WithTag(at)
}

// Replacer drives Replace over an upstream source, holding one item
// in flight at a time. Whether the run replaces whole values or
// addressed locations is decided once, from the config. The first
// failure, upstream or replacement, is emitted once and terminates
// the stream; the upstream is not pulled again after that.
type Replacer struct {
	src       Source
	cfg       *ReplaceConfig
	addressed bool
	done      bool
}

func NewReplacer(src Source, cfg *ReplaceConfig) *Replacer {
	return &Replacer{
		src:       src,
		cfg:       cfg,
		addressed: len(cfg.Paths) > 0,
	}
}

func (r *Replacer) Next() (*value.Value, error) {
	if r.done {
		return nil, io.EOF
	}
	v, err := r.src.Next()
	if err != nil {
		r.done = true
		return nil, err
	}
	var res *value.Value
	if r.addressed {
		res, err = replacePaths(v, r.cfg)
	} else {
		res = replacement(r.cfg, v.Tag)
	}
	if err != nil {
		if debug.Stream() {
			debug.Logf("replace %s: %v\n", v.Tag, err)
		}
		r.done = true
		return nil, err
	}
	return res, nil
}
