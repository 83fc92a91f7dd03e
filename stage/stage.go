// Package stage defines pipeline stages: named stream transforms that
// can be instantiated from textual arguments and chained over a
// stream.Source. Stages register themselves at init time; Lookup
// resolves a name to its Symbol and Instance builds a configured
// Stage from arguments.
package stage

import (
	"github.com/signadot/runnel/stream"
)

// A Stage wraps an upstream source with one transform.
type Stage interface {
	Wrap(src stream.Source) stream.Source
}

// A Symbol names a stage kind and builds instances of it.
type Symbol interface {
	String() string
	// Synopsis returns a one-line usage form for error messages.
	Synopsis() string
	// Instance builds a Stage from pipeline arguments.
	Instance(args []string) (Stage, error)
}

type stageName string

func (n stageName) String() string {
	return string(n)
}
