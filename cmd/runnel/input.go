package main

import (
	"io"
	"os"

	"github.com/signadot/runnel/decode"
	"github.com/signadot/runnel/stream"
)

// inputSource builds one document stream over the given file
// arguments. No arguments, or "-", reads stdin.
func inputSource(args []string) (stream.Source, func() error, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var (
		srcs    []stream.Source
		closers []io.Closer
	)
	closeAll := func() error {
		var first error
		for _, c := range closers {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}
	for _, arg := range args {
		if arg == "-" {
			srcs = append(srcs, decode.NewDecoder(os.Stdin, "-"))
			continue
		}
		f, err := os.Open(arg)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, f)
		srcs = append(srcs, decode.NewDecoder(f, arg))
	}
	if len(srcs) == 1 {
		return srcs[0], closeAll, nil
	}
	return stream.Concat(srcs...), closeAll, nil
}
