// Package stream moves values through a pipeline one item at a time.
//
// A Source yields values on demand: each Next call returns the next
// value, an error, or io.EOF once the upstream is exhausted. The
// transformers in this package wrap a Source and work per pulled
// item, and every one of them is fail-fast: the first error, from
// upstream or from the transformation itself, is returned once and
// ends the stream, and the upstream is never pulled again.
// Values emitted before the failure remain valid.
//
// # Example
//
// Replace the field a of every document on a source:
//
//	cfg := &stream.ReplaceConfig{
//		Replacement: "robalino",
//		Paths:       []*colpath.Path{colpath.MustParse("a")},
//	}
//	rep := stream.NewReplacer(src, cfg)
//	for {
//		v, err := rep.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		// use v
//	}
package stream
