// Package decode turns YAML and JSON documents into values. Since
// JSON is a subset of YAML, one decoder handles both. Each decoded
// document is tagged with its source name and ordinal so downstream
// stages can report where a value came from.
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/runnel/debug"
	"github.com/signadot/runnel/value"
)

// A Decoder reads a multi-document stream from r. It implements
// stream.Source: Next returns io.EOF once the input is exhausted.
type Decoder struct {
	dec *yaml.Decoder
	src string
	n   int
}

// NewDecoder returns a Decoder reading from r. source names the
// origin (a filename, "-" for stdin) and ends up in value tags.
func NewDecoder(r io.Reader, source string) *Decoder {
	return &Decoder{
		dec: yaml.NewDecoder(r, yaml.UseOrderedMap()),
		src: source,
	}
}

// Next decodes and returns the next document.
func (d *Decoder) Next() (*value.Value, error) {
	var doc any
	if err := d.dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%s: document %d: %w", d.src, d.n, err)
	}
	v, err := FromGo(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: document %d: %w", d.src, d.n, err)
	}
	tag := value.Tag{Source: d.src, Doc: d.n}
	d.n++
	if debug.Decode() {
		debug.Logf("decoded document %s\n", tag)
	}
	return value.Retag(v, tag), nil
}
