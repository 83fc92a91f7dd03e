package decode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/runnel/value"
)

// Parse decodes the first document in data.
func Parse(data []byte, source string) (*value.Value, error) {
	dec := NewDecoder(bytes.NewReader(data), source)
	v, err := dec.Next()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: no document", source)
	}
	return v, err
}

// MustParse is Parse for tests and constants known to be valid.
func MustParse(data []byte, source string) *value.Value {
	v, err := Parse(data, source)
	if err != nil {
		panic(err)
	}
	return v
}
