package encode

import (
	"fmt"
	"strings"

	"github.com/signadot/runnel/value"
)

// MustString renders v to a string, panicking on error. Only debug
// paths and tests should lean on this; rendering fails only for
// non-finite floats in JSON format.
func MustString(v *value.Value, opts ...EncodeOption) string {
	sb := &strings.Builder{}
	if err := Encode(v, sb, opts...); err != nil {
		panic(fmt.Sprintf("encode: %s", err))
	}
	return sb.String()
}
