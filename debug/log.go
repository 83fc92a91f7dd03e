package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/runnel/colpath"
	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/value"
)

// Logf writes a debug line to stderr, rendering values, paths and
// tags in readable form.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *value.Value:
			args[i] = encode.MustString(x, encode.EncodeFormat(encode.JSONFormat))
		case *colpath.Path:
			args[i] = x.String()
		case value.Tag:
			args[i] = x.String()
		case map[string]any, []any:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
