package value

import "fmt"

// Tag records the provenance of a Value: the name of the source it
// was decoded from and the ordinal of the document within that
// source. Tags ride along with values through transformations; the
// pipeline core copies them but never inspects their content.
type Tag struct {
	Source string
	Doc    int
}

// UnknownTag is the tag of values with no recorded origin.
var UnknownTag = Tag{}

// Known reports whether t records an origin.
func (t Tag) Known() bool {
	return t != UnknownTag
}

func (t Tag) String() string {
	if !t.Known() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s#%d", t.Source, t.Doc)
}
