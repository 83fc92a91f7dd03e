package encode

import (
	"errors"
	"fmt"
)

// Format names a document encoding. The zero value is YAML, which is
// what every command emits unless told otherwise.
type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }

func (f Format) String() string {
	switch f {
	case YAMLFormat:
		return "yaml"
	case JSONFormat:
		return "json"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Suffix returns the extension, dot included, used when a format
// names a file, as in rc file lookup.
func (f Format) Suffix() string {
	switch f {
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	}
	return ""
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case YAMLFormat, JSONFormat:
		return []byte(f.String()), nil
	}
	return nil, fmt.Errorf("unknown format %d", int(f))
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// ErrBadFormat is wrapped by ParseFormat for spellings it does not
// recognize.
var ErrBadFormat = errors.New("bad format")

// ParseFormat resolves a format name as given on the command line or
// in an rc file. Single letters and the common "yml" spelling are
// accepted.
func ParseFormat(v string) (Format, error) {
	switch v {
	case "y", "yml", "yaml":
		return YAMLFormat, nil
	case "j", "json":
		return JSONFormat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// AllFormats returns the known formats, YAML first. Rc file lookup
// tries suffixes in this order.
func AllFormats() []Format {
	return []Format{YAMLFormat, JSONFormat}
}
