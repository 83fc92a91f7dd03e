package encode

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{in: "y", want: YAMLFormat},
		{in: "yml", want: YAMLFormat},
		{in: "yaml", want: YAMLFormat},
		{in: "j", want: JSONFormat},
		{in: "json", want: JSONFormat},
	}
	for _, tc := range tests {
		f, err := ParseFormat(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if f != tc.want {
			t.Errorf("%q: got %s want %s", tc.in, f, tc.want)
		}
	}
	for _, bad := range []string{"", "YAML", "jsonl", "toml"} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrBadFormat) {
			t.Errorf("%q: got %v want ErrBadFormat", bad, err)
		}
	}
}

func TestFormatZeroValue(t *testing.T) {
	var f Format
	if !f.IsYAML() || f.IsJSON() {
		t.Errorf("zero format is %s", f)
	}
}

func TestFormatSuffix(t *testing.T) {
	if s := YAMLFormat.Suffix(); s != ".yaml" {
		t.Errorf("yaml suffix %q", s)
	}
	if s := JSONFormat.Suffix(); s != ".json" {
		t.Errorf("json suffix %q", s)
	}
	if s := Format(99).Suffix(); s != "" {
		t.Errorf("unknown format has suffix %q", s)
	}
	if _, err := Format(99).MarshalText(); err == nil {
		t.Error("unknown format marshaled")
	}
}
