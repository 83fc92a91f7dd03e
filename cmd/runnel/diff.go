package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/textdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, b := args[0], args[1]
	if cfg.Reverse {
		a, b = b, a
	}
	from, err := renderFile(a)
	if err != nil {
		return err
	}
	to, err := renderFile(b)
	if err != nil {
		return err
	}
	diffs := textdiff.Diff(from, to)
	if textdiff.Equal(diffs) {
		return nil
	}
	fmt.Fprint(cc.Out, textdiff.Render(diffs, cfg.colorsOn(cc.Out)))
	return cli.ExitCodeErr(1)
}

// renderFile decodes every document in path and re-encodes them
// plainly, so diffs compare normalized text rather than formatting.
func renderFile(path string) (string, error) {
	src, closeIn, err := inputSource([]string{path})
	if err != nil {
		return "", err
	}
	defer closeIn()
	sb := &strings.Builder{}
	enc := encode.NewEncoder(sb)
	for {
		v, err := src.Next()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if err := enc.Write(v); err != nil {
			return "", err
		}
	}
}
