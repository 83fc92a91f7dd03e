package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/runnel/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// colorsOn decides whether to colorize output to w: an explicit
// -color wins, an explicitly unset one loses, otherwise terminals
// get color.
func (cfg *MainConfig) colorsOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat encode.Format
	switch {
	case cfg.Y:
		fmat = encode.YAMLFormat
	case cfg.J:
		fmat = encode.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if cfg.colorsOn(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type SetConfig struct {
	*MainConfig

	Paths []string

	Set *cli.Command
}

func (cfg *SetConfig) pathOpt(_ *cli.Context, a string) (any, error) {
	cfg.Paths = append(cfg.Paths, a)
	return a, nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type WhereConfig struct {
	*MainConfig

	Where *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File bool `cli:"name=f desc='patch arg is a file path'"`

	Patch *cli.Command
}

type RunConfig struct {
	*MainConfig

	File   bool `cli:"name=f desc='pipeline arg is a file path'"`
	Stages bool `cli:"name=stages desc='show available stages'"`

	Run *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type ServeConfig struct {
	*MainConfig

	Gops bool `cli:"name=gops desc='start a gops agent for debugging'"`

	Serve *cli.Command
}
