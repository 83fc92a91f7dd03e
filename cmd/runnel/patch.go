package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/runnel"
	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/stage"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	text := args[0]
	if cfg.File {
		data, err := os.ReadFile(text)
		if err != nil {
			return err
		}
		text = string(data)
	}
	st, err := stage.Patch().Instance([]string{text})
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	src, closeIn, err := inputSource(args[1:])
	if err != nil {
		return err
	}
	defer closeIn()
	return runnel.Run(st.Wrap(src), encode.NewEncoder(cc.Out, cfg.encOpts(cc.Out)...))
}
