package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/runnel"
	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/stage"
)

func where(cfg *WhereConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Where.Parse(cc, args)
	if err != nil {
		cfg.Where.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: where requires an expression", cli.ErrUsage)
	}
	st, err := stage.Where().Instance(args[:1])
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
