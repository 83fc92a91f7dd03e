package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/runnel"
	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/stage"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: get requires a column path", cli.ErrUsage)
	}
	st, err := stage.Get().Instance(args[:1])
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
