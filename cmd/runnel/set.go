package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/runnel"
	"github.com/signadot/runnel/colpath"
	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/stream"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: set requires a replacement argument", cli.ErrUsage)
	}
	ps, err := colpath.ParseAll(cfg.Paths)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	src, closeIn, err := inputSource(args[1:])
	if err != nil {
		return err
	}
	defer closeIn()
	rep := stream.NewReplacer(src, &stream.ReplaceConfig{
		Replacement: args[0],
		Paths:       ps,
	})
	return runnel.Run(rep, encode.NewEncoder(cc.Out, cfg.encOpts(cc.Out)...))
}
