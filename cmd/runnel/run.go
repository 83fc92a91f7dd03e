package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/runnel"
	"github.com/signadot/runnel/encode"
	"github.com/signadot/runnel/stage"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		cfg.Run.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Stages {
		fmt.Fprintf(cc.Out, "available stages:\n")
		for _, s := range stage.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s.Synopsis())
		}
		return nil
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: run requires a pipeline argument", cli.ErrUsage)
	}
	text := args[0]
	if cfg.File {
		data, err := os.ReadFile(text)
		if err != nil {
			return err
		}
		text = string(data)
	}
	p, err := runnel.ParsePipeline(text)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	src, closeIn, err := inputSource(args[1:])
	if err != nil {
		return err
	}
	defer closeIn()
	return runnel.Run(p.Chain(src), encode.NewEncoder(cc.Out, cfg.encOpts(cc.Out)...))
}
