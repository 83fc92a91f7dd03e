package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	if rc, err := loadRC(); err != nil {
		fmt.Fprintf(os.Stderr, "runnel: rc file: %v\n", err)
	} else if err := cfg.applyRC(rc); err != nil {
		fmt.Fprintf(os.Stderr, "runnel: rc file: %v\n", err)
	}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/yml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "runnel").
		WithSynopsis("runnel [opts] command [opts]").
		WithDescription("runnel streams structured documents through transformation pipelines.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runnelMain(cfg, cc, args)
		}).
		WithSubs(
			SetCommand(cfg),
			GetCommand(cfg),
			WhereCommand(cfg),
			PatchCommand(cfg),
			RunCommand(cfg),
			DiffCommand(cfg),
			ServeCommand(cfg))
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "p",
			Aliases:     []string{"path"},
			Description: "column path to set, repeatable",
			Type:        cli.NamedFuncOpt(cfg.pathOpt, "(column-path)"),
		},
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set <replacement> [-p path]... [files]").
		WithDescription("replace documents, or columns within them, with a fixed string").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <column-path> [files]").
		WithDescription("project documents to the value at a column path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func WhereCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WhereConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("where").
		WithAliases("w").
		WithSynopsis("where <expr> [files]").
		WithDescription("keep documents for which an expression holds").
		WithRun(func(cc *cli.Context, args []string) error {
			return where(cfg, cc, args)
		})
	cfg.Where = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-f] <rfc-6902-patch> [files]").
		WithDescription("apply a JSON patch to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("run").
		WithAliases("r").
		WithSynopsis("run [-f] <pipeline> [files]").
		WithDescription("run a pipeline of stages over documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cfg.Run = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-r] <a> <b>").
		WithDescription("diff two document files after normalizing").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("serve").
		WithSynopsis("serve [-gops]").
		WithDescription("serve pipelines over JSON-RPC on stdin/stdout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
	cfg.Serve = cmd
	return cmd
}
