package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

// runnelMain parses the global options and hands what remains to the
// named subcommand. A usage error from the subcommand prints that
// subcommand's usage and exits with its exit code.
func runnelMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: -y and -j conflict, pick one output format", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut != nil {
		cfg.CloseOut()
	}
}

// outOpt redirects command output to the file named by -o. The
// default name "-" keeps the inherited stream.
func (cfg *MainConfig) outOpt(cc *cli.Context, arg string) (any, error) {
	cfg.Out = arg
	if arg == "-" {
		return nil, nil
	}
	out, err := os.Create(cfg.Out)
	if err != nil {
		return nil, err
	}
	cc.Out = out
	cfg.CloseOut = out.Close
	return nil, nil
}
