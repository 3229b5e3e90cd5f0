package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/serial-stream/go-serial/dump"
	"github.com/signadot/serial-stream/go-serial/gotok"
)

func toksDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := loadArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	d := dump.Diff(
		dump.String(gotok.Tokens(from)),
		dump.String(gotok.Tokens(to)))
	if d == "" {
		return nil
	}
	fmt.Fprint(cc.Out, d)
	return cli.ExitCodeErr(1)
}
