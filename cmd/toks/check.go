package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/serial-stream/go-serial/gotok"
	"github.com/signadot/serial-stream/go-serial/serial"
)

func toksCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range stdinOrFiles(args) {
		v, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := gotok.Check(v); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		st := serial.NewState()
		it := gotok.Tokens(v)
		n, maxDepth := 0, 0
		for {
			t, ok := it.Next()
			if !ok {
				break
			}
			if err := st.Process(t); err != nil {
				return fmt.Errorf("%s: token %d: %w", arg, n, err)
			}
			n++
			if d := st.Depth(); d > maxDepth {
				maxDepth = d
			}
		}
		if !st.Done() {
			return fmt.Errorf("%s: stream ended at depth %d", arg, st.Depth())
		}
		fmt.Fprintf(cc.Out, "%s: ok (%d tokens, depth %d)\n", arg, n, maxDepth)
	}
	return nil
}
