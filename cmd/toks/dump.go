package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/serial-stream/go-serial/dump"
	"github.com/signadot/serial-stream/go-serial/filter"
	"github.com/signadot/serial-stream/go-serial/gotok"
	"github.com/signadot/serial-stream/go-serial/serial"
)

func toksDump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var flt *filter.Filter
	if cfg.Filter != "" {
		flt, err = filter.Compile(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for _, arg := range stdinOrFiles(args) {
		v, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		it := gotok.Tokens(v)
		if flt == nil {
			opts := cfg.dumpOpts(cc.Out)
			if cfg.Paths {
				opts = append(opts, dump.WithPaths())
			}
			if err := dump.Fprint(cc.Out, it, opts...); err != nil {
				return fmt.Errorf("error dumping %s: %w", arg, err)
			}
			continue
		}
		if err := dumpFiltered(cc.Out, it, flt, cfg.Paths); err != nil {
			return fmt.Errorf("error dumping %s: %w", arg, err)
		}
	}
	return nil
}

// dumpFiltered prints only matching tokens, unindented since the
// selected tokens no longer form a balanced stream.
func dumpFiltered(w io.Writer, it serial.Iter, flt *filter.Filter, paths bool) error {
	st := serial.NewState()
	for {
		t, ok := it.Next()
		if !ok {
			return nil
		}
		path := st.CurrentPath()
		match, err := flt.Match(t, st)
		if err != nil {
			return err
		}
		if err := st.Process(t); err != nil {
			return err
		}
		if !match {
			continue
		}
		if paths && path != "" {
			if _, err := fmt.Fprintf(w, "%s\t# %s\n", t, path); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", t); err != nil {
			return err
		}
	}
}
