package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/serial-stream/go-serial/dump"
	"github.com/signadot/serial-stream/go-serial/format"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='read input as json'"`
	Y     bool `cli:"name=y aliases=yaml desc='read input as yaml'"`
	Color bool `cli:"name=color desc='dump with color'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// inFormat resolves the input format for arg: explicit flags first,
// then the file suffix, defaulting to JSON.
func (cfg *MainConfig) inFormat(arg string) format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromSuffix(arg); ok {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.DumpOption {
	res := []dump.DumpOption{}
	if cfg.Color {
		return append(res, dump.WithColors(dump.NewColors()))
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return res
	}
	if dump.IsTTY(w) {
		res = append(res, dump.WithColors(dump.NewColors()))
	}
	return res
}

// loadArg reads and decodes one input document into a generic Go
// value. arg "-" means stdin.
func loadArg(cfg *MainConfig, arg string) (any, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var v any
	switch cfg.inFormat(arg) {
	case format.YAMLFormat:
		err = yaml.Unmarshal(d, &v)
	default:
		err = json.Unmarshal(d, &v)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return v, nil
}

type DumpConfig struct {
	*MainConfig

	Paths  bool   `cli:"name=paths desc='annotate tokens with structural paths'"`
	Filter string `cli:"name=filter desc='expr predicate selecting tokens to print'"`

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
