package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	xjson "github.com/geoanalytics/xjson-format/go-xjson"
	"github.com/geoanalytics/xjson-format/go-xjson/format"
)

func xjsonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.X, cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -x[ml] -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
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

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return d, nil
}

// loadRecord reads one document argument and decodes it per the input
// format. With no explicit format the content decides: a document
// starting with '<' is xml, anything else json.
func loadRecord(cfg *MainConfig, arg string) (*xjson.Record, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	fmat := cfg.inFormat()
	if cfg.InFormat == nil && !cfg.X && !cfg.J {
		fmat = sniffFormat(d)
	}
	var rec *xjson.Record
	switch fmat {
	case format.XMLFormat:
		rec, err = xjson.FromXML(d)
	case format.JSONFormat:
		rec, err = xjson.FromJSON(d)
	default:
		return nil, fmt.Errorf("%w: cannot read %s input", format.ErrBadFormat, fmat)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return rec, nil
}

func sniffFormat(d []byte) format.Format {
	for _, c := range d {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '<':
			return format.XMLFormat
		}
		break
	}
	return format.JSONFormat
}

func writeRecord(cfg *MainConfig, w io.Writer, rec *xjson.Record, dflt format.Format) error {
	switch cfg.outFormat(dflt) {
	case format.XMLFormat:
		d, err := rec.XML(cfg.encOpts(w)...)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		_, err := io.WriteString(w, rec.String()+"\n")
		return err
	case format.YAMLFormat:
		_, err := io.WriteString(w, rec.Yaml(cfg.encOpts(w)...)+"\n")
		return err
	}
	return format.ErrBadFormat
}

func eachArg(args []string, f func(arg string) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := f(arg); err != nil {
			return err
		}
	}
	return nil
}
