package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/geoanalytics/xjson-format/go-xjson/format"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	var patchJSON []byte
	switch {
	case cfg.String:
		patchJSON = []byte(args[0])
	case cfg.File:
		patchJSON, err = readArg(args[0])
		if err != nil {
			return err
		}
	default:
		// try a file first, fall back to a literal
		patchJSON, err = readArg(args[0])
		if err != nil {
			patchJSON = []byte(args[0])
		}
	}
	return eachArg(args[1:], func(arg string) error {
		rec, err := loadRecord(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := rec.Patch(patchJSON); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		return writeRecord(cfg.MainConfig, cc.Out, rec, format.XMLFormat)
	})
}
