package main

import (
	"github.com/scott-cotton/cli"

	"github.com/geoanalytics/xjson-format/go-xjson/format"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachArg(args, func(arg string) error {
		rec, err := loadRecord(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		return writeRecord(cfg.MainConfig, cc.Out, rec, format.JSONFormat)
	})
}
