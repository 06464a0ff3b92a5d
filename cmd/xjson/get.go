package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	xjson "github.com/geoanalytics/xjson-format/go-xjson"
	"github.com/geoanalytics/xjson-format/go-xjson/format"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an element path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	return eachArg(args[1:], func(arg string) error {
		rec, err := loadRecord(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := rec.Query(xjson.PathQuery, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		for _, match := range res {
			if err := writeRecord(cfg.MainConfig, cc.Out, match, format.YAMLFormat); err != nil {
				return err
			}
		}
		return nil
	})
}
