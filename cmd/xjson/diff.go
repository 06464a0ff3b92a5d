package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	xjson "github.com/geoanalytics/xjson-format/go-xjson"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two documents", cli.ErrUsage)
	}
	from, err := loadRecord(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := loadRecord(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	d := xjson.Diff(from, to)
	if d == "" {
		return nil
	}
	if _, err := io.WriteString(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
