// Package main implements a firmware section placement report tool
package main

import (
	"errors"
	"os"

	"github.com/retroenv/espsegs/internal/chip"
	"github.com/retroenv/espsegs/internal/cli"
	"github.com/retroenv/espsegs/internal/config"
	"github.com/retroenv/espsegs/internal/fileprocessor"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if err := fileprocessor.ProcessFile(logger, opts, os.Stdout); err != nil {
		if errors.Is(err, chip.ErrUnknownChip) {
			logger.Error("Unknown chip", log.String("chip", opts.Chip))
		} else {
			logger.Error("Report generation failed", log.Err(err))
		}
		os.Exit(1)
	}
}
