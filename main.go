// Package main implements the main entry point for the retro target registry tool
package main

import (
	"errors"
	"os"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrotarget/internal/cli"
	"github.com/retroenv/retrotarget/internal/config"
	"github.com/retroenv/retrotarget/internal/output"
	"github.com/retroenv/retrotarget/internal/session"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, writerOpts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			output.PrintBanner(logger, opts, buildinfo.Version(version, commit, date))
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	output.PrintBanner(logger, opts, buildinfo.Version(version, commit, date))

	if opts.List {
		if err := output.ListTargets(os.Stdout); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}

	path, err := config.LoadOptions(&opts, &writerOpts)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if path != "" {
		logger.Debug("Loaded project file", log.String("file", path))
	}

	if opts.Target == "" {
		usageErr := &cli.UsageError{}
		usageErr.ShowUsage()
		os.Exit(1)
	}

	sess := session.New()
	if err := output.SelectTarget(logger, sess, opts.Target); err != nil {
		logger.Fatal(err.Error())
	}

	if err := output.ProcessFile(sess, opts, writerOpts); err != nil {
		logger.Error("Generating output failed", log.Err(err))
		os.Exit(1)
	}
}
