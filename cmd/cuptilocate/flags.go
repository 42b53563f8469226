package main

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/cupti/internal/toolkit"
)

type locateOptions struct {
	arch       string
	goos       string
	abi        string
	format     string
	output     string
	pkg        string
	tags       string
	prefix     string
	configPath string
	strict     bool

	logLevel  string
	logFormat string
	debug     bool
}

func locateFlags(o *locateOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "arch",
			Usage:       "target architecture",
			Sources:     cli.EnvVars(toolkit.EnvTargetArch),
			Destination: &o.arch,
		},
		&cli.StringFlag{
			Name:        "os",
			Usage:       "target operating system",
			Sources:     cli.EnvVars(toolkit.EnvTargetOS),
			Destination: &o.goos,
		},
		&cli.StringFlag{
			Name:        "abi",
			Usage:       "target ABI (gnu, musl, msvc, ...)",
			Sources:     cli.EnvVars(toolkit.EnvTargetABI),
			Destination: &o.abi,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "output format (" + strings.Join(toolkit.Formats(), ", ") + ")",
			Value:       toolkit.FormatLines,
			Destination: &o.format,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "write to file instead of stdout",
			Destination: &o.output,
		},
		&cli.StringFlag{
			Name:        "package",
			Usage:       "package clause for the cgo format (defaults to $GOPACKAGE)",
			Sources:     cli.EnvVars("GOPACKAGE"),
			Destination: &o.pkg,
		},
		&cli.StringFlag{
			Name:        "tags",
			Usage:       "build constraint for the cgo format",
			Destination: &o.tags,
		},
		&cli.StringFlag{
			Name:        "prefix",
			Usage:       "conventional toolkit prefix",
			Value:       toolkit.DefaultPrefix,
			Destination: &o.prefix,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "config file (default is $XDG_CONFIG_HOME/cupti/locate.yaml)",
			Destination: &o.configPath,
		},
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "fail unless a candidate directory actually contains libcupti",
			Destination: &o.strict,
		},
	}
}

func loggingFlags(o *locateOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &o.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &o.logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &o.debug,
		},
	}
}
