package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/cupti/internal/bindgen"
	"github.com/samcharles93/cupti/internal/logger"
)

type regenerateOptions struct {
	output string
	raw    bool

	logLevel  string
	logFormat string
	debug     bool
}

// newParser is swapped out in tests.
var newParser = func(log logger.Logger) bindgen.Parser {
	return &bindgen.Clang{Log: log}
}

func regenerateCmd(stderr io.Writer) *cli.Command {
	o := &regenerateOptions{}
	return &cli.Command{
		Name:      "regenerate",
		Usage:     "Regenerate Go bindings from the CUPTI headers",
		ArgsUsage: "HEADER [-- PARSER_ARGS...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "generated Go file",
				Required:    true,
				Destination: &o.output,
			},
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "write the generator output without gofmt",
				Destination: &o.raw,
			},
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
				Usage:       "enable debug logging",
				Destination: &o.debug,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runRegenerate(ctx, cmd, o, stderr)
		},
	}
}

func runRegenerate(ctx context.Context, cmd *cli.Command, o *regenerateOptions, stderr io.Writer) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("regenerate: header path is required")
	}
	header, passthrough := args[0], args[1:]
	if len(passthrough) > 0 && passthrough[0] == "--" {
		passthrough = passthrough[1:]
	}

	level := o.logLevel
	if o.debug {
		level = "debug"
	}
	log, err := logger.Open(stderr, o.logFormat, level)
	if err != nil {
		return err
	}

	spec, err := bindgen.DefaultSpec(header, o.output, passthrough...)
	if err != nil {
		return err
	}
	spec.Raw = o.raw

	gen := &bindgen.Generator{
		Spec:   spec,
		Parser: newParser(log),
		Log:    log.With("header", header),
	}
	if _, err := gen.Run(ctx); err != nil {
		return fmt.Errorf("regenerate: %w", err)
	}
	return nil
}
