// Command cuptilocate prints the library search paths and link flags for
// libcupti. It is meant to run from go generate or a Makefile:
//
//	//go:generate go run github.com/samcharles93/cupti/cmd/cuptilocate -abi gnu -format cgo -package cuptisys -tags cupti_link -o zz_link_gen.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	opts := &locateOptions{}
	return &cli.Command{
		Name:      "cuptilocate",
		Usage:     "Discover CUDA toolkit library directories and emit libcupti link directives",
		Flags:     append(locateFlags(opts), loggingFlags(opts)...),
		Writer:    stdout,
		ErrWriter: stderr,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runLocate(ctx, cmd, opts, stdout, stderr)
		},
		Commands: []*cli.Command{
			versionCmd(stdout),
		},
	}
}
