// Command xtask holds developer tasks that are not part of any build.
//
//	xtask regenerate -o pkg/cuptisys/zz_cupti_gen.go /usr/local/cuda/include/cupti.h -- -I/usr/local/cuda/include
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
	return &cli.Command{
		Name:      "xtask",
		Usage:     "Developer tasks for the cupti module",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			regenerateCmd(stderr),
			versionCmd(stdout),
		},
	}
}
