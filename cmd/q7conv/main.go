// Command q7conv runs and benchmarks Q7 HWC convolution layers.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	var verbose bool

	return &cli.Command{
		Name:  "q7conv",
		Usage: "Quantized Q7 HWC convolution tool",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "enable debug logging",
				Destination: &verbose,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return withLogger(ctx, newLogger(os.Stderr, verbose)), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			infoCmd(),
			runCmd(),
			benchCmd(),
		},
	}
}
