package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-qnn/nn/conv"
	"github.com/cwbudde/algo-qnn/nn/quant"
)

var errKernelMismatch = errors.New("q7conv: kernel outputs differ")

type runOptions struct {
	kernel   string
	verify   bool
	fracBits int // < 0 disables the dequantized view
}

type runResult struct {
	Kernel      string    `json:"kernel"`
	DimOut      int       `json:"dim_out"`
	ChOut       int       `json:"ch_out"`
	Output      []int8    `json:"output"`
	Verified    []string  `json:"verified,omitempty"`
	Dequantized []float64 `json:"dequantized,omitempty"`
}

func runCmd() *cli.Command {
	var (
		layerPath string
		opts      = runOptions{fracBits: -1}
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Convolve a layer described in a YAML file and print the output as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "layer",
				Aliases:     []string{"l"},
				Usage:       "path to the layer YAML file",
				Required:    true,
				Destination: &layerPath,
			},
			&cli.StringFlag{
				Name:        "kernel",
				Aliases:     []string{"k"},
				Usage:       "run a specific kernel instead of the dispatched one",
				Destination: &opts.kernel,
			},
			&cli.BoolFlag{
				Name:        "verify",
				Usage:       "run every registered kernel and require identical output",
				Destination: &opts.verify,
			},
			&cli.IntFlag{
				Name:        "frac-bits",
				Usage:       "also print the output dequantized with this many fractional bits",
				Value:       -1,
				Destination: &opts.fracBits,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := loggerFrom(ctx)

			lf, err := loadLayerFile(layerPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: load layer: %v", err), 1)
			}
			log.Debug("loaded layer", "path", layerPath, "geometry", fmt.Sprintf("%+v", lf.Geometry()))

			res, err := runLayer(lf, opts)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			log.Debug("convolved", "kernel", res.Kernel, "verified", len(res.Verified))

			return writeJSON(os.Stdout, res)
		},
	}
}

func runLayer(lf *LayerFile, opts runOptions) (*runResult, error) {
	g := lf.Geometry()

	kernel := conv.SelectedKernel()
	if opts.kernel != "" {
		kernel = opts.kernel
	}
	k, err := conv.KernelByName(kernel)
	if err != nil {
		return nil, err
	}

	out, err := convolveWith(k, lf)
	if err != nil {
		return nil, err
	}

	res := &runResult{
		Kernel: k.Name(),
		DimOut: g.DimOut,
		ChOut:  g.ChOut,
		Output: out,
	}

	if opts.verify {
		kernels := conv.Kernels()
		outs := make([][]int8, len(kernels))

		var g errgroup.Group
		for i, other := range kernels {
			g.Go(func() error {
				got, err := convolveWith(other, lf)
				outs[i] = got
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for n, got := range outs {
			for i := range got {
				if got[i] != out[i] {
					return nil, fmt.Errorf("%w: %s and %s at index %d: %d != %d",
						errKernelMismatch, k.Name(), kernels[n].Name(), i, out[i], got[i])
				}
			}
			res.Verified = append(res.Verified, kernels[n].Name())
		}
	}

	if opts.fracBits >= 0 {
		res.Dequantized = make([]float64, len(out))
		quant.Dequantize(res.Dequantized, out, uint(opts.fracBits))
	}

	return res, nil
}

func convolveWith(k conv.Kernel, lf *LayerFile) ([]int8, error) {
	g := lf.Geometry()
	out := make([]int8, g.OutputLen())
	st := k.ConvolveHWCQ7Basic(lf.Input, g.DimIn, g.ChIn, lf.Weights, g.ChOut, g.DimKernel, g.Padding, g.Stride,
		lf.Bias, lf.BiasShift, lf.OutShift, out, g.DimOut, make([]int16, g.BufferALen()), nil)
	if st != conv.StatusSuccess {
		return nil, fmt.Errorf("kernel %s returned %s", k.Name(), st)
	}
	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
