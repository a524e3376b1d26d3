package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-qnn/nn/conv"
)

type benchConfig struct {
	geom       conv.Geometry
	iterations int
	seed       uint64
}

type benchResult struct {
	Kernel  string
	PerCall time.Duration
	MACs    int64
}

// MACsPerSecond returns the multiply-accumulate throughput.
func (r benchResult) MACsPerSecond() float64 {
	if r.PerCall <= 0 {
		return 0
	}
	return float64(r.MACs) / r.PerCall.Seconds()
}

func benchCmd() *cli.Command {
	var (
		dim, chIn, chOut, kernelSize int
		padding, stride, iterations  int
		seed                         int
	)

	return &cli.Command{
		Name:  "bench",
		Usage: "Time every registered kernel on a random layer",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "dim", Usage: "input width and height", Value: 32, Destination: &dim},
			&cli.IntFlag{Name: "ch-in", Usage: "input channels", Value: 3, Destination: &chIn},
			&cli.IntFlag{Name: "ch-out", Usage: "output channels", Value: 32, Destination: &chOut},
			&cli.IntFlag{Name: "kernel-size", Usage: "square kernel width", Value: 5, Destination: &kernelSize},
			&cli.IntFlag{Name: "padding", Usage: "zero padding per side", Value: 2, Destination: &padding},
			&cli.IntFlag{Name: "stride", Usage: "stride", Value: 1, Destination: &stride},
			&cli.IntFlag{Name: "iterations", Aliases: []string{"n"}, Usage: "calls per kernel", Value: 100, Destination: &iterations},
			&cli.IntFlag{Name: "seed", Usage: "random seed for the layer data", Value: 1, Destination: &seed},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := loggerFrom(ctx)

			cfg := benchConfig{
				geom:       conv.NewGeometry(dim, chIn, chOut, kernelSize, padding, stride),
				iterations: iterations,
				seed:       uint64(seed),
			}
			if err := cfg.geom.Validate(); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			if cfg.iterations < 1 {
				return cli.Exit("error: iterations must be >= 1", 1)
			}

			log.Info("benchmarking", "geometry", fmt.Sprintf("%+v", cfg.geom), "iterations", cfg.iterations)
			results, err := runBench(ctx, cfg)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return printBench(os.Stdout, results)
		},
	}
}

func runBench(ctx context.Context, cfg benchConfig) ([]benchResult, error) {
	g := cfg.geom
	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))
	in := randomQ7(rng, g.InputLen())
	wt := randomQ7(rng, g.WeightLen())
	bias := randomQ7(rng, g.ChOut)
	out := make([]int8, g.OutputLen())
	bufA := make([]int16, g.BufferALen())

	macs := int64(g.OutputLen()) * int64(g.DimKernel*g.DimKernel*g.ChIn)

	var results []benchResult
	for _, k := range conv.Kernels() {
		// Warm-up call, not timed.
		k.ConvolveHWCQ7Basic(in, g.DimIn, g.ChIn, wt, g.ChOut, g.DimKernel, g.Padding, g.Stride,
			bias, 0, 7, out, g.DimOut, bufA, nil)

		start := time.Now()
		for i := 0; i < cfg.iterations; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			k.ConvolveHWCQ7Basic(in, g.DimIn, g.ChIn, wt, g.ChOut, g.DimKernel, g.Padding, g.Stride,
				bias, 0, 7, out, g.DimOut, bufA, nil)
		}
		elapsed := time.Since(start)

		results = append(results, benchResult{
			Kernel:  k.Name(),
			PerCall: elapsed / time.Duration(cfg.iterations),
			MACs:    macs,
		})
	}
	return results, nil
}

func randomQ7(rng *rand.Rand, n int) []int8 {
	out := make([]int8, n)
	for i := range out {
		out[i] = int8(rng.IntN(256) - 128)
	}
	return out
}

func printBench(w io.Writer, results []benchResult) error {
	data := make([][]string, 0, len(results))
	for _, r := range results {
		data = append(data, []string{
			r.Kernel,
			r.PerCall.String(),
			fmt.Sprintf("%.1f", r.MACsPerSecond()/1e6),
		})
	}

	table := newTable(w, []string{"KERNEL", "TIME/OP", "MMAC/S"})
	table.AppendBulk(data)
	table.Render()
	return nil
}
