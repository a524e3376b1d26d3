package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-qnn/internal/cpu"
	"github.com/cwbudde/algo-qnn/nn/conv"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show CPU features and registered kernels",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return printInfo(os.Stdout, cpu.DetectFeatures())
		},
	}
}

func printInfo(w io.Writer, f cpu.Features) error {
	fmt.Fprintf(w, "architecture: %s\n", f.Architecture)
	fmt.Fprintf(w, "dual mac:     %t\n", f.HasDSP)
	fmt.Fprintf(w, "sse2:         %t\n", f.HasSSE2)
	fmt.Fprintf(w, "avx2:         %t\n", f.HasAVX2)
	fmt.Fprintf(w, "neon:         %t\n", f.HasNEON)
	fmt.Fprintf(w, "selected:     %s\n", conv.SelectedKernel())
	fmt.Fprintln(w)

	var data [][]string
	for _, k := range conv.Kernels() {
		data = append(data, []string{
			k.Name(),
			k.Level(),
			strconv.Itoa(k.Priority()),
			strconv.FormatBool(k.Supported()),
		})
	}

	table := newTable(w, []string{"KERNEL", "LEVEL", "PRIORITY", "SUPPORTED"})
	table.AppendBulk(data)
	table.Render()
	return nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}
