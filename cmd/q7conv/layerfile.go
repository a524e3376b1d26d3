package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-qnn/nn/conv"
)

var errLayerFile = errors.New("q7conv: invalid layer file")

// LayerFile is the YAML description of one convolution call.
type LayerFile struct {
	DimIn      int    `yaml:"dim_in"`
	ChIn       int    `yaml:"ch_in"`
	ChOut      int    `yaml:"ch_out"`
	KernelSize int    `yaml:"kernel_size"`
	Padding    int    `yaml:"padding"`
	Stride     int    `yaml:"stride"`
	BiasShift  uint   `yaml:"bias_shift"`
	OutShift   uint   `yaml:"out_shift"`
	Input      []int8 `yaml:"input"`
	Weights    []int8 `yaml:"weights"`
	Bias       []int8 `yaml:"bias"`
}

// Geometry returns the convolution geometry with the output size derived.
func (lf *LayerFile) Geometry() conv.Geometry {
	return conv.NewGeometry(lf.DimIn, lf.ChIn, lf.ChOut, lf.KernelSize, lf.Padding, lf.Stride)
}

// Validate checks the geometry and the tensor lengths.
func (lf *LayerFile) Validate() error {
	g := lf.Geometry()
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errLayerFile, err)
	}
	switch {
	case len(lf.Input) != g.InputLen():
		return fmt.Errorf("%w: input has %d codes, want %d", errLayerFile, len(lf.Input), g.InputLen())
	case len(lf.Weights) != g.WeightLen():
		return fmt.Errorf("%w: weights has %d codes, want %d", errLayerFile, len(lf.Weights), g.WeightLen())
	case len(lf.Bias) != g.ChOut:
		return fmt.Errorf("%w: bias has %d codes, want %d", errLayerFile, len(lf.Bias), g.ChOut)
	}
	return nil
}

func decodeLayerFile(r io.Reader) (*LayerFile, error) {
	var lf LayerFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lf); err != nil {
		return nil, fmt.Errorf("%w: %w", errLayerFile, err)
	}
	if err := lf.Validate(); err != nil {
		return nil, err
	}
	return &lf, nil
}

func loadLayerFile(path string) (*LayerFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decodeLayerFile(f)
}
