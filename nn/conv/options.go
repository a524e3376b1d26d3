package conv

// layerConfig holds the optional settings of a Layer.
type layerConfig struct {
	kernel string
	bufA   []int16
}

// LayerOption mutates a layerConfig.
type LayerOption func(*layerConfig)

func defaultLayerConfig() layerConfig {
	return layerConfig{}
}

// WithKernel pins the layer to a registered kernel instead of the
// CPU-selected one. An empty name keeps the default.
func WithKernel(name string) LayerOption {
	return func(cfg *layerConfig) {
		if name != "" {
			cfg.kernel = name
		}
	}
}

// WithBufferA supplies the im2col scratch buffer. It may be shared between
// layers that never run concurrently. Buffers that are too small are
// rejected by NewLayer.
func WithBufferA(buf []int16) LayerOption {
	return func(cfg *layerConfig) {
		if buf != nil {
			cfg.bufA = buf
		}
	}
}

func applyLayerOptions(opts ...LayerOption) layerConfig {
	cfg := defaultLayerConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
