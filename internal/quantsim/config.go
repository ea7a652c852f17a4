package quantsim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// QuantizerConfig describes how one tensor is quantized. It mirrors the
// YAML quantizer files consumed by the CLI tooling.
type QuantizerConfig struct {
	Name         string  `yaml:"name"`
	BitWidth     int     `yaml:"bit_width"`
	Symmetric    bool    `yaml:"symmetric"`
	PerChannel   bool    `yaml:"per_channel"`
	AxisHandling string  `yaml:"axis_handling"` // "per_tensor", "per_channel", "last_two_axes"
	Param        bool    `yaml:"param"`         // parameter quantizer, else activation
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
}

// Config is the root of a quantizer YAML document.
type Config struct {
	Quantizers []QuantizerConfig `yaml:"quantizers"`
}

// LoadConfig reads and parses a quantizer YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	for i := range cfg.Quantizers {
		if err := cfg.Quantizers[i].validate(); err != nil {
			return Config{}, fmt.Errorf("quantizer %d: %w", i, err)
		}
	}

	return cfg, nil
}

func (q *QuantizerConfig) validate() error {
	if q.BitWidth < 1 {
		return fmt.Errorf("bit_width must be >= 1, got %d", q.BitWidth)
	}
	switch q.AxisHandling {
	case "", "per_tensor", "per_channel", "last_two_axes":
	default:
		return fmt.Errorf("unknown axis_handling %q", q.AxisHandling)
	}
	return nil
}

// Axis returns the AxisHandling code for the config. An empty value
// defaults to per-tensor.
func (q *QuantizerConfig) Axis() AxisHandling {
	switch q.AxisHandling {
	case "per_channel":
		return AxisPerChannel
	case "last_two_axes":
		return AxisLastTwoCombined
	default:
		return AxisPerTensor
	}
}

// Encoding returns the scalar encoding described by the config.
func (q *QuantizerConfig) Encoding() Encoding {
	return Encoding{
		Min:       q.Min,
		Max:       q.Max,
		BitWidth:  q.BitWidth,
		Symmetric: q.Symmetric,
	}
}
