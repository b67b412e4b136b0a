package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/taylab/internal/expand"
)

const (
	DefaultPrecision     = 1e-9
	DefaultMaxIterations = 1000
	DefaultOrder         = 10
	DefaultX             = 0.5
	DefaultFrom          = -0.9
	DefaultTo            = 0.9
	DefaultPoints        = 181
)

type Config struct {
	Series    string      `yaml:"series"`
	Policy    string      `yaml:"policy"`
	X         float64     `yaml:"x"`
	Precision float64     `yaml:"precision"`
	MaxIter   int         `yaml:"max_iterations"`
	Order     int         `yaml:"order"`
	Nu        int         `yaml:"nu"`
	Derive    int         `yaml:"derive"`
	Sweep     SweepConfig `yaml:"sweep"`
	DataDir   string      `yaml:"data_dir"`
}

type SweepConfig struct {
	From    float64 `yaml:"from"`
	To      float64 `yaml:"to"`
	Points  int     `yaml:"points"`
	Workers int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Series:    "sin",
		Policy:    "convergence",
		X:         DefaultX,
		Precision: DefaultPrecision,
		MaxIter:   DefaultMaxIterations,
		Order:     DefaultOrder,
		Sweep: SweepConfig{
			From:   DefaultFrom,
			To:     DefaultTo,
			Points: DefaultPoints,
		},
		DataDir: "data",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Evaluator builds the truncation policy the config names. The remainder
// bound is only consulted by the guaranteed policy and may be nil for the
// others.
func (c *Config) Evaluator(bound expand.Bound[float64]) (expand.Evaluator[float64], error) {
	switch c.Policy {
	case "fixed":
		return expand.NewFixedOrder[float64](c.Order), nil
	case "convergence":
		e := expand.NewConvergence[float64](c.Precision)
		if c.MaxIter > 0 {
			e.MaxIterations = c.MaxIter
		}
		return e, nil
	case "guaranteed":
		if bound == nil {
			return nil, fmt.Errorf("series %s carries no remainder bound for the guaranteed policy", c.Series)
		}
		e := expand.NewGuaranteed(c.Precision, bound)
		e.MaxIterations = c.MaxIter
		return e, nil
	default:
		return nil, fmt.Errorf("unknown policy: %s", c.Policy)
	}
}
