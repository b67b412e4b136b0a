package config

var Presets = map[string]map[string]*Config{
	"sin": {
		"quick": {
			Series: "sin", Policy: "convergence", X: 1.0, Precision: 1e-6, MaxIter: 1000,
		},
		"precise": {
			Series: "sin", Policy: "convergence", X: 1.0, Precision: 1e-14, MaxIter: 1000,
		},
		"certified": {
			Series: "sin", Policy: "guaranteed", X: 1.0, Precision: 1e-10, MaxIter: 1000,
		},
	},
	"cos": {
		"quick": {
			Series: "cos", Policy: "convergence", X: 1.0, Precision: 1e-6, MaxIter: 1000,
		},
		"certified": {
			Series: "cos", Policy: "guaranteed", X: 1.0, Precision: 1e-12, MaxIter: 1000,
		},
	},
	"geometric": {
		"inside": {
			Series: "geometric", Policy: "convergence", X: 0.5, Precision: 1e-9, MaxIter: 1000,
		},
		"edge": {
			Series: "geometric", Policy: "convergence", X: 0.99, Precision: 1e-6, MaxIter: 5000,
		},
		"outside": {
			Series: "geometric", Policy: "convergence", X: 2.0, Precision: 1e-3, MaxIter: 1000,
		},
	},
	"exp": {
		"quick": {
			Series: "exp", Policy: "convergence", X: 1.0, Precision: 1e-8, MaxIter: 1000,
		},
		"deep": {
			Series: "exp", Policy: "fixed", X: 3.0, Order: 30,
		},
	},
	"arctan": {
		"slow": {
			Series: "arctan", Policy: "convergence", X: 1.0, Precision: 1e-3, MaxIter: 1000,
		},
	},
	"log1p": {
		"edge": {
			Series: "log1p", Policy: "convergence", X: 0.9, Precision: 1e-9, MaxIter: 1000,
		},
	},
	"besselj0": {
		"first-zero": {
			Series: "besselj0", Policy: "convergence", X: 2.405, Precision: 1e-10, MaxIter: 1000,
		},
	},
}

func GetPreset(series, preset string) *Config {
	seriesPresets, ok := Presets[series]
	if !ok {
		return nil
	}
	cfg, ok := seriesPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(series string) []string {
	seriesPresets, ok := Presets[series]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(seriesPresets))
	for name := range seriesPresets {
		names = append(names, name)
	}
	return names
}
