package config

// Presets are canonical pole/zero layouts per domain, keyed domain → name.
var Presets = map[string]map[string]*Config{
	"laplace": {
		"lowpass": {
			Domain: "laplace", Causality: "causal", Stability: "stable",
			Poles: []PointConfig{{Re: -1}},
		},
		"integrator": {
			Domain: "laplace", Causality: "causal", Stability: "unstable",
			Poles: []PointConfig{{Re: 0}},
		},
		"oscillator": {
			Domain: "laplace", Causality: "causal", Stability: "unstable",
			Poles: []PointConfig{{Re: 0, Im: 1}, {Re: 0, Im: -1}},
		},
		"damped_oscillator": {
			Domain: "laplace", Causality: "causal", Stability: "stable",
			Poles: []PointConfig{{Re: -0.5, Im: 2}, {Re: -0.5, Im: -2}},
		},
		"unstable": {
			Domain: "laplace", Causality: "causal", Stability: "unstable",
			Poles: []PointConfig{{Re: 1}},
		},
		"lead": {
			Domain: "laplace", Causality: "causal", Stability: "stable",
			Poles: []PointConfig{{Re: -10}},
			Zeros: []PointConfig{{Re: -1}},
		},
	},
	"z": {
		"decay": {
			Domain: "z", Causality: "causal", Stability: "stable",
			Poles: []PointConfig{{Re: 0.5}},
		},
		"accumulator": {
			Domain: "z", Causality: "causal", Stability: "unstable",
			Poles: []PointConfig{{Re: 1}},
		},
		"diverging": {
			Domain: "z", Causality: "causal", Stability: "unstable",
			Poles: []PointConfig{{Re: 1.5}},
		},
		"anticausal_stable": {
			Domain: "z", Causality: "anticausal", Stability: "stable",
			Poles: []PointConfig{{Re: 1.5}, {Re: 2.0}},
		},
		"resonator": {
			Domain: "z", Causality: "causal", Stability: "stable",
			Poles: []PointConfig{{Re: 0.6, Im: 0.6}, {Re: 0.6, Im: -0.6}},
			Zeros: []PointConfig{{Re: 1}, {Re: -1}},
		},
	},
}

// GetPreset returns a copy of the named preset, so callers can overlay flag
// values without touching the shared table.
func GetPreset(domain, name string) *Config {
	domainPresets, ok := Presets[domain]
	if !ok {
		return nil
	}
	cfg, ok := domainPresets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Poles = append([]PointConfig(nil), cfg.Poles...)
	c.Zeros = append([]PointConfig(nil), cfg.Zeros...)
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	return &c
}

func ListPresets(domain string) []string {
	domainPresets, ok := Presets[domain]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(domainPresets))
	for name := range domainPresets {
		names = append(names, name)
	}
	return names
}
