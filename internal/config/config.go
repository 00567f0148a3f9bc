package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/roclab/internal/system"
)

const (
	DefaultServerURL = "http://localhost:8000"
	DefaultDataDir   = ".roclab"
	DefaultDomain    = "laplace"
	DefaultCausality = "causal"
	DefaultStability = "stable"
)

type PointConfig struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

type Config struct {
	ServerURL string        `yaml:"server_url"`
	DataDir   string        `yaml:"data_dir"`
	Domain    string        `yaml:"domain"`
	Causality string        `yaml:"causality"`
	Stability string        `yaml:"stability"`
	Poles     []PointConfig `yaml:"poles"`
	Zeros     []PointConfig `yaml:"zeros"`
}

func DefaultConfig() *Config {
	return &Config{
		ServerURL: DefaultServerURL,
		DataDir:   DefaultDataDir,
		Domain:    DefaultDomain,
		Causality: DefaultCausality,
		Stability: DefaultStability,
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

// ToModel builds the system model described by the config.
func (c *Config) ToModel() (system.Model, error) {
	domain, err := system.ParseDomain(c.Domain)
	if err != nil {
		return system.Model{}, err
	}
	causality, err := system.ParseCausality(c.Causality)
	if err != nil {
		return system.Model{}, err
	}
	stability, err := system.ParseStability(c.Stability)
	if err != nil {
		return system.Model{}, err
	}

	m := system.New(domain).
		WithCausality(causality).
		WithDeclaredStability(stability)

	for _, p := range c.Poles {
		m, err = m.AddPole(system.ComplexPoint{Re: p.Re, Im: p.Im})
		if err != nil {
			return system.Model{}, err
		}
	}
	for _, z := range c.Zeros {
		m, err = m.AddZero(system.ComplexPoint{Re: z.Re, Im: z.Im})
		if err != nil {
			return system.Model{}, err
		}
	}
	return m, nil
}

// FromModel captures a model back into config form, e.g. for Save.
func FromModel(m system.Model) *Config {
	cfg := DefaultConfig()
	cfg.Domain = m.Domain.String()
	cfg.Causality = m.Causality.String()
	cfg.Stability = m.DeclaredStability.String()
	for _, p := range m.Poles {
		cfg.Poles = append(cfg.Poles, PointConfig{Re: p.Re, Im: p.Im})
	}
	for _, z := range m.Zeros {
		cfg.Zeros = append(cfg.Zeros, PointConfig{Re: z.Re, Im: z.Im})
	}
	return cfg
}
