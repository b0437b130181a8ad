package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/physics"
	"github.com/san-kum/pendulum/internal/sim"
)

const (
	DefaultGravity = 9.81
	DefaultLength  = 5.0
	DefaultMass    = 70.0
	DefaultDamping = 0.1
	DefaultDrag    = 0.6
	DefaultDensity = 1.225
	DefaultArea    = 0.01
	DefaultAngle   = -80.0
	DefaultOmega   = 0.0
)

type Config struct {
	Form       FormConfig       `yaml:"form"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// FormConfig holds the values the parameter form is pre-filled with.
// AngleDeg is in degrees, like the form field.
type FormConfig struct {
	Gravity  float64 `yaml:"gravity"`
	Length   float64 `yaml:"length"`
	Mass     float64 `yaml:"mass"`
	Damping  float64 `yaml:"damping"`
	Drag     float64 `yaml:"drag_coefficient"`
	Density  float64 `yaml:"air_density"`
	Area     float64 `yaml:"frontal_area"`
	AngleDeg float64 `yaml:"initial_angle_deg"`
	Omega    float64 `yaml:"initial_omega"`
}

type SimulationConfig struct {
	Horizon float64 `yaml:"horizon"`
	Step    float64 `yaml:"step"`
	RelTol  float64 `yaml:"rel_tol"`
	AbsTol  float64 `yaml:"abs_tol"`
}

func DefaultConfig() *Config {
	return &Config{
		Form: FormConfig{
			Gravity:  DefaultGravity,
			Length:   DefaultLength,
			Mass:     DefaultMass,
			Damping:  DefaultDamping,
			Drag:     DefaultDrag,
			Density:  DefaultDensity,
			Area:     DefaultArea,
			AngleDeg: DefaultAngle,
			Omega:    DefaultOmega,
		},
		Simulation: SimulationConfig{
			Horizon: sim.DefaultHorizon,
			Step:    sim.DefaultStep,
			RelTol:  integrators.DefaultRelTol,
			AbsTol:  integrators.DefaultAbsTol,
		},
	}
}

// Load reads a YAML file over the defaults; keys missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.SimConfig().Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Horizon: c.Simulation.Horizon,
		Step:    c.Simulation.Step,
		RelTol:  c.Simulation.RelTol,
		AbsTol:  c.Simulation.AbsTol,
	}
}

// Params converts the form defaults into simulation parameters.
func (f FormConfig) Params() physics.Params {
	return physics.Params{
		G:      f.Gravity,
		L:      f.Length,
		M:      f.Mass,
		B:      f.Damping,
		Cd:     f.Drag,
		Rho:    f.Density,
		A:      f.Area,
		Theta0: f.AngleDeg * math.Pi / 180,
		Omega0: f.Omega,
	}
}
