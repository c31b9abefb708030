// Package config loads deck options from a YAML file, applying defaults and
// validating values before they reach deck construction.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"enginedeck/pkg/models"
)

// Config is the top-level YAML document.
type Config struct {
	Deck DeckConfig `yaml:"deck"`
}

// DeckConfig mirrors models.DeckOptions in file form. Optional scaling
// fields are pointers so an omitted value is distinguishable from zero.
type DeckConfig struct {
	Name     string `yaml:"name"`
	DataFile string `yaml:"data_file"`

	PowerType          string `yaml:"power_type"`
	ShaftPowerVariable string `yaml:"shaft_power_variable"`

	ScalePerformance     *bool `yaml:"scale_performance"`
	IgnoreNegativeThrust bool  `yaml:"ignore_negative_thrust"`
	GeopotentialAltitude bool  `yaml:"geopotential_altitude"`
	GenerateFlightIdle   bool  `yaml:"generate_flight_idle"`

	IdleThrustFraction *float64 `yaml:"idle_thrust_fraction"`
	IdleMinFraction    *float64 `yaml:"idle_min_fraction"`
	IdleMaxFraction    *float64 `yaml:"idle_max_fraction"`

	ScaleFactor        *float64 `yaml:"scale_factor"`
	ScaledSLSThrust    *float64 `yaml:"scaled_sls_thrust"`
	ReferenceSLSThrust *float64 `yaml:"reference_sls_thrust"`

	GlobalThrottle       *bool `yaml:"global_throttle"`
	GlobalHybridThrottle *bool `yaml:"global_hybrid_throttle"`

	Tolerances TolerancesConfig `yaml:"tolerances"`

	Quiet bool `yaml:"quiet"`
}

// TolerancesConfig sets the proximity tolerances for binning and checks.
type TolerancesConfig struct {
	Mach     *float64 `yaml:"mach"`
	Altitude *float64 `yaml:"altitude"` // ft
	Thrust   *float64 `yaml:"thrust"`   // lbf
}

// Load reads and validates a deck configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	d := &c.Deck
	switch d.PowerType {
	case "", "turbofan", "turboshaft":
	default:
		return fmt.Errorf("invalid power_type %q (expected turbofan or turboshaft)", d.PowerType)
	}
	switch d.ShaftPowerVariable {
	case "", "shaft_power", "shaft_power_corrected":
	default:
		return fmt.Errorf("invalid shaft_power_variable %q", d.ShaftPowerVariable)
	}
	for name, f := range map[string]*float64{
		"idle_thrust_fraction": d.IdleThrustFraction,
		"idle_min_fraction":    d.IdleMinFraction,
		"idle_max_fraction":    d.IdleMaxFraction,
	} {
		if f != nil && (*f < 0 || *f > 1) {
			return fmt.Errorf("%s must be within [0, 1], got %g", name, *f)
		}
	}
	for name, f := range map[string]*float64{
		"tolerances.mach":     c.Deck.Tolerances.Mach,
		"tolerances.altitude": c.Deck.Tolerances.Altitude,
		"tolerances.thrust":   c.Deck.Tolerances.Thrust,
	} {
		if f != nil && *f < 0 {
			return fmt.Errorf("%s must not be negative, got %g", name, *f)
		}
	}
	if d.ScaleFactor != nil && *d.ScaleFactor <= 0 {
		return fmt.Errorf("scale_factor must be positive, got %g", *d.ScaleFactor)
	}
	return nil
}

// DeckOptions converts the file form into deck options, filling defaults for
// anything omitted.
func (c *Config) DeckOptions() models.DeckOptions {
	d := c.Deck
	opts := models.DefaultDeckOptions()

	if d.Name != "" {
		opts.Name = d.Name
	}
	if d.PowerType == "turboshaft" {
		opts.PowerType = models.Turboshaft
	}
	if d.ShaftPowerVariable == "shaft_power" {
		opts.ShaftPowerVariable = models.ShaftPower
	}
	if d.ScalePerformance != nil {
		opts.ScalePerformance = *d.ScalePerformance
	}
	opts.IgnoreNegativeThrust = d.IgnoreNegativeThrust
	opts.GeopotentialAltitude = d.GeopotentialAltitude
	opts.GenerateFlightIdle = d.GenerateFlightIdle
	if d.IdleThrustFraction != nil {
		opts.IdleThrustFraction = *d.IdleThrustFraction
	}
	if d.IdleMinFraction != nil {
		opts.IdleMinFraction = *d.IdleMinFraction
	}
	if d.IdleMaxFraction != nil {
		opts.IdleMaxFraction = *d.IdleMaxFraction
	}
	opts.ScaleFactor = d.ScaleFactor
	opts.ScaledSLSThrust = d.ScaledSLSThrust
	opts.ReferenceSLSThrust = d.ReferenceSLSThrust
	if d.GlobalThrottle != nil {
		opts.GlobalThrottle = *d.GlobalThrottle
	}
	if d.GlobalHybridThrottle != nil {
		opts.GlobalHybridThrottle = *d.GlobalHybridThrottle
	}
	if d.Tolerances.Mach != nil {
		opts.MachTol = *d.Tolerances.Mach
	}
	if d.Tolerances.Altitude != nil {
		opts.AltTol = *d.Tolerances.Altitude
	}
	if d.Tolerances.Thrust != nil {
		opts.ThrustTol = *d.Tolerances.Thrust
	}
	opts.Quiet = d.Quiet
	return opts
}
