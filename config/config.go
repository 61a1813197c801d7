// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package config has the simulation-level configuration of a reservoir run:
population sizes, connectivity, neuron parameters and the full synapse
parameter tree, loaded from YAML on top of the defaults.
*/
package config

import (
	"fmt"
	"os"

	"github.com/emer/reservoir/neuron"
	"github.com/emer/reservoir/reservoir"
	"github.com/emer/reservoir/valid"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration of a reservoir simulation
type Config struct {
	Seed           int64           `desc:"random seed for network construction"`
	NCycles        int             `def:"1000" validate:"gte=1" desc:"number of cycles to run"`
	NThreads       int             `def:"1" validate:"gte=1" desc:"number of parallel workers computing synaptic input"`
	SpectralRadius float64         `def:"0.9" validate:"gte=0" desc:"target spectral radius of the recurrent weights -- 0 = no normalization"`
	NInput         int             `def:"4" validate:"gte=1" desc:"number of input neurons"`
	InputType      neuron.ActTypes `desc:"activation type of input neurons"`
	NExcitatory    int             `def:"80" validate:"gte=0" desc:"number of excitatory hidden neurons"`
	NInhibitory    int             `def:"20" validate:"gte=0" desc:"number of inhibitory hidden neurons"`
	SpikingFrac    float64         `def:"0.5" validate:"gte=0,lte=1" desc:"fraction of hidden neurons that are spiking, the rest are analog"`
	InputConnProb  float64         `def:"0.3" validate:"gte=0,lte=1" desc:"probability of a synapse from each input neuron to each hidden neuron"`
	ConnProb       float64         `def:"0.1" validate:"gte=0,lte=1" desc:"probability of a synapse between each pair of distinct hidden neurons"`
	Extent         float64         `def:"10" validate:"gt=0" desc:"side length of the cube within which hidden neurons are placed"`
	InputPeriod    float64         `def:"50" validate:"gt=0" desc:"period in cycles of the sinusoidal input used by the run command"`

	Syn     reservoir.SynParams  `validate:"-" desc:"synapse parameters"`
	Input   neuron.InputParams   `desc:"input neuron parameters"`
	Analog  neuron.AnalogParams  `desc:"analog neuron parameters"`
	Spiking neuron.SpikingParams `desc:"spiking neuron parameters"`
}

// New returns a Config with default values
func New() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

func (cfg *Config) Defaults() {
	cfg.Seed = 1
	cfg.NCycles = 1000
	cfg.NThreads = 1
	cfg.SpectralRadius = 0.9
	cfg.NInput = 4
	cfg.InputType = neuron.Analog
	cfg.NExcitatory = 80
	cfg.NInhibitory = 20
	cfg.SpikingFrac = 0.5
	cfg.InputConnProb = 0.3
	cfg.ConnProb = 0.1
	cfg.Extent = 10
	cfg.InputPeriod = 50
	cfg.Syn.Defaults()
	cfg.Input.Defaults()
	cfg.Analog.Defaults()
	cfg.Spiking.Defaults()
}

// Update recomputes derived values after params have been changed
func (cfg *Config) Update() {
	cfg.Input.Update()
	cfg.Analog.Update()
	cfg.Spiking.Update()
}

// Validate checks all values, returning an error naming the offending
// field and value.
func (cfg *Config) Validate() error {
	if err := valid.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.InputType < 0 || cfg.InputType >= neuron.ActTypesN {
		return fmt.Errorf("config: InputType = %d is not a valid activation type", cfg.InputType)
	}
	if cfg.Analog.Fun < 0 || cfg.Analog.Fun >= neuron.ActFunsN {
		return fmt.Errorf("config: Analog.Fun = %d is not a valid activation function", cfg.Analog.Fun)
	}
	if err := cfg.Syn.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load reads the YAML file at path over the defaults, so the file only
// needs to name the values it changes, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read the config file: %w", err)
	}
	return Parse(data)
}

// Parse is Load from YAML data
func Parse(data []byte) (*Config, error) {
	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}
	cfg.Update()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// YAML returns the config in YAML format
func (cfg *Config) YAML() ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Save writes the config as YAML to path
func (cfg *Config) Save(path string) error {
	data, err := cfg.YAML()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
