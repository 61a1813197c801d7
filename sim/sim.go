// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sim builds a random reservoir from a config.Config and runs it on a
sinusoidal input, collecting activity and efficacy statistics.  Connectivity
is a plain Bernoulli draw per neuron pair, for demonstration and benchmarking.
*/
package sim

import (
	"log"
	"math"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/minmax"
	"github.com/emer/reservoir/config"
	"github.com/emer/reservoir/neuron"
	"github.com/emer/reservoir/reservoir"
	"github.com/goki/mat32"
)

// Stats are the statistics of a run
type Stats struct {
	Act       minmax.AvgMax64   `desc:"average and max of the absolute analog signal over hidden neurons, on the last cycle"`
	ActAvg    float64           `desc:"running average over cycles of Act.Avg"`
	Spikes    int               `desc:"total number of spikes by hidden neurons"`
	SpikeRate float64           `desc:"spikes per hidden neuron per cycle"`
	Eff       reservoir.EffStat `desc:"efficacy statistics pooled over all synapses"`
}

// Sim has the network and state of one reservoir simulation
type Sim struct {
	Config *config.Config      `desc:"configuration"`
	Net    *reservoir.Network  `desc:"the network"`
	Inputs []*neuron.InputUnit `desc:"the input neurons"`
	Hidden []neuron.Unit       `desc:"the hidden neurons"`
	Rnd    *erand.SysRand      `view:"-" desc:"random source for construction"`
	Cyc    int                 `inactive:"+" desc:"current cycle"`
	Stats  Stats               `desc:"run statistics"`
	SpFac  float64             `inactive:"+" desc:"factor applied to recurrent weights to reach the target spectral radius, 1 if not normalized"`
}

// New returns a new Sim for given config -- call ConfigNet to build it
func New(cfg *config.Config) *Sim {
	return &Sim{Config: cfg, SpFac: 1}
}

// ConfigNet builds the network: neurons, synapses, delays and weight normalization.
// All random draws come from one stream seeded by Config.Seed, in this order:
// hidden positions and types, input synapses, recurrent synapses, delays.
func (ss *Sim) ConfigNet() error {
	cfg := ss.Config
	ss.Rnd = erand.NewSysRand(cfg.Seed)
	ss.Inputs = nil
	ss.Hidden = nil
	var ns []neuron.Neuron
	for i := 0; i < cfg.NInput; i++ {
		pos := mat32.Vec3{X: -1, Y: float32(cfg.Extent * (float64(i) + 0.5) / float64(cfg.NInput)), Z: float32(cfg.Extent / 2)}
		iu := neuron.NewInputUnit(cfg.InputType, pos, &cfg.Input)
		ss.Inputs = append(ss.Inputs, iu)
		ns = append(ns, iu)
	}
	nhid := cfg.NExcitatory + cfg.NInhibitory
	for i := 0; i < nhid; i++ {
		role := neuron.Excitatory
		if i >= cfg.NExcitatory {
			role = neuron.Inhibitory
		}
		pos := mat32.Vec3{X: ss.rndCoord(), Y: ss.rndCoord(), Z: ss.rndCoord()}
		var u neuron.Unit
		if ss.Rnd.Float64(-1) < cfg.SpikingFrac {
			u = neuron.NewSpikingUnit(role, pos, &cfg.Spiking)
		} else {
			u = neuron.NewAnalogUnit(role, pos, &cfg.Analog)
		}
		ss.Hidden = append(ss.Hidden, u)
		ns = append(ns, u)
	}

	net := reservoir.NewNetwork("Reservoir", ns)
	net.NThreads = cfg.NThreads
	nin := cfg.NInput
	for pi := 0; pi < nin; pi++ {
		for ri := nin; ri < len(ns); ri++ {
			if ss.Rnd.Float64(-1) >= cfg.InputConnProb {
				continue
			}
			if _, err := net.Connect(pi, ri, &cfg.Syn, ss.Rnd); err != nil {
				return err
			}
		}
	}
	for ri := nin; ri < len(ns); ri++ {
		for pi := nin; pi < len(ns); pi++ {
			if pi == ri || ss.Rnd.Float64(-1) >= cfg.ConnProb {
				continue
			}
			if _, err := net.Connect(pi, ri, &cfg.Syn, ss.Rnd); err != nil {
				return err
			}
		}
	}
	if err := net.SetupDelays(ss.Rnd); err != nil {
		return err
	}
	ss.Net = net
	ss.SpFac = 1
	if cfg.SpectralRadius > 0 {
		rad, err := net.SpectralRadius()
		if err != nil {
			return err
		}
		if rad == 0 {
			log.Printf("sim: no recurrent weights, spectral radius not normalized\n")
		} else {
			ss.SpFac, err = net.NormalizeSpectralRadius(cfg.SpectralRadius)
			if err != nil {
				return err
			}
		}
	}
	ss.Init()
	return nil
}

func (ss *Sim) rndCoord() float32 {
	return float32(ss.Rnd.Float64(-1) * ss.Config.Extent)
}

// Init resets the network state and statistics for a new run
func (ss *Sim) Init() {
	ss.Cyc = 0
	ss.Net.Reset(true)
	ss.Stats = Stats{}
	ss.Stats.Act.Init()
	ss.Stats.Eff.Init()
}

// ApplyInputs sets the external input of each input neuron for the current
// cycle: a sinusoid in [0,1] with phase shifted across neurons
func (ss *Sim) ApplyInputs() {
	cfg := ss.Config
	for i, iu := range ss.Inputs {
		ph := float64(ss.Cyc)/cfg.InputPeriod + float64(i)/float64(len(ss.Inputs))
		iu.SetExt(0.5 + 0.5*math.Sin(2*math.Pi*ph))
	}
}

// Cycle runs one cycle and updates statistics
func (ss *Sim) Cycle() error {
	ss.ApplyInputs()
	if err := ss.Net.Step(true); err != nil {
		return err
	}
	ss.Cyc++
	st := &ss.Stats
	st.Act.Init()
	for i, u := range ss.Hidden {
		st.Act.UpdateVal(math.Abs(u.AnalogSignal()), i)
		st.Spikes += int(u.SpikingSignal())
	}
	st.Act.CalcAvg()
	st.ActAvg += (st.Act.Avg - st.ActAvg) / float64(ss.Cyc)
	if nh := len(ss.Hidden); nh > 0 {
		st.SpikeRate = float64(st.Spikes) / float64(nh*ss.Cyc)
	}
	return nil
}

// Run runs Config.NCycles cycles from the current state
func (ss *Sim) Run() error {
	for i := 0; i < ss.Config.NCycles; i++ {
		if err := ss.Cycle(); err != nil {
			return err
		}
	}
	ss.Stats.Eff = ss.Net.EffStats()
	return nil
}
