// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reservoir

import (
	"fmt"
	"math"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/minmax"
	"github.com/emer/reservoir/delay"
	"github.com/emer/reservoir/neuron"
	"github.com/emer/reservoir/stp"
)

// EffStat accumulates running statistics of synaptic efficacy
type EffStat struct {
	minmax.F64 `view:"inline" desc:"range of efficacy values"`
	Sum        float64 `desc:"sum of efficacy values"`
	N          int     `desc:"number of samples"`
}

// Init clears the statistics
func (es *EffStat) Init() {
	es.F64.SetInfinity()
	es.Sum = 0
	es.N = 0
}

// Add records one efficacy sample
func (es *EffStat) Add(eff float64) {
	es.F64.FitValInRange(eff)
	es.Sum += eff
	es.N++
}

// Mean returns the average efficacy, 0 if no samples
func (es *EffStat) Mean() float64 {
	if es.N == 0 {
		return 0
	}
	return es.Sum / float64(es.N)
}

// Synapse holds the state of a directed connection between two neurons.
// Weight, distance and delay are fixed after setup, except for a
// one-time global Rescale before running.
type Synapse struct {
	Pre     neuron.Neuron `view:"-" desc:"sending neuron"`
	Post    neuron.Neuron `view:"-" desc:"receiving neuron"`
	Role    SynRoles      `desc:"functional role"`
	Wt      float64       `desc:"signed synaptic weight"`
	Dist    float64       `desc:"Euclidean distance between pre and post positions"`
	DelayPs delay.Params  `desc:"delay params, copied at construction"`
	Line    delay.Line    `desc:"transmission delay line"`
	Eff     stp.Efficacy  `desc:"short-term plasticity model -- nil for analog sources"`
	EffStat EffStat       `desc:"efficacy statistics"`
}

// NewSynapse returns a synapse with given role between pre and post, with
// weight drawn from the matching params.  Random draws are made in this
// order: weight magnitude, then the sign if the params call for RandSign.
func NewSynapse(pre, post neuron.Neuron, role SynRoles, sp *SynParams, rnd erand.Rand) (*Synapse, error) {
	if want := RoleFor(pre.Role(), post.ActType()); role != want {
		return nil, fmt.Errorf("reservoir: synapse role %v is not valid from %v neuron to %v neuron, expected %v", role, pre.Role(), post.ActType(), want)
	}
	lf, err := sp.Resolve(role, pre.ActType(), post.ActType())
	if err != nil {
		return nil, err
	}
	sy := &Synapse{Pre: pre, Post: post, Role: role}
	sy.Dist = neuron.Dist(pre, post)
	sy.DelayPs = *lf.Delay
	sy.Wt = lf.Wt.Gen(-1, rnd)
	switch {
	case role == Input && post.ActType() == neuron.Analog:
	case role == Input:
		sy.Wt = math.Abs(sy.Wt)
	case lf.RandSign:
		sy.Wt = math.Abs(sy.Wt)
		if rnd.Float64(-1) < 0.5 {
			sy.Wt = -sy.Wt
		}
	case pre.Role() == neuron.Excitatory:
		sy.Wt = math.Abs(sy.Wt)
	default:
		sy.Wt = -math.Abs(sy.Wt)
	}
	if lf.Dyn != nil {
		sy.Eff, err = stp.New(lf.Dyn, pre)
		if err != nil {
			return nil, fmt.Errorf("reservoir: %v synapse: %w", lf.App, err)
		}
	}
	sy.EffStat.Init()
	return sy, nil
}

// SetupDelay sets the delay from the distance of this synapse within the
// range of all synapse distances, or at random, per the delay params.
func (sy *Synapse) SetupDelay(dists minmax.F64, rnd erand.Rand) error {
	return sy.Line.Setup(sy.Dist, dists, &sy.DelayPs, rnd)
}

// Delay returns the transmission delay in cycles
func (sy *Synapse) Delay() int {
	return sy.Line.Delay
}

// Reset discards signals in flight and resets the efficacy dynamics,
// and optionally the efficacy statistics.  Synapses without dynamics
// record an efficacy of 1.
func (sy *Synapse) Reset(resetStats bool) {
	sy.Line.Reset()
	if sy.Eff != nil {
		sy.Eff.Reset()
	}
	if resetStats {
		sy.EffStat.Init()
	}
	if sy.Eff == nil {
		sy.EffStat.Add(1)
	}
}

// Signal returns the signal arriving at the postsynaptic neuron this cycle.
// The presynaptic signal read depends on the postsynaptic activation type.
// Efficacy is only computed when the presynaptic signal is positive.
func (sy *Synapse) Signal(collectStats bool) float64 {
	var src float64
	if sy.Post.ActType() == neuron.Spiking {
		src = sy.Pre.SpikingSignal()
	} else {
		src = sy.Pre.AnalogSignal()
	}
	eff := 1.0
	if sy.Eff != nil && src > 0 {
		eff = sy.Eff.Compute()
		if collectStats {
			sy.EffStat.Add(eff)
		}
	}
	return sy.Line.Push(src * sy.Wt * eff)
}

// Rescale multiplies the weight by given factor.  Signals already in
// flight are not affected, so this should only be called before running.
func (sy *Synapse) Rescale(f float64) {
	sy.Wt *= f
}

///////////////////////////////////////////////////////////////////////
//  Vars

var SynapseVars = []string{"Wt", "Dist", "Delay", "EffMin", "EffMax", "EffMean", "EffN"}

var SynapseVarsMap map[string]int

func init() {
	SynapseVarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		SynapseVarsMap[v] = i
	}
}

func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// SynapseVarByName returns the index of the variable in the Synapse, or error
func SynapseVarByName(varNm string) (int, error) {
	i, ok := SynapseVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("Synapse VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in SynapseVars list)
func (sy *Synapse) VarByIndex(idx int) float64 {
	switch idx {
	case 0:
		return sy.Wt
	case 1:
		return sy.Dist
	case 2:
		return float64(sy.Line.Delay)
	case 3:
		return sy.EffStat.Min
	case 4:
		return sy.EffStat.Max
	case 5:
		return sy.EffStat.Mean()
	case 6:
		return float64(sy.EffStat.N)
	}
	return math.NaN()
}

// VarByName returns variable by name, or error
func (sy *Synapse) VarByName(varNm string) (float64, error) {
	i, err := SynapseVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return sy.VarByIndex(i), nil
}
