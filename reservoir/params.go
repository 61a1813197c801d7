// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reservoir

import (
	"fmt"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/reservoir/delay"
	"github.com/emer/reservoir/neuron"
	"github.com/emer/reservoir/stp"
)

// WtParams are the initial weight magnitude distribution parameters.
// For Uniform, weights are drawn in [Mean - Var, Mean + Var].
type WtParams struct {
	erand.RndParams `view:"inline" yaml:",inline"`
}

// Defaults sets a uniform distribution over [mean - half, mean + half]
func (wp *WtParams) Defaults(mean, half float64) {
	wp.Dist = erand.Uniform
	wp.Mean = mean
	wp.Var = half
	wp.Par = 1
}

func (wp *WtParams) Validate() error {
	if wp.Dist < 0 || wp.Dist >= erand.RndDistsN {
		return fmt.Errorf("Dist = %d is not a valid distribution", wp.Dist)
	}
	if wp.Var < 0 {
		return fmt.Errorf("Var = %v violates gte=0", wp.Var)
	}
	return nil
}

// SpikingSrcParams are the parameters for synapses from spiking neurons,
// which carry short-term plasticity dynamics.
type SpikingSrcParams struct {
	Wt  WtParams   `view:"inline" desc:"weight distribution"`
	Dyn stp.Params `desc:"short-term plasticity dynamics"`
}

// BucketParams are all the parameters for one combination of postsynaptic
// activation type and synapse role.  Analog and spiking sources have
// independently configured weights.
type BucketParams struct {
	AnalogSrc  WtParams         `desc:"weight distribution for analog presynaptic neurons -- these synapses have no dynamics"`
	SpikingSrc SpikingSrcParams `desc:"weights and dynamics for spiking presynaptic neurons"`
	Delay      delay.Params     `desc:"transmission delay"`
	RandSign   bool             `desc:"only for Indifferent: draw the weight sign at random instead of from the presynaptic role -- one extra draw after the magnitude"`
}

// Defaults sets the bucket defaults for given application slot and
// weight distributions
func (bp *BucketParams) Defaults(app stp.Apps, mean, half float64) {
	bp.AnalogSrc.Defaults(mean, half)
	bp.SpikingSrc.Wt.Defaults(mean, half)
	bp.SpikingSrc.Dyn.Defaults(app)
	bp.Delay.Defaults()
	bp.RandSign = false
}

func (bp *BucketParams) Validate(app stp.Apps) error {
	if err := bp.AnalogSrc.Validate(); err != nil {
		return fmt.Errorf("AnalogSrc.%w", err)
	}
	if err := bp.SpikingSrc.Wt.Validate(); err != nil {
		return fmt.Errorf("SpikingSrc.Wt.%w", err)
	}
	if err := bp.SpikingSrc.Dyn.ValidateFor(app); err != nil {
		return err
	}
	if err := bp.Delay.Validate(); err != nil {
		return err
	}
	if bp.RandSign && app != stp.ATIndifferent {
		return fmt.Errorf("RandSign is only valid for Indifferent synapses")
	}
	return nil
}

// SpikingTargetParams are the buckets for synapses onto spiking neurons
type SpikingTargetParams struct {
	Input      BucketParams `desc:"from input neurons"`
	Excitatory BucketParams `desc:"from excitatory hidden neurons"`
	Inhibitory BucketParams `desc:"from inhibitory hidden neurons"`
}

// AnalogTargetParams are the buckets for synapses onto analog neurons
type AnalogTargetParams struct {
	Input       BucketParams `desc:"from input neurons"`
	Indifferent BucketParams `desc:"from any hidden neuron"`
}

// SynParams is the full synapse configuration tree
type SynParams struct {
	SpikingTarget SpikingTargetParams `desc:"synapses onto spiking neurons"`
	AnalogTarget  AnalogTargetParams  `desc:"synapses onto analog neurons"`
}

func (sp *SynParams) Defaults() {
	sp.SpikingTarget.Input.Defaults(stp.STInput, 0.5, 0.5)
	sp.SpikingTarget.Excitatory.Defaults(stp.STExcitatory, 0.5, 0.5)
	sp.SpikingTarget.Excitatory.Delay.Max = 4
	sp.SpikingTarget.Inhibitory.Defaults(stp.STInhibitory, 0.5, 0.5)
	sp.SpikingTarget.Inhibitory.Delay.Max = 2
	sp.AnalogTarget.Input.Defaults(stp.ATInput, 0, 1)
	sp.AnalogTarget.Indifferent.Defaults(stp.ATIndifferent, 0.5, 0.5)
}

// Bucket returns the bucket params for the given application slot, or nil
func (sp *SynParams) Bucket(app stp.Apps) *BucketParams {
	switch app {
	case stp.STInput:
		return &sp.SpikingTarget.Input
	case stp.STExcitatory:
		return &sp.SpikingTarget.Excitatory
	case stp.STInhibitory:
		return &sp.SpikingTarget.Inhibitory
	case stp.ATInput:
		return &sp.AnalogTarget.Input
	case stp.ATIndifferent:
		return &sp.AnalogTarget.Indifferent
	}
	return nil
}

// Validate checks every bucket: weight distributions, the dynamics of the
// selected type (including that they were declared for the slot they are in)
// and delay params.
func (sp *SynParams) Validate() error {
	for app := stp.Apps(0); app < stp.AppsN; app++ {
		if err := sp.Bucket(app).Validate(app); err != nil {
			return fmt.Errorf("reservoir: %v params: %w", app, err)
		}
	}
	return nil
}

// Leaf is the resolved set of parameters for one synapse
type Leaf struct {
	App      stp.Apps      `desc:"application slot"`
	Wt       *WtParams     `desc:"weight distribution"`
	Dyn      *stp.Params   `desc:"dynamics -- nil for analog sources"`
	Delay    *delay.Params `desc:"delay params"`
	RandSign bool          `desc:"draw a random sign"`
}

// Resolve returns the parameters for a synapse with given role between
// neurons of given activation types.  Every legal combination maps to
// exactly one leaf, and illegal ones are an error.
func (sp *SynParams) Resolve(role SynRoles, preAct, postAct neuron.ActTypes) (Leaf, error) {
	app, err := AppFor(role, postAct)
	if err != nil {
		return Leaf{}, err
	}
	bp := sp.Bucket(app)
	lf := Leaf{App: app, Delay: &bp.Delay, RandSign: bp.RandSign}
	switch preAct {
	case neuron.Analog:
		lf.Wt = &bp.AnalogSrc
	case neuron.Spiking:
		lf.Wt = &bp.SpikingSrc.Wt
		lf.Dyn = &bp.SpikingSrc.Dyn
	default:
		return Leaf{}, fmt.Errorf("reservoir: invalid presynaptic activation type: %v", preAct)
	}
	return lf, nil
}
