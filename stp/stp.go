// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stp provides short-term plasticity (STP) efficacy models for reservoir synapses.

An efficacy model produces a multiplier in [0,1] on the weighted signal a synapse
delivers, as a function of the presynaptic neuron's spike timing.  Three models
are available: Constant, Linear (bounded linear depletion and recovery keyed to
the inter-spike interval) and Nonlinear (Tsodyks-Markram facilitation and
depression).

Compute is only called on cycles where the presynaptic neuron is firing --
the caller enforces this, the models do not check it.
*/
package stp

import (
	"fmt"
	"math"
)

// SpikeSource is the presynaptic spike-timing state read by the efficacy models.
// Values are read live at each Compute call.
type SpikeSource interface {
	// SpikeLeak is the time elapsed since the previous spike
	SpikeLeak() float64

	// AfterFirstSpike is true once the neuron has fired at least once before
	AfterFirstSpike() bool
}

// Efficacy is the common interface of the efficacy models
type Efficacy interface {
	// Reset restores the initial internal state
	Reset()

	// Compute returns the efficacy for the current (firing) cycle
	Compute() float64
}

// New returns the efficacy model selected by params Type, reading spike timing
// from src.  The variant params are copied, so later changes to dp do not
// affect the returned model.  Params on which Defaults was never called
// give a Constant efficacy of 1.
func New(dp *Params, src SpikeSource) (Efficacy, error) {
	if err := dp.Validate(); err != nil {
		return nil, err
	}
	switch dp.Type {
	case ConstantDyn:
		ef := &Constant{Params: dp.Constant}
		if dp.Unset() {
			ef.Params.Defaults()
		}
		return ef, nil
	case LinearDyn:
		ef := &Linear{Params: dp.Linear, Src: src}
		ef.Reset()
		return ef, nil
	case NonlinearDyn:
		ef := &Nonlinear{Params: dp.Nonlinear, Src: src}
		ef.Reset()
		return ef, nil
	}
	return nil, fmt.Errorf("stp: unknown dynamics type: %v", dp.Type)
}

//////////////////////////////////////////////////////////////////////////////////////
//  Constant

// Constant returns a fixed efficacy
type Constant struct {
	Params ConstantParams
}

func (ef *Constant) Reset() {}

func (ef *Constant) Compute() float64 {
	return ef.Params.Efficacy
}

//////////////////////////////////////////////////////////////////////////////////////
//  Linear

// Linear depletes efficacy by Alpha*(1-Beta) on every spike and recovers it
// by Alpha*Beta for each cycle of silence before the spike.
type Linear struct {
	Params LinearParams
	Src    SpikeSource `view:"-"`

	// current efficacy
	Eff float64
}

func (ef *Linear) Reset() {
	ef.Eff = ef.Params.InitEfficacy
}

func (ef *Linear) Compute() float64 {
	lp := &ef.Params
	ef.Eff -= (ef.Src.SpikeLeak() - 1) * lp.Alpha * (0 - lp.Beta)
	ef.Eff = clamp01(ef.Eff)
	ef.Eff -= lp.Alpha * (1 - lp.Beta)
	ef.Eff = clamp01(ef.Eff)
	return ef.Eff
}

//////////////////////////////////////////////////////////////////////////////////////
//  Nonlinear

// Nonlinear is Tsodyks-Markram style facilitation and depression.
// Facilitation Fac decays toward RestingEfficacy between spikes and
// Depression Dep recovers toward 1.  The efficacy is Fac * Dep.
type Nonlinear struct {
	Params NonlinearParams
	Src    SpikeSource `view:"-"`

	// facilitation (utilization) state
	Fac float64

	// depression (available resources) state
	Dep float64
}

func (ef *Nonlinear) Reset() {
	ef.Fac = ef.Params.RestingEfficacy
	ef.Dep = 1
}

// Compute updates the state from the interval since the previous spike.
// On the first spike ever there is no previous interval, and the resting
// state is returned unchanged.
func (ef *Nonlinear) Compute() float64 {
	if ef.Src.AfterFirstSpike() {
		np := &ef.Params
		leak := ef.Src.SpikeLeak()
		tmp := ef.Fac * math.Exp(-leak/np.TauFacilitation)
		ef.Fac = tmp + np.RestingEfficacy*(1-tmp)
		tmp = math.Exp(-leak / np.TauDepression)
		ef.Dep = ef.Dep*(1-ef.Fac)*tmp + (1 - tmp)
	}
	return ef.Fac * ef.Dep
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
