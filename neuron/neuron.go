// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuron defines the neuron capability surface that reservoir synapses read,
and provides simple reference unit models implementing it: InputUnit (externally
driven), AnalogUnit (leaky integrated tanh or NoisyXX1 activation) and SpikingUnit
(leaky integrate-and-fire).

Synapses only ever read a neuron's latched outputs for the current cycle:
its analog and spiking signals and its spike timing state.
*/
package neuron

import (
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// ActTypes are the neuron activation types
type ActTypes int32

//go:generate stringer -type=ActTypes

var KiT_ActTypes = kit.Enums.AddEnum(ActTypesN, kit.NotBitFlag, nil)

func (ev ActTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ActTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }
func (ev ActTypes) MarshalText() ([]byte, error)  { return []byte(ev.String()), nil }
func (ev *ActTypes) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

// The activation types
const (
	// Analog neurons produce a continuous output
	Analog ActTypes = iota

	// Spiking neurons produce discrete 0/1 spikes
	Spiking

	ActTypesN
)

// Roles are the functional roles of neurons in the reservoir
type Roles int32

//go:generate stringer -type=Roles

var KiT_Roles = kit.Enums.AddEnum(RolesN, kit.NotBitFlag, nil)

func (ev Roles) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Roles) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }
func (ev Roles) MarshalText() ([]byte, error)  { return []byte(ev.String()), nil }
func (ev *Roles) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

// The neuron roles
const (
	// Input neurons carry external input into the reservoir
	Input Roles = iota

	// Excitatory hidden neurons
	Excitatory

	// Inhibitory hidden neurons
	Inhibitory

	RolesN
)

// Neuron is the read-only state of a neuron consumed by synapses.
// All values are latched once per cycle, before synapses run.
type Neuron interface {
	// ActType is the activation type of the neuron
	ActType() ActTypes

	// Role is the functional role of the neuron
	Role() Roles

	// Pos is the spatial position, used for synapse distances
	Pos() mat32.Vec3

	// AnalogSignal is the continuous output for the current cycle
	AnalogSignal() float64

	// SpikingSignal is 1 if the neuron fired on the current cycle, else 0
	SpikingSignal() float64

	// SpikeLeak is the number of cycles since the previous spike
	SpikeLeak() float64

	// AfterFirstSpike is true if the neuron had fired before its current or last spike
	AfterFirstSpike() bool
}

// Unit is a Neuron that the simulation updates each cycle
type Unit interface {
	Neuron

	// Init resets the dynamic state to initial values
	Init()

	// Update computes the new outputs from the summed synaptic input
	Update(net float64)
}

// SpikeTrace maintains the spike-timing state exposed to synapses.
type SpikeTrace struct {
	Spike      float64 `desc:"1 if fired this cycle, else 0"`
	Leak       float64 `desc:"cycles since the previous spike -- on a spike cycle this is the inter-spike interval"`
	AfterFirst bool    `desc:"had fired at least once before the most recent spike"`
	Fired      bool    `desc:"has fired at least once since Init"`
}

// Init resets the trace to the never-fired state
func (st *SpikeTrace) Init() {
	st.Spike = 0
	st.Leak = 0
	st.AfterFirst = false
	st.Fired = false
}

// Step advances the trace by one cycle.  The interval count restarts on
// the cycle after a spike, so Leak still holds the interval during the spike cycle.
func (st *SpikeTrace) Step(fired bool) {
	if st.Spike > 0 {
		st.Leak = 0
	}
	st.Leak++
	if !fired {
		st.Spike = 0
		return
	}
	st.Spike = 1
	st.AfterFirst = st.Fired
	st.Fired = true
}

// Dist returns the Euclidean distance between the positions of two neurons
func Dist(a, b Neuron) float64 {
	return float64(a.Pos().DistTo(b.Pos()))
}
