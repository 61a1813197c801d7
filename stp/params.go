// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"fmt"

	"github.com/emer/reservoir/valid"
	"github.com/goki/ki/kit"
)

//////////////////////////////////////////////////////////////////////////////////////
//  DynTypes

// DynTypes are the different short-term efficacy models a synapse can carry
type DynTypes int32

//go:generate stringer -type=DynTypes

var KiT_DynTypes = kit.Enums.AddEnum(DynTypesN, kit.NotBitFlag, nil)

func (ev DynTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *DynTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }
func (ev DynTypes) MarshalText() ([]byte, error)  { return []byte(ev.String()), nil }
func (ev *DynTypes) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

// The efficacy model types
const (
	// ConstantDyn always returns the same efficacy
	ConstantDyn DynTypes = iota

	// LinearDyn decays efficacy by a fixed amount per spike and recovers it
	// linearly with the time elapsed since the previous spike
	LinearDyn

	// NonlinearDyn is Tsodyks-Markram style facilitation and depression
	NonlinearDyn

	DynTypesN
)

//////////////////////////////////////////////////////////////////////////////////////
//  Apps

// Apps enumerates the contexts in which short-term dynamics are parameterized:
// postsynaptic activation type (ST = spiking target, AT = analog target)
// crossed with the synapse role bucket.
type Apps int32

//go:generate stringer -type=Apps

var KiT_Apps = kit.Enums.AddEnum(AppsN, kit.NotBitFlag, nil)

func (ev Apps) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Apps) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }
func (ev Apps) MarshalText() ([]byte, error)  { return []byte(ev.String()), nil }
func (ev *Apps) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

// The dynamics applications
const (
	// STInput is an input neuron feeding a spiking neuron
	STInput Apps = iota

	// STExcitatory is an excitatory hidden neuron feeding a spiking neuron
	STExcitatory

	// STInhibitory is an inhibitory hidden neuron feeding a spiking neuron
	STInhibitory

	// ATInput is an input neuron feeding an analog neuron
	ATInput

	// ATIndifferent is any hidden neuron feeding an analog neuron
	ATIndifferent

	AppsN
)

//////////////////////////////////////////////////////////////////////////////////////
//  Variant params

// ConstantParams parameterize the Constant efficacy model
type ConstantParams struct {
	Efficacy float64 `def:"1" min:"0" max:"1" validate:"gte=0,lte=1" desc:"fixed efficacy returned on every spike"`
}

func (cp *ConstantParams) Defaults() {
	cp.Efficacy = 1
}

// LinearParams parameterize the Linear efficacy model
type LinearParams struct {
	Alpha        float64 `def:"0.1" min:"0" max:"1" validate:"gte=0,lte=1" desc:"overall rate of change of efficacy per spike and per cycle of recovery"`
	Beta         float64 `def:"0.5" min:"0" max:"1" validate:"gte=0,lte=1" desc:"balance between recovery (Beta) and per-spike depletion (1-Beta)"`
	InitEfficacy float64 `def:"1" min:"0" max:"1" validate:"gte=0,lte=1" desc:"efficacy after Reset"`
}

func (lp *LinearParams) Defaults() {
	lp.Alpha = 0.1
	lp.Beta = 0.5
	lp.InitEfficacy = 1
}

// NonlinearParams parameterize the Nonlinear facilitation / depression model.
// Time constants are in the same units as the presynaptic spike leak (cycles = msec).
type NonlinearParams struct {
	RestingEfficacy float64 `def:"0.5" min:"0" max:"1" validate:"gte=0,lte=1" desc:"baseline release probability (U) that facilitation relaxes back to"`
	TauDepression   float64 `def:"1100" min:"0" validate:"gt=0" desc:"recovery time constant from depression -- must be > 0"`
	TauFacilitation float64 `def:"50" min:"0" validate:"gt=0" desc:"decay time constant of facilitation -- must be > 0"`
}

func (np *NonlinearParams) Defaults() {
	np.RestingEfficacy = 0.5
	np.TauDepression = 1100
	np.TauFacilitation = 50
}

//////////////////////////////////////////////////////////////////////////////////////
//  Params

// Params is the short-term dynamics configuration for one application slot.
// Type selects which of the variant params is used; the others are kept so that
// switching Type in a params file only requires naming the new type.
type Params struct {
	App       Apps            `desc:"application slot these params are declared for -- must match the slot they are installed in"`
	Type      DynTypes        `desc:"which efficacy model to build"`
	Constant  ConstantParams  `view:"inline" viewif:"Type=ConstantDyn" desc:"params for ConstantDyn"`
	Linear    LinearParams    `view:"inline" viewif:"Type=LinearDyn" desc:"params for LinearDyn"`
	Nonlinear NonlinearParams `view:"inline" viewif:"Type=NonlinearDyn" desc:"params for NonlinearDyn"`
}

// Defaults sets the default parameterization for the given application.
func (dp *Params) Defaults(app Apps) {
	dp.App = app
	dp.Constant.Defaults()
	dp.Linear.Defaults()
	dp.Nonlinear.Defaults()
	switch app {
	case STInput:
		dp.Type = ConstantDyn
		dp.Linear.Alpha = 0.05
		dp.Linear.Beta = 0.5
	case STExcitatory:
		dp.Type = NonlinearDyn
		dp.Linear.Alpha = 0.1
		dp.Linear.Beta = 0.3
		dp.Nonlinear.RestingEfficacy = 0.5
		dp.Nonlinear.TauDepression = 1100
		dp.Nonlinear.TauFacilitation = 50
	case STInhibitory:
		dp.Type = NonlinearDyn
		dp.Linear.Alpha = 0.05
		dp.Linear.Beta = 0.7
		dp.Nonlinear.RestingEfficacy = 0.25
		dp.Nonlinear.TauDepression = 700
		dp.Nonlinear.TauFacilitation = 20
	case ATInput:
		dp.Type = ConstantDyn
		dp.Nonlinear.RestingEfficacy = 0.05
		dp.Nonlinear.TauDepression = 125
		dp.Nonlinear.TauFacilitation = 1200
	case ATIndifferent:
		dp.Type = LinearDyn
		dp.Linear.Alpha = 0.1
		dp.Linear.Beta = 0.5
		dp.Nonlinear.RestingEfficacy = 0.32
		dp.Nonlinear.TauDepression = 144
		dp.Nonlinear.TauFacilitation = 60
	}
}

// Unset returns true if no variant params have been set, as in a zero
// Params that Defaults was never called on.  Defaults always sets
// non-zero Nonlinear time constants.
func (dp *Params) Unset() bool {
	return dp.Constant == ConstantParams{} && dp.Linear == LinearParams{} && dp.Nonlinear == NonlinearParams{}
}

// Validate checks the selected variant's values.  Values out of range are an
// error naming the field and value -- they are never clamped.
func (dp *Params) Validate() error {
	if dp.App < 0 || dp.App >= AppsN {
		return fmt.Errorf("stp: App = %d is not a valid application", dp.App)
	}
	var err error
	switch dp.Type {
	case ConstantDyn:
		err = valid.Struct(&dp.Constant)
	case LinearDyn:
		err = valid.Struct(&dp.Linear)
	case NonlinearDyn:
		err = valid.Struct(&dp.Nonlinear)
	default:
		return fmt.Errorf("stp: %v: Type = %d is not a valid dynamics type", dp.App, dp.Type)
	}
	if err != nil {
		return fmt.Errorf("stp: %v: %w", dp.App, err)
	}
	return nil
}

// ValidateFor validates the params and also checks they were declared for
// the given application slot.
func (dp *Params) ValidateFor(app Apps) error {
	if dp.App != app {
		return fmt.Errorf("stp: dynamics declared for %v installed in %v slot", dp.App, app)
	}
	return dp.Validate()
}
