// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"math"

	"github.com/emer/reservoir/nxx1"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

///////////////////////////////////////////////////////////////////////
//  InputUnit

// InputParams control conversion of external input into spikes
type InputParams struct {
	SpikeThr float64 `def:"1" validate:"gt=0" desc:"accumulated external input required to emit a spike -- an input held at x spikes about every SpikeThr / x cycles"`
}

func (ip *InputParams) Update() {
}

func (ip *InputParams) Defaults() {
	ip.SpikeThr = 1
	ip.Update()
}

// InputUnit is an externally driven neuron.  The analog signal is the
// external input itself, and spikes are emitted by integrating it to threshold.
type InputUnit struct {
	Type     ActTypes     `desc:"activation type seen by postsynaptic synapses"`
	Position mat32.Vec3   `desc:"spatial position"`
	Params   *InputParams `desc:"spike conversion parameters -- shared across units"`
	Ext      float64      `desc:"external input to present on the next Update"`
	Act      float64      `desc:"current analog output"`
	Acc      float64      `desc:"accumulated input toward the next spike"`
	Trace    SpikeTrace   `desc:"spike timing state"`
}

// NewInputUnit returns an InputUnit using given params
func NewInputUnit(typ ActTypes, pos mat32.Vec3, ip *InputParams) *InputUnit {
	return &InputUnit{Type: typ, Position: pos, Params: ip}
}

func (iu *InputUnit) ActType() ActTypes       { return iu.Type }
func (iu *InputUnit) Role() Roles             { return Input }
func (iu *InputUnit) Pos() mat32.Vec3         { return iu.Position }
func (iu *InputUnit) AnalogSignal() float64   { return iu.Act }
func (iu *InputUnit) SpikingSignal() float64  { return iu.Trace.Spike }
func (iu *InputUnit) SpikeLeak() float64      { return iu.Trace.Leak }
func (iu *InputUnit) AfterFirstSpike() bool   { return iu.Trace.AfterFirst }
func (iu *InputUnit) SetExt(ext float64)      { iu.Ext = ext }

func (iu *InputUnit) Init() {
	iu.Ext = 0
	iu.Act = 0
	iu.Acc = 0
	iu.Trace.Init()
}

// Update presents the current external input -- net is ignored
func (iu *InputUnit) Update(net float64) {
	iu.Act = iu.Ext
	if iu.Ext > 0 {
		iu.Acc += iu.Ext
	}
	fired := iu.Acc >= iu.Params.SpikeThr
	if fired {
		iu.Acc -= iu.Params.SpikeThr
	}
	iu.Trace.Step(fired)
}

///////////////////////////////////////////////////////////////////////
//  AnalogUnit

// ActFuns are the activation functions available to AnalogUnit
type ActFuns int32

//go:generate stringer -type=ActFuns

var KiT_ActFuns = kit.Enums.AddEnum(ActFunsN, kit.NotBitFlag, nil)

func (ev ActFuns) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ActFuns) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }
func (ev ActFuns) MarshalText() ([]byte, error)  { return []byte(ev.String()), nil }
func (ev *ActFuns) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

const (
	// TanH is the hyperbolic tangent of the net input, in (-1,1)
	TanH ActFuns = iota

	// NoisyXX1 is the saturating Noisy X/(X+1) function, in [0,1)
	NoisyXX1

	ActFunsN
)

// AnalogParams are the parameters of AnalogUnit
type AnalogParams struct {
	Fun      ActFuns     `desc:"activation function"`
	Bias     float64     `def:"0" desc:"constant added to the net input"`
	Tau      float64     `def:"1" validate:"gte=1" min:"1" desc:"time constant of integration of the activation, in cycles -- 1 = no memory of previous activation"`
	SpikeThr float64     `def:"0.5" desc:"activation at or above which the unit emits a spike on a cycle"`
	XX1      nxx1.Params `view:"inline" desc:"NoisyXX1 parameters, used when Fun = NoisyXX1"`

	Dt float64 `view:"-" json:"-" yaml:"-" desc:"1 / Tau"`
}

func (ap *AnalogParams) Update() {
	ap.Dt = 1 / ap.Tau
	ap.XX1.Update()
}

func (ap *AnalogParams) Defaults() {
	ap.Fun = TanH
	ap.Bias = 0
	ap.Tau = 1
	ap.SpikeThr = 0.5
	ap.XX1.Defaults()
	ap.Update()
}

// ActFun returns the steady-state activation for given net input
func (ap *AnalogParams) ActFun(net float64) float64 {
	net += ap.Bias
	if ap.Fun == NoisyXX1 {
		return ap.XX1.Act(net)
	}
	return math.Tanh(net)
}

// AnalogUnit is a rate-coded neuron with leaky integration toward ActFun(net)
type AnalogUnit struct {
	Rl       Roles         `desc:"role of the unit"`
	Position mat32.Vec3    `desc:"spatial position"`
	Params   *AnalogParams `desc:"shared parameters"`
	Act      float64       `desc:"current activation"`
	Trace    SpikeTrace    `desc:"spike timing state"`
}

// NewAnalogUnit returns an AnalogUnit with given role and params
func NewAnalogUnit(role Roles, pos mat32.Vec3, ap *AnalogParams) *AnalogUnit {
	return &AnalogUnit{Rl: role, Position: pos, Params: ap}
}

func (au *AnalogUnit) ActType() ActTypes      { return Analog }
func (au *AnalogUnit) Role() Roles            { return au.Rl }
func (au *AnalogUnit) Pos() mat32.Vec3        { return au.Position }
func (au *AnalogUnit) AnalogSignal() float64  { return au.Act }
func (au *AnalogUnit) SpikingSignal() float64 { return au.Trace.Spike }
func (au *AnalogUnit) SpikeLeak() float64     { return au.Trace.Leak }
func (au *AnalogUnit) AfterFirstSpike() bool  { return au.Trace.AfterFirst }

func (au *AnalogUnit) Init() {
	au.Act = 0
	au.Trace.Init()
}

func (au *AnalogUnit) Update(net float64) {
	ap := au.Params
	au.Act += ap.Dt * (ap.ActFun(net) - au.Act)
	au.Trace.Step(au.Act >= ap.SpikeThr)
}

///////////////////////////////////////////////////////////////////////
//  SpikingUnit

// SpikingParams are the leaky integrate-and-fire parameters of SpikingUnit
type SpikingParams struct {
	Thr     float64 `def:"1" desc:"membrane potential threshold for firing"`
	Rest    float64 `def:"0" desc:"resting potential that Vm decays toward"`
	Reset   float64 `def:"0" desc:"membrane potential after a spike"`
	VmTau   float64 `def:"20" validate:"gte=1" min:"1" desc:"membrane time constant, in cycles"`
	Refract int     `def:"2" validate:"gte=0" min:"0" desc:"cycles after a spike during which Vm is held at Reset"`
	RateTau float64 `def:"20" validate:"gte=1" min:"1" desc:"time constant of the firing rate estimate that is the analog signal, in cycles"`

	VmDt   float64 `view:"-" json:"-" yaml:"-" desc:"1 / VmTau"`
	RateDt float64 `view:"-" json:"-" yaml:"-" desc:"1 / RateTau"`
}

func (sp *SpikingParams) Update() {
	sp.VmDt = 1 / sp.VmTau
	sp.RateDt = 1 / sp.RateTau
}

func (sp *SpikingParams) Defaults() {
	sp.Thr = 1
	sp.Rest = 0
	sp.Reset = 0
	sp.VmTau = 20
	sp.Refract = 2
	sp.RateTau = 20
	sp.Update()
}

// SpikingUnit is a leaky integrate-and-fire neuron
type SpikingUnit struct {
	Rl       Roles          `desc:"role of the unit"`
	Position mat32.Vec3     `desc:"spatial position"`
	Params   *SpikingParams `desc:"shared parameters"`
	Vm       float64        `desc:"membrane potential"`
	Rate     float64        `desc:"running average firing rate"`
	RefCtr   int            `desc:"refractory cycles remaining"`
	Trace    SpikeTrace     `desc:"spike timing state"`
}

// NewSpikingUnit returns a SpikingUnit with given role and params
func NewSpikingUnit(role Roles, pos mat32.Vec3, sp *SpikingParams) *SpikingUnit {
	su := &SpikingUnit{Rl: role, Position: pos, Params: sp}
	su.Init()
	return su
}

func (su *SpikingUnit) ActType() ActTypes      { return Spiking }
func (su *SpikingUnit) Role() Roles            { return su.Rl }
func (su *SpikingUnit) Pos() mat32.Vec3        { return su.Position }
func (su *SpikingUnit) AnalogSignal() float64  { return su.Rate }
func (su *SpikingUnit) SpikingSignal() float64 { return su.Trace.Spike }
func (su *SpikingUnit) SpikeLeak() float64     { return su.Trace.Leak }
func (su *SpikingUnit) AfterFirstSpike() bool  { return su.Trace.AfterFirst }

func (su *SpikingUnit) Init() {
	su.Vm = su.Params.Rest
	su.Rate = 0
	su.RefCtr = 0
	su.Trace.Init()
}

func (su *SpikingUnit) Update(net float64) {
	sp := su.Params
	fired := false
	if su.RefCtr > 0 {
		su.RefCtr--
		su.Vm = sp.Reset
	} else {
		su.Vm += sp.VmDt*(sp.Rest-su.Vm) + net
		if su.Vm >= sp.Thr {
			fired = true
			su.Vm = sp.Reset
			su.RefCtr = sp.Refract
		}
	}
	su.Trace.Step(fired)
	su.Rate += sp.RateDt * (su.Trace.Spike - su.Rate)
}
