// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nxx1 provides the Noisy-X-over-X-plus-1 activation function, a saturating
sigmoid-like response with an initial largely-linear regime, as an alternative to
tanh for analog reservoir neurons.

The x/(x+1) function is convolved with a gaussian noise kernel, which produces a
graded response slightly below threshold.  A piece-wise approximation is used
instead of a lookup table of the convolution.
*/
package nxx1

import "math"

// Params are the Noisy X/(X+1) activation function parameters.
type Params struct {
	Thr          float64 `def:"0.5" desc:"threshold value Theta (Q) for firing output activation"`
	Gain         float64 `def:"80,100,40,20" min:"0" desc:"gain (gamma) of the activation function -- lower values give more graded signals"`
	NVar         float64 `def:"0.005,0.01" min:"0" desc:"variance of the Gaussian noise kernel convolved with XX1 -- determines the curvature near threshold"`
	SigMult      float64 `def:"0.33" view:"-" json:"-" desc:"multiplier on sigmoid used for computing values for net < thr"`
	SigMultPow   float64 `def:"0.8" view:"-" json:"-" desc:"power for computing SigMultEff as function of gain * nvar"`
	SigGain      float64 `def:"3" view:"-" json:"-" desc:"gain multipler on (net - thr) for sigmoid used for computing values for net < thr"`
	InterpRange  float64 `def:"0.01" view:"-" json:"-" desc:"interpolation range above zero to use interpolation"`
	GainCorRange float64 `def:"10" view:"-" json:"-" desc:"range in units of nvar over which to apply gain correction to compensate for convolution"`
	GainCor      float64 `def:"0.1" view:"-" json:"-" desc:"gain correction multiplier -- how much to correct gains"`

	SigGainNVar float64 `view:"-" json:"-" yaml:"-" desc:"sig_gain / nvar"`
	SigMultEff  float64 `view:"-" json:"-" yaml:"-" desc:"overall multiplier on sigmoidal component for values below threshold = sig_mult * pow(gain * nvar, sig_mult_pow)"`
	SigValAt0   float64 `view:"-" json:"-" yaml:"-" desc:"0.5 * sig_mult_eff -- used for interpolation portion"`
	InterpVal   float64 `view:"-" json:"-" yaml:"-" desc:"function value at interp_range - sig_val_at_0 -- for interpolation"`
}

func (xp *Params) Update() {
	xp.SigGainNVar = xp.SigGain / xp.NVar
	xp.SigMultEff = xp.SigMult * math.Pow(xp.Gain*xp.NVar, xp.SigMultPow)
	xp.SigValAt0 = 0.5 * xp.SigMultEff
	xp.InterpVal = xp.XX1GainCor(xp.InterpRange) - xp.SigValAt0
}

func (xp *Params) Defaults() {
	xp.Thr = 0.5
	xp.Gain = 100
	xp.NVar = 0.005
	xp.SigMult = 0.33
	xp.SigMultPow = 0.8
	xp.SigGain = 3.0
	xp.InterpRange = 0.01
	xp.GainCorRange = 10.0
	xp.GainCor = 0.1
	xp.Update()
}

// XX1 computes the basic x/(x+1) function
func (xp *Params) XX1(x float64) float64 { return x / (x + 1) }

// XX1GainCor computes x/(x+1) with gain correction within GainCorRange
// to compensate for convolution effects
func (xp *Params) XX1GainCor(x float64) float64 {
	gainCorFact := (xp.GainCorRange - (x / xp.NVar)) / xp.GainCorRange
	if gainCorFact < 0 {
		return xp.XX1(xp.Gain * x)
	}
	newGain := xp.Gain * (1 - xp.GainCor*gainCorFact)
	return xp.XX1(newGain * x)
}

// NoisyXX1 computes the Noisy x/(x+1) function of x, which is
// the input relative to threshold.
func (xp *Params) NoisyXX1(x float64) float64 {
	switch {
	case x < 0:
		return xp.SigMultEff / (1 + math.Exp(-(x * xp.SigGainNVar)))
	case x < xp.InterpRange:
		interp := 1 - ((xp.InterpRange - x) / xp.InterpRange)
		return xp.SigValAt0 + interp*xp.InterpVal
	}
	return xp.XX1GainCor(x)
}

// Act returns the activation for net input relative to zero, applying Thr
func (xp *Params) Act(net float64) float64 {
	return xp.NoisyXX1(net - xp.Thr)
}
