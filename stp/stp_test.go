// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

// spikeSrc is a settable SpikeSource
type spikeSrc struct {
	leak  float64
	after bool
}

func (ss *spikeSrc) SpikeLeak() float64     { return ss.leak }
func (ss *spikeSrc) AfterFirstSpike() bool { return ss.after }

func TestConstantIdempotent(t *testing.T) {
	dp := &Params{}
	dp.Defaults(STInput)
	dp.Type = ConstantDyn
	dp.Constant.Efficacy = 0.37
	ef, err := New(dp, &spikeSrc{leak: 3, after: true})
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.Equal(t, 0.37, ef.Compute())
		if i%5 == 0 {
			ef.Reset()
		}
	}
}

func TestConstantDefault(t *testing.T) {
	dp := &Params{}
	dp.Defaults(ATInput)
	dp.Type = ConstantDyn
	ef, err := New(dp, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ef.Compute())

	// never configured
	ef, err = New(&Params{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ef.Compute())
	ef.Reset()
	assert.Equal(t, 1.0, ef.Compute())

	// configured to 0 is kept
	dp.Constant.Efficacy = 0
	ef, err = New(dp, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ef.Compute())
}

func TestLinearValues(t *testing.T) {
	dp := &Params{}
	dp.Defaults(ATIndifferent)
	dp.Type = LinearDyn
	dp.Linear = LinearParams{Alpha: 0.1, Beta: 0.5, InitEfficacy: 1}
	src := &spikeSrc{}
	ef, err := New(dp, src)
	require.NoError(t, err)

	leaks := []float64{1, 1, 3, 1, 1, 40}
	cor := []float64{0.95, 0.90, 0.95, 0.90, 0.85, 0.95}
	for i, lk := range leaks {
		src.leak = lk
		eff := ef.Compute()
		assert.InDeltaf(t, cor[i], eff, difTol, "idx: %d leak: %v", i, lk)
	}
	ef.Reset()
	src.leak = 1
	assert.InDelta(t, 0.95, ef.Compute(), difTol)
}

func TestLinearBounded(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	src := &spikeSrc{}
	for trial := 0; trial < 200; trial++ {
		dp := &Params{}
		dp.Defaults(STExcitatory)
		dp.Type = LinearDyn
		dp.Linear = LinearParams{Alpha: rnd.Float64(), Beta: rnd.Float64(), InitEfficacy: rnd.Float64()}
		ef, err := New(dp, src)
		require.NoError(t, err)
		for i := 0; i < 50; i++ {
			src.leak = float64(rnd.Intn(100))
			eff := ef.Compute()
			if eff < 0 || eff > 1 {
				t.Fatalf("efficacy out of [0,1]: %v params: %+v leak: %v", eff, dp.Linear, src.leak)
			}
		}
	}
}

func TestNonlinearResting(t *testing.T) {
	dp := &Params{}
	dp.Defaults(STExcitatory)
	dp.Nonlinear = NonlinearParams{RestingEfficacy: 0.3, TauDepression: 100, TauFacilitation: 20}
	src := &spikeSrc{leak: 7, after: false}
	ef, err := New(dp, src)
	require.NoError(t, err)
	assert.Equal(t, 0.3*1.0, ef.Compute())
	assert.Equal(t, 0.3*1.0, ef.Compute(), "no update before the first spike")

	src.after = true
	u := 0.3
	tmp := u * math.Exp(-7.0/20)
	fac := tmp + u*(1-tmp)
	tmp = math.Exp(-7.0 / 100)
	dep := 1*(1-fac)*tmp + (1 - tmp)
	assert.InDelta(t, fac*dep, ef.Compute(), difTol)

	ef.Reset()
	src.after = false
	assert.Equal(t, 0.3, ef.Compute())
}

func TestNonlinearBounded(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	src := &spikeSrc{after: true}
	for trial := 0; trial < 200; trial++ {
		np := NonlinearParams{
			RestingEfficacy: rnd.Float64(),
			TauDepression:   0.5 + 2000*rnd.Float64(),
			TauFacilitation: 0.5 + 2000*rnd.Float64(),
		}
		dp := &Params{}
		dp.Defaults(STInhibitory)
		dp.Nonlinear = np
		efi, err := New(dp, src)
		require.NoError(t, err)
		ef := efi.(*Nonlinear)
		for i := 0; i < 50; i++ {
			src.leak = 1 + float64(rnd.Intn(300))
			eff := ef.Compute()
			require.False(t, math.IsNaN(eff))
			assert.GreaterOrEqual(t, ef.Fac, 0.0)
			assert.LessOrEqual(t, ef.Fac, math.Max(np.RestingEfficacy, 1)+difTol)
			assert.GreaterOrEqual(t, ef.Dep, -difTol)
			assert.LessOrEqual(t, ef.Dep, 1+difTol)
		}
	}
}

func TestNewCopiesParams(t *testing.T) {
	dp := &Params{}
	dp.Defaults(STExcitatory)
	src := &spikeSrc{}
	ef, err := New(dp, src)
	require.NoError(t, err)
	dp.Nonlinear.RestingEfficacy = 0.9
	assert.Equal(t, 0.5, ef.Compute())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		set  func(dp *Params)
		msg  string
	}{
		{"efficacy", func(dp *Params) { dp.Type = ConstantDyn; dp.Constant.Efficacy = 1.5 }, "Efficacy = 1.5"},
		{"alpha", func(dp *Params) { dp.Type = LinearDyn; dp.Linear.Alpha = -0.1 }, "Alpha = -0.1"},
		{"beta", func(dp *Params) { dp.Type = LinearDyn; dp.Linear.Beta = 2 }, "Beta = 2"},
		{"init", func(dp *Params) { dp.Type = LinearDyn; dp.Linear.InitEfficacy = 1.01 }, "InitEfficacy = 1.01"},
		{"resting", func(dp *Params) { dp.Type = NonlinearDyn; dp.Nonlinear.RestingEfficacy = -1 }, "RestingEfficacy = -1"},
		{"taud", func(dp *Params) { dp.Type = NonlinearDyn; dp.Nonlinear.TauDepression = 0 }, "TauDepression = 0"},
		{"tauf", func(dp *Params) { dp.Type = NonlinearDyn; dp.Nonlinear.TauFacilitation = -3 }, "TauFacilitation = -3"},
		{"type", func(dp *Params) { dp.Type = DynTypesN }, "not a valid dynamics type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dp := &Params{}
			dp.Defaults(STExcitatory)
			tt.set(dp)
			err := dp.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			_, err = New(dp, &spikeSrc{})
			assert.Error(t, err)
		})
	}
}

func TestValidateInactiveVariant(t *testing.T) {
	dp := &Params{}
	dp.Defaults(STInput)
	dp.Type = ConstantDyn
	dp.Nonlinear.TauDepression = 0
	assert.NoError(t, dp.Validate())
}

func TestValidateFor(t *testing.T) {
	for app := STInput; app < AppsN; app++ {
		dp := &Params{}
		dp.Defaults(app)
		assert.NoError(t, dp.ValidateFor(app))
		other := (app + 1) % AppsN
		err := dp.ValidateFor(other)
		require.Error(t, err)
		assert.Contains(t, err.Error(), app.String())
	}
}

func TestEnumText(t *testing.T) {
	var ty DynTypes
	require.NoError(t, ty.UnmarshalText([]byte("NonlinearDyn")))
	assert.Equal(t, NonlinearDyn, ty)
	assert.Error(t, ty.UnmarshalText([]byte("Quadratic")))

	var app Apps
	require.NoError(t, app.UnmarshalText([]byte("ATIndifferent")))
	assert.Equal(t, ATIndifferent, app)
	b, err := STInhibitory.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "STInhibitory", string(b))
}
