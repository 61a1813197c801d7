// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"math"
	"testing"

	"github.com/goki/mat32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

func TestSpikeTrace(t *testing.T) {
	st := SpikeTrace{}
	st.Init()
	fires := []bool{false, false, true, false, false, true, true, false}
	leaks := []float64{1, 2, 3, 1, 2, 3, 1, 1}
	spks := []float64{0, 0, 1, 0, 0, 1, 1, 0}
	after := []bool{false, false, false, false, false, true, true, true}
	for i, f := range fires {
		st.Step(f)
		assert.Equalf(t, leaks[i], st.Leak, "cyc: %d", i)
		assert.Equalf(t, spks[i], st.Spike, "cyc: %d", i)
		assert.Equalf(t, after[i], st.AfterFirst, "cyc: %d", i)
	}
	st.Init()
	assert.False(t, st.Fired)
	assert.False(t, st.AfterFirst)
	assert.Equal(t, 0.0, st.Leak)
}

func TestInputUnit(t *testing.T) {
	ip := &InputParams{}
	ip.Defaults()
	iu := NewInputUnit(Spiking, mat32.Vec3{}, ip)
	iu.Init()
	assert.Equal(t, Input, iu.Role())
	assert.Equal(t, Spiking, iu.ActType())

	iu.SetExt(0.25)
	var spikes []int
	for cyc := 0; cyc < 12; cyc++ {
		iu.Update(100) // net is ignored
		assert.Equal(t, 0.25, iu.AnalogSignal())
		if iu.SpikingSignal() > 0 {
			spikes = append(spikes, cyc)
			if len(spikes) > 1 {
				assert.Equal(t, 4.0, iu.SpikeLeak())
				assert.True(t, iu.AfterFirstSpike())
			} else {
				assert.False(t, iu.AfterFirstSpike())
			}
		}
	}
	assert.Equal(t, []int{3, 7, 11}, spikes)
}

func TestAnalogUnit(t *testing.T) {
	ap := &AnalogParams{}
	ap.Defaults()
	au := NewAnalogUnit(Excitatory, mat32.Vec3{X: 1}, ap)
	au.Init()
	nets := []float64{0, 0.2, 1, -1, 0.6}
	for _, net := range nets {
		au.Update(net)
		assert.InDelta(t, math.Tanh(net), au.AnalogSignal(), difTol)
		if au.AnalogSignal() >= ap.SpikeThr {
			assert.Equal(t, 1.0, au.SpikingSignal())
		} else {
			assert.Equal(t, 0.0, au.SpikingSignal())
		}
	}

	ap.Fun = NoisyXX1
	ap.Tau = 2
	ap.Update()
	au.Init()
	au.Update(1)
	assert.InDelta(t, 0.5*ap.XX1.Act(1), au.Act, difTol)
	assert.Equal(t, Analog, au.ActType())
}

func TestSpikingUnit(t *testing.T) {
	sp := &SpikingParams{}
	sp.Defaults()
	su := NewSpikingUnit(Inhibitory, mat32.Vec3{}, sp)
	assert.Equal(t, Spiking, su.ActType())
	assert.Equal(t, Inhibitory, su.Role())

	var spikes []int
	var leaks []float64
	for cyc := 0; cyc < 40; cyc++ {
		su.Update(0.2)
		require.GreaterOrEqual(t, su.AnalogSignal(), 0.0)
		require.LessOrEqual(t, su.AnalogSignal(), 1.0)
		if su.SpikingSignal() > 0 {
			spikes = append(spikes, cyc)
			leaks = append(leaks, su.SpikeLeak())
			assert.Equal(t, len(spikes) > 1, su.AfterFirstSpike())
		}
	}
	require.Greater(t, len(spikes), 2)
	assert.Equal(t, 5, spikes[0])
	for i := 1; i < len(spikes); i++ {
		assert.Equal(t, float64(spikes[i]-spikes[i-1]), leaks[i])
		assert.Equal(t, 8.0, leaks[i])
	}

	su.Init()
	assert.Equal(t, sp.Rest, su.Vm)
	assert.False(t, su.AfterFirstSpike())
}

func TestDist(t *testing.T) {
	a := NewAnalogUnit(Excitatory, mat32.Vec3{X: 0, Y: 0, Z: 0}, nil)
	b := NewAnalogUnit(Excitatory, mat32.Vec3{X: 3, Y: 4, Z: 0}, nil)
	assert.InDelta(t, 5.0, Dist(a, b), 1.0e-6)
}
