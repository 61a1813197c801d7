// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delay

import (
	"testing"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/minmax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassThrough(t *testing.T) {
	dl := &Line{}
	dl.SetDelay(0)
	for i := 0; i < 10; i++ {
		v := float64(i) + 0.5
		assert.Equal(t, v, dl.Push(v))
	}
	assert.Equal(t, 0, dl.Cap())
}

func TestDelayTiming(t *testing.T) {
	for d := 1; d <= 7; d++ {
		dl := &Line{}
		dl.SetDelay(d)
		require.Equal(t, d+1, dl.Cap())
		// single pulse at cycle 3
		for cyc := 0; cyc < 3+d+5; cyc++ {
			in := 0.0
			if cyc == 3 {
				in = 0.75
			}
			out := dl.Push(in)
			if cyc == 3+d {
				assert.Equalf(t, 0.75, out, "delay: %d cyc: %d", d, cyc)
			} else {
				assert.Equalf(t, 0.0, out, "delay: %d cyc: %d", d, cyc)
			}
		}
	}
}

func TestDelayEveryValueOnce(t *testing.T) {
	d := 4
	dl := &Line{}
	dl.SetDelay(d)
	n := 50
	var outs []float64
	for i := 1; i <= n; i++ {
		out := dl.Push(float64(i))
		if i <= d {
			assert.Equal(t, 0.0, out)
			continue
		}
		outs = append(outs, out)
		assert.LessOrEqual(t, dl.Len(), d)
	}
	require.Len(t, outs, n-d)
	for i, v := range outs {
		assert.Equal(t, float64(i+1), v)
	}
}

func TestReset(t *testing.T) {
	dl := &Line{}
	dl.SetDelay(2)
	dl.Push(1)
	dl.Push(2)
	assert.Equal(t, 2, dl.Len())
	dl.Reset()
	assert.Equal(t, 0, dl.Len())
	assert.Equal(t, 2, dl.Delay)
	assert.Equal(t, 0.0, dl.Push(5))
	assert.Equal(t, 0.0, dl.Push(6))
	assert.Equal(t, 5.0, dl.Push(7))
}

func TestSetupDistance(t *testing.T) {
	dists := minmax.F64{Min: 2, Max: 12}
	dp := &Params{Method: Distance, Max: 10}
	tests := []struct {
		dist float64
		cor  int
	}{
		{2, 0}, {12, 10}, {7, 5}, {2.4, 0}, {2.6, 1}, {11.4, 9},
	}
	for _, tt := range tests {
		dl := &Line{}
		require.NoError(t, dl.Setup(tt.dist, dists, dp, nil))
		assert.Equalf(t, tt.cor, dl.Delay, "dist: %v", tt.dist)
		if tt.cor == 0 {
			assert.Equal(t, 0, dl.Cap())
		} else {
			assert.Equal(t, tt.cor+1, dl.Cap())
		}
	}

	// all synapses at the same distance
	dl := &Line{}
	require.NoError(t, dl.Setup(3, minmax.F64{Min: 3, Max: 3}, dp, nil))
	assert.Equal(t, 0, dl.Delay)
}

func TestSetupDistanceOutOfRange(t *testing.T) {
	dists := minmax.F64{Min: 2, Max: 12}
	dp := &Params{Method: Distance, Max: 10}
	tests := []struct {
		dist float64
		cor  int
	}{
		{30, 10}, {12.0001, 10}, {-5, 0}, {1.9, 0},
	}
	for _, tt := range tests {
		dl := &Line{}
		require.NoError(t, dl.Setup(tt.dist, dists, dp, nil))
		assert.Equalf(t, tt.cor, dl.Delay, "dist: %v", tt.dist)
		assert.LessOrEqualf(t, dl.Cap(), dp.Max+1, "dist: %v", tt.dist)
	}
}

func TestSetupRandom(t *testing.T) {
	dp := &Params{Method: Random, Max: 3}
	rnd := erand.NewSysRand(1)
	seen := make(map[int]int)
	for i := 0; i < 400; i++ {
		dl := &Line{}
		require.NoError(t, dl.Setup(0, minmax.F64{}, dp, rnd))
		require.GreaterOrEqual(t, dl.Delay, 0)
		require.LessOrEqual(t, dl.Delay, dp.Max)
		seen[dl.Delay]++
	}
	assert.Len(t, seen, dp.Max+1, "all delays in [0, Max] drawn")

	// same seed, same delays
	r1 := erand.NewSysRand(99)
	r2 := erand.NewSysRand(99)
	for i := 0; i < 20; i++ {
		d1, d2 := &Line{}, &Line{}
		require.NoError(t, d1.Setup(0, minmax.F64{}, dp, r1))
		require.NoError(t, d2.Setup(0, minmax.F64{}, dp, r2))
		assert.Equal(t, d1.Delay, d2.Delay)
	}
}

func TestSetupMaxZero(t *testing.T) {
	dl := &Line{}
	require.NoError(t, dl.Setup(5, minmax.F64{Min: 0, Max: 10}, &Params{Method: Distance, Max: 0}, nil))
	assert.Equal(t, 0, dl.Delay)
	assert.Equal(t, 3.0, dl.Push(3))
}

func TestParamsValidate(t *testing.T) {
	dp := &Params{}
	dp.Defaults()
	assert.NoError(t, dp.Validate())
	dp.Max = -1
	err := dp.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delay: Params.Max = -1 violates gte=0")
	dl := &Line{}
	assert.Error(t, dl.Setup(0, minmax.F64{}, dp, nil))

	dp.Max = 1
	dp.Method = MethodsN
	assert.Error(t, dp.Validate())
}
