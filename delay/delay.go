// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package delay provides the fixed transmission delay line used by reservoir synapses.

The delay of a synapse, in cycles, is decided once at setup time, either at random
or from the synapse's distance relative to the range of distances of all synapses
in the population.  Signals pushed into the line come out exactly Delay pushes
later; until then the line outputs 0.
*/
package delay

import (
	"fmt"
	"math"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/minmax"
	"github.com/emer/reservoir/valid"
	"github.com/goki/ki/kit"
)

// Methods are the ways the delay of a synapse is derived
type Methods int32

//go:generate stringer -type=Methods

var KiT_Methods = kit.Enums.AddEnum(MethodsN, kit.NotBitFlag, nil)

func (ev Methods) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Methods) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }
func (ev Methods) MarshalText() ([]byte, error)  { return []byte(ev.String()), nil }
func (ev *Methods) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

// The delay methods
const (
	// Random draws the delay uniformly from [0, Max]
	Random Methods = iota

	// Distance maps the synapse distance linearly from the population
	// distance range onto [0, Max]
	Distance

	MethodsN
)

// Params determine how the delay of a synapse is set up
type Params struct {
	Method Methods `desc:"how the delay is derived"`
	Max    int     `def:"0" min:"0" validate:"gte=0" desc:"maximum delay in cycles -- 0 = no delay for any synapse"`
}

func (dp *Params) Defaults() {
	dp.Method = Distance
	dp.Max = 0
}

// Validate returns an error naming every offending field for out of range params
func (dp *Params) Validate() error {
	if dp.Method < 0 || dp.Method >= MethodsN {
		return fmt.Errorf("delay: Method = %d is not a valid delay method", dp.Method)
	}
	if err := valid.Struct(dp); err != nil {
		return fmt.Errorf("delay: %w", err)
	}
	return nil
}

// Line is a bounded FIFO of pending signals implementing a fixed delay.
// With Delay == 0 there is no buffer and Push passes values straight through.
type Line struct {
	Delay int `inactive:"+" desc:"delay in cycles, fixed by Setup"`

	buf   []float64
	start int
	n     int
}

// Setup decides the delay for a synapse at distance dist, given the range of
// distances over the whole population, and allocates the buffer.
// A dist outside of dists is clamped to the range, so the delay is
// always within [0, Max].  rnd is only used by the Random method.
func (dl *Line) Setup(dist float64, dists minmax.F64, dp *Params, rnd erand.Rand) error {
	if err := dp.Validate(); err != nil {
		return err
	}
	d := 0
	if dp.Max > 0 {
		switch dp.Method {
		case Distance:
			span := dists.Range()
			if span > 0 {
				rel := math.Min(math.Max((dist-dists.Min)/span, 0), 1)
				d = int(math.Round(float64(dp.Max) * rel))
			}
		case Random:
			d = rnd.Intn(dp.Max+1, -1)
		}
	}
	dl.SetDelay(d)
	return nil
}

// SetDelay sets the delay directly and (re)allocates the buffer.
// Negative values are treated as 0.
func (dl *Line) SetDelay(d int) {
	if d < 0 {
		d = 0
	}
	dl.Delay = d
	dl.start = 0
	dl.n = 0
	if d == 0 {
		dl.buf = nil
		return
	}
	dl.buf = make([]float64, d+1)
}

// Push adds a value to the line and returns the value that arrives now:
// the value pushed Delay pushes ago, or 0 if nothing has arrived yet.
func (dl *Line) Push(val float64) float64 {
	if dl.buf == nil {
		return val
	}
	cp := len(dl.buf)
	dl.buf[(dl.start+dl.n)%cp] = val
	dl.n++
	if dl.n < cp {
		return 0
	}
	out := dl.buf[dl.start]
	dl.start = (dl.start + 1) % cp
	dl.n--
	return out
}

// Reset discards all values in flight.  The delay is unchanged.
func (dl *Line) Reset() {
	for i := range dl.buf {
		dl.buf[i] = 0
	}
	dl.start = 0
	dl.n = 0
}

// Len returns the number of values in flight
func (dl *Line) Len() int {
	return dl.n
}

// Cap returns the buffer capacity (Delay+1, or 0 when passing through)
func (dl *Line) Cap() int {
	return len(dl.buf)
}
