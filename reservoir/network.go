// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reservoir

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/v2/erand"
	"github.com/emer/emergent/v2/timer"
	"github.com/emer/etable/v2/minmax"
	"github.com/emer/reservoir/neuron"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Network is a reservoir of neurons and the synapses between them.
// Synapses are indexed by their postsynaptic neuron, so each neuron's
// input is summed by a single worker.
type Network struct {
	Nm       string                 `desc:"overall name of network"`
	Neurons  []neuron.Neuron        `desc:"all neurons, input neurons first by convention"`
	Syns     []*Synapse             `desc:"all synapses, in creation order"`
	Recv     [][]*Synapse           `view:"-" desc:"synapses received by each neuron, indexed by neuron"`
	Net      []float64              `view:"-" desc:"summed synaptic input per neuron from the last Cycle"`
	NThreads int                    `inactive:"+" desc:"number of parallel workers for Cycle -- 1 = no goroutines"`
	FunTimes map[string]*timer.Time `view:"-" desc:"timers for each major function (step of processing)"`
	index    map[neuron.Neuron]int
}

// NewNetwork returns a network over given neurons, with no synapses
func NewNetwork(name string, neurons []neuron.Neuron) *Network {
	nt := &Network{Nm: name, Neurons: neurons, NThreads: 1}
	nt.index = make(map[neuron.Neuron]int, len(neurons))
	for i, n := range neurons {
		nt.index[n] = i
	}
	nt.Recv = make([][]*Synapse, len(neurons))
	nt.Net = make([]float64, len(neurons))
	nt.FunTimes = make(map[string]*timer.Time)
	return nt
}

// Connect creates a synapse from neuron index pre to post, with the role
// implied by the neurons, drawing its weight from rnd.
func (nt *Network) Connect(pre, post int, sp *SynParams, rnd erand.Rand) (*Synapse, error) {
	if pre < 0 || pre >= len(nt.Neurons) || post < 0 || post >= len(nt.Neurons) {
		return nil, fmt.Errorf("reservoir: Connect: neuron index out of range: %d -> %d, n = %d", pre, post, len(nt.Neurons))
	}
	pn, rn := nt.Neurons[pre], nt.Neurons[post]
	sy, err := NewSynapse(pn, rn, RoleFor(pn.Role(), rn.ActType()), sp, rnd)
	if err != nil {
		return nil, err
	}
	nt.Syns = append(nt.Syns, sy)
	nt.Recv[post] = append(nt.Recv[post], sy)
	return sy, nil
}

// DistRange returns the range of distances over all synapses
func (nt *Network) DistRange() minmax.F64 {
	var dr minmax.F64
	dr.SetInfinity()
	for _, sy := range nt.Syns {
		dr.FitValInRange(sy.Dist)
	}
	return dr
}

// SetupDelays sets the delay of every synapse, using the distance
// range over all synapses.  Must be called once after all synapses exist.
func (nt *Network) SetupDelays(rnd erand.Rand) error {
	dr := nt.DistRange()
	for i, sy := range nt.Syns {
		if err := sy.SetupDelay(dr, rnd); err != nil {
			return fmt.Errorf("reservoir: synapse %d: %w", i, err)
		}
	}
	return nil
}

// Reset resets all synapses and the units that can be reset, for the
// start of a new independent trial.
func (nt *Network) Reset(resetStats bool) {
	for _, n := range nt.Neurons {
		if u, ok := n.(neuron.Unit); ok {
			u.Init()
		}
	}
	for _, sy := range nt.Syns {
		sy.Reset(resetStats)
	}
	for i := range nt.Net {
		nt.Net[i] = 0
	}
}

// Cycle computes the summed synaptic input to each neuron for this cycle,
// from the current latched neuron outputs.  Neurons are partitioned across
// NThreads workers.  The returned slice is owned by the network and is
// overwritten on the next call.  A non-finite input is an error.
func (nt *Network) Cycle(collectStats bool) ([]float64, error) {
	nt.FunTimerStart("Cycle")
	defer nt.FunTimerStop("Cycle")
	nn := len(nt.Neurons)
	if nt.NThreads <= 1 || nn < 2 {
		return nt.Net, nt.recvRange(0, nn, collectStats)
	}
	var g errgroup.Group
	g.SetLimit(nt.NThreads)
	per := (nn + nt.NThreads - 1) / nt.NThreads
	for st := 0; st < nn; st += per {
		st, ed := st, min(st+per, nn)
		g.Go(func() error {
			return nt.recvRange(st, ed, collectStats)
		})
	}
	return nt.Net, g.Wait()
}

// recvRange sums the synaptic input for neurons in [st, ed)
func (nt *Network) recvRange(st, ed int, collectStats bool) error {
	for ni := st; ni < ed; ni++ {
		sum := 0.0
		for _, sy := range nt.Recv[ni] {
			sum += sy.Signal(collectStats)
		}
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			return fmt.Errorf("reservoir: non-finite input %v to neuron %d", sum, ni)
		}
		nt.Net[ni] = sum
	}
	return nil
}

// Step runs one full simulation cycle: all synapse signals are computed
// from the current outputs, then every Unit is updated with its input.
func (nt *Network) Step(collectStats bool) error {
	net, err := nt.Cycle(collectStats)
	if err != nil {
		return err
	}
	nt.FunTimerStart("Update")
	for i, n := range nt.Neurons {
		if u, ok := n.(neuron.Unit); ok {
			u.Update(net[i])
		}
	}
	nt.FunTimerStop("Update")
	return nil
}

// WeightMatrix returns the recurrent weight matrix over all neurons, with
// element (post, pre) the summed weight from pre to post.  Synapses from
// input neurons are not included.
func (nt *Network) WeightMatrix() *mat.Dense {
	nn := len(nt.Neurons)
	wm := mat.NewDense(nn, nn, nil)
	for _, sy := range nt.Syns {
		if sy.Role == Input {
			continue
		}
		pi, ri := nt.index[sy.Pre], nt.index[sy.Post]
		wm.Set(ri, pi, wm.At(ri, pi)+sy.Wt)
	}
	return wm
}

// SpectralRadius returns the largest absolute eigenvalue of WeightMatrix
func (nt *Network) SpectralRadius() (float64, error) {
	if len(nt.Neurons) == 0 {
		return 0, nil
	}
	var eig mat.Eigen
	if ok := eig.Factorize(nt.WeightMatrix(), mat.EigenNone); !ok {
		return 0, fmt.Errorf("reservoir: %s: eigenvalue decomposition of weight matrix failed", nt.Nm)
	}
	rad := 0.0
	for _, ev := range eig.Values(nil) {
		rad = math.Max(rad, cmplx.Abs(ev))
	}
	return rad, nil
}

// NormalizeSpectralRadius rescales all recurrent synapse weights so that the
// spectral radius of WeightMatrix equals target.  Must be called before running.
// Returns the scaling factor applied.
func (nt *Network) NormalizeSpectralRadius(target float64) (float64, error) {
	rad, err := nt.SpectralRadius()
	if err != nil {
		return 0, err
	}
	if rad == 0 {
		return 0, fmt.Errorf("reservoir: %s: spectral radius is 0, cannot normalize to %v", nt.Nm, target)
	}
	f := target / rad
	for _, sy := range nt.Syns {
		if sy.Role != Input {
			sy.Rescale(f)
		}
	}
	return f, nil
}

// EffStats returns the efficacy statistics pooled over all synapses
func (nt *Network) EffStats() EffStat {
	var es EffStat
	es.Init()
	for _, sy := range nt.Syns {
		if sy.EffStat.N == 0 {
			continue
		}
		es.FitValInRange(sy.EffStat.Min)
		es.FitValInRange(sy.EffStat.Max)
		es.Sum += sy.EffStat.Sum
		es.N += sy.EffStat.N
	}
	return es
}

// SizeReport returns a string reporting the number of synapses per role
// and the total memory footprint of the synapses.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	nsyn := make([]int, SynRolesN)
	mem := make([]int, SynRolesN)
	for _, sy := range nt.Syns {
		nsyn[sy.Role]++
		mem[sy.Role] += int(unsafe.Sizeof(*sy)) + sy.Line.Cap()*8
	}
	syn, synMem := 0, 0
	for r := SynRoles(0); r < SynRolesN; r++ {
		syn += nsyn[r]
		synMem += mem[r]
		fmt.Fprintf(&b, "%14s:\t Syns: %d\t SynMem: %v\n", r, nsyn[r], (datasize.ByteSize)(mem[r]).HumanReadable())
	}
	fmt.Fprintf(&b, "\n%14s:\t Neurons: %d\t Syns: %d \t SynMem: %v\n", nt.Nm, len(nt.Neurons), syn, (datasize.ByteSize)(synMem).HumanReadable())
	return b.String()
}

// FunTimerStart starts function timer for given function name -- ensures creation of timer
func (nt *Network) FunTimerStart(fun string) {
	ft, ok := nt.FunTimes[fun]
	if !ok {
		ft = &timer.Time{}
		nt.FunTimes[fun] = ft
	}
	ft.Start()
}

// FunTimerStop stops function timer -- timer must already exist
func (nt *Network) FunTimerStop(fun string) {
	ft := nt.FunTimes[fun]
	ft.Stop()
}

// TimerReport returns the amount of time spent in each function
func (nt *Network) TimerReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TimerReport: %v, NThreads: %v\n", nt.Nm, nt.NThreads)
	fmt.Fprintf(&b, "\tFunction Name\tTotal Secs\tPct\n")
	fnms := make([]string, 0, len(nt.FunTimes))
	for k := range nt.FunTimes {
		fnms = append(fnms, k)
	}
	sort.Strings(fnms)
	secs := make([]float64, len(fnms))
	tot := 0.0
	for i, fn := range fnms {
		secs[i] = nt.FunTimes[fn].TotalSecs()
		tot += secs[i]
	}
	for i, fn := range fnms {
		pct := 0.0
		if tot > 0 {
			pct = 100 * secs[i] / tot
		}
		fmt.Fprintf(&b, "\t%v \t%6.4g\t%6.4g\n", fn, secs[i], pct)
	}
	fmt.Fprintf(&b, "\tTotal   \t%6.4g\n", tot)
	return b.String()
}
