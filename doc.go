// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package reservoir is the overall repository for reservoir computing (liquid state
and echo state network) simulation code implemented in the Go language (golang),
centered on synaptic transmission with delays and short-term plasticity.

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* stp: short-term plasticity efficacy models (Constant, Linear, Nonlinear
facilitation / depression) and their parameters per application.

* delay: fixed transmission delay lines, with the delay set from synapse distance
or at random.

* neuron: the neuron state read by synapses, and simple reference analog,
spiking and input unit models.

* nxx1: the Noisy X/(X+1) activation function, usable by analog units.

* reservoir: synapses, the resolution of synapse parameters by role, and the
Network that runs them in parallel, with spectral radius normalization.

* valid: range checking of params struct tags, with uniform error messages.

* config, sim: simulation configuration loaded from YAML, and a random reservoir
builder and runner.

* cmd/reservoir, examples/bench: runnable programs.
*/
package reservoir
