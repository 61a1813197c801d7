// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reservoir

import (
	"fmt"

	"github.com/emer/reservoir/neuron"
	"github.com/emer/reservoir/stp"
	"github.com/goki/ki/kit"
)

// SynRoles are the functional roles of synapses, which select the
// weight, dynamics and delay parameters used to build them.
type SynRoles int32

//go:generate stringer -type=SynRoles

var KiT_SynRoles = kit.Enums.AddEnum(SynRolesN, kit.NotBitFlag, nil)

func (ev SynRoles) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SynRoles) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The synapse roles
const (
	// Input synapses carry signals from input neurons
	Input SynRoles = iota

	// Excitatory synapses connect an excitatory hidden neuron to a spiking neuron
	Excitatory

	// Inhibitory synapses connect an inhibitory hidden neuron to a spiking neuron
	Inhibitory

	// Indifferent synapses connect any hidden neuron to an analog neuron
	Indifferent

	SynRolesN
)

// RoleFor returns the synapse role for a connection from a presynaptic
// neuron with given role to a postsynaptic neuron of given activation type.
func RoleFor(preRole neuron.Roles, postAct neuron.ActTypes) SynRoles {
	switch {
	case preRole == neuron.Input:
		return Input
	case postAct == neuron.Analog:
		return Indifferent
	case preRole == neuron.Excitatory:
		return Excitatory
	}
	return Inhibitory
}

// AppFor returns the dynamics application slot for a synapse role and
// postsynaptic activation type.  Indifferent is only valid for Analog targets,
// and Excitatory / Inhibitory only for Spiking targets.
func AppFor(role SynRoles, postAct neuron.ActTypes) (stp.Apps, error) {
	switch postAct {
	case neuron.Spiking:
		switch role {
		case Input:
			return stp.STInput, nil
		case Excitatory:
			return stp.STExcitatory, nil
		case Inhibitory:
			return stp.STInhibitory, nil
		}
	case neuron.Analog:
		switch role {
		case Input:
			return stp.ATInput, nil
		case Indifferent:
			return stp.ATIndifferent, nil
		}
	default:
		return stp.AppsN, fmt.Errorf("reservoir: invalid postsynaptic activation type: %v", postAct)
	}
	return stp.AppsN, fmt.Errorf("reservoir: synapse role %v is not valid for a %v target", role, postAct)
}
