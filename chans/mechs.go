// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"fmt"
	"strings"

	"github.com/goki/ki/kit"
)

// Mechs enumerates the membrane mechanisms known to the model.
// Names as used in parameter names are given by NrnName.
type Mechs int32

//go:generate stringer -type=Mechs

var KiT_Mechs = kit.Enums.AddEnum(MechsN, kit.NotBitFlag, nil)

func (ev Mechs) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Mechs) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Pas is the passive leak current
	Pas Mechs = iota

	// CaDynamics is intracellular calcium buffering and decay
	CaDynamics

	// CaHVA is the high-voltage activated calcium channel
	CaHVA

	// CaLVA is the low-voltage activated calcium channel
	CaLVA

	// Ih is the hyperpolarization-activated cation channel
	Ih

	// Im is the muscarinic M-type potassium channel
	Im

	// KP is the persistent potassium channel
	KP

	// KT is the transient potassium channel
	KT

	// Kv31 is the Kv3.1 fast delayed rectifier potassium channel
	Kv31

	// NaTs is the transient sodium channel
	NaTs

	// Nap is the persistent sodium channel
	Nap

	// SK is the small-conductance calcium-activated potassium channel
	SK

	MechsN
)

// nrnNames are the mechanism names as they appear in parameter names
var nrnNames = [MechsN]string{"pas", "CaDynamics", "Ca_HVA", "Ca_LVA", "Ih", "Im", "K_P", "K_T", "Kv3_1", "NaTs", "Nap", "SK"}

// ActiveMechs are the active mechanisms of the perisomatic model, in the
// order they are inserted
var ActiveMechs = []Mechs{CaDynamics, CaHVA, CaLVA, Ih, Im, KP, KT, Kv31, NaTs, Nap, SK}

// NrnName returns the name used for the mechanism in parameter names,
// e.g., K_P for KP (as in gbar_K_P)
func (ev Mechs) NrnName() string {
	if ev < 0 || ev >= MechsN {
		return ev.String()
	}
	return nrnNames[ev]
}

// MechByName returns the mechanism with given name, which can be either
// the NrnName or the Go constant name.  Unknown names are an error.
func MechByName(nm string) (Mechs, error) {
	for i, n := range nrnNames {
		if n == nm {
			return Mechs(i), nil
		}
	}
	var mc Mechs
	if err := mc.FromString(nm); err == nil && mc < MechsN {
		return mc, nil
	}
	return MechsN, fmt.Errorf("chans.MechByName: mechanism %q not found", nm)
}

// NewParams returns a new parameter record for given mechanism,
// initialized to defaults
func NewParams(mc Mechs) MechParams {
	var mp MechParams
	switch mc {
	case Pas:
		mp = &PasParams{}
	case CaDynamics:
		mp = &CaDynParams{}
	default:
		mp = &GbarParams{}
	}
	mp.Defaults()
	return mp
}

// ParamName returns the full parameter name for given variable
// of given mechanism, e.g., gbar_NaTs
func ParamName(mc Mechs, vr string) string {
	return vr + "_" + mc.NrnName()
}

// SplitParamName splits a full parameter name such as gamma_CaDynamics
// into the mechanism and variable.  Returns an error if the name does not
// refer to a known mechanism and variable.
func SplitParamName(nm string) (Mechs, string, error) {
	ui := strings.Index(nm, "_")
	if ui <= 0 || ui == len(nm)-1 {
		return MechsN, "", fmt.Errorf("chans.SplitParamName: %q is not of the form var_mech", nm)
	}
	vr := nm[:ui]
	mc, err := MechByName(nm[ui+1:])
	if err != nil {
		return MechsN, "", err
	}
	if _, ok := NewParams(mc).Var(vr); !ok {
		return MechsN, "", fmt.Errorf("chans.SplitParamName: mechanism %s has no parameter %q", mc.NrnName(), vr)
	}
	return mc, vr, nil
}
