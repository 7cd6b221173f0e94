// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the membrane mechanisms (passive leak, active ion
channels and calcium dynamics) that can be inserted into the sections of a
multi-compartment cable model, along with their parameters and the default
values a section receives when a mechanism is first inserted.

Mechanism and parameter names follow the NEURON conventions used by the
Allen Cell Types biophysical models, e.g., gbar_NaTs or decay_CaDynamics.
*/
package chans

// Erev are the ionic reversal potentials (mV) on a section
type Erev struct {
	Na float64 `desc:"sodium reversal potential (ena)"`
	K  float64 `desc:"potassium reversal potential (ek)"`
}

// Defaults sets the engine default reversal potentials
func (er *Erev) Defaults() {
	er.SetAll(50, -77)
}

// SetAll sets all the values
func (er *Erev) SetAll(na, k float64) {
	er.Na, er.K = na, k
}

// MechParams is implemented by the parameter record of each mechanism.
// Vars lists the parameter names in NEURON order (without the _mech suffix).
type MechParams interface {
	// Defaults sets the parameters to the values a section gets on insertion
	Defaults()

	// Vars returns the names of the parameters
	Vars() []string

	// Var returns the value of given parameter, false if not a parameter
	Var(nm string) (float64, bool)

	// SetVar sets the value of given parameter, false if not a parameter
	SetVar(nm string, val float64) bool
}

// PasParams are the passive leak channel parameters
type PasParams struct {
	G float64 `def:"0.001" desc:"leak conductance density (S/cm2) -- g_pas"`
	E float64 `def:"-70" desc:"leak reversal potential (mV) -- e_pas"`
}

func (pp *PasParams) Defaults() {
	pp.G = 0.001
	pp.E = -70
}

func (pp *PasParams) Vars() []string { return []string{"g", "e"} }

func (pp *PasParams) Var(nm string) (float64, bool) {
	switch nm {
	case "g":
		return pp.G, true
	case "e":
		return pp.E, true
	}
	return 0, false
}

func (pp *PasParams) SetVar(nm string, val float64) bool {
	switch nm {
	case "g":
		pp.G = val
	case "e":
		pp.E = val
	default:
		return false
	}
	return true
}

// GbarParams hold the peak conductance of a Hodgkin-Huxley style channel
// whose kinetics are fixed in the channel model
type GbarParams struct {
	Gbar float64 `def:"1e-05" desc:"peak conductance density (S/cm2) -- gbar_<mech>"`
}

func (gp *GbarParams) Defaults() {
	gp.Gbar = 0.00001
}

func (gp *GbarParams) Vars() []string { return []string{"gbar"} }

func (gp *GbarParams) Var(nm string) (float64, bool) {
	if nm != "gbar" {
		return 0, false
	}
	return gp.Gbar, true
}

func (gp *GbarParams) SetVar(nm string, val float64) bool {
	if nm != "gbar" {
		return false
	}
	gp.Gbar = val
	return true
}

// CaDynParams are the intracellular calcium buffering and extrusion
// parameters of the CaDynamics mechanism
type CaDynParams struct {
	Gamma  float64 `def:"0.05" desc:"fraction of calcium current not immediately buffered"`
	Decay  float64 `def:"80" desc:"time constant (ms) of calcium removal"`
	Depth  float64 `def:"0.1" desc:"depth (um) of the submembrane shell"`
	MinCai float64 `def:"0.0001" desc:"minimum intracellular calcium concentration (mM)"`
}

func (cp *CaDynParams) Defaults() {
	cp.Gamma = 0.05
	cp.Decay = 80
	cp.Depth = 0.1
	cp.MinCai = 0.0001
}

func (cp *CaDynParams) Vars() []string { return []string{"gamma", "decay", "depth", "minCai"} }

func (cp *CaDynParams) Var(nm string) (float64, bool) {
	switch nm {
	case "gamma":
		return cp.Gamma, true
	case "decay":
		return cp.Decay, true
	case "depth":
		return cp.Depth, true
	case "minCai":
		return cp.MinCai, true
	}
	return 0, false
}

func (cp *CaDynParams) SetVar(nm string, val float64) bool {
	switch nm {
	case "gamma":
		cp.Gamma = val
	case "decay":
		cp.Decay = val
	case "depth":
		cp.Depth = val
	case "minCai":
		cp.MinCai = val
	default:
		return false
	}
	return true
}
