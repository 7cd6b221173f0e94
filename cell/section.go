// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"fmt"
	"math"

	"github.com/emer/biocell/chans"
	"github.com/emer/biocell/morph"
)

// Section is a cylindrical compartment of the cable model with uniform
// electrical properties, discretized into Nseg segments.
// Parameters of mechanisms that are not inserted are kept at their
// defaults and are not visible through Param.
type Section struct {
	Nm      string        `desc:"name, e.g., soma[0] -- region name and index within region"`
	Cls     string        `desc:"additional space-separated classes for params selectors -- the region name is always a class"`
	Region  morph.Regions `desc:"anatomical region"`
	RegIdx  int           `desc:"index within the region group"`
	Index   int           `desc:"index in Cell.Secs"`
	Parent  int           `desc:"index of parent section in Cell.Secs, -1 if not connected"`
	ParentX float64       `desc:"position along the parent (0-1) where this section attaches"`
	Pts     []morph.Pt3D  `desc:"3D points from the morphology, empty for synthesized sections"`

	L    float64    `def:"100" desc:"length (um)"`
	Diam float64    `def:"500" desc:"diameter (um)"`
	Ra   float64    `def:"35.4" desc:"axial resistivity (ohm cm)"`
	Cm   float64    `def:"1" desc:"specific membrane capacitance (uF/cm2)"`
	Nseg int        `def:"1" desc:"number of segments for spatial discretization"`
	Erev chans.Erev `view:"inline" desc:"ionic reversal potentials (ena, ek)"`

	Mechs []chans.Mechs `desc:"inserted mechanisms, in order of insertion"`

	Pas        chans.PasParams   `view:"inline" desc:"passive leak"`
	CaDynamics chans.CaDynParams `view:"inline" desc:"calcium dynamics"`
	CaHVA      chans.GbarParams  `view:"inline" desc:"high voltage activated calcium"`
	CaLVA      chans.GbarParams  `view:"inline" desc:"low voltage activated calcium"`
	Ih         chans.GbarParams  `view:"inline" desc:"hyperpolarization activated cation"`
	Im         chans.GbarParams  `view:"inline" desc:"muscarinic potassium"`
	KP         chans.GbarParams  `view:"inline" desc:"persistent potassium"`
	KT         chans.GbarParams  `view:"inline" desc:"transient potassium"`
	Kv31       chans.GbarParams  `view:"inline" desc:"Kv3.1 potassium"`
	NaTs       chans.GbarParams  `view:"inline" desc:"transient sodium"`
	Nap        chans.GbarParams  `view:"inline" desc:"persistent sodium"`
	SK         chans.GbarParams  `view:"inline" desc:"calcium activated potassium"`
}

// params.Styler interface methods

func (sc *Section) TypeName() string { return "Section" } // type category, for params..
func (sc *Section) Class() string {
	if sc.Cls == "" {
		return sc.Region.SecName()
	}
	return sc.Region.SecName() + " " + sc.Cls
}
func (sc *Section) Name() string { return sc.Nm }

// Defaults sets the engine defaults for a new section
func (sc *Section) Defaults() {
	sc.L = 100
	sc.Diam = 500
	sc.Ra = 35.4
	sc.Cm = 1
	sc.Nseg = 1
	sc.Erev.Defaults()
	sc.Mechs = nil
	for mc := chans.Pas; mc < chans.MechsN; mc++ {
		sc.MechParams(mc).Defaults()
	}
}

// MechParams returns the parameter record for given mechanism,
// whether or not it is inserted
func (sc *Section) MechParams(mc chans.Mechs) chans.MechParams {
	switch mc {
	case chans.Pas:
		return &sc.Pas
	case chans.CaDynamics:
		return &sc.CaDynamics
	case chans.CaHVA:
		return &sc.CaHVA
	case chans.CaLVA:
		return &sc.CaLVA
	case chans.Ih:
		return &sc.Ih
	case chans.Im:
		return &sc.Im
	case chans.KP:
		return &sc.KP
	case chans.KT:
		return &sc.KT
	case chans.Kv31:
		return &sc.Kv31
	case chans.NaTs:
		return &sc.NaTs
	case chans.Nap:
		return &sc.Nap
	case chans.SK:
		return &sc.SK
	}
	return nil
}

// HasMech returns true if given mechanism is inserted
func (sc *Section) HasMech(mc chans.Mechs) bool {
	for _, m := range sc.Mechs {
		if m == mc {
			return true
		}
	}
	return false
}

// Insert inserts given mechanism.  Inserting a mechanism that is already
// present does nothing; otherwise its parameters start at their defaults.
func (sc *Section) Insert(mc chans.Mechs) error {
	mp := sc.MechParams(mc)
	if mp == nil {
		return fmt.Errorf("cell.Section.Insert: %s: unknown mechanism %v", sc.Nm, mc)
	}
	if sc.HasMech(mc) {
		return nil
	}
	mp.Defaults()
	sc.Mechs = append(sc.Mechs, mc)
	return nil
}

// MechVals returns the parameters of an inserted mechanism as a map
// from full parameter name (e.g., gbar_NaTs) to value.
// Returns nil if the mechanism is not inserted.
func (sc *Section) MechVals(mc chans.Mechs) map[string]float64 {
	if !sc.HasMech(mc) {
		return nil
	}
	mp := sc.MechParams(mc)
	vals := make(map[string]float64)
	for _, vr := range mp.Vars() {
		v, _ := mp.Var(vr)
		vals[chans.ParamName(mc, vr)] = v
	}
	return vals
}

// Param returns the value of a section parameter by name: L, diam, Ra, cm,
// nseg, ena, ek, or a mechanism parameter such as g_pas or gbar_NaTs.
// Mechanism parameters are only accessible if the mechanism is inserted.
func (sc *Section) Param(nm string) (float64, error) {
	switch nm {
	case "L":
		return sc.L, nil
	case "diam":
		return sc.Diam, nil
	case "Ra":
		return sc.Ra, nil
	case "cm":
		return sc.Cm, nil
	case "nseg":
		return float64(sc.Nseg), nil
	case "ena":
		return sc.Erev.Na, nil
	case "ek":
		return sc.Erev.K, nil
	}
	mc, vr, err := chans.SplitParamName(nm)
	if err != nil {
		return 0, fmt.Errorf("cell.Section.Param: %s: %w", sc.Nm, err)
	}
	if !sc.HasMech(mc) {
		return 0, fmt.Errorf("cell.Section.Param: %s: %s needs mechanism %s, which is not inserted", sc.Nm, nm, mc.NrnName())
	}
	v, _ := sc.MechParams(mc).Var(vr)
	return v, nil
}

// SetParam sets a section parameter by name, as in Param.
// Setting nseg rounds to the nearest integer, with a minimum of 1.
func (sc *Section) SetParam(nm string, val float64) error {
	switch nm {
	case "L":
		sc.L = val
		return nil
	case "diam":
		sc.Diam = val
		return nil
	case "Ra":
		sc.Ra = val
		return nil
	case "cm":
		sc.Cm = val
		return nil
	case "nseg":
		sc.Nseg = max(int(val+0.5), 1)
		return nil
	case "ena":
		sc.Erev.Na = val
		return nil
	case "ek":
		sc.Erev.K = val
		return nil
	}
	mc, vr, err := chans.SplitParamName(nm)
	if err != nil {
		return fmt.Errorf("cell.Section.SetParam: %s: %w", sc.Nm, err)
	}
	if !sc.HasMech(mc) {
		return fmt.Errorf("cell.Section.SetParam: %s: %s needs mechanism %s, which is not inserted", sc.Nm, nm, mc.NrnName())
	}
	sc.MechParams(mc).SetVar(vr, val)
	return nil
}

// CheckParams returns an error if any parameter of a mechanism that is not
// inserted differs from its default -- i.e., it was set by a params
// selector targeting a section that lacks the mechanism.
// A parameter set to exactly its default value is not detected.
func (sc *Section) CheckParams() error {
	for mc := chans.Pas; mc < chans.MechsN; mc++ {
		if sc.HasMech(mc) {
			continue
		}
		mp := sc.MechParams(mc)
		def := chans.NewParams(mc)
		for _, vr := range mp.Vars() {
			v, _ := mp.Var(vr)
			dv, _ := def.Var(vr)
			if v != dv {
				return fmt.Errorf("cell.Section.CheckParams: %s: %s = %g set, but mechanism %s is not inserted", sc.Nm, chans.ParamName(mc, vr), v, mc.NrnName())
			}
		}
	}
	return nil
}

// Area returns the membrane area (um2): that of the frusta through the
// 3D points if there are any, else of a cylinder with length L and
// diameter Diam
func (sc *Section) Area() float64 {
	if len(sc.Pts) > 1 {
		return float64(morph.FrustaArea(sc.Pts))
	}
	return math.Pi * sc.Diam * sc.L
}

// Discretize sets Nseg from the length: 1 + 2 * floor(L / 40),
// giving an odd number of segments that grows with length
func (sc *Section) Discretize() {
	sc.Nseg = 1 + 2*int(sc.L/40)
}
