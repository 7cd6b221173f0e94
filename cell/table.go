// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"encoding/json"
	"strings"

	"github.com/emer/biocell/chans"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// SecTable configures given table with one row per section, listing its
// place in the tree, geometry and membrane area, discretization and main passive parameters.
func (cl *Cell) SecTable(dt *etable.Table) {
	sch := etable.Schema{
		{"Name", etensor.STRING, nil, nil},
		{"Region", etensor.STRING, nil, nil},
		{"Parent", etensor.STRING, nil, nil},
		{"ParentX", etensor.FLOAT64, nil, nil},
		{"L", etensor.FLOAT64, nil, nil},
		{"Diam", etensor.FLOAT64, nil, nil},
		{"Area", etensor.FLOAT64, nil, nil},
		{"Nseg", etensor.INT64, nil, nil},
		{"Ra", etensor.FLOAT64, nil, nil},
		{"Cm", etensor.FLOAT64, nil, nil},
		{"GPas", etensor.FLOAT64, nil, nil},
		{"EPas", etensor.FLOAT64, nil, nil},
		{"Mechs", etensor.STRING, nil, nil},
	}
	dt.SetFromSchema(sch, len(cl.All))
	dt.SetMetaData("name", cl.Nm)
	dt.SetMetaData("desc", "sections of cell "+cl.Nm)
	for row, si := range cl.All {
		sc := &cl.Secs[si]
		par := ""
		if sc.Parent >= 0 {
			par = cl.Secs[sc.Parent].Nm
		}
		mnms := make([]string, len(sc.Mechs))
		for i, mc := range sc.Mechs {
			mnms[i] = mc.NrnName()
		}
		dt.SetCellString("Name", row, sc.Nm)
		dt.SetCellString("Region", row, sc.Region.SecName())
		dt.SetCellString("Parent", row, par)
		dt.SetCellFloat("ParentX", row, sc.ParentX)
		dt.SetCellFloat("L", row, sc.L)
		dt.SetCellFloat("Diam", row, sc.Diam)
		dt.SetCellFloat("Area", row, sc.Area())
		dt.SetCellFloat("Nseg", row, float64(sc.Nseg))
		dt.SetCellFloat("Ra", row, sc.Ra)
		dt.SetCellFloat("Cm", row, sc.Cm)
		dt.SetCellFloat("GPas", row, sc.Pas.G)
		dt.SetCellFloat("EPas", row, sc.Pas.E)
		dt.SetCellString("Mechs", row, strings.Join(mnms, " "))
	}
}

// SecParams returns all the parameters of a section by their NEURON names:
// the section parameters plus those of every inserted mechanism
func (sc *Section) SecParams() map[string]float64 {
	pm := map[string]float64{
		"L":    sc.L,
		"diam": sc.Diam,
		"Ra":   sc.Ra,
		"cm":   sc.Cm,
		"nseg": float64(sc.Nseg),
		"ena":  sc.Erev.Na,
		"ek":   sc.Erev.K,
	}
	for _, mc := range sc.Mechs {
		for k, v := range sc.MechVals(mc) {
			pm[k] = v
		}
	}
	return pm
}

// AllParams returns a listing of all parameters of all sections
func (cl *Cell) AllParams() string {
	var b strings.Builder
	for _, si := range cl.All {
		sc := &cl.Secs[si]
		b.WriteString("/////////////////////////////////////////////////\nSection: " + sc.Nm + "\n")
		js, _ := json.MarshalIndent(sc.SecParams(), "", " ")
		b.WriteString(string(js) + "\n")
	}
	return b.String()
}

// MechSecs returns the names of the sections that have given mechanism
func (cl *Cell) MechSecs(mc chans.Mechs) []string {
	var nms []string
	for _, si := range cl.All {
		if cl.Secs[si].HasMech(mc) {
			nms = append(nms, cl.Secs[si].Nm)
		}
	}
	return nms
}
