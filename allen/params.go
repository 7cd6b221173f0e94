// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allen

import (
	"github.com/emer/emergent/params"
)

// SomaMechs are the active mechanisms inserted into soma[0]
var SomaMechs = []string{"CaDynamics", "Ca_HVA", "Ca_LVA", "Ih", "Im", "K_P", "K_T", "Kv3_1", "NaTs", "Nap", "SK"}

// ParamSets are the fitted parameters of the model.  Base is the
// published fit; the Section selector applies to all sections, and the
// region selectors that follow it override what they set.
var ParamSets = map[string]*params.Sheet{
	"Base": {
		{Sel: "Section", Desc: "all sections",
			Params: params.Params{
				"Section.Ra":    "26.95",
				"Section.Pas.E": "-92.7820739746",
			}},
		{Sel: ".apic", Desc: "apical dendrites",
			Params: params.Params{
				"Section.Cm":    "2.22",
				"Section.Pas.G": "3.18482838725e-05",
			}},
		{Sel: ".axon", Desc: "axon stub",
			Params: params.Params{
				"Section.Cm":    "1.0",
				"Section.Pas.G": "0.000264805794444",
			}},
		{Sel: ".dend", Desc: "basal dendrites",
			Params: params.Params{
				"Section.Cm":    "2.22",
				"Section.Pas.G": "9.78263312302e-06",
			}},
		{Sel: ".soma", Desc: "soma: active conductances",
			Params: params.Params{
				"Section.Cm":               "1.0",
				"Section.Erev.Na":          "53.0",
				"Section.Erev.K":           "-107.0",
				"Section.Im.Gbar":          "1.56341e-05",
				"Section.Ih.Gbar":          "3.45384e-05",
				"Section.NaTs.Gbar":        "0.71282",
				"Section.Nap.Gbar":         "0.000247043",
				"Section.KP.Gbar":          "0.0248444",
				"Section.KT.Gbar":          "0.00296613",
				"Section.SK.Gbar":          "0.000151241",
				"Section.Kv31.Gbar":        "0.118104",
				"Section.CaHVA.Gbar":       "0.000197121",
				"Section.CaLVA.Gbar":       "0.00784187",
				"Section.CaDynamics.Gamma": "0.00178784",
				"Section.CaDynamics.Decay": "971.922",
				"Section.Pas.G":            "1.66466e-05",
			}},
	},
}
