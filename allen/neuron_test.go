// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allen

import (
	"sort"
	"strings"
	"testing"

	"github.com/emer/biocell/chans"
	"github.com/emer/biocell/morph"
	"github.com/goki/mat32"
)

const testFile = "testdata/small.swc"

// RegionParams are the fitted values each region must end up with
var RegionParams = map[morph.Regions]map[string]float64{
	morph.Apic: {
		"cm":    2.22,
		"g_pas": 3.18482838725e-05,
	},
	morph.Axon: {
		"cm":    1.0,
		"g_pas": 0.000264805794444,
	},
	morph.Dend: {
		"cm":    2.22,
		"g_pas": 9.78263312302e-06,
	},
	morph.Soma: {
		"cm":               1.0,
		"ena":              53.0,
		"ek":               -107.0,
		"gbar_Im":          1.56341e-05,
		"gbar_Ih":          3.45384e-05,
		"gbar_NaTs":        0.71282,
		"gbar_Nap":         0.000247043,
		"gbar_K_P":         0.0248444,
		"gbar_K_T":         0.00296613,
		"gbar_SK":          0.000151241,
		"gbar_Kv3_1":       0.118104,
		"gbar_Ca_HVA":      0.000197121,
		"gbar_Ca_LVA":      0.00784187,
		"gamma_CaDynamics": 0.00178784,
		"decay_CaDynamics": 971.922,
		"g_pas":            1.66466e-05,
	},
}

func MakeTestNeuron(t *testing.T, name string, shift mat32.Vec3) *Neuron {
	t.Helper()
	var bp BuildParams
	bp.Defaults()
	bp.Name = name
	bp.Shift = shift
	bp.MorphFile = testFile
	nr, err := New(&bp)
	if err != nil {
		t.Fatal(err)
	}
	return nr
}

func TestAllIsUnion(t *testing.T) {
	nr := MakeTestNeuron(t, ModelName, mat32.Vec3{})
	var union []int
	for reg := morph.Soma; reg < morph.RegionsN; reg++ {
		union = append(union, nr.Group(reg)...)
	}
	all := append([]int(nil), nr.All...)
	sort.Ints(union)
	sort.Ints(all)
	if len(all) != len(union) || len(all) != nr.NSecs() {
		t.Fatalf("all: %v union: %v n secs: %d", all, union, nr.NSecs())
	}
	for i := range all {
		if all[i] != union[i] {
			t.Errorf("all != union of regions: %v vs %v", all, union)
			break
		}
	}
	ns := []int{1, 4, 1, 2}
	for reg := morph.Soma; reg < morph.RegionsN; reg++ {
		if n := len(nr.Group(reg)); n != ns[reg] {
			t.Errorf("%v: got %d sections, want %d", reg, n, ns[reg])
		}
	}
}

func TestAxonStub(t *testing.T) {
	nr := MakeTestNeuron(t, ModelName, mat32.Vec3{})
	axon := nr.Group(morph.Axon)
	if len(axon) != 2 {
		t.Fatalf("axon: got %d sections, want 2", len(axon))
	}
	for i, si := range axon {
		sc := nr.Sec(si)
		if sc.L != 30 || sc.Diam != 1 || sc.Nseg != 1 {
			t.Errorf("%s: L %v diam %v nseg %d", sc.Nm, sc.L, sc.Diam, sc.Nseg)
		}
		if len(sc.Pts) != 0 {
			t.Errorf("%s: synthetic axon should have no 3D points", sc.Nm)
		}
		want := []string{"axon[0]", "axon[1]"}[i]
		if sc.Nm != want {
			t.Errorf("axon %d: name %q, want %q", i, sc.Nm, want)
		}
	}
	a0 := nr.Sec(axon[0])
	a1 := nr.Sec(axon[1])
	if nr.Sec(a0.Parent).Nm != "soma[0]" || a0.ParentX != 0.5 {
		t.Errorf("axon[0] attached to %s(%v)", nr.Sec(a0.Parent).Nm, a0.ParentX)
	}
	if a1.Parent != axon[0] || a1.ParentX != 1 {
		t.Errorf("axon[1] attached to %s(%v)", nr.Sec(a1.Parent).Nm, a1.ParentX)
	}
}

func TestDiscretized(t *testing.T) {
	nr := MakeTestNeuron(t, ModelName, mat32.Vec3{})
	for _, si := range nr.All {
		sc := nr.Sec(si)
		if sc.Nseg != 1+2*int(sc.L/40) {
			t.Errorf("%s: L %v nseg %d", sc.Nm, sc.L, sc.Nseg)
		}
	}
	ap, err := nr.SecByName("apic[0]")
	if err != nil {
		t.Fatal(err)
	}
	if ap.Nseg != 7 {
		t.Errorf("apic[0] nseg: got %d, want 7", ap.Nseg)
	}
}

func TestMechs(t *testing.T) {
	nr := MakeTestNeuron(t, ModelName, mat32.Vec3{})
	for _, si := range nr.All {
		sc := nr.Sec(si)
		if !sc.HasMech(chans.Pas) {
			t.Errorf("%s: no pas", sc.Nm)
		}
		for _, mc := range chans.ActiveMechs {
			if sc.HasMech(mc) != (sc.Nm == "soma[0]") {
				t.Errorf("%s: has %s: %v", sc.Nm, mc.NrnName(), sc.HasMech(mc))
			}
		}
	}
	soma, _ := nr.SecByName("soma[0]")
	if len(soma.Mechs) != 12 {
		t.Errorf("soma[0] mechs: got %d, want 12", len(soma.Mechs))
	}
	if got := nr.MechSecs(chans.NaTs); len(got) != 1 || got[0] != "soma[0]" {
		t.Errorf("NaTs sections: %v", got)
	}
}

func TestParams(t *testing.T) {
	nr := MakeTestNeuron(t, ModelName, mat32.Vec3{})
	for _, si := range nr.All {
		sc := nr.Sec(si)
		if sc.Ra != 26.95 {
			t.Errorf("%s: Ra got %v", sc.Nm, sc.Ra)
		}
		if sc.Pas.E != -92.7820739746 {
			t.Errorf("%s: e_pas got %v", sc.Nm, sc.Pas.E)
		}
		for nm, want := range RegionParams[sc.Region] {
			got, err := sc.Param(nm)
			if err != nil {
				t.Errorf("%s: %v", sc.Nm, err)
				continue
			}
			if got != want {
				t.Errorf("%s: %s got %v, want %v", sc.Nm, nm, got, want)
			}
		}
	}
	// values not in the table keep their defaults
	soma, _ := nr.SecByName("soma[0]")
	if soma.CaDynamics.Depth != 0.1 || soma.CaDynamics.MinCai != 0.0001 {
		t.Errorf("CaDynamics defaults changed: %+v", soma.CaDynamics)
	}
	dend, _ := nr.SecByName("dend[0]")
	if dend.Erev.Na != 50 || dend.Erev.K != -77 {
		t.Errorf("dend reversal potentials: %+v", dend.Erev)
	}
	if !strings.Contains(nr.AllParams(), "decay_CaDynamics") {
		t.Errorf("AllParams missing decay_CaDynamics")
	}
}

func TestString(t *testing.T) {
	a := MakeTestNeuron(t, "cellA", mat32.Vec3{})
	b := MakeTestNeuron(t, "cellB", mat32.Vec3{})
	if a.String() != "cellA" || b.String() != "cellB" {
		t.Errorf("String: got %q %q", a.String(), b.String())
	}
	c := MakeTestNeuron(t, "", mat32.Vec3{})
	if c.String() != FallbackName {
		t.Errorf("String with no name: got %q, want %q", c.String(), FallbackName)
	}
	var bp BuildParams
	bp.Defaults()
	if bp.Name != ModelName || bp.MorphFile != MorphFile || bp.Shift != (mat32.Vec3{}) {
		t.Errorf("BuildParams defaults: %+v", bp)
	}
}

func TestShift(t *testing.T) {
	ref := MakeTestNeuron(t, "ref", mat32.Vec3{})
	shift := mat32.Vec3{X: -100, Y: 42.5, Z: 7}
	nr := MakeTestNeuron(t, "shifted", shift)
	if nr.NSecs() != ref.NSecs() {
		t.Fatalf("sections: got %d, want %d", nr.NSecs(), ref.NSecs())
	}
	for si := range ref.Secs {
		rsc := ref.Sec(si)
		sc := nr.Sec(si)
		if sc.Nm != rsc.Nm || sc.L != rsc.L || sc.Diam != rsc.Diam {
			t.Errorf("%s: geometry changed by shift", sc.Nm)
		}
		if len(sc.Pts) != len(rsc.Pts) {
			t.Fatalf("%s: got %d pts, want %d", sc.Nm, len(sc.Pts), len(rsc.Pts))
		}
		for pi := range rsc.Pts {
			want := rsc.Pts[pi].Pos.Add(shift)
			if sc.Pts[pi].Pos != want {
				t.Errorf("%s pt %d: got %v, want %v", sc.Nm, pi, sc.Pts[pi].Pos, want)
			}
		}
	}
}

func TestBuildErrors(t *testing.T) {
	// the default reconstruction is not shipped with the package
	if nr, err := New(nil); err == nil || nr != nil {
		t.Errorf("default morphology %s: expected error when absent", MorphFile)
	}
	var bp BuildParams
	bp.Defaults()
	bp.MorphFile = "testdata/missing.swc"
	if nr, err := New(&bp); err == nil || nr != nil {
		t.Errorf("missing morphology: expected error and no neuron")
	}
	bp.MorphFile = testFile
	bp.ParamSet = "NoSuchSet"
	if nr, err := New(&bp); err == nil || nr != nil {
		t.Errorf("missing params sheet: expected error and no neuron")
	}
}

func TestReplaceLoadedAxon(t *testing.T) {
	mp, err := morph.Load(testFile, morph.ImportOpts{UseAxon: true})
	if err != nil {
		t.Fatal(err)
	}
	nr := &Neuron{}
	nr.Params.Defaults()
	nr.Nm = "withAxon"
	if err := nr.Build(mp); err != nil {
		t.Fatal(err)
	}
	axon := nr.Group(morph.Axon)
	if len(axon) != 2 {
		t.Fatalf("axon: got %d sections, want 2", len(axon))
	}
	for _, si := range axon {
		if sc := nr.Sec(si); sc.L != 30 || len(sc.Pts) != 0 {
			t.Errorf("%s: reconstructed axon not replaced: L %v", sc.Nm, sc.L)
		}
	}
	if len(nr.All) != 8 {
		t.Errorf("all: got %d sections, want 8", len(nr.All))
	}
}
