// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cell provides a multi-compartment cable model of a single neuron:
a tree of sections, each with geometry, discretization, inserted membrane
mechanisms and their parameters, grouped by anatomical region.

The sections are held in a flat slice (Cell.Secs) and refer to their parent
by index, with the attachment position along the parent.  Region groups are
lists of section indexes.  Parameters are set in bulk by applying an
emergent params.Sheet, where the selector "Section" targets every section,
".soma", ".axon", ".dend" and ".apic" target a region, and "#soma[0]" a
single section.
*/
package cell

import (
	"fmt"
	"strings"

	"github.com/emer/biocell/chans"
	"github.com/emer/biocell/morph"
	"github.com/emer/emergent/params"
	"github.com/goki/ki/indent"
)

// Cell is a multi-compartment neuron model
type Cell struct {
	Nm     string                `desc:"name of the cell"`
	Secs   []Section             `desc:"all sections -- index with Secs[i], parents refer to indexes here"`
	Groups [morph.RegionsN][]int `desc:"section indexes for each region, in order of creation"`
	All    []int                 `desc:"indexes of all sections, in order of creation: the union of the region groups"`
}

// NewCell returns a new empty cell with given name
func NewCell(name string) *Cell {
	return &Cell{Nm: name}
}

func (cl *Cell) Name() string { return cl.Nm }

// NSecs returns the number of sections
func (cl *Cell) NSecs() int { return len(cl.Secs) }

// Sec returns section at given index -- the pointer is valid until
// sections are added or removed
func (cl *Cell) Sec(si int) *Section { return &cl.Secs[si] }

// Group returns the section indexes in given region
func (cl *Cell) Group(reg morph.Regions) []int { return cl.Groups[reg] }

// SecByName returns the section with given name, e.g., soma[0]
func (cl *Cell) SecByName(nm string) (*Section, error) {
	for si := range cl.Secs {
		if cl.Secs[si].Nm == nm {
			return &cl.Secs[si], nil
		}
	}
	return nil, fmt.Errorf("cell.SecByName: section %q not found in cell %s", nm, cl.Nm)
}

// AddSection creates a new section in given region, with engine default
// geometry and parameters and no parent, adding it to its region group
// and to All.  Returns its index.
func (cl *Cell) AddSection(reg morph.Regions) int {
	si := len(cl.Secs)
	ri := len(cl.Groups[reg])
	cl.Secs = append(cl.Secs, Section{})
	sc := &cl.Secs[si]
	sc.Defaults()
	sc.Region = reg
	sc.RegIdx = ri
	sc.Index = si
	sc.Nm = fmt.Sprintf("%s[%d]", reg.SecName(), ri)
	sc.Parent = -1
	cl.Groups[reg] = append(cl.Groups[reg], si)
	cl.All = append(cl.All, si)
	return si
}

// Connect attaches the start (0 end) of section child to position x
// along section par.  A section can only have one parent, and
// connections must not form a cycle.
func (cl *Cell) Connect(child, par int, x float64) error {
	ns := len(cl.Secs)
	if child < 0 || child >= ns || par < 0 || par >= ns {
		return fmt.Errorf("cell.Connect: section index out of range: child %d, parent %d, n secs %d", child, par, ns)
	}
	if child == par {
		return fmt.Errorf("cell.Connect: cannot connect %s to itself", cl.Secs[child].Nm)
	}
	if x < 0 || x > 1 {
		return fmt.Errorf("cell.Connect: position %g on %s not in [0,1]", x, cl.Secs[par].Nm)
	}
	csc := &cl.Secs[child]
	if csc.Parent >= 0 {
		return fmt.Errorf("cell.Connect: %s already connected to %s", csc.Nm, cl.Secs[csc.Parent].Nm)
	}
	for pi := par; pi >= 0; pi = cl.Secs[pi].Parent {
		if pi == child {
			return fmt.Errorf("cell.Connect: connecting %s to %s would form a cycle", csc.Nm, cl.Secs[par].Nm)
		}
	}
	csc.Parent = par
	csc.ParentX = x
	return nil
}

// Children returns the indexes of the sections attached to given section
func (cl *Cell) Children(si int) []int {
	var ch []int
	for i := range cl.Secs {
		if cl.Secs[i].Parent == si {
			ch = append(ch, i)
		}
	}
	return ch
}

// Roots returns the indexes of the sections without a parent
func (cl *Cell) Roots() []int {
	var rt []int
	for i := range cl.Secs {
		if cl.Secs[i].Parent < 0 {
			rt = append(rt, i)
		}
	}
	return rt
}

// LoadMorph creates one section per branch of the morphology, in region
// order (soma, dend, apic, axon), sets the geometry from the 3D points
// and connects the sections as in the morphology.
func (cl *Cell) LoadMorph(mp *morph.Morph) error {
	if len(mp.Branches) == 0 || mp.Branches[0].Region != morph.Soma {
		return fmt.Errorf("cell.LoadMorph: morphology must start with the soma branch")
	}
	secOf := make([]int, len(mp.Branches))
	for reg := morph.Soma; reg < morph.RegionsN; reg++ {
		for bi := range mp.Branches {
			br := &mp.Branches[bi]
			if br.Region != reg {
				continue
			}
			si := cl.AddSection(reg)
			sc := &cl.Secs[si]
			sc.Pts = append([]morph.Pt3D(nil), br.Pts...)
			sc.L = float64(br.Length())
			sc.Diam = float64(br.Diam())
			secOf[bi] = si
		}
	}
	for bi := range mp.Branches {
		br := &mp.Branches[bi]
		if br.Parent < 0 {
			continue
		}
		if err := cl.Connect(secOf[bi], secOf[br.Parent], float64(br.ParentX)); err != nil {
			return fmt.Errorf("cell.LoadMorph: %w", err)
		}
	}
	return nil
}

// RemoveRegion removes all sections in given region along with every
// section below them in the tree.  Remaining sections keep their order and
// are renumbered within their regions.  Returns the number removed.
func (cl *Cell) RemoveRegion(reg morph.Regions) int {
	ns := len(cl.Secs)
	drop := make([]bool, ns)
	for si := range cl.Secs {
		for pi := si; pi >= 0; pi = cl.Secs[pi].Parent {
			if cl.Secs[pi].Region == reg {
				drop[si] = true
				break
			}
		}
	}
	remap := make([]int, ns)
	var secs []Section
	for si := range cl.Secs {
		if drop[si] {
			remap[si] = -1
			continue
		}
		remap[si] = len(secs)
		secs = append(secs, cl.Secs[si])
	}
	nrm := ns - len(secs)
	if nrm == 0 {
		return 0
	}
	cl.Secs = secs
	cl.All = nil
	for r := range cl.Groups {
		cl.Groups[r] = nil
	}
	for si := range cl.Secs {
		sc := &cl.Secs[si]
		if sc.Parent >= 0 {
			sc.Parent = remap[sc.Parent]
		}
		sc.Index = si
		sc.RegIdx = len(cl.Groups[sc.Region])
		sc.Nm = fmt.Sprintf("%s[%d]", sc.Region.SecName(), sc.RegIdx)
		cl.Groups[sc.Region] = append(cl.Groups[sc.Region], si)
		cl.All = append(cl.All, si)
	}
	return nrm
}

// Insert inserts the mechanism into section si
func (cl *Cell) Insert(si int, mc chans.Mechs) error {
	if si < 0 || si >= len(cl.Secs) {
		return fmt.Errorf("cell.Insert: section index %d out of range", si)
	}
	return cl.Secs[si].Insert(mc)
}

// InsertByName inserts the mechanism with given name (e.g., Ca_HVA)
// into section si.  Unknown names are an error.
func (cl *Cell) InsertByName(si int, nm string) error {
	mc, err := chans.MechByName(nm)
	if err != nil {
		return fmt.Errorf("cell.InsertByName: %w", err)
	}
	return cl.Insert(si, mc)
}

// InsertAll inserts the mechanism into every section
func (cl *Cell) InsertAll(mc chans.Mechs) error {
	for _, si := range cl.All {
		if err := cl.Insert(si, mc); err != nil {
			return err
		}
	}
	return nil
}

// Discretize sets the number of segments of every section from its length
func (cl *Cell) Discretize() {
	for _, si := range cl.All {
		cl.Secs[si].Discretize()
	}
}

// ApplyParams applies given parameter style Sheet to all sections, in order.
// Selectors later in the sheet override earlier ones.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// it always prints a message if a parameter fails to be set.
// returns true if any params were set, and error if there were any errors.
func (cl *Cell) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied := false
	var rerr error
	for _, si := range cl.All {
		app, err := pars.Apply(&cl.Secs[si], setMsg)
		if app {
			applied = true
		}
		if err != nil {
			rerr = err
		}
	}
	return applied, rerr
}

// CheckParams checks all sections for parameters set on mechanisms
// they do not have
func (cl *Cell) CheckParams() error {
	for _, si := range cl.All {
		if err := cl.Secs[si].CheckParams(); err != nil {
			return err
		}
	}
	return nil
}

// String returns the section tree, one section per line, indented by depth
func (cl *Cell) String() string {
	var b strings.Builder
	b.WriteString(cl.Nm + "\n")
	var wr func(si, depth int)
	wr = func(si, depth int) {
		sc := &cl.Secs[si]
		fmt.Fprintf(&b, "%s%s(%g) L: %.4g diam: %.4g nseg: %d\n", indent.Tabs(depth+1), sc.Nm, sc.ParentX, sc.L, sc.Diam, sc.Nseg)
		for _, ci := range cl.Children(si) {
			wr(ci, depth+1)
		}
	}
	for _, ri := range cl.Roots() {
		wr(ri, 0)
	}
	return b.String()
}
