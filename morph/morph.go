// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package morph loads neuron morphologies from SWC files and breaks them
into unbranched branches, each of which becomes one section of a
multi-compartment cable model.

All soma samples become a single soma branch.  Every other chain of samples
becomes a branch that ends at a leaf, a bifurcation or a change of structure
type.  Branches leaving the soma attach at its midpoint (0.5), all others at
the distal end (1) of their parent branch.
*/
package morph

import (
	"fmt"
	"log"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/chewxy/math32"
	"github.com/emer/etable/minmax"
	"github.com/goki/mat32"
)

// ImportOpts control how a morphology is imported
type ImportOpts struct {
	UseAxon bool       `def:"true" desc:"import the axon -- if false, axon samples and everything below them are dropped"`
	Shift   mat32.Vec3 `desc:"offset added to every sample position"`
}

func (op *ImportOpts) Defaults() {
	op.UseAxon = true
	op.Shift = mat32.Vec3{}
}

// Pt3D is a 3D point along a branch with the branch diameter at that point
type Pt3D struct {
	Pos  mat32.Vec3
	Diam float32
}

// Branch is an unbranched piece of the morphology
type Branch struct {
	Region  Regions `desc:"anatomical region"`
	Parent  int     `desc:"index of parent branch in Morph.Branches, -1 for the soma"`
	ParentX float32 `desc:"position along the parent where this branch attaches: 0.5 for soma children, 1 otherwise"`
	Pts     []Pt3D  `desc:"3D points -- non-soma branches start at the last point of their parent"`
}

// Length returns the path length along the points
func (br *Branch) Length() float32 {
	l := float32(0)
	for i := 1; i < len(br.Pts); i++ {
		l += br.Pts[i].Pos.DistTo(br.Pts[i-1].Pos)
	}
	return l
}

// Diam returns the length-weighted mean diameter, or the plain mean
// if the branch has zero length
func (br *Branch) Diam() float32 {
	np := len(br.Pts)
	if np == 0 {
		return 0
	}
	sum := float32(0)
	l := float32(0)
	for i := 1; i < np; i++ {
		dl := br.Pts[i].Pos.DistTo(br.Pts[i-1].Pos)
		sum += dl * 0.5 * (br.Pts[i].Diam + br.Pts[i-1].Diam)
		l += dl
	}
	if l > 0 {
		return sum / l
	}
	sum = 0
	for _, p := range br.Pts {
		sum += p.Diam
	}
	return sum / float32(np)
}

// Area returns the lateral surface area of the frusta between points
func (br *Branch) Area() float32 {
	return FrustaArea(br.Pts)
}

// FrustaArea returns the lateral surface area of the truncated cones
// joining successive points
func FrustaArea(pts []Pt3D) float32 {
	a := float32(0)
	for i := 1; i < len(pts); i++ {
		r0 := 0.5 * pts[i-1].Diam
		r1 := 0.5 * pts[i].Diam
		dl := pts[i].Pos.DistTo(pts[i-1].Pos)
		a += math32.Pi * (r0 + r1) * math32.Sqrt(dl*dl+(r1-r0)*(r1-r0))
	}
	return a
}

// Morph is a morphology broken into branches.  Branches[0] is always the soma.
type Morph struct {
	File     string   `desc:"file the morphology was loaded from, if any"`
	NPts     int      `desc:"number of SWC samples used"`
	Branches []Branch `desc:"the branches, soma first, then in depth-first order of the samples"`
}

// NBranches returns the number of branches in given region
func (mp *Morph) NBranches(reg Regions) int {
	n := 0
	for i := range mp.Branches {
		if mp.Branches[i].Region == reg {
			n++
		}
	}
	return n
}

// Extents returns the range of positions along X, Y and Z over all points
func (mp *Morph) Extents() [3]minmax.F32 {
	var ext [3]minmax.F32
	for d := range ext {
		ext[d].SetInfinity()
	}
	for bi := range mp.Branches {
		for _, p := range mp.Branches[bi].Pts {
			ext[0].FitValInRange(p.Pos.X)
			ext[1].FitValInRange(p.Pos.Y)
			ext[2].FitValInRange(p.Pos.Z)
		}
	}
	return ext
}

// Load reads the SWC file and builds the morphology with given options.
// The file is closed before returning.
func Load(fname string, opts ImportOpts) (*Morph, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("morph.Load: %w", err)
	}
	defer fp.Close()
	var sz int64
	if fi, err := fp.Stat(); err == nil {
		sz = fi.Size()
	}
	pts, err := ReadSWC(fp)
	if err != nil {
		return nil, fmt.Errorf("morph.Load: %s: %w", fname, err)
	}
	mp, err := Build(pts, opts)
	if err != nil {
		return nil, fmt.Errorf("morph.Load: %s: %w", fname, err)
	}
	mp.File = fname
	log.Printf("morph.Load: %s (%s): %d samples, %d branches\n", fname, datasize.ByteSize(sz).HumanReadable(), mp.NPts, len(mp.Branches))
	return mp, nil
}

// builder holds the sample graph during Build
type builder struct {
	opts  ImportOpts
	pts   []Point
	idx   map[int]int
	kids  [][]int
	drop  []bool
	morph *Morph
}

// Build turns SWC sample points into a morphology of branches.
// The sample graph must form a forest with at least one soma sample.
func Build(pts []Point, opts ImportOpts) (*Morph, error) {
	bd := &builder{opts: opts, pts: pts, morph: &Morph{}}
	if err := bd.graph(); err != nil {
		return nil, err
	}
	bd.dropAxon()
	if err := bd.soma(); err != nil {
		return nil, err
	}
	// neurites leaving the soma, or rooted on their own
	for i := range pts {
		pt := &pts[i]
		if pt.Type == SWCSoma || bd.drop[i] {
			continue
		}
		if pt.Parent == -1 {
			bd.branch(i, 0, 0.5, nil)
			continue
		}
		pi := bd.index(pt.Parent)
		if pts[pi].Type == SWCSoma {
			bd.branch(i, 0, 0.5, nil)
		}
	}
	for i := range pts {
		if !bd.drop[i] {
			bd.morph.NPts++
		}
	}
	return bd.morph, nil
}

// graph validates ids and parents and records children in file order
func (bd *builder) graph() error {
	ids := make(map[int]int, len(bd.pts))
	for i := range bd.pts {
		id := bd.pts[i].ID
		if _, has := ids[id]; has {
			return fmt.Errorf("morph.Build: duplicate sample id %d", id)
		}
		ids[id] = i
	}
	bd.kids = make([][]int, len(bd.pts))
	bd.drop = make([]bool, len(bd.pts))
	roots := 0
	for i := range bd.pts {
		par := bd.pts[i].Parent
		if par == -1 {
			roots++
			continue
		}
		pi, has := ids[par]
		if !has {
			return fmt.Errorf("morph.Build: sample %d has unknown parent %d", bd.pts[i].ID, par)
		}
		if pi == i {
			return fmt.Errorf("morph.Build: sample %d is its own parent", bd.pts[i].ID)
		}
		bd.kids[pi] = append(bd.kids[pi], i)
	}
	if roots == 0 {
		return fmt.Errorf("morph.Build: no root sample (parent -1)")
	}
	// every sample must be reachable from a root, else there is a cycle
	seen := 0
	var stack []int
	for i := range bd.pts {
		if bd.pts[i].Parent == -1 {
			stack = append(stack, i)
		}
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seen++
		stack = append(stack, bd.kids[i]...)
	}
	if seen != len(bd.pts) {
		return fmt.Errorf("morph.Build: sample graph has a cycle")
	}
	bd.idx = ids
	return nil
}

// index returns the slice index of the sample with given id
func (bd *builder) index(id int) int {
	return bd.idx[id]
}

// dropAxon marks axon samples and all samples below them as dropped
func (bd *builder) dropAxon() {
	if bd.opts.UseAxon {
		return
	}
	var mark func(i int)
	mark = func(i int) {
		bd.drop[i] = true
		for _, k := range bd.kids[i] {
			mark(k)
		}
	}
	for i := range bd.pts {
		if bd.pts[i].Type == SWCAxon && !bd.drop[i] {
			mark(i)
		}
	}
}

// pt3d returns the shifted 3D point for sample i
func (bd *builder) pt3d(i int) Pt3D {
	pt := &bd.pts[i]
	return Pt3D{Pos: pt.Pos.Add(bd.opts.Shift), Diam: 2 * pt.Radius}
}

// soma builds the single soma branch from all soma samples in file order.
// The three point soma (center, then two samples at -r and +r along y,
// both children of the center) is reordered to run through the center.
func (bd *builder) soma() error {
	br := Branch{Region: Soma, Parent: -1}
	var sis []int
	for i := range bd.pts {
		if bd.pts[i].Type == SWCSoma {
			sis = append(sis, i)
		}
	}
	if bd.threePtSoma(sis) {
		sis[0], sis[1] = sis[1], sis[0]
	}
	for _, i := range sis {
		br.Pts = append(br.Pts, bd.pt3d(i))
	}
	switch len(br.Pts) {
	case 0:
		return fmt.Errorf("morph.Build: no soma samples")
	case 1:
		// single point soma: cylinder along y with length == diameter
		c := br.Pts[0]
		r := 0.5 * c.Diam
		br.Pts = []Pt3D{
			{Pos: mat32.Vec3{X: c.Pos.X, Y: c.Pos.Y - r, Z: c.Pos.Z}, Diam: c.Diam},
			c,
			{Pos: mat32.Vec3{X: c.Pos.X, Y: c.Pos.Y + r, Z: c.Pos.Z}, Diam: c.Diam},
		}
	}
	bd.morph.Branches = append(bd.morph.Branches, br)
	return nil
}

// threePtSoma returns true if the soma samples are a center followed by
// two samples that both have the center as parent
func (bd *builder) threePtSoma(sis []int) bool {
	if len(sis) != 3 {
		return false
	}
	cid := bd.pts[sis[0]].ID
	return bd.pts[sis[1]].Parent == cid && bd.pts[sis[2]].Parent == cid
}

// branch builds the branch starting at sample i, attached to parent branch
// par at x, and then recursively builds its children.  prev is the last
// point of the parent, which starts the branch (nil for soma children).
func (bd *builder) branch(i, par int, x float32, prev *Pt3D) {
	typ := bd.pts[i].Type
	br := Branch{Region: RegionForSWC(typ), Parent: par, ParentX: x}
	if prev != nil {
		br.Pts = append(br.Pts, *prev)
	}
	cur := i
	var kids []int
	for {
		br.Pts = append(br.Pts, bd.pt3d(cur))
		kids = kids[:0]
		for _, k := range bd.kids[cur] {
			if !bd.drop[k] && bd.pts[k].Type != SWCSoma {
				kids = append(kids, k)
			}
		}
		if len(kids) != 1 || bd.pts[kids[0]].Type != typ {
			break
		}
		cur = kids[0]
	}
	bi := len(bd.morph.Branches)
	bd.morph.Branches = append(bd.morph.Branches, br)
	last := br.Pts[len(br.Pts)-1]
	for _, k := range kids {
		bd.branch(k, bi, 1, &last)
	}
}
