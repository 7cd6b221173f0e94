// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package allen builds the perisomatic biophysical model 472427533 from the
Allen Cell Types Database, a Scnn1a-Tg2-Cre layer 4 neuron.

The reconstructed morphology is loaded without its axon, which is replaced
by a fixed stub of two 30 um sections.  Passive leak is inserted everywhere,
and the active conductances only in the soma.  Every section is then
discretized by length and the fitted parameters are applied by region.
*/
package allen

import (
	"fmt"
	"log"

	"github.com/emer/biocell/cell"
	"github.com/emer/biocell/chans"
	"github.com/emer/biocell/morph"
	"github.com/goki/mat32"
)

const (
	// ModelName is the default name of a new neuron
	ModelName = "Neuron472427533"

	// FallbackName is the string representation of a neuron without a name
	FallbackName = "Neuron472427533_instance"

	// MorphFile is the reconstruction the model was fit on.  It is not part
	// of this repository: download it from the Allen Cell Types Database
	// into the working directory, or set BuildParams.MorphFile.
	MorphFile = "Scnn1a-Tg2-Cre_Ai14_IVSCC_-176958.05.02.01_471750463_m.swc"
)

// AxonStub is the geometry of each of the two synthetic axon sections
type AxonStub struct {
	N     int     `def:"2" desc:"number of axon sections, connected in series from the soma"`
	L     float64 `def:"30" desc:"length (um) of each section"`
	Diam  float64 `def:"1" desc:"diameter (um) of each section"`
	Nseg  int     `def:"1" desc:"number of segments in each section"`
	SomaX float64 `def:"0.5" desc:"position along soma[0] where axon[0] attaches"`
}

func (as *AxonStub) Defaults() {
	as.N = 2
	as.L = 30
	as.Diam = 1
	as.Nseg = 1
	as.SomaX = 0.5
}

// BuildParams are the construction arguments for a Neuron.
// The default MorphFile must be obtained separately (see MorphFile), so
// New(nil) fails unless that file is in the working directory.
type BuildParams struct {
	Name      string     `desc:"name of the neuron, returned by String -- if empty, FallbackName is used"`
	Shift     mat32.Vec3 `desc:"offset added to every morphology coordinate"`
	MorphFile string     `desc:"SWC morphology file"`
	Axon      AxonStub   `view:"inline" desc:"synthetic axon that replaces the reconstructed one"`
	ParamSet  string     `def:"Base" desc:"name of the params sheet in ParamSets to apply"`
	SetMsg    bool       `desc:"print a message for each parameter that is set"`
}

func (bp *BuildParams) Defaults() {
	bp.Name = ModelName
	bp.Shift = mat32.Vec3{}
	bp.MorphFile = MorphFile
	bp.Axon.Defaults()
	bp.ParamSet = "Base"
	bp.SetMsg = false
}

// Neuron is the fully parameterized model
type Neuron struct {
	cell.Cell

	Params BuildParams  `desc:"parameters the neuron was built with"`
	Morph  *morph.Morph `view:"-" desc:"the morphology as loaded"`
}

// New builds a neuron with given parameters, or the defaults if bp is nil.
// Any failure aborts construction and no neuron is returned.
func New(bp *BuildParams) (*Neuron, error) {
	nr := &Neuron{}
	if bp == nil {
		nr.Params.Defaults()
	} else {
		nr.Params = *bp
	}
	nr.Nm = nr.Params.Name
	opts := morph.ImportOpts{UseAxon: false, Shift: nr.Params.Shift}
	mp, err := morph.Load(nr.Params.MorphFile, opts)
	if err != nil {
		return nil, fmt.Errorf("allen.New: %w", err)
	}
	if err := nr.Build(mp); err != nil {
		return nil, err
	}
	return nr, nil
}

// Build configures the neuron from an already loaded morphology
func (nr *Neuron) Build(mp *morph.Morph) error {
	nr.Morph = mp
	if err := nr.LoadMorph(mp); err != nil {
		return fmt.Errorf("allen.Build: %w", err)
	}
	if err := nr.ReplaceAxon(); err != nil {
		return fmt.Errorf("allen.Build: %w", err)
	}
	if err := nr.InsertMechs(); err != nil {
		return fmt.Errorf("allen.Build: %w", err)
	}
	nr.Discretize()
	if err := nr.SetParams(); err != nil {
		return fmt.Errorf("allen.Build: %w", err)
	}
	return nil
}

// String returns the name of the neuron, or FallbackName if it has none
func (nr *Neuron) String() string {
	if nr.Nm != "" {
		return nr.Nm
	}
	return FallbackName
}

// ReplaceAxon removes any axon sections and adds the synthetic stub:
// axon[0] attached to soma[0] at Axon.SomaX, each further section
// attached to the end (1) of the previous one
func (nr *Neuron) ReplaceAxon() error {
	if n := nr.RemoveRegion(morph.Axon); n > 0 {
		log.Printf("allen.ReplaceAxon: %s: removed %d reconstructed axon sections\n", nr.String(), n)
	}
	soma := nr.Group(morph.Soma)
	if len(soma) == 0 {
		return fmt.Errorf("allen.ReplaceAxon: %s: no soma", nr.String())
	}
	as := &nr.Params.Axon
	par, x := soma[0], as.SomaX
	for i := 0; i < as.N; i++ {
		si := nr.AddSection(morph.Axon)
		sc := nr.Sec(si)
		sc.L = as.L
		sc.Diam = as.Diam
		sc.Nseg = as.Nseg
		if err := nr.Connect(si, par, x); err != nil {
			return fmt.Errorf("allen.ReplaceAxon: %w", err)
		}
		par, x = si, 1
	}
	return nil
}

// InsertMechs inserts pas into every section and the active
// mechanisms into soma[0]
func (nr *Neuron) InsertMechs() error {
	if err := nr.InsertAll(chans.Pas); err != nil {
		return fmt.Errorf("allen.InsertMechs: %w", err)
	}
	soma := nr.Group(morph.Soma)
	if len(soma) == 0 {
		return fmt.Errorf("allen.InsertMechs: %s: no soma", nr.String())
	}
	for _, nm := range SomaMechs {
		if err := nr.InsertByName(soma[0], nm); err != nil {
			return fmt.Errorf("allen.InsertMechs: %w", err)
		}
	}
	return nil
}

// SetParams applies the params sheet named in Params.ParamSet and checks
// that no parameter was set on a section lacking its mechanism
func (nr *Neuron) SetParams() error {
	sheet, has := ParamSets[nr.Params.ParamSet]
	if !has {
		return fmt.Errorf("allen.SetParams: params sheet %q not found", nr.Params.ParamSet)
	}
	if _, err := nr.ApplyParams(sheet, nr.Params.SetMsg); err != nil {
		return fmt.Errorf("allen.SetParams: %w", err)
	}
	return nr.CheckParams()
}
