// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morph

import (
	"strings"

	"github.com/goki/ki/kit"
)

// Regions are the anatomical regions that sections are grouped into
type Regions int32

//go:generate stringer -type=Regions

var KiT_Regions = kit.Enums.AddEnum(RegionsN, kit.NotBitFlag, nil)

func (ev Regions) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Regions) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The regions, in the order sections are created when loading a morphology
const (
	// Soma is the cell body
	Soma Regions = iota

	// Dend are the basal dendrites
	Dend

	// Apic are the apical dendrites
	Apic

	// Axon is the axon
	Axon

	RegionsN
)

// SecName returns the lower-case name used for sections and classes
// in this region, e.g., soma as in soma[0]
func (ev Regions) SecName() string {
	return strings.ToLower(ev.String())
}

// SWC structure identifiers
const (
	SWCUndefined = 0
	SWCSoma      = 1
	SWCAxon      = 2
	SWCDend      = 3
	SWCApic      = 4
)

// RegionForSWC returns the region for given SWC structure type.
// Custom and undefined types are treated as dendrite.
func RegionForSWC(typ int) Regions {
	switch typ {
	case SWCSoma:
		return Soma
	case SWCAxon:
		return Axon
	case SWCApic:
		return Apic
	}
	return Dend
}
