// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package biocell is the overall repository for biophysically detailed,
multi-compartment single neuron models written in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* chans: the membrane mechanisms that can be inserted into a section (passive
leak, Na, K, Ca, Ih channels and calcium dynamics) with their parameters and
default values.

* morph: reading reconstructed morphologies in the SWC format and turning the
traced points into unbranched branches, grouped by region (soma, dend, apic, axon).

* cell: the cable model of a neuron: a tree of sections with geometry,
discretization and inserted mechanisms, parameterized in bulk by emergent
params.Sheet selectors.

* allen: the perisomatic model 472427533 from the Allen Cell Types Database,
built from its morphology with a replaced axon and the fitted parameters.

* examples: these compile into runnable programs.  examples/cellinfo builds
the allen model and prints or saves a summary of its sections.
*/
package biocell
