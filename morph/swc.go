// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goki/mat32"
)

// Point is one sample point of an SWC morphology file
type Point struct {
	ID     int        `desc:"sample identifier, unique within the file"`
	Type   int        `desc:"SWC structure type: 1 = soma, 2 = axon, 3 = basal dendrite, 4 = apical dendrite"`
	Pos    mat32.Vec3 `desc:"position (um)"`
	Radius float32    `desc:"radius (um)"`
	Parent int        `desc:"ID of the parent sample, -1 for a root"`
}

// ReadSWC reads SWC morphology points from given reader.
// Blank lines and lines starting with # are skipped.
// Each remaining line must have at least 7 fields: id type x y z radius parent.
func ReadSWC(r io.Reader) ([]Point, error) {
	var pts []Point
	scan := bufio.NewScanner(r)
	ln := 0
	for scan.Scan() {
		ln++
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pt, err := parseSWCLine(line)
		if err != nil {
			return nil, fmt.Errorf("morph.ReadSWC: line %d: %w", ln, err)
		}
		pts = append(pts, pt)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("morph.ReadSWC: %w", err)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("morph.ReadSWC: no sample points")
	}
	return pts, nil
}

func parseSWCLine(line string) (Point, error) {
	var pt Point
	fs := strings.Fields(line)
	if len(fs) < 7 {
		return pt, fmt.Errorf("expected 7 fields, got %d: %q", len(fs), line)
	}
	var err error
	if pt.ID, err = strconv.Atoi(fs[0]); err != nil {
		return pt, fmt.Errorf("bad id: %w", err)
	}
	if pt.Type, err = strconv.Atoi(fs[1]); err != nil {
		return pt, fmt.Errorf("bad type: %w", err)
	}
	var vals [4]float32
	for i := range vals {
		v, err := strconv.ParseFloat(fs[2+i], 32)
		if err != nil {
			return pt, fmt.Errorf("bad coordinate: %w", err)
		}
		vals[i] = float32(v)
	}
	pt.Pos = mat32.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}
	pt.Radius = vals[3]
	if pt.Parent, err = strconv.Atoi(fs[6]); err != nil {
		return pt, fmt.Errorf("bad parent: %w", err)
	}
	if pt.Radius < 0 {
		return pt, fmt.Errorf("negative radius: %v", pt.Radius)
	}
	return pt, nil
}
