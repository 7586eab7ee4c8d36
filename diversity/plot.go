// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package diversity

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot draws the diversity profile of a feature
// and saves it into a file.
// The format of the image is defined
// by the file extension
// (for example ".png" or ".svg").
func Plot(r Record, feature, file string) error {
	if len(r.Pos) == 0 {
		return errors.New("empty diversity profile")
	}

	xys := make(plotter.XYs, len(r.Pos))
	for i, p := range r.Pos {
		xys[i].X = float64(p)
		xys[i].Y = r.Val[i]
	}
	// minus strand positions are decreasing
	slices.SortFunc(xys, func(a, b plotter.XY) int {
		return cmp.Compare(a.X, b.X)
	})

	p := plot.New()
	p.Title.Text = feature
	p.X.Label.Text = "position"
	p.Y.Label.Text = "entropy"

	imp, err := plotter.NewImpulses(xys)
	if err != nil {
		return fmt.Errorf("feature %q: %v", feature, err)
	}
	p.Add(imp)

	if err := p.Save(8*vg.Inch, 3*vg.Inch, file); err != nil {
		return fmt.Errorf("while writing file %q: %v", file, err)
	}
	return nil
}
