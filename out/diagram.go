// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements section-force diagrams of beam elements
package out

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/civil-soft-science/OpenSees.NET/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Sampler defines elements that compute section forces at any point along the span
type Sampler interface {
	Id() int                                            // element tag
	OutIpCoords() [][]float64                           // coordinates of stations; nil if recovery is disabled
	OutIpKeys() []string                                // keys of section forces; e.g. "N", "Mz"
	SectionForces(xi float64) (sp []float64, err error) // section forces at x = xi·L
}

// Diagram holds a section force sampled along an element
type Diagram struct {
	Tag int       // element tag
	Key string    // section force key
	X   []float64 // distance of stations from node I
	Y   []float64 // section force at stations
}

// Stations samples section force 'key' of element e at n equally spaced stations
//  n -- number of stations; use 0 to take the stations of the element
func Stations(e Sampler, key string, n int) (o *Diagram, err error) {

	// key
	idx := -1
	for i, k := range e.OutIpKeys() {
		if k == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, chk.Err("element %d cannot output section force %q", e.Id(), key)
	}

	// length
	C := e.OutIpCoords()
	if len(C) < 2 {
		return nil, chk.Err("element %d has no stations; enable recovery", e.Id())
	}
	L := floats.Distance(C[0], C[len(C)-1], 2)
	if n < 2 {
		n = len(C)
	}

	// sample
	o = &Diagram{Tag: e.Id(), Key: key, X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		ξ := float64(i) / float64(n-1)
		sp, err := e.SectionForces(ξ)
		if err != nil {
			return nil, err
		}
		o.X[i] = ξ * L
		o.Y[i] = sp[idx]
	}
	return
}

// Extremes returns the minimum and maximum values and their locations
func (o *Diagram) Extremes() (ymin, xmin, ymax, xmax float64) {
	imin, imax := floats.MinIdx(o.Y), floats.MaxIdx(o.Y)
	return o.Y[imin], o.X[imin], o.Y[imax], o.X[imax]
}

// Table returns a text table with the values at stations
func (o *Diagram) Table() string {
	var b strings.Builder
	b.WriteString(io.Sf("%13s%13s\n", "x", o.Key))
	for i, x := range o.X {
		b.WriteString(io.Sf("%13.5f%13.5g\n", x, o.Y[i]))
	}
	return b.String()
}

// AsciiDiagram returns a plot of the diagram for terminals
//  height -- number of rows; use 0 for the default (10)
func AsciiDiagram(o *Diagram, height int) string {
	if height < 1 {
		height = 10
	}
	caption := io.Sf("element %d: %s(x) for 0 ≤ x ≤ %g", o.Tag, o.Key, o.X[len(o.X)-1])
	return asciigraph.Plot(o.Y,
		asciigraph.Height(height),
		asciigraph.Width(60),
		asciigraph.Precision(3),
		asciigraph.Caption(caption))
}

// SaveDiagram saves diagrams to an image file; the extension selects the format (.png, .svg, .pdf)
func SaveDiagram(fn string, diagrams ...*Diagram) (err error) {
	if len(diagrams) == 0 {
		return chk.Err("at least one diagram is required")
	}
	p := plot.New()
	p.Title.Text = io.Sf("%s diagram", diagrams[0].Key)
	p.X.Label.Text = "x"
	p.Y.Label.Text = diagrams[0].Key

	// axis
	xmax := 0.0
	for _, d := range diagrams {
		xmax = math.Max(xmax, d.X[len(d.X)-1])
	}
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: xmax, Y: 0}})
	if err != nil {
		return
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Gray{Y: 128}
	p.Add(axis)

	// diagrams
	for i, d := range diagrams {
		pts := make(plotter.XYs, len(d.X))
		for j := range d.X {
			pts[j].X, pts[j].Y = d.X[j], d.Y[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(io.Sf("element %d", d.Tag), line)
	}

	// save
	dir := filepath.Dir(fn)
	if dir != "" && dir != "." {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return chk.Err("cannot create directory %q:\n%v", dir, err)
		}
	}
	err = p.Save(8*vg.Inch, 4*vg.Inch, fn)
	if err != nil {
		return chk.Err("cannot save diagram %q:\n%v", fn, err)
	}
	return
}

// palette holds the colors of lines
var palette = []color.Color{
	color.RGBA{R: 0, G: 0, B: 139, A: 255},
	color.RGBA{R: 178, G: 34, B: 34, A: 255},
	color.RGBA{R: 0, G: 100, B: 0, A: 255},
	color.RGBA{R: 255, G: 140, B: 0, A: 255},
}

// Diagrams samples section force 'key' of all elements able to recover section forces
func Diagrams(elems []ele.Element, key string, n int) (res []*Diagram, err error) {
	for _, e := range elems {
		s, ok := e.(Sampler)
		if !ok || s.OutIpCoords() == nil {
			continue
		}
		d, err := Stations(s, key, n)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return
}
