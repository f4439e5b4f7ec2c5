// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package plot

import (
	"github.com/js-arias/blind"
	"github.com/js-arias/metataxa/ci"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A point is the value of a statistic
// and its confidence interval
// for a pathway.
type point struct {
	name string
	ci.Interval
}

// An intervalPlot draws the value of each pathway
// with a bar for its confidence interval.
type intervalPlot struct {
	pts   []point
	style draw.LineStyle
	width vg.Length
}

// DataRange implements the plot.DataRanger interface.
func (ip *intervalPlot) DataRange() (xMin, xMax, yMin, yMax float64) {
	yMin = ip.pts[0].Low
	yMax = ip.pts[0].High
	for _, pt := range ip.pts {
		if pt.Low < yMin {
			yMin = pt.Low
		}
		if pt.High > yMax {
			yMax = pt.High
		}
	}
	if yMin > 0 {
		yMin = 0
	}
	if yMax == yMin {
		yMax = yMin + 1
	}
	return -0.5, float64(len(ip.pts)) - 0.5, yMin, yMax
}

// Plot implements the plot.Plotter interface.
func (ip *intervalPlot) Plot(c draw.Canvas, plt *gplot.Plot) {
	trX, trY := plt.Transforms(&c)
	_, _, _, yMax := ip.DataRange()

	for i, pt := range ip.pts {
		x := trX(float64(i))
		col := blind.Sequential(blind.Iridescent, scale(pt.Value, yMax))

		if pt.High > pt.Low {
			box := []vg.Point{
				{X: x - ip.width, Y: trY(pt.High)},
				{X: x + ip.width, Y: trY(pt.High)},
				{X: x + ip.width, Y: trY(pt.Low)},
				{X: x - ip.width, Y: trY(pt.Low)},
				{X: x - ip.width, Y: trY(pt.High)},
			}
			c.FillPolygon(col, box)
		}

		c.SetLineStyle(ip.style)
		var p vg.Path
		y := trY(pt.Value)
		p.Move(vg.Point{X: x - 2*ip.width, Y: y})
		p.Line(vg.Point{X: x + 2*ip.width, Y: y})
		c.Stroke(p)
	}
}

// Scale returns a value in the [0, 1] range.
func scale(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	s := v / max
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
