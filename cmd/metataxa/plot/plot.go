// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to draw
// a chart of a taxonomic distinctness statistic
// from a report file.
package plot

import (
	"cmp"
	"fmt"
	"math"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/metataxa/report"
	"golang.org/x/exp/slices"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var Command = &command.Command{
	Usage: `plot [--stat <statistic>] [--sort]
	[-o|--output <file>] <report-file>`,
	Short: "draw a chart of a distinctness statistic",
	Long: `
Command plot reads a distinctness report, as produced by the command
'metataxa delta', and draws a chart with the value and the confidence interval
of a statistic for each pathway.

The argument of the command is the name of the report file.

By default, the chart of the Delta statistic will be drawn. Use the flag
--stat to define a different statistic. Valid values are "delta",
"delta-star", "delta-plus", "wtd-delta", "wtd-delta-star", and
"wtd-delta-plus".

By default, pathways are drawn in the order of the report file. If the flag
--sort is defined, pathways will be sorted by the value of the statistic.

Pathways with undefined values are ignored.

The chart is written as a PNG image. By default the file name will be
"<statistic>.png". Use the flag --output, or -o, to define a different file
name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var statFlag string
var sortFlag bool
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&statFlag, "stat", "delta", "")
	c.Flags().BoolVar(&sortFlag, "sort", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting report file")
	}

	st, err := report.ParseStat(statFlag)
	if err != nil {
		return c.UsageError(fmt.Sprintf("flag --stat: %v", err))
	}

	rows, err := readReport(args[0])
	if err != nil {
		return err
	}

	var pts []point
	for _, r := range rows {
		cell := r.Cell(st)
		if cell.NA {
			fmt.Fprintf(c.Stderr(), "WARNING: pathway %q: undefined %s\n", r.Pathway, st)
			continue
		}
		pts = append(pts, point{
			name:     r.Pathway,
			Interval: cell.Interval,
		})
	}
	if len(pts) == 0 {
		return fmt.Errorf("report %q: no defined values for %s", args[0], st)
	}
	if sortFlag {
		slices.SortStableFunc(pts, func(a, b point) int {
			return cmp.Compare(a.Value, b.Value)
		})
	}

	if output == "" {
		output = st.String() + ".png"
	}
	if err := makePlot(pts, st); err != nil {
		return fmt.Errorf("while drawing %q: %v", output, err)
	}
	return nil
}

func readReport(name string) ([]report.Row, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := report.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return rows, nil
}

func makePlot(pts []point, st report.Stat) error {
	p := gplot.New()
	p.Y.Label.Text = st.Label()
	p.X.Label.Text = "pathway"

	names := make([]string, 0, len(pts))
	for _, pt := range pts {
		names = append(names, pt.name)
	}
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	ip := &intervalPlot{
		pts:   pts,
		style: plotter.DefaultLineStyle,
		width: vg.Points(3),
	}
	p.Add(ip)

	w := vg.Length(len(pts))*vg.Points(12) + 2*vg.Inch
	if w < 6*vg.Inch {
		w = 6 * vg.Inch
	}
	if err := p.Save(w, 4*vg.Inch, output); err != nil {
		return err
	}
	return nil
}
