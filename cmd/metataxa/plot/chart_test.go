// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/js-arias/metataxa/ci"
)

func TestDataRange(t *testing.T) {
	ip := &intervalPlot{
		pts: []point{
			{name: "TCA", Interval: ci.Interval{Value: 2, Low: 1.5, High: 2.5}},
			{name: "GLYCOLYSIS", Interval: ci.Interval{Value: 3, Low: 2, High: 4}},
			{name: "PPP", Interval: ci.Interval{Value: 1, Low: 1, High: 1}},
		},
	}

	xMin, xMax, yMin, yMax := ip.DataRange()
	if xMin != -0.5 || xMax != 2.5 {
		t.Errorf("x range: got %.2f-%.2f, want %.2f-%.2f", xMin, xMax, -0.5, 2.5)
	}
	if yMin != 0 || yMax != 4 {
		t.Errorf("y range: got %.2f-%.2f, want %.2f-%.2f", yMin, yMax, 0.0, 4.0)
	}

	flat := &intervalPlot{pts: []point{{name: "TCA"}}}
	if _, _, yMin, yMax := flat.DataRange(); yMin != 0 || yMax != 1 {
		t.Errorf("flat y range: got %.2f-%.2f, want %.2f-%.2f", yMin, yMax, 0.0, 1.0)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		v, max float64
		want   float64
	}{
		{v: 2, max: 4, want: 0.5},
		{v: 5, max: 4, want: 1},
		{v: -1, max: 4, want: 0},
		{v: 1, max: 0, want: 0},
	}
	for _, test := range tests {
		if got := scale(test.v, test.max); got != test.want {
			t.Errorf("scale(%.2f, %.2f): got %.2f, want %.2f", test.v, test.max, got, test.want)
		}
	}
}
