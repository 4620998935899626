/*
Copyright (C) 2022-2024 ApeCloud Co., Ltd

This file is part of gemini-koordinaten project

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package plot

import (
	"math"
	"strconv"
)

// tickEpsilon absorbs floating point round-off when deciding whether the
// first or last multiple of the step still lies inside the range.
const tickEpsilon = 1e-9

// maxTicks bounds the number of ticks generated for one axis.
const maxTicks = 1000

// Tick is an axis gridline value with its label and screen position.
type Tick struct {
	Axis  Axis
	Value float64
	Label string
	// Pos is the screen coordinate along the tick's axis.
	Pos float64
	// Clickable ticks start an axis query when their label is clicked.
	Clickable bool
}

// TickStep returns the 1-2-5 step for covering [lo, hi] with about count ticks.
// It returns 0 for a degenerate range.
func TickStep(lo, hi float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	rawStep := (hi - lo) / float64(count)
	if rawStep <= 0 || math.IsNaN(rawStep) || math.IsInf(rawStep, 0) {
		return 0
	}
	exponent := math.Floor(math.Log10(rawStep))
	magnitude := math.Pow(10, exponent)
	mantissa := rawStep / magnitude

	var nice float64
	switch {
	case mantissa < 1.5:
		nice = 1
	case mantissa < 3.5:
		nice = 2
	case mantissa < 7.5:
		nice = 5
	default:
		nice = 10
	}
	return nice * magnitude
}

// NiceTicks returns the multiples of the nice step inside [lo, hi].
// A degenerate range yields a single tick at lo.
func NiceTicks(lo, hi float64, count int) []float64 {
	step := TickStep(lo, hi, count)
	if step == 0 {
		return []float64{lo}
	}
	first := math.Ceil(lo/step - tickEpsilon)
	last := math.Floor(hi/step + tickEpsilon)
	if last < first {
		return []float64{}
	}
	// multiples beyond 2^53 are not distinct floats
	if first+1 == first || last-first > maxTicks {
		return []float64{lo}
	}
	n := int(last - first)
	r := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		v := (first + float64(i)) * step
		if v == 0 {
			// avoid -0 labels
			v = 0
		}
		r = append(r, v)
	}
	return r
}

// TickDecimals returns the number of decimals used to label ticks of the given step.
func TickDecimals(step float64) int {
	switch {
	case step < 0.01:
		return 3
	case step < 0.1:
		return 2
	case step < 1:
		return 1
	default:
		return 0
	}
}

// FormatTick formats a tick value for the given step.
func FormatTick(v, step float64) string {
	s := strconv.FormatFloat(v, 'f', TickDecimals(step), 64)
	if s[0] == '-' {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == 0 {
			return s[1:]
		}
	}
	return s
}

// integralLabel reports whether a formatted label parses to a whole number.
func integralLabel(label string) bool {
	f, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return false
	}
	return f == math.Trunc(f)
}

// Ticks returns the ticks of axis a for the visible range of the viewport,
// keeping only those that land inside the plot area.
func (v Viewport) Ticks(a Axis, count int) []Tick {
	lo, hi := v.VisibleRange(a)
	step := TickStep(lo, hi, count)
	values := NiceTicks(lo, hi, count)
	ticks := make([]Tick, 0, len(values))
	for _, value := range values {
		pos := v.ScreenPos(a, value)
		if !v.Contains(a, pos) {
			continue
		}
		label := FormatTick(value, step)
		ticks = append(ticks, Tick{
			Axis:      a,
			Value:     value,
			Label:     label,
			Pos:       pos,
			Clickable: integralLabel(label),
		})
	}
	return ticks
}
