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

import "math"

// Extent holds the observed minimum and maximum per axis.
type Extent struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// ComputeExtent scans points for per-axis min/max.
// It returns false if points is empty.
func ComputeExtent(points []Point) (Extent, bool) {
	if len(points) == 0 {
		return Extent{}, false
	}
	e := Extent{
		MinX: points[0].X,
		MaxX: points[0].X,
		MinY: points[0].Y,
		MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		e.MinX = math.Min(e.MinX, p.X)
		e.MaxX = math.Max(e.MaxX, p.X)
		e.MinY = math.Min(e.MinY, p.Y)
		e.MaxY = math.Max(e.MaxY, p.Y)
	}
	return e, true
}

// Range returns max-min of the axis, substituting 1 for a degenerate range.
func (e Extent) Range(a Axis) float64 {
	var r float64
	if a == AxisY {
		r = e.MaxY - e.MinY
	} else {
		r = e.MaxX - e.MinX
	}
	if r == 0 {
		return 1
	}
	return r
}

// Min returns the minimum of the axis.
func (e Extent) Min(a Axis) float64 {
	if a == AxisY {
		return e.MinY
	}
	return e.MinX
}

// Max returns the maximum of the axis.
func (e Extent) Max(a Axis) float64 {
	if a == AxisY {
		return e.MaxY
	}
	return e.MaxX
}

// finitePoints returns the points whose coordinates are both finite.
// The input slice is never modified.
func finitePoints(points []Point) []Point {
	r := make([]Point, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		r = append(r, p)
	}
	return r
}
