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

import "sort"

// ReferenceValue is the standing query value of a pH axis.
const ReferenceValue = 7.0

// SortedBy returns a copy of points sorted ascending by axis a.
// Points with equal values keep their input order.
func SortedBy(points []Point, a Axis) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return a.main(sorted[i]) < a.main(sorted[j])
	})
	return sorted
}

// Interpolate finds the value on the other axis where the piecewise-linear
// curve through points, sorted by axis a, crosses t on axis a.
// It returns false if t lies outside the observed range of axis a.
func Interpolate(points []Point, a Axis, t float64) (float64, bool) {
	sorted := SortedBy(points, a)
	switch len(sorted) {
	case 0:
		return 0, false
	case 1:
		if a.main(sorted[0]) == t {
			return a.other(sorted[0]), true
		}
		return 0, false
	}

	for i := 0; i < len(sorted)-1; i++ {
		p1, p2 := sorted[i], sorted[i+1]
		m1, m2 := a.main(p1), a.main(p2)
		if m1 == t {
			return a.other(p1), true
		}
		if (m1 < t && t < m2) || (m2 < t && t < m1) {
			if m1 == m2 {
				return a.other(p1), true
			}
			o1, o2 := a.other(p1), a.other(p2)
			return o1 + (o2-o1)*(t-m1)/(m2-m1), true
		}
	}

	last := sorted[len(sorted)-1]
	if a.main(last) == t {
		return a.other(last), true
	}
	return 0, false
}

// Query runs Interpolate and packs the result. It returns nil when the
// curve does not reach t.
func Query(points []Point, a Axis, t float64, trigger Trigger) *AxisQueryResult {
	other, ok := Interpolate(points, a, t)
	if !ok {
		return nil
	}
	return &AxisQueryResult{
		Axis:         a,
		Value:        t,
		Intersection: a.point(t, other),
		Other:        other,
		Trigger:      trigger,
	}
}
