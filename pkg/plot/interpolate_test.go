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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("interpolator", func() {
	It("Interpolate", func() {
		cases := []struct {
			description string
			points      []Point
			axis        Axis
			t           float64
			expect      float64
			ok          bool
		}{
			{"exact match on the first point", samplePoints(), AxisX, 5, 10, true},
			{"exact match on the last point", samplePoints(), AxisX, 9, 15, true},
			{"exact match inside", samplePoints(), AxisX, 7.5, 18, true},
			{"between two points", samplePoints(), AxisX, 7, 16, true},
			{"midpoint", []Point{{X: 0, Y: 0}, {X: 10, Y: 100}}, AxisX, 5, 50, true},
			{"below the range", samplePoints(), AxisX, 4.99, 0, false},
			{"above the range", samplePoints(), AxisX, 9.01, 0, false},
			{"by y on points unsorted by y", samplePoints(), AxisY, 16.5, 8.25, true},
			{"single point hit", []Point{{X: 2, Y: 3}}, AxisX, 2, 3, true},
			{"single point miss", []Point{{X: 2, Y: 3}}, AxisX, 2.5, 0, false},
			{"no points", nil, AxisY, 1, 0, false},
			{"unsorted input", []Point{{X: 10, Y: 100}, {X: 0, Y: 0}}, AxisX, 2.5, 25, true},
			{"duplicate axis values", []Point{{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}}, AxisX, 1, 1, true},
		}
		for _, c := range cases {
			By(c.description)
			got, ok := Interpolate(c.points, c.axis, c.t)
			Expect(ok).Should(Equal(c.ok))
			if c.ok {
				Expect(got).Should(BeNumerically("~", c.expect, 1e-9))
			}
		}
	})

	It("never mutates the input", func() {
		in := []Point{{X: 3, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 0}}
		orig := append([]Point(nil), in...)
		_, _ = Interpolate(in, AxisX, 1.5)
		_, _ = Interpolate(in, AxisY, 1.5)
		Expect(in).Should(Equal(orig))
	})

	It("packs query results", func() {
		r := Query(samplePoints(), AxisX, ReferenceValue, TriggerReference)
		Expect(r).ShouldNot(BeNil())
		Expect(r.Axis).Should(Equal(AxisX))
		Expect(r.Value).Should(Equal(7.0))
		Expect(r.Other).Should(BeNumerically("~", 16, 1e-9))
		Expect(r.Intersection.X).Should(Equal(7.0))
		Expect(r.Intersection.Y).Should(BeNumerically("~", 16, 1e-9))
		Expect(r.Trigger).Should(Equal(TriggerReference))

		r = Query([]Point{{X: 1, Y: 5}, {X: 2, Y: 9}}, AxisY, 7, TriggerClick)
		Expect(r).ShouldNot(BeNil())
		Expect(r.Intersection).Should(Equal(Point{X: 1.5, Y: 7}))

		Expect(Query(samplePoints(), AxisY, 7, TriggerClick)).Should(BeNil())
	})
})
