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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("viewport transform", func() {
	padding := Padding{Left: 50, Right: 20, Top: 20, Bottom: 50}
	size := Size{Width: 500, Height: 400}

	It("computes the extent", func() {
		e, ok := ComputeExtent(samplePoints())
		Expect(ok).Should(BeTrue())
		Expect(e).Should(Equal(Extent{MinX: 5, MaxX: 9, MinY: 10, MaxY: 20}))

		_, ok = ComputeExtent(nil)
		Expect(ok).Should(BeFalse())
	})

	It("substitutes 1 for a degenerate range", func() {
		e, _ := ComputeExtent([]Point{{X: 3, Y: 4}, {X: 3, Y: 4}})
		Expect(e.Range(AxisX)).Should(Equal(1.0))
		Expect(e.Range(AxisY)).Should(Equal(1.0))
	})

	It("fits the extent into the padded plot area", func() {
		e := Extent{MinX: 0, MaxX: 10, MinY: 0, MaxY: 100}
		v := Fit(e, size, padding)
		Expect(v.Scale.X).Should(BeNumerically("~", 43, 1e-9))
		Expect(v.Scale.Y).Should(BeNumerically("~", 3.3, 1e-9))

		x, y := v.ToScreen(Point{X: 0, Y: 0})
		Expect(x).Should(BeNumerically("~", 50, 1e-9))
		Expect(y).Should(BeNumerically("~", 350, 1e-9))

		x, y = v.ToScreen(Point{X: 10, Y: 100})
		Expect(x).Should(BeNumerically("~", 480, 1e-9))
		Expect(y).Should(BeNumerically("~", 20, 1e-9))
	})

	It("keeps the scale positive on containers smaller than the padding", func() {
		v := Fit(Extent{MaxX: 1, MaxY: 1}, Size{Width: 30, Height: 30}, padding)
		Expect(v.Scale.X).Should(BeNumerically(">", 0))
		Expect(v.Scale.Y).Should(BeNumerically(">", 0))
	})

	It("round-trips screen coordinates", func() {
		views := []Viewport{
			Fit(Extent{MinX: 5, MaxX: 9, MinY: 10, MaxY: 20}, size, padding),
			Fit(Extent{MinX: -1e3, MaxX: 1e4, MinY: 0.001, MaxY: 0.002}, Size{Width: 120, Height: 40}, Padding{Left: 8, Right: 2, Top: 1, Bottom: 2}),
			Zoom(Fit(Extent{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}, size, padding), InitialView{Scale: Vec{X: 430, Y: 330}}, 123, 77, -300),
		}
		screens := [][2]float64{{0, 0}, {50, 350}, {123.5, 7.25}, {499, 399}, {-20, 1000}}
		for _, v := range views {
			for _, s := range screens {
				x, y := v.ToScreen(v.ToData(s[0], s[1]))
				Expect(x).Should(BeNumerically("~", s[0], 1e-6))
				Expect(y).Should(BeNumerically("~", s[1], 1e-6))
			}
		}
	})

	It("reports the visible range and plot area membership", func() {
		v := Fit(Extent{MinX: 0, MaxX: 10, MinY: 0, MaxY: 100}, size, padding)
		lo, hi := v.VisibleRange(AxisX)
		Expect(lo).Should(BeNumerically("~", 0, 1e-9))
		Expect(hi).Should(BeNumerically("~", 10, 1e-9))
		lo, hi = v.VisibleRange(AxisY)
		Expect(lo).Should(BeNumerically("~", 0, 1e-9))
		Expect(hi).Should(BeNumerically("~", 100, 1e-9))

		Expect(v.InPlot(50, 20)).Should(BeTrue())
		Expect(v.InPlot(49, 20)).Should(BeFalse())
		Expect(v.InPlot(100, 351)).Should(BeFalse())
	})

	It("drops non-finite points", func() {
		in := []Point{{X: 1, Y: 1}, {X: math.NaN(), Y: 2}, {X: 3, Y: math.Inf(1)}, {X: 4, Y: 4}}
		Expect(finitePoints(in)).Should(Equal([]Point{{X: 1, Y: 1}, {X: 4, Y: 4}}))
		Expect(in).Should(HaveLen(4))
	})
})
