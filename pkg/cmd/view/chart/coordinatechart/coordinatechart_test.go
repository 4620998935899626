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

package coordinatechart

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ed23x/gemini-koordinaten/pkg/plot"
)

var _ = Describe("coordinate chart", func() {
	const w, h = 80, 24

	var (
		chart    Model
		viewer   *plot.Viewer
		notified []*plot.Point
	)

	row := func(y int) string {
		var sb strings.Builder
		for x := 0; x < chart.Width(); x++ {
			r := chart.Cell(canvas.Point{X: x, Y: y}).Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		return sb.String()
	}

	redraw := func() plot.Scene {
		viewer.Layout()
		s := viewer.Scene()
		chart.Draw(s)
		return s
	}

	findTick := func(label string) (int, int, bool) {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if hit := chart.HitAt(x, y); hit.Kind == HitTick && hit.Tick.Axis == plot.AxisX && hit.Tick.Label == label {
					return x, y, true
				}
			}
		}
		return 0, 0, false
	}

	BeforeEach(func() {
		notified = nil
		chart = New(w, h)
		viewer = plot.NewViewer(
			plot.WithLayout(TerminalLayout()),
			plot.WithLabels("pH", "Concentration"),
			plot.WithOnHover(func(p *plot.Point) { notified = append(notified, p) }),
		)
		viewer.SetPoints([]plot.Point{{X: 5, Y: 10}, {X: 6, Y: 12}, {X: 7.5, Y: 18}, {X: 8, Y: 20}, {X: 9, Y: 15}})
		viewer.Resize(plot.Size{Width: w, Height: h})
	})

	It("draws the empty state", func() {
		viewer.SetPoints(nil)
		redraw()
		Expect(row(h / 2)).Should(ContainSubstring(emptyMessage))
		Expect(chart.HitAt(0, 0).Kind).Should(Equal(HitBackground))
	})

	It("maps point cells back to point indexes", func() {
		s := redraw()
		for _, p := range s.Points {
			c := cell(p.X, p.Y)
			hit := chart.HitAt(c.X, c.Y)
			Expect(hit.Kind).Should(Equal(HitPoint))
			Expect(hit.Index).Should(Equal(p.Index))
			Expect(chart.Cell(c).Rune).Should(Equal(pointRune))
		}
		Expect(chart.HitAt(-1, 0).Kind).Should(Equal(HitNone))
		Expect(chart.HitAt(w, 0).Kind).Should(Equal(HitNone))
	})

	It("labels clickable ticks and titles", func() {
		redraw()
		_, _, ok := findTick("7")
		Expect(ok).Should(BeTrue())
		Expect(row(0)).Should(HavePrefix("Concentration"))
		Expect(row(h - 1)).Should(ContainSubstring("pH"))
		// the reference guide label
		found := false
		for y := 0; y < h; y++ {
			if strings.Contains(row(y), "pH 7: Concentration 16.00") {
				found = true
			}
		}
		Expect(found).Should(BeTrue())
	})

	It("hovers points on motion and leaves them", func() {
		s := redraw()
		c := cell(s.Points[1].X, s.Points[1].Y)
		motion := tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}

		Expect(chart.handleMouse(viewer, motion, c.X, c.Y)).Should(BeTrue())
		i, ok := viewer.Hovered()
		Expect(ok).Should(BeTrue())
		Expect(i).Should(Equal(1))
		Expect(chart.handleMouse(viewer, motion, c.X, c.Y)).Should(BeFalse())

		s = redraw()
		Expect(s.Hovered).ShouldNot(BeNil())
		Expect(chart.Cell(c).Rune).ShouldNot(Equal(pointRune))

		Expect(chart.handleMouse(viewer, motion, 0, 0)).Should(BeTrue())
		_, ok = viewer.Hovered()
		Expect(ok).Should(BeFalse())
		Expect(notified).Should(HaveLen(2))
		Expect(notified[1]).Should(BeNil())
	})

	It("starts an axis query from a tick label click", func() {
		redraw()
		x, y, ok := findTick("7")
		Expect(ok).Should(BeTrue())
		press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
		Expect(chart.handleMouse(viewer, press, x, y)).Should(BeTrue())
		Expect(viewer.Query()).ShouldNot(BeNil())
		Expect(viewer.Query().Other).Should(BeNumerically("~", 16, 1e-9))

		chart.handleMouse(viewer, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, x, y)
		Expect(chart.handleMouse(viewer, press, 40, 8)).Should(BeTrue())
		Expect(viewer.Query()).Should(BeNil())
	})

	It("does not keep tick hits under text drawn on top", func() {
		redraw()
		x, y, ok := findTick("7")
		Expect(ok).Should(BeTrue())
		chart.setText(canvas.Point{X: x, Y: y}, "tooltip", chart.TooltipStyle)
		Expect(chart.HitAt(x, y).Kind).Should(Equal(HitBackground))
	})

	It("keeps points outside the plot area off the canvas", func() {
		redraw()
		viewer.Pan(-20, 5)
		s := redraw()
		lo, hi := plotRect(s)
		outside := 0
		for _, p := range s.Points {
			if !inRect(cell(p.X, p.Y), lo, hi) {
				outside++
			}
		}
		Expect(outside).Should(BeNumerically(">", 0))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if chart.HitAt(x, y).Kind == HitPoint {
					Expect(inRect(canvas.Point{X: x, Y: y}, lo, hi)).Should(BeTrue())
				}
			}
		}
	})

	It("zooms with the wheel and pans by dragging", func() {
		redraw()
		Expect(chart.handleMouse(viewer, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 40, 10)).Should(BeTrue())
		s := redraw()
		Expect(s.Zoom.X).Should(BeNumerically(">", 1))
		Expect(row(0)).Should(ContainSubstring("zoom 1.1x"))

		before, _ := viewer.Viewport()
		chart.handleMouse(viewer, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 30, 10)
		chart.handleMouse(viewer, tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, 35, 10)
		after, _ := viewer.Viewport()
		Expect(after.Offset.X).Should(BeNumerically("<", before.Offset.X))
		Expect(after.Offset.Y).Should(Equal(before.Offset.Y))
	})

	It("handles keys", func() {
		redraw()
		handler := ViewerUpdateHandler(2)
		Expect(handler(&chart, viewer, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})).Should(BeTrue())
		Expect(viewer.Navigated()).Should(BeTrue())
		Expect(handler(&chart, viewer, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})).Should(BeTrue())
		Expect(viewer.Navigated()).Should(BeFalse())
		Expect(handler(&chart, viewer, tea.KeyMsg{Type: tea.KeyLeft})).Should(BeTrue())
		Expect(viewer.Navigated()).Should(BeTrue())
		Expect(handler(&chart, viewer, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})).Should(BeFalse())
	})

	It("does not draw before the container has a size", func() {
		v := plot.NewViewer()
		v.SetPoints([]plot.Point{{X: 1, Y: 1}})
		Expect(func() { chart.Draw(v.Scene()) }).ShouldNot(Panic())
		Expect(strings.TrimSpace(row(h / 2))).Should(BeEmpty())
	})
})
