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

// Package coordinatechart draws a plot.Scene onto an ntcharts canvas
// and keeps a hit map from canvas cells to points and tick labels so
// that mouse events can be routed back to the plot.Viewer.
package coordinatechart

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/lipgloss"

	"github.com/ed23x/gemini-koordinaten/pkg/plot"
)

const (
	pointRune = '●'
	guideRune = '·'

	emptyMessage = "Load a file or import JSON data to show points"
)

// HitKind tells what is drawn in a canvas cell.
type HitKind int

const (
	HitNone HitKind = iota
	HitBackground
	HitPoint
	HitTick
)

// Hit is the result of a hit test on a canvas cell.
type Hit struct {
	Kind  HitKind
	Index int
	Tick  plot.Tick
}

// TerminalLayout is the viewer layout measured in terminal cells.
// The bottom padding holds the X axis, its tick labels and its title,
// the top padding holds the Y title and room for the tooltip.
func TerminalLayout() plot.Layout {
	return plot.Layout{
		NarrowWidth:   60,
		Wide:          plot.Padding{Left: 8, Right: 3, Top: 2, Bottom: 4},
		Narrow:        plot.Padding{Left: 7, Right: 2, Top: 2, Bottom: 4},
		WideTicks:     5,
		NarrowTicks:   3,
		SmoothSamples: 8,
	}
}

// Model contains the canvas and the hit map of the last drawn scene.
type Model struct {
	canvas.Model
	Theme
	ViewerHandler UpdateHandler

	samples int
	hits    map[canvas.Point]Hit
	drag    *canvas.Point
}

// New returns a coordinatechart Model of the given cell size.
func New(w, h int, opts ...Option) Model {
	m := Model{
		Model:         canvas.New(w, h),
		Theme:         DarkTheme(),
		ViewerHandler: ViewerUpdateHandler(2),
		samples:       TerminalLayout().SmoothSamples,
		hits:          make(map[canvas.Point]Hit),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Resize changes the canvas size. The hit map is dropped until the next Draw.
func (m *Model) Resize(w, h int) {
	if w == m.Width() && h == m.Height() {
		return
	}
	m.Model.Resize(w, h)
	m.hits = make(map[canvas.Point]Hit)
}

// HitAt returns what was drawn at canvas cell (x, y) by the last Draw.
func (m *Model) HitAt(x, y int) Hit {
	p := canvas.Point{X: x, Y: y}
	if !m.inside(p) {
		return Hit{Kind: HitNone}
	}
	if h, ok := m.hits[p]; ok {
		return h
	}
	return Hit{Kind: HitBackground}
}

func (m *Model) inside(p canvas.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.Width() && p.Y < m.Height()
}

// Draw renders the scene. Rendering never changes viewer state.
func (m *Model) Draw(s plot.Scene) {
	m.Clear()
	m.hits = make(map[canvas.Point]Hit)
	if s.Empty {
		m.drawEmpty()
		return
	}
	if !s.Ready {
		return
	}
	m.drawAxes(s)
	m.drawTicks(s)
	m.drawCurve(s)
	if s.Reference != nil {
		m.drawGuide(s, s.Reference, m.ReferenceStyle)
	}
	if s.Query != nil {
		m.drawGuide(s, s.Query, m.GuideStyle)
	}
	m.drawPoints(s)
	m.drawTooltip(s)
	m.drawTitles(s)
}

func cell(x, y float64) canvas.Point {
	return canvas.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// plotRect returns the plot area in cells, inclusive.
func plotRect(s plot.Scene) (canvas.Point, canvas.Point) {
	return cell(s.Left, s.Top), cell(s.Right, s.Bottom)
}

func inRect(p, lo, hi canvas.Point) bool {
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

func (m *Model) drawEmpty() {
	msg := emptyMessage
	if len(msg) > m.Width() {
		msg = msg[:m.Width()]
	}
	p := canvas.Point{X: (m.Width() - len(msg)) / 2, Y: m.Height() / 2}
	m.SetStringWithStyle(p, msg, m.LabelStyle)
}

func (m *Model) drawAxes(s plot.Scene) {
	lo, hi := plotRect(s)
	origin := canvas.Point{X: lo.X - 1, Y: hi.Y + 1}
	m.SetCell(origin, canvas.NewCellWithStyle(runes.LineUpRight, m.AxisStyle))
	for y := lo.Y; y < origin.Y; y++ {
		m.SetCell(canvas.Point{X: origin.X, Y: y}, canvas.NewCellWithStyle(runes.LineVertical, m.AxisStyle))
	}
	for x := origin.X + 1; x <= hi.X; x++ {
		m.SetCell(canvas.Point{X: x, Y: origin.Y}, canvas.NewCellWithStyle(runes.LineHorizontal, m.AxisStyle))
	}
}

func (m *Model) tickStyle(t plot.Tick) lipgloss.Style {
	if t.Clickable {
		return m.ClickableTickStyle
	}
	return m.TickStyle
}

func (m *Model) drawTicks(s plot.Scene) {
	lo, hi := plotRect(s)
	row := hi.Y + 2
	for _, t := range s.XTicks {
		x := cell(t.Pos, 0).X
		m.SetCell(canvas.Point{X: x, Y: hi.Y + 1}, canvas.NewCellWithStyle(runes.LineHorizontalUp, m.AxisStyle))
		start := x - len(t.Label)/2
		start = clamp(start, 0, m.Width()-len(t.Label))
		m.setLabel(canvas.Point{X: start, Y: row}, t)
	}
	for _, t := range s.YTicks {
		y := cell(0, t.Pos).Y
		m.SetCell(canvas.Point{X: lo.X - 1, Y: y}, canvas.NewCellWithStyle(runes.LineVerticalRight, m.AxisStyle))
		start := clamp(lo.X-2-len(t.Label), 0, m.Width())
		m.setLabel(canvas.Point{X: start, Y: y}, t)
	}
}

func (m *Model) setLabel(p canvas.Point, t plot.Tick) {
	m.SetStringWithStyle(p, t.Label, m.tickStyle(t))
	for i := range t.Label {
		c := canvas.Point{X: p.X + i, Y: p.Y}
		if m.inside(c) {
			m.hits[c] = Hit{Kind: HitTick, Tick: t}
		}
	}
}

// setText draws text that covers whatever was drawn below it, hit cells included.
func (m *Model) setText(p canvas.Point, text string, style lipgloss.Style) {
	m.SetStringWithStyle(p, text, style)
	for i := range []rune(text) {
		delete(m.hits, canvas.Point{X: p.X + i, Y: p.Y})
	}
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// drawCurve draws the connecting path with braille dots, two by four
// dots per cell, clipped to the plot area.
func (m *Model) drawCurve(s plot.Scene) {
	if len(s.Path) == 0 {
		return
	}
	w, h := m.Width(), m.Height()
	bGrid := graph.NewBrailleGrid(w, h, 0, float64(w), 0, float64(h))
	lo, hi := plotRect(s)
	gLo := canvas.Point{X: lo.X * 2, Y: lo.Y * 4}
	gHi := canvas.Point{X: hi.X*2 + 1, Y: hi.Y*4 + 3}
	var prev *canvas.Point
	for _, p := range s.Path.Flatten(m.samples) {
		gp := bGrid.GridPoint(canvas.Float64Point{X: p.X, Y: float64(h) - p.Y})
		// ignore segments that will not be displayed
		if prev != nil && !bothOutside(*prev, gp, gLo, gHi) {
			for _, lp := range graph.GetLinePoints(*prev, gp) {
				if inRect(canvas.Point{X: lp.X / 2, Y: lp.Y / 4}, lo, hi) {
					bGrid.Set(lp)
				}
			}
		}
		prev = &gp
	}
	graph.DrawBraillePatterns(&m.Model, canvas.Point{}, bGrid.BraillePatterns(), m.CurveStyle)
}

func bothOutside(a, b, lo, hi canvas.Point) bool {
	return (a.X < lo.X && b.X < lo.X) || (a.X > hi.X && b.X > hi.X) ||
		(a.Y < lo.Y && b.Y < lo.Y) || (a.Y > hi.Y && b.Y > hi.Y)
}

// drawGuide draws dotted lines from the queried axis value to the curve
// and on to the other axis, then the result label next to the intersection.
func (m *Model) drawGuide(s plot.Scene, g *plot.Guide, style lipgloss.Style) {
	if !g.Visible {
		return
	}
	lo, hi := plotRect(s)
	at := cell(g.X, g.Y)
	var onAxis, onOther canvas.Point
	if g.Result.Axis == plot.AxisX {
		onAxis = canvas.Point{X: cell(g.AxisPos, 0).X, Y: hi.Y}
		onOther = canvas.Point{X: lo.X, Y: at.Y}
	} else {
		onAxis = canvas.Point{X: lo.X, Y: cell(0, g.AxisPos).Y}
		onOther = canvas.Point{X: at.X, Y: hi.Y}
	}
	for _, seg := range [][2]canvas.Point{{onAxis, at}, {at, onOther}} {
		for _, p := range graph.GetLinePoints(seg[0], seg[1]) {
			if inRect(p, lo, hi) && m.Cell(p).Rune == 0 {
				m.SetCell(p, canvas.NewCellWithStyle(guideRune, style))
			}
		}
	}
	label := g.Label
	x := clamp(at.X+2, 0, m.Width()-len([]rune(label)))
	y := at.Y - 1
	if y < 0 {
		y = at.Y + 1
	}
	m.setText(canvas.Point{X: x, Y: y}, label, style)
}

func (m *Model) drawPoints(s plot.Scene) {
	lo, hi := plotRect(s)
	for _, p := range s.Points {
		c := cell(p.X, p.Y)
		if !inRect(c, lo, hi) {
			continue
		}
		if p.Hovered {
			m.SetCell(c, canvas.NewCellWithStyle(runes.FullBlock, m.HoverStyle))
		} else {
			m.SetCell(c, canvas.NewCellWithStyle(pointRune, m.PointStyle))
		}
		m.hits[c] = Hit{Kind: HitPoint, Index: p.Index}
	}
}

func (m *Model) drawTooltip(s plot.Scene) {
	if s.Hovered == nil {
		return
	}
	c := cell(s.Hovered.X, s.Hovered.Y)
	text := " " + s.HoverLabel + " "
	n := len([]rune(text))
	y := c.Y - 1
	if y < 0 {
		y = c.Y + 1
	}
	x := clamp(c.X-n/2, 0, m.Width()-n)
	m.setText(canvas.Point{X: x, Y: y}, text, m.TooltipStyle)
}

func (m *Model) drawTitles(s plot.Scene) {
	w, h := m.Width(), m.Height()
	if s.YLabel != "" {
		m.setText(canvas.Point{X: 0, Y: 0}, s.YLabel, m.LabelStyle)
	}
	if s.XLabel != "" {
		n := len([]rune(s.XLabel))
		_, hi := plotRect(s)
		x := clamp((int(s.Left)+hi.X-n)/2, 0, w-n)
		m.setText(canvas.Point{X: x, Y: h - 1}, s.XLabel, m.LabelStyle)
	}
	if z := zoomLabel(s.Zoom); z != "zoom 1.0x" {
		m.setText(canvas.Point{X: clamp(w-len(z), 0, w), Y: 0}, z, m.LabelStyle)
	}
}

func zoomLabel(z plot.Vec) string {
	x, y := formatFactor(z.X), formatFactor(z.Y)
	if x == y {
		return "zoom " + x + "x"
	}
	return "zoom " + x + "/" + y + "x"
}

func formatFactor(f float64) string {
	return plot.FormatTick(f, 0.1)
}
