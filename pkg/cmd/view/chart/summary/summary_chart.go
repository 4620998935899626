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

// Package summary shows the Y value of every point as a bar, labeled
// with its X value, so that points can be picked from a compact list.
package summary

import (
	"fmt"
	"strconv"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/ed23x/gemini-koordinaten/pkg/plot"
)

const (
	barWidth = 4
	barGap   = 1
)

type Model struct {
	bars   barchart.Model
	zm     *zone.Manager
	data   []barchart.BarData
	width  int
	height int

	axisStyle  lipgloss.Style
	labelStyle lipgloss.Style
}

// New returns an empty summary of w x h cells.
func New(w, h int, zm *zone.Manager) *Model {
	m := &Model{zm: zm, width: w, height: h}
	m.rebuild()
	return m
}

// SetStyles sets the axis and label styles used by the next Draw.
func (m *Model) SetStyles(axis, label lipgloss.Style) {
	m.axisStyle, m.labelStyle = axis, label
}

// SetPoints shows one bar per point. Bars start at the smaller of zero and
// the lowest Y value so that negative values still get a visible bar.
func (m *Model) SetPoints(points []plot.Point, hovered int, style, hoverStyle lipgloss.Style) {
	base := 0.0
	for _, p := range points {
		if p.Y < base {
			base = p.Y
		}
	}
	m.data = m.data[:0]
	for i, p := range points {
		s := style
		if i == hovered {
			s = hoverStyle
		}
		m.data = append(m.data, barchart.BarData{
			Label: strconv.FormatFloat(p.X, 'g', 3, 64),
			Values: []barchart.BarValue{
				{Name: fmt.Sprintf("%d", i), Value: p.Y - base, Style: s},
			},
		})
	}
	m.rebuild()
}

func (m *Model) Resize(w, h int) {
	if w == m.width && h == m.height {
		return
	}
	m.width, m.height = w, h
	m.rebuild()
}

// Fits reports whether every bar fits into the width.
func (m *Model) Fits() bool {
	return len(m.data) > 0 && len(m.data)*(barWidth+barGap) <= m.width && m.height > 2
}

func (m *Model) rebuild() {
	w := len(m.data) * (barWidth + barGap)
	if w == 0 {
		w = 1
	}
	opts := []barchart.Option{
		barchart.WithDataSet(m.data),
		barchart.WithBarWidth(barWidth),
		barchart.WithBarGap(barGap),
		barchart.WithStyles(m.axisStyle, m.labelStyle),
	}
	if m.zm != nil {
		opts = append(opts, barchart.WithZoneManager(m.zm))
	}
	m.bars = barchart.New(w, max(1, m.height-1), opts...)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Draw() {
	if m.Fits() {
		m.bars.Draw()
	}
}

// View shows the bars, or a one line legend when they do not fit.
func (m *Model) View() string {
	if !m.Fits() {
		return legend(len(m.data))
	}
	return m.bars.View()
}

// PointAt returns the index of the point whose bar is under the mouse.
func (m *Model) PointAt(msg tea.MouseMsg) (int, bool) {
	if m.zm == nil || !m.Fits() || !m.zm.Get(m.bars.ZoneID()).InBounds(msg) {
		return 0, false
	}
	x, y := m.zm.Get(m.bars.ZoneID()).Pos(msg)
	bd := m.bars.BarDataFromPoint(canvas.Point{X: x, Y: y})
	if len(bd.Values) == 0 {
		return 0, false
	}
	i, err := strconv.Atoi(bd.Values[0].Name)
	if err != nil || i < 0 || i >= len(m.data) {
		return 0, false
	}
	return i, true
}

func legend(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%c %d points", runes.FullBlock, n)
}
