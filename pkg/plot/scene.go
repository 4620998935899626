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

import "fmt"

// ScreenPoint is a data point placed on screen.
type ScreenPoint struct {
	Index   int
	Data    Point
	X       float64
	Y       float64
	Hovered bool
}

// Guide places an axis query on screen. AxisPos is the screen coordinate
// of the queried value on its own axis, (X, Y) is the intersection.
type Guide struct {
	Result  AxisQueryResult
	AxisPos float64
	X       float64
	Y       float64
	// Visible is false when the intersection is scrolled out of the plot area.
	Visible bool
	Label   string
}

// Scene is a render-ready projection of a Viewer. Building it never
// changes viewer state.
type Scene struct {
	// Empty is set when there are no points; nothing else is populated
	// except the labels and line style.
	Empty bool
	// Ready is false while the container has no drawable size.
	Ready bool

	Size    Size
	Padding Padding
	Left    float64
	Top     float64
	Right   float64
	Bottom  float64

	Points  []ScreenPoint
	Path    Path
	XTicks  []Tick
	YTicks  []Tick
	Hovered *ScreenPoint
	// HoverLabel is the tooltip text of the hovered point.
	HoverLabel string

	Query     *Guide
	Reference *Guide

	XLabel    string
	YLabel    string
	LineStyle LineStyle
	Zoom      Vec
}

// Scene projects the current state to screen space. Call Layout first to
// apply pending resizes.
func (v *Viewer) Scene() Scene {
	s := Scene{
		Empty:     !v.hasData,
		XLabel:    v.xLabel,
		YLabel:    v.yLabel,
		LineStyle: v.lineStyle,
		Zoom:      Vec{X: 1, Y: 1},
	}
	if !v.hasData || !v.laidOut {
		return s
	}
	vp := v.viewport
	s.Ready = true
	s.Size = vp.Size
	s.Padding = vp.Padding
	s.Left, s.Top, s.Right, s.Bottom = vp.PlotArea()
	if v.initial != nil {
		s.Zoom = ZoomFactor(vp, *v.initial)
	}

	s.Points = make([]ScreenPoint, len(v.points))
	screen := make([]Point, len(v.points))
	for i, p := range v.points {
		x, y := vp.ToScreen(p)
		s.Points[i] = ScreenPoint{Index: i, Data: p, X: x, Y: y, Hovered: i == v.hovered}
		screen[i] = Point{X: x, Y: y}
	}
	s.Path = BuildPath(screen, v.lineStyle)

	count := v.TickCount()
	s.XTicks = vp.Ticks(AxisX, count)
	s.YTicks = vp.Ticks(AxisY, count)

	if v.hovered != noHover {
		hp := s.Points[v.hovered]
		s.Hovered = &hp
		s.HoverLabel = fmt.Sprintf("X: %.2f, Y: %.2f", hp.Data.X, hp.Data.Y)
	}
	if v.query != nil {
		s.Query = v.guide(*v.query)
	}
	if v.reference != nil {
		s.Reference = v.guide(*v.reference)
	}
	return s
}

func (v *Viewer) guide(r AxisQueryResult) *Guide {
	x, y := v.viewport.ToScreen(r.Intersection)
	return &Guide{
		Result:  r,
		AxisPos: v.viewport.ScreenPos(r.Axis, r.Value),
		X:       x,
		Y:       y,
		Visible: v.viewport.InPlot(x, y),
		Label:   GuideLabel(r, v.xLabel, v.yLabel),
	}
}

// GuideLabel describes a query result using the axis labels, falling back
// to the axis names when a label is empty.
func GuideLabel(r AxisQueryResult, xLabel, yLabel string) string {
	main, other := axisName(AxisX, xLabel), axisName(AxisY, yLabel)
	if r.Axis == AxisY {
		main, other = other, main
	}
	return fmt.Sprintf("%s %g: %s %.2f", main, r.Value, other, r.Other)
}

func axisName(a Axis, label string) string {
	if label == "" {
		return a.String()
	}
	return label
}
