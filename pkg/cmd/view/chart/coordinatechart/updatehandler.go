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

// File contains the handlers used during Model Update() to turn
// keyboard and mouse messages into plot.Viewer transitions.

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ed23x/gemini-koordinaten/pkg/plot"
)

// UpdateHandler routes a bubbletea message to the viewer and reports
// whether the viewer state may have changed.
type UpdateHandler func(m *Model, v *plot.Viewer, msg tea.Msg) bool

// ViewerUpdateHandler enables zooming with the mouse wheel or +/-,
// moving the viewport by dragging with the left button or with the
// arrow keys by step cells, hovering points, clicking tick labels and
// resetting the view with r.
func ViewerUpdateHandler(step float64) UpdateHandler {
	return func(m *Model, v *plot.Viewer, msg tea.Msg) bool {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			return handleKey(v, msg, step)
		case tea.MouseMsg:
			x, y := -1, -1
			if zm := m.ZoneManager(); zm != nil {
				x, y = zm.Get(m.ZoneID()).Pos(msg)
			}
			return m.handleMouse(v, msg, x, y)
		}
		return false
	}
}

// Update processes a bubbletea Msg by invoking the ViewerHandler.
func (m *Model) Update(v *plot.Viewer, msg tea.Msg) bool {
	if m.ViewerHandler == nil {
		return false
	}
	return m.ViewerHandler(m, v, msg)
}

func handleKey(v *plot.Viewer, msg tea.KeyMsg, step float64) bool {
	switch msg.String() {
	case "left":
		v.Pan(step, 0)
	case "right":
		v.Pan(-step, 0)
	case "up":
		v.Pan(0, step)
	case "down":
		v.Pan(0, -step)
	case "+", "=":
		v.ZoomCenter(-plot.WheelDelta)
	case "-", "_":
		v.ZoomCenter(plot.WheelDelta)
	case "r":
		v.ResetView()
	default:
		return false
	}
	return true
}

// handleMouse handles a mouse message at canvas cell (x, y); negative
// coordinates mean the pointer is outside the canvas.
func (m *Model) handleMouse(v *plot.Viewer, msg tea.MouseMsg, x, y int) bool {
	if x < 0 || y < 0 {
		m.drag = nil
		if _, ok := v.Hovered(); ok && msg.Action == tea.MouseActionMotion {
			v.LeavePoint()
			return true
		}
		return false
	}
	// aim at the cell centre
	sx, sy := float64(x)+0.5, float64(y)+0.5
	hit := m.HitAt(x, y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		v.Wheel(sx, sy, -plot.WheelDelta)
	case msg.Button == tea.MouseButtonWheelDown:
		v.Wheel(sx, sy, plot.WheelDelta)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.drag = &canvas.Point{X: x, Y: y}
		switch hit.Kind {
		case HitPoint:
			v.HoverPoint(hit.Index)
		case HitTick:
			v.ClickTick(hit.Tick)
		default:
			v.ClickBackground()
		}
	case msg.Action == tea.MouseActionRelease:
		m.drag = nil
		return false
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft && m.drag != nil:
		v.Pan(float64(x-m.drag.X), float64(y-m.drag.Y))
		m.drag = &canvas.Point{X: x, Y: y}
	case msg.Action == tea.MouseActionMotion:
		i, hovered := v.Hovered()
		switch {
		case hit.Kind == HitPoint && (!hovered || i != hit.Index):
			v.HoverPoint(hit.Index)
		case hit.Kind != HitPoint && hovered:
			v.LeavePoint()
		default:
			return false
		}
	default:
		return false
	}
	return true
}
