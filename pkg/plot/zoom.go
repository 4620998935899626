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

const (
	// zoomSensitivity converts a wheel delta into a relative scale change.
	zoomSensitivity = 0.1 * 0.01

	// MinZoom and MaxZoom bound the scale relative to the initial view.
	MinZoom = 0.5
	MaxZoom = 20.0

	// WheelDelta is the delta reported for one wheel notch. Negative zooms in.
	WheelDelta = 100.0
)

// Zoom applies a cursor-anchored multiplicative zoom for a wheel event at
// screen position (sx, sy). The data point under the cursor stays under the
// cursor and each axis scale is clamped to [MinZoom, MaxZoom] times the
// initial scale.
func Zoom(v Viewport, initial InitialView, sx, sy, deltaY float64) Viewport {
	anchor := v.ToData(sx, sy)
	factor := 1 - deltaY*zoomSensitivity

	v.Scale = Vec{
		X: clampScale(v.Scale.X*factor, initial.Scale.X),
		Y: clampScale(v.Scale.Y*factor, initial.Scale.Y),
	}
	v.Offset = Vec{
		X: anchor.X - (sx-v.Padding.Left)/v.Scale.X,
		Y: anchor.Y - (v.Size.Height-sy-v.Padding.Bottom)/v.Scale.Y,
	}
	return v
}

func clampScale(s, initial float64) float64 {
	return math.Min(math.Max(s, initial*MinZoom), initial*MaxZoom)
}

// Pan moves the viewport content by (dx, dy) pixels; positive dx moves the
// content right and positive dy moves it down.
func Pan(v Viewport, dx, dy float64) Viewport {
	v.Offset.X -= dx / v.Scale.X
	v.Offset.Y += dy / v.Scale.Y
	return v
}

// ZoomFactor returns the current per-axis scale relative to the initial view.
func ZoomFactor(v Viewport, initial InitialView) Vec {
	if initial.Scale.X == 0 || initial.Scale.Y == 0 {
		return Vec{X: 1, Y: 1}
	}
	return Vec{X: v.Scale.X / initial.Scale.X, Y: v.Scale.Y / initial.Scale.Y}
}
