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

// Viewport maps between data coordinates and screen coordinates.
// Offset is the data coordinate mapped to the padded lower-left origin
// of the plot area, Scale converts data units to pixels.
type Viewport struct {
	Scale   Vec
	Offset  Vec
	Padding Padding
	Size    Size
}

// InitialView is the first fitted scale/offset, used as the zoom bound reference.
type InitialView struct {
	Scale  Vec
	Offset Vec
}

// Fit returns a viewport that shows the whole extent inside the padded
// plot area of a container of the given size.
func Fit(e Extent, size Size, padding Padding) Viewport {
	return Viewport{
		Scale: Vec{
			X: usable(size.Width-padding.Left-padding.Right) / e.Range(AxisX),
			Y: usable(size.Height-padding.Top-padding.Bottom) / e.Range(AxisY),
		},
		Offset:  Vec{X: e.MinX, Y: e.MinY},
		Padding: padding,
		Size:    size,
	}
}

// usable keeps the plot span positive on containers smaller than their padding.
func usable(span float64) float64 {
	if span <= 0 {
		return 1
	}
	return span
}

// ToScreen converts a data point to screen coordinates.
func (v Viewport) ToScreen(p Point) (float64, float64) {
	x := (p.X-v.Offset.X)*v.Scale.X + v.Padding.Left
	y := v.Size.Height - ((p.Y-v.Offset.Y)*v.Scale.Y + v.Padding.Bottom)
	return x, y
}

// ToData converts screen coordinates back to a data point.
func (v Viewport) ToData(sx, sy float64) Point {
	return Point{
		X: (sx-v.Padding.Left)/v.Scale.X + v.Offset.X,
		Y: (v.Size.Height-sy-v.Padding.Bottom)/v.Scale.Y + v.Offset.Y,
	}
}

// ScreenPos converts a single axis value to its screen coordinate on that axis.
func (v Viewport) ScreenPos(a Axis, value float64) float64 {
	if a == AxisY {
		_, y := v.ToScreen(Point{Y: value, X: v.Offset.X})
		return y
	}
	x, _ := v.ToScreen(Point{X: value, Y: v.Offset.Y})
	return x
}

// PlotArea returns the screen rectangle inside the padding as (left, top, right, bottom).
func (v Viewport) PlotArea() (float64, float64, float64, float64) {
	return v.Padding.Left, v.Padding.Top, v.Size.Width - v.Padding.Right, v.Size.Height - v.Padding.Bottom
}

// VisibleRange returns the data range of axis a covered by the plot area, low first.
func (v Viewport) VisibleRange(a Axis) (float64, float64) {
	left, top, right, bottom := v.PlotArea()
	if a == AxisY {
		return v.ToData(left, bottom).Y, v.ToData(left, top).Y
	}
	return v.ToData(left, bottom).X, v.ToData(right, bottom).X
}

// Contains reports whether the screen coordinate pos on axis a lies within the plot area.
func (v Viewport) Contains(a Axis, pos float64) bool {
	const eps = 1e-6
	left, top, right, bottom := v.PlotArea()
	if a == AxisY {
		return pos >= top-eps && pos <= bottom+eps
	}
	return pos >= left-eps && pos <= right+eps
}

// InPlot reports whether the screen point lies within the plot area.
func (v Viewport) InPlot(sx, sy float64) bool {
	return v.Contains(AxisX, sx) && v.Contains(AxisY, sy)
}
