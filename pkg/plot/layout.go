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

// Layout holds the responsive settings of the viewer. Containers narrower
// than NarrowWidth use the narrow padding and tick count.
type Layout struct {
	NarrowWidth   float64
	Wide          Padding
	Narrow        Padding
	WideTicks     int
	NarrowTicks   int
	SmoothSamples int
}

// DefaultLayout matches a browser-sized canvas measured in CSS pixels.
func DefaultLayout() Layout {
	return Layout{
		NarrowWidth:   640,
		Wide:          Padding{Left: 50, Right: 20, Top: 20, Bottom: 50},
		Narrow:        Padding{Left: 40, Right: 10, Top: 10, Bottom: 40},
		WideTicks:     5,
		NarrowTicks:   3,
		SmoothSamples: 16,
	}
}

// IsNarrow reports whether a container of the given width uses the narrow layout.
func (l Layout) IsNarrow(width float64) bool {
	return width < l.NarrowWidth
}

// PaddingFor returns the padding for a container width.
func (l Layout) PaddingFor(width float64) Padding {
	if l.IsNarrow(width) {
		return l.Narrow
	}
	return l.Wide
}

// TickCount returns the target tick count for a container width.
func (l Layout) TickCount(width float64) int {
	if l.IsNarrow(width) {
		return l.NarrowTicks
	}
	return l.WideTicks
}
