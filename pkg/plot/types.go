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

// Package plot implements the coordinate-mapping and curve-query engine
// of the point viewer: extent calculation, the data <-> screen viewport
// transform, nice tick generation, piecewise-linear interpolation,
// cursor-anchored zoom and the interaction state machine.
//
// Screen coordinates grow to the right and downwards, data coordinates
// grow to the right and upwards. The engine is unit agnostic: a "pixel"
// is whatever unit the host measures its container in.
package plot

import (
	"fmt"
	"strings"
)

// Point is a data point supplied by the host.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Vec is a per-axis pair used for scale and offset.
type Vec struct {
	X float64
	Y float64
}

// Size is the pixel size of the container.
type Size struct {
	Width  float64
	Height float64
}

// Empty reports whether the size has no drawable area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Padding is the four-sided padding around the plot area, in pixels.
type Padding struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// ParseAxis parses "x" or "y", case-insensitively.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	}
	return AxisX, fmt.Errorf("invalid axis %q, must be one of [x y]", s)
}

// main returns the coordinate of p on axis a.
func (a Axis) main(p Point) float64 {
	if a == AxisY {
		return p.Y
	}
	return p.X
}

// other returns the coordinate of p on the axis that is not a.
func (a Axis) other(p Point) float64 {
	if a == AxisY {
		return p.X
	}
	return p.Y
}

// point builds a Point from a value on axis a and a value on the other axis.
func (a Axis) point(main, other float64) Point {
	if a == AxisY {
		return Point{X: other, Y: main}
	}
	return Point{X: main, Y: other}
}

// LineStyle selects how consecutive points are connected.
type LineStyle string

const (
	LineStyleSharp  LineStyle = "sharp"
	LineStyleSmooth LineStyle = "smooth"
)

// ParseLineStyle accepts sharp/smooth and the legacy eckig/gerundet values.
func ParseLineStyle(s string) (LineStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sharp", "eckig", "straight":
		return LineStyleSharp, nil
	case "smooth", "gerundet", "curved", "":
		return LineStyleSmooth, nil
	}
	return LineStyleSmooth, fmt.Errorf("invalid line style %q, must be one of [sharp smooth]", s)
}

// Toggle returns the other line style.
func (l LineStyle) Toggle() LineStyle {
	if l == LineStyleSharp {
		return LineStyleSmooth
	}
	return LineStyleSharp
}

// Trigger tells what produced an AxisQueryResult.
type Trigger string

const (
	// TriggerReference marks the standing pH = 7 reference indicator.
	TriggerReference Trigger = "automatic-reference"
	// TriggerClick marks a query started by clicking a tick label.
	TriggerClick Trigger = "user-click"
)

// AxisQueryResult describes where the curve crosses Value on Axis.
type AxisQueryResult struct {
	Axis         Axis
	Value        float64
	Intersection Point
	Other        float64
	Trigger      Trigger
}
