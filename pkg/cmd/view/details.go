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

package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/ed23x/gemini-koordinaten/pkg/plot"
)

var (
	enumeratorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).MarginRight(1)
	rootStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	itemStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// detailsContent describes the viewer state as a tree: extent, zoom,
// reference indicator, clicked query and hovered point.
func detailsContent(v *plot.Viewer, hovered *plot.Point, theme, status string) string {
	xLabel, yLabel := v.Labels()
	points := v.Points()
	t := tree.New().
		Root(fmt.Sprintf("%d points", len(points))).
		EnumeratorStyle(enumeratorStyle).
		RootStyle(rootStyle).
		ItemStyle(itemStyle)

	if e, ok := v.Extent(); ok {
		t.Child(
			fmt.Sprintf("%s: %g .. %g", label(xLabel, "x"), e.MinX, e.MaxX),
			fmt.Sprintf("%s: %g .. %g", label(yLabel, "y"), e.MinY, e.MaxY),
		)
	}
	if vp, ok := v.Viewport(); ok {
		if iv, ok := v.InitialView(); ok {
			z := plot.ZoomFactor(vp, iv)
			t.Child(fmt.Sprintf("zoom: %.1fx", z.X))
		}
	}
	if r := v.Reference(); r != nil {
		t.Child("reference: " + plot.GuideLabel(*r, xLabel, yLabel))
	}
	if q := v.Query(); q != nil {
		t.Child("query: " + plot.GuideLabel(*q, xLabel, yLabel))
	}
	if hovered != nil {
		t.Child(fmt.Sprintf("point: X: %.2f, Y: %.2f", hovered.X, hovered.Y))
	}
	t.Child(fmt.Sprintf("line: %s, theme: %s", v.LineStyle(), theme))

	s := t.String()
	if status != "" {
		s += "\n" + status
	}
	return s
}

func label(l, fallback string) string {
	if l == "" {
		return fallback
	}
	return l
}
