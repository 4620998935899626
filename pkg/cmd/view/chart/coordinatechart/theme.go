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
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Theme holds the styles used to draw a scene.
type Theme struct {
	Name               string
	AxisStyle          lipgloss.Style
	LabelStyle         lipgloss.Style
	TickStyle          lipgloss.Style
	ClickableTickStyle lipgloss.Style
	CurveStyle         lipgloss.Style
	PointStyle         lipgloss.Style
	HoverStyle         lipgloss.Style
	GuideStyle         lipgloss.Style
	ReferenceStyle     lipgloss.Style
	TooltipStyle       lipgloss.Style
}

func DarkTheme() Theme {
	return Theme{
		Name:               "dark",
		AxisStyle:          lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		LabelStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db")),
		TickStyle:          lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
		ClickableTickStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#e5e7eb")).Underline(true),
		CurveStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")),
		PointStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")),
		HoverStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#93c5fd")),
		GuideStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")),
		ReferenceStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#34d399")),
		TooltipStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#1f2937")),
	}
}

func LightTheme() Theme {
	return Theme{
		Name:               "light",
		AxisStyle:          lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		LabelStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#111827")),
		TickStyle:          lipgloss.NewStyle().Foreground(lipgloss.Color("#4b5563")),
		ClickableTickStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#1f2937")).Underline(true),
		CurveStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")),
		PointStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")),
		HoverStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#1d4ed8")),
		GuideStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
		ReferenceStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#059669")),
		TooltipStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#000000")),
	}
}

// ThemeByName returns the light theme for "light" and the dark theme otherwise.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == "light" {
		return DarkTheme()
	}
	return LightTheme()
}

// Option is used to set options when initializing a Model.
type Option func(*Model)

// WithZoneManager sets the bubblezone Manager used to mark the canvas.
func WithZoneManager(zm *zone.Manager) Option {
	return func(m *Model) {
		m.SetZoneManager(zm)
	}
}

func WithTheme(t Theme) Option {
	return func(m *Model) {
		m.Theme = t
	}
}

// WithSmoothSamples sets how many samples approximate each smooth segment.
func WithSmoothSamples(n int) Option {
	return func(m *Model) {
		m.samples = n
	}
}
