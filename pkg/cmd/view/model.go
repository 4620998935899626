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
	"strings"

	"github.com/76creates/stickers/flexbox"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"k8s.io/klog/v2"

	"github.com/ed23x/gemini-koordinaten/pkg/cmd/view/chart/coordinatechart"
	"github.com/ed23x/gemini-koordinaten/pkg/cmd/view/chart/richviewport"
	"github.com/ed23x/gemini-koordinaten/pkg/cmd/view/chart/summary"
	"github.com/ed23x/gemini-koordinaten/pkg/dataset"
	"github.com/ed23x/gemini-koordinaten/pkg/plot"
)

const (
	topRow   = 0
	chartRow = 1
)

var helpText = strings.Join([]string{
	"←↓↑→ pan",
	"+/- zoom",
	"r reset",
	"s line style",
	"t theme",
	"q quit",
}, "  ")

// reloadMsg carries a dataset read again after its file changed.
type reloadMsg struct {
	ds  *dataset.Dataset
	err error
}

// Model is the bubbletea model of the interactive viewer. The details panel
// and the point summary share the top row, the chart fills the rest.
type Model struct {
	viewer   *plot.Viewer
	notifier *plot.ResizeNotifier
	zM       *zone.Manager

	base    *flexbox.FlexBox
	chart   coordinatechart.Model
	details *richviewport.Model
	summary *summary.Model
	theme   coordinatechart.Theme

	source  string
	hovered *plot.Point
	status  string
	width   int
}

func newModel(ds *dataset.Dataset, source string, theme coordinatechart.Theme) *Model {
	m := &Model{
		notifier: plot.NewResizeNotifier(),
		zM:       zone.New(),
		base:     flexbox.New(0, 0),
		theme:    theme,
		source:   source,
	}
	xLabel, yLabel := ds.Labels()
	m.viewer = plot.NewViewer(
		plot.WithLayout(coordinatechart.TerminalLayout()),
		plot.WithLabels(xLabel, yLabel),
		plot.WithLineStyle(ds.LineStyle),
		plot.WithOnHover(m.onHover),
	)
	m.viewer.Observe(m.notifier)
	m.viewer.SetPoints(ds.Points)
	m.chart = coordinatechart.New(1, 1,
		coordinatechart.WithZoneManager(m.zM),
		coordinatechart.WithTheme(theme))
	m.details = richviewport.NewViewPort(1, 1, source, "")
	m.summary = summary.New(1, 1, m.zM)
	m.initLayout()
	return m
}

func (m *Model) initLayout() {
	rows := []*flexbox.Row{
		m.base.NewRow().AddCells(
			flexbox.NewCell(2, 2),
			flexbox.NewCell(1, 2),
		),
		m.base.NewRow().AddCells(
			flexbox.NewCell(1, 3),
		),
	}
	m.base.AddRows(rows)
}

func (m *Model) onHover(p *plot.Point) {
	if p == nil {
		m.hovered = nil
		return
	}
	hp := *p
	m.hovered = &hp
	klog.V(1).Infof("hover %s", hp)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.viewer.Close()
			return m, tea.Quit
		case "s":
			m.viewer.SetLineStyle(m.viewer.LineStyle().Toggle())
		case "t":
			m.theme = m.theme.Toggle()
			m.chart.Theme = m.theme
		case "pgup", "pgdown":
			return m, m.details.Update(msg)
		default:
			m.chart.Update(m.viewer, msg)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, ok := m.summary.PointAt(msg); ok {
				m.viewer.HoverPoint(i)
				return m, nil
			}
		}
		m.chart.Update(m.viewer, msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.base.SetWidth(msg.Width)
		// the last line shows the key help
		m.base.SetHeight(max(0, msg.Height-1))
		m.resize()
	case reloadMsg:
		m.reload(msg)
	}
	return m, nil
}

func (m *Model) resize() {
	m.base.ForceRecalculate()
	cell := m.base.GetRow(chartRow).GetCell(0)
	w, h := cell.GetWidth(), cell.GetHeight()
	m.chart.Resize(w, h)
	m.notifier.Notify(plot.Size{Width: float64(w), Height: float64(h)})

	top := m.base.GetRow(topRow)
	m.details.SetSize(top.GetCell(0).GetWidth(), top.GetCell(0).GetHeight())
	m.summary.Resize(top.GetCell(1).GetWidth(), top.GetCell(1).GetHeight())
}

func (m *Model) reload(msg reloadMsg) {
	if msg.err != nil {
		m.status = "reload failed: " + msg.err.Error()
		return
	}
	xLabel, yLabel := msg.ds.Labels()
	m.viewer.SetLabels(xLabel, yLabel)
	m.viewer.SetLineStyle(msg.ds.LineStyle)
	m.viewer.SetPoints(msg.ds.Points)
	m.status = fmt.Sprintf("reloaded %d points", len(msg.ds.Points))
}

func (m *Model) View() string {
	m.viewer.Layout()
	scene := m.viewer.Scene()
	m.chart.Draw(scene)

	hovered, ok := m.viewer.Hovered()
	if !ok {
		hovered = -1
	}
	m.summary.SetStyles(m.theme.AxisStyle, m.theme.LabelStyle)
	m.summary.SetPoints(m.viewer.Points(), hovered, m.theme.PointStyle, m.theme.HoverStyle)
	m.summary.Draw()
	m.details.SetContent(detailsContent(m.viewer, m.hovered, m.theme.Name, m.status))

	top := m.base.GetRow(topRow)
	top.GetCell(0).SetContent(m.details.View())
	top.GetCell(1).SetContent(m.summary.View())
	m.base.GetRow(chartRow).GetCell(0).SetContent(m.chart.View())

	res := lipgloss.JoinVertical(lipgloss.Left, m.base.Render(), m.helpView())
	return m.zM.Scan(res) // call zone Manager.Scan() at root Model
}

func (m *Model) helpView() string {
	help := helpText
	if m.width > 0 && lipgloss.Width(help) > m.width {
		help = string([]rune(help)[:m.width])
	}
	return m.theme.AxisStyle.Render(help)
}
