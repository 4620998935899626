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

// Package richviewport implements a titled, scrollable text panel
// on top of the bubbles viewport component.
package richviewport

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	defaultStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")) // purple

	titleStyle = func() lipgloss.Style {
		b := lipgloss.RoundedBorder()
		b.Right = "├"
		return lipgloss.NewStyle().BorderStyle(b).Padding(0, 1)
	}()

	infoStyle = func() lipgloss.Style {
		b := lipgloss.RoundedBorder()
		b.Left = "┤"
		return titleStyle.BorderStyle(b)
	}()
)

type Model struct {
	header   string
	content  string
	width    int
	height   int
	style    lipgloss.Style
	viewport viewport.Model
}

// NewViewPort returns a panel of w x h cells showing content below header.
func NewViewPort(w, h int, header, content string) *Model {
	m := &Model{
		header:  header,
		content: content,
		style:   defaultStyle,
	}
	m.SetSize(w, h)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update scrolls the content on keyboard and mouse wheel events.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Top,
		m.headerView(),
		m.style.Render(m.viewport.View()),
		m.footerView())
}

// SetSize resizes the panel, keeping the scroll position when possible.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	headerHeight := lipgloss.Height(m.headerView())
	footerHeight := lipgloss.Height(m.footerView())
	verticalMarginHeight := headerHeight + footerHeight
	vw, vh := max(0, w-2), max(0, h-verticalMarginHeight-2)
	if m.viewport.Width == 0 && m.viewport.Height == 0 {
		m.viewport = viewport.New(vw, vh)
	} else {
		m.viewport.Width, m.viewport.Height = vw, vh
	}
	m.viewport.YPosition = headerHeight + 1
	m.viewport.SetContent(m.content)
}

// SetContent replaces the panel text.
func (m *Model) SetContent(content string) {
	if content == m.content {
		return
	}
	m.content = content
	m.viewport.SetContent(content)
}

// SetBorderColor changes the border color of the content box.
func (m *Model) SetBorderColor(c lipgloss.TerminalColor) {
	m.style = m.style.BorderForeground(c)
}

func (m *Model) Content() string {
	return m.content
}

func (m *Model) headerView() string {
	title := titleStyle.Render(m.header)
	line := strings.Repeat("─", max(0, m.width-lipgloss.Width(title)))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, line)
}

func (m *Model) footerView() string {
	info := infoStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	line := strings.Repeat("─", max(0, m.width-lipgloss.Width(info)))
	return lipgloss.JoinHorizontal(lipgloss.Center, line, info)
}
