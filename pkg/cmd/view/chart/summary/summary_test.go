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

package summary

import (
	"github.com/charmbracelet/lipgloss"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ed23x/gemini-koordinaten/pkg/plot"
)

var _ = Describe("summary", func() {
	points := []plot.Point{{X: 5, Y: 10}, {X: 6, Y: -2}, {X: 7.5, Y: 18}}

	It("shows one bar per point when they fit", func() {
		m := New(40, 8, nil)
		m.SetPoints(points, 1, lipgloss.NewStyle(), lipgloss.NewStyle().Bold(true))
		Expect(m.Fits()).Should(BeTrue())
		Expect(m.data).Should(HaveLen(3))
		Expect(m.data[0].Label).Should(Equal("5"))
		Expect(m.data[2].Label).Should(Equal("7.5"))
		// bars start at the lowest value
		Expect(m.data[1].Values[0].Value).Should(Equal(0.0))
		Expect(m.data[0].Values[0].Value).Should(Equal(12.0))
		m.Draw()
		Expect(m.View()).ShouldNot(BeEmpty())
	})

	It("falls back to a legend when narrow", func() {
		m := New(40, 8, nil)
		m.SetPoints(points, -1, lipgloss.NewStyle(), lipgloss.NewStyle())
		m.Resize(10, 8)
		Expect(m.Fits()).Should(BeFalse())
		Expect(m.View()).Should(ContainSubstring("3 points"))

		m.SetPoints(nil, -1, lipgloss.NewStyle(), lipgloss.NewStyle())
		Expect(m.View()).Should(BeEmpty())
	})
})
