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

package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var KubeCtlStyle = table.Style{
	Name: "StyleKubeCtl",
	Box: table.BoxStyle{
		PaddingLeft:  "",
		PaddingRight: "   ",
	},
	Color: table.ColorOptionsDefault,
	Format: table.FormatOptions{
		Footer: text.FormatUpper,
		Header: text.FormatUpper,
		Row:    text.FormatDefault,
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  false,
		SeparateRows:    false,
	},
}

// TablePrinter prints rows in the kubectl column style.
type TablePrinter struct {
	Tbl table.Writer
}

func NewTablePrinter(out io.Writer) *TablePrinter {
	t := table.NewWriter()
	t.SetStyle(KubeCtlStyle)
	t.SetOutputMirror(out)
	return &TablePrinter{Tbl: t}
}

func (t *TablePrinter) SetStyle(style table.Style) {
	t.Tbl.SetStyle(style)
}

func (t *TablePrinter) SetHeader(header ...interface{}) {
	t.Tbl.AppendHeader(header)
}

func (t *TablePrinter) AddRow(row ...interface{}) {
	rowObj := table.Row{}
	for _, col := range row {
		rowObj = append(rowObj, col)
	}
	t.Tbl.AppendRow(rowObj)
}

// SortBy sorts rows by the given 1-based column numbers.
func (t *TablePrinter) SortBy(columns ...int) {
	var sortBy []table.SortBy
	for _, c := range columns {
		sortBy = append(sortBy, table.SortBy{Number: c})
	}
	t.Tbl.SortBy(sortBy)
}

func (t *TablePrinter) Print() {
	t.Tbl.Render()
}

// PrintPairStringToLine prints pair string for a line , the format is as follows "<space>*<key>:\t<value>".
// spaceCount is the space character count which is placed at the beginning of the line.
func PrintPairStringToLine(name string, value string, spaceCount ...int) {
	PrintPairString(os.Stdout, name, value, spaceCount...)
}

func PrintPairString(out io.Writer, name string, value string, spaceCount ...int) {
	var (
		spaceNum = 0
		spaces   = ""
	)
	if len(spaceCount) > 0 {
		spaceNum = spaceCount[0]
	}
	for i := 0; i < spaceNum; i++ {
		spaces += " "
	}
	fmt.Fprintf(out, "%s%-20s%s\n", spaces, name+":", value)
}

func PrintTitle(title string) {
	PrintTitleTo(os.Stdout, title)
}

func PrintTitleTo(out io.Writer, title string) {
	titleTmpl := "\n%s:\n"
	fmt.Fprintf(out, titleTmpl, title)
}

func PrintLine(line string) {
	fmt.Println(line)
}

var (
	BoldYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	BoldRed    = color.New(color.FgRed, color.Bold).SprintFunc()
	BoldGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
)
