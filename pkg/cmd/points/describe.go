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

package points

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	cmdutil "k8s.io/kubectl/pkg/cmd/util"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/ed23x/gemini-koordinaten/pkg/dataset"
	"github.com/ed23x/gemini-koordinaten/pkg/plot"
	"github.com/ed23x/gemini-koordinaten/pkg/printer"
)

var describeExample = templates.Examples(`
	# Describe the built-in pH sample
	koordinaten points describe

	# Describe a dataset as YAML
	koordinaten points describe points.json -o yaml

	# Use 10 ticks per axis
	koordinaten points describe points.json --ticks 10`)

type describeOptions struct {
	datasetOptions
	Format printer.Format
	Ticks  int
}

// description is the machine readable form of describe.
type description struct {
	XAxisLabel string         `json:"xAxisLabel"`
	YAxisLabel string         `json:"yAxisLabel"`
	LineStyle  plot.LineStyle `json:"lineStyle"`
	Points     []plot.Point   `json:"points"`
	Extent     *extent        `json:"extent,omitempty"`
	XTicks     []float64      `json:"xTicks,omitempty"`
	YTicks     []float64      `json:"yTicks,omitempty"`
	Reference  *queryResult   `json:"reference,omitempty"`

	xStep, yStep float64
}

type extent struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

func newDescribeCmd(streams genericiooptions.IOStreams) *cobra.Command {
	o := &describeOptions{datasetOptions: datasetOptions{IOStreams: streams}, Ticks: 5}
	cmd := &cobra.Command{
		Use:               "describe [FILE]",
		Short:             "Show the points, extent, axis ticks and pH 7 reference of a dataset.",
		Aliases:           []string{"desc"},
		Example:           describeExample,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: fileCompletion,
		Run: func(cmd *cobra.Command, args []string) {
			o.complete(args)
			cmdutil.CheckErr(o.run())
		},
	}
	printer.AddOutputFlag(cmd, &o.Format)
	cmd.Flags().IntVar(&o.Ticks, "ticks", o.Ticks, "Target number of ticks per axis")
	return cmd
}

func (o *describeOptions) run() error {
	if o.Ticks < 1 {
		return fmt.Errorf("--ticks must be positive")
	}
	ds, err := o.load()
	if err != nil {
		return err
	}
	d := describe(ds, o.Ticks)
	if !o.Format.IsHumanReadable() {
		return printer.PrintObject(d, o.Format, o.Out)
	}
	printDescription(d, o.Out)
	return nil
}

func describe(ds *dataset.Dataset, ticks int) *description {
	xLabel, yLabel := ds.Labels()
	d := &description{
		XAxisLabel: xLabel,
		YAxisLabel: yLabel,
		LineStyle:  ds.LineStyle,
		Points:     ds.Points,
	}
	e, ok := plot.ComputeExtent(ds.Points)
	if !ok {
		return d
	}
	d.Extent = &extent{MinX: e.MinX, MaxX: e.MaxX, MinY: e.MinY, MaxY: e.MaxY}
	d.XTicks = plot.NiceTicks(e.MinX, e.MaxX, ticks)
	d.YTicks = plot.NiceTicks(e.MinY, e.MaxY, ticks)
	d.xStep = plot.TickStep(e.MinX, e.MaxX, ticks)
	d.yStep = plot.TickStep(e.MinY, e.MaxY, ticks)
	if a, ok := plot.ReferenceAxis(xLabel, yLabel); ok {
		if r := plot.Query(ds.Points, a, plot.ReferenceValue, plot.TriggerReference); r != nil {
			d.Reference = newQueryResult(r, xLabel, yLabel)
		}
	}
	return d
}

func printDescription(d *description, out io.Writer) {
	printer.PrintPairString(out, "X Axis", d.XAxisLabel)
	printer.PrintPairString(out, "Y Axis", d.YAxisLabel)
	printer.PrintPairString(out, "Line Style", string(d.LineStyle))

	printer.PrintTitleTo(out, "Points")
	if len(d.Points) == 0 {
		fmt.Fprintln(out, printer.NoneString)
		return
	}
	tbl := printer.NewTablePrinter(out)
	tbl.SetHeader("INDEX", "X", "Y")
	for i, p := range d.Points {
		tbl.AddRow(i, p.X, p.Y)
	}
	tbl.Print()

	printer.PrintTitleTo(out, "Extent")
	printer.PrintPairString(out, "X", fmt.Sprintf("%g .. %g", d.Extent.MinX, d.Extent.MaxX), 2)
	printer.PrintPairString(out, "Y", fmt.Sprintf("%g .. %g", d.Extent.MinY, d.Extent.MaxY), 2)

	printer.PrintTitleTo(out, "Ticks")
	printer.PrintPairString(out, "X", joinTicks(d.XTicks, d.xStep), 2)
	printer.PrintPairString(out, "Y", joinTicks(d.YTicks, d.yStep), 2)

	printer.PrintTitleTo(out, "Reference")
	if d.Reference == nil {
		fmt.Fprintf(out, "  %s\n", printer.NoneString)
		return
	}
	fmt.Fprintf(out, "  %s\n", d.Reference.Label)
}

func joinTicks(ticks []float64, step float64) string {
	if len(ticks) == 0 {
		return printer.NoneString
	}
	s := make([]string, len(ticks))
	for i, t := range ticks {
		s[i] = plot.FormatTick(t, step)
	}
	return strings.Join(s, ", ")
}
