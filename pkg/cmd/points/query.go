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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	cmdutil "k8s.io/kubectl/pkg/cmd/util"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/ed23x/gemini-koordinaten/pkg/plot"
	"github.com/ed23x/gemini-koordinaten/pkg/printer"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
)

var queryExample = templates.Examples(`
	# Read the concentration of the sample at pH 7
	koordinaten points query --axis x --value 7

	# Find where a curve reaches y = 15
	koordinaten points query points.json --axis y --value 15 -o json

	# Print only the other coordinate
	koordinaten points query points.json --value 6.5 --template '{{printf "%.3f" .Other}}'`)

type queryOptions struct {
	datasetOptions
	Axis     string
	Value    float64
	Format   printer.Format
	Template string

	axis plot.Axis
}

// queryResult is the printable form of an axis query.
type queryResult struct {
	Axis    string       `json:"axis"`
	Value   float64      `json:"value"`
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	Other   float64      `json:"other"`
	Trigger plot.Trigger `json:"trigger"`
	Label   string       `json:"label"`
}

func newQueryResult(r *plot.AxisQueryResult, xLabel, yLabel string) *queryResult {
	return &queryResult{
		Axis:    r.Axis.String(),
		Value:   r.Value,
		X:       r.Intersection.X,
		Y:       r.Intersection.Y,
		Other:   r.Other,
		Trigger: r.Trigger,
		Label:   plot.GuideLabel(*r, xLabel, yLabel),
	}
}

func newQueryCmd(streams genericiooptions.IOStreams) *cobra.Command {
	o := &queryOptions{datasetOptions: datasetOptions{IOStreams: streams}, Axis: "x"}
	cmd := &cobra.Command{
		Use:               "query [FILE]",
		Short:             "Interpolate the curve where an axis takes a value.",
		Example:           queryExample,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: fileCompletion,
		Run: func(cmd *cobra.Command, args []string) {
			o.complete(args)
			cmdutil.CheckErr(o.validate())
			cmdutil.CheckErr(o.run())
		},
	}
	printer.AddOutputFlag(cmd, &o.Format)
	cmd.Flags().StringVar(&o.Axis, "axis", o.Axis, "Axis the value is given on: x or y")
	cmd.Flags().Float64Var(&o.Value, "value", 0, "Value on the axis")
	cmd.Flags().StringVar(&o.Template, "template", "", "Go template applied to the result, overrides --output")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.RegisterFlagCompletionFunc("axis", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"x", "y"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (o *queryOptions) validate() error {
	var err error
	o.axis, err = plot.ParseAxis(o.Axis)
	return err
}

func (o *queryOptions) run() error {
	ds, err := o.load()
	if err != nil {
		return err
	}
	xLabel, yLabel := ds.Labels()
	r := plot.Query(ds.Points, o.axis, o.Value, plot.TriggerClick)
	if r == nil {
		return errors.Errorf("%s = %g is outside the curve", o.axis, o.Value)
	}
	res := newQueryResult(r, xLabel, yLabel)
	switch {
	case o.Template != "":
		if err = util.PrintGoTemplate(o.Out, o.Template, res); err != nil {
			return err
		}
		_, err = fmt.Fprintln(o.Out)
		return err
	case o.Format.IsHumanReadable():
		_, err = fmt.Fprintln(o.Out, res.Label)
		return err
	}
	return printer.PrintObject(res, o.Format, o.Out)
}
