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
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	cmdutil "k8s.io/kubectl/pkg/cmd/util"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/ed23x/gemini-koordinaten/pkg/dataset"
	"github.com/ed23x/gemini-koordinaten/pkg/export"
	"github.com/ed23x/gemini-koordinaten/pkg/plot"
	"github.com/ed23x/gemini-koordinaten/pkg/spinner"
)

const maxExportWorkers = 4

var exportExample = templates.Examples(`
	# Export the sample as pH-Concentration-koordinaten.png
	koordinaten points export

	# Export a dataset as PNG and SVG, and convert it to YAML
	koordinaten points export points.json -o curve.png -o curve.svg -o points.yaml

	# Export a straight-line chart of 20x12 cm
	koordinaten points export points.json -o curve.pdf --line-style sharp --width 20 --height 12`)

type exportOptions struct {
	datasetOptions
	Outputs   []string
	Title     string
	Width     float64
	Height    float64
	Ticks     int
	LineStyle string
}

func newExportCmd(streams genericiooptions.IOStreams) *cobra.Command {
	o := &exportOptions{datasetOptions: datasetOptions{IOStreams: streams}, Width: 16, Height: 10, Ticks: 5}
	cmd := &cobra.Command{
		Use:               "export [FILE]",
		Short:             "Export a dataset as PNG, SVG or PDF chart, or as JSON or YAML points.",
		Example:           exportExample,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: fileCompletion,
		Run: func(cmd *cobra.Command, args []string) {
			o.complete(args)
			cmdutil.CheckErr(o.validate())
			cmdutil.CheckErr(o.run())
		},
	}
	cmd.Flags().StringArrayVarP(&o.Outputs, "output", "o", nil, "Output file, the format follows the extension (png, svg, pdf, json, yaml). Can be repeated")
	cmd.Flags().StringVar(&o.Title, "title", "", "Chart title")
	cmd.Flags().Float64Var(&o.Width, "width", o.Width, "Chart width in centimeters")
	cmd.Flags().Float64Var(&o.Height, "height", o.Height, "Chart height in centimeters")
	cmd.Flags().IntVar(&o.Ticks, "ticks", o.Ticks, "Target number of ticks per axis")
	cmd.Flags().StringVar(&o.LineStyle, "line-style", "", "Override the line style of the dataset: sharp or smooth")
	return cmd
}

func (o *exportOptions) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New("--width and --height must be positive")
	}
	if o.Ticks < 1 {
		return errors.New("--ticks must be positive")
	}
	if o.LineStyle != "" {
		if _, err := plot.ParseLineStyle(o.LineStyle); err != nil {
			return err
		}
	}
	for _, out := range o.Outputs {
		if dataset.IsDatasetFile(out) {
			continue
		}
		if _, err := export.FormatOf(out); err != nil {
			return errors.Wrapf(err, "output %s", out)
		}
	}
	return nil
}

func (o *exportOptions) options() export.Options {
	opts := export.DefaultOptions()
	opts.Width = vg.Length(o.Width) * vg.Centimeter
	opts.Height = vg.Length(o.Height) * vg.Centimeter
	opts.Title = o.Title
	opts.TickCount = o.Ticks
	return opts
}

func (o *exportOptions) run() error {
	ds, err := o.load()
	if err != nil {
		return err
	}
	if o.LineStyle != "" {
		if ds.LineStyle, err = plot.ParseLineStyle(o.LineStyle); err != nil {
			return err
		}
	}
	outputs := o.Outputs
	if len(outputs) == 0 {
		x, y := ds.Labels()
		outputs = []string{export.FileName(x, y, "png")}
	}

	s := spinner.New(o.Out, spinner.WithMessage(fmt.Sprintf("Exporting %d points to %d files", len(ds.Points), len(outputs))))
	if err = exportAll(ds, outputs, o.options()); err != nil {
		s.Fail()
		return err
	}
	s.Success()
	for _, out := range outputs {
		fmt.Fprintln(o.Out, out)
	}
	return nil
}

// exportAll writes every output concurrently and returns the first error.
func exportAll(ds *dataset.Dataset, outputs []string, opts export.Options) error {
	g := new(errgroup.Group)
	g.SetLimit(maxExportWorkers)
	for _, out := range outputs {
		g.Go(func() error {
			if dataset.IsDatasetFile(out) {
				return dataset.Save(out, ds)
			}
			return export.Save(out, ds, opts)
		})
	}
	return g.Wait()
}
