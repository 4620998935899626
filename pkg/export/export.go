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

package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"k8s.io/klog/v2"

	"github.com/ed23x/gemini-koordinaten/pkg/dataset"
	"github.com/ed23x/gemini-koordinaten/pkg/plot"
)

// Formats lists the supported image formats.
var Formats = []string{"png", "svg", "pdf"}

var (
	curveColor     = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	pointColor     = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	referenceColor = color.RGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff}
)

type Options struct {
	Width         vg.Length
	Height        vg.Length
	Title         string
	TickCount     int
	SmoothSamples int
}

func DefaultOptions() Options {
	return Options{
		Width:         16 * vg.Centimeter,
		Height:        10 * vg.Centimeter,
		TickCount:     5,
		SmoothSamples: 16,
	}
}

// niceTicker labels axes with the same nice steps as the viewer.
type niceTicker struct {
	count int
}

func (t niceTicker) Ticks(lo, hi float64) []gplot.Tick {
	step := plot.TickStep(lo, hi, t.count)
	var ticks []gplot.Tick
	for _, v := range plot.NiceTicks(lo, hi, t.count) {
		ticks = append(ticks, gplot.Tick{Value: v, Label: plot.FormatTick(v, step)})
	}
	return ticks
}

// FileName returns the default image name for a pair of axis labels.
func FileName(xLabel, yLabel, format string) string {
	return fmt.Sprintf("%s-%s-koordinaten.%s", sanitize(xLabel), sanitize(yLabel), format)
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, s)
}

// FormatOf returns the image format implied by the file extension.
func FormatOf(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats {
		if ext == f {
			return f, nil
		}
	}
	return "", errors.Errorf("unsupported image format %q, supported formats: %s", ext, strings.Join(Formats, ", "))
}

// Render builds the chart of ds: the connecting curve, the points and
// the pH 7 reference guide when one of the axes is a pH axis.
func Render(ds *dataset.Dataset, opts Options) (*gplot.Plot, error) {
	if len(ds.Points) == 0 {
		return nil, errors.New("no points to export")
	}
	xLabel, yLabel := ds.Labels()
	p := gplot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = niceTicker{count: opts.TickCount}
	p.Y.Tick.Marker = niceTicker{count: opts.TickCount}
	p.Add(plotter.NewGrid())

	curve, err := plotter.NewLine(toXYs(curvePoints(ds, opts.SmoothSamples)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build curve")
	}
	curve.LineStyle.Color = curveColor
	curve.LineStyle.Width = vg.Points(1.5)

	scatter, err := plotter.NewScatter(toXYs(ds.Points))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build points")
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(curve, scatter)

	if a, ok := plot.ReferenceAxis(xLabel, yLabel); ok {
		if r := plot.Query(ds.Points, a, plot.ReferenceValue, plot.TriggerReference); r != nil {
			guide, err := referenceGuide(ds.Points, r.Intersection)
			if err != nil {
				return nil, err
			}
			p.Add(guide)
			p.Legend.Add(plot.GuideLabel(*r, xLabel, yLabel), guide)
		}
	}
	return p, nil
}

// curvePoints returns the polyline of the connecting path in data space.
func curvePoints(ds *dataset.Dataset, samples int) []plot.Point {
	if len(ds.Points) < 2 {
		return ds.Points
	}
	return plot.BuildPath(ds.Points, ds.LineStyle).Flatten(samples)
}

// referenceGuide draws dashed lines from both axes to the intersection.
func referenceGuide(points []plot.Point, at plot.Point) (*plotter.Line, error) {
	e, _ := plot.ComputeExtent(points)
	line, err := plotter.NewLine(plotter.XYs{
		{X: at.X, Y: e.MinY},
		{X: at.X, Y: at.Y},
		{X: e.MinX, Y: at.Y},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build reference guide")
	}
	line.LineStyle.Color = referenceColor
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	return line, nil
}

func toXYs(points []plot.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	return xys
}

// Write renders ds as an image of the given format to w.
func Write(w io.Writer, ds *dataset.Dataset, format string, opts Options) error {
	wt, err := renderTo(ds, format, opts)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return errors.Wrapf(err, "failed to write %s", format)
}

func renderTo(ds *dataset.Dataset, format string, opts Options) (io.WriterTo, error) {
	p, err := Render(ds, opts)
	if err != nil {
		return nil, err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render %s", format)
	}
	return wt, nil
}

// Save renders ds to path, choosing the image format by extension.
// Nothing is created when rendering fails; a partially written file is removed.
func Save(path string, ds *dataset.Dataset, opts Options) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	wt, err := renderTo(ds, format, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	_, err = wt.WriteTo(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return errors.Wrapf(err, "failed to write %s", path)
	}
	klog.V(1).Infof("exported %d points to %s", len(ds.Points), path)
	return nil
}
