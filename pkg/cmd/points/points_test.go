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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/ed23x/gemini-koordinaten/pkg/dataset"
	"github.com/ed23x/gemini-koordinaten/pkg/plot"
	"github.com/ed23x/gemini-koordinaten/pkg/printer"
)

var _ = Describe("points", func() {
	var (
		streams genericiooptions.IOStreams
		out     *bytes.Buffer
		dir     string
	)

	BeforeEach(func() {
		streams, _, out, _ = genericiooptions.NewTestIOStreams()
		var err error
		dir, err = os.MkdirTemp("", "points")
		Expect(err).ShouldNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	It("registers the subcommands", func() {
		cmd := NewPointsCmd(streams)
		Expect(cmd.Commands()).Should(HaveLen(3))
	})

	Context("describe", func() {
		It("prints a table description of the sample", func() {
			o := &describeOptions{datasetOptions: datasetOptions{IOStreams: streams}, Format: printer.Table, Ticks: 5}
			Expect(o.run()).Should(Succeed())
			s := out.String()
			Expect(s).Should(ContainSubstring("X Axis:"))
			Expect(s).Should(ContainSubstring("Concentration"))
			Expect(s).Should(ContainSubstring("INDEX"))
			Expect(s).Should(ContainSubstring("5, 6, 7, 8, 9"))
			Expect(s).Should(ContainSubstring("10, 12, 14, 16, 18, 20"))
			Expect(s).Should(ContainSubstring("pH 7: Concentration 16.00"))
		})

		It("prints JSON", func() {
			o := &describeOptions{datasetOptions: datasetOptions{IOStreams: streams}, Format: printer.JSON, Ticks: 5}
			Expect(o.run()).Should(Succeed())
			d := map[string]interface{}{}
			Expect(json.Unmarshal(out.Bytes(), &d)).Should(Succeed())
			Expect(d["points"]).Should(HaveLen(5))
			Expect(d["extent"]).Should(HaveKeyWithValue("maxY", 20.0))
			Expect(d["reference"]).Should(HaveKeyWithValue("other", 16.0))
		})

		It("describes an empty dataset", func() {
			d := describe(&dataset.Dataset{}, 5)
			Expect(d.Extent).Should(BeNil())
			Expect(d.Reference).Should(BeNil())
			printDescription(d, out)
			Expect(out.String()).Should(ContainSubstring(printer.NoneString))
		})

		It("omits the reference without a pH axis", func() {
			ds := dataset.Sample()
			ds.XAxisLabel = "Time"
			Expect(describe(ds, 5).Reference).Should(BeNil())
		})

		It("rejects a non positive tick count", func() {
			o := &describeOptions{datasetOptions: datasetOptions{IOStreams: streams}, Ticks: 0}
			Expect(o.run()).ShouldNot(Succeed())
		})
	})

	Context("query", func() {
		newQuery := func(axis string, value float64) *queryOptions {
			o := &queryOptions{datasetOptions: datasetOptions{IOStreams: streams}, Axis: axis, Value: value, Format: printer.Table}
			Expect(o.validate()).Should(Succeed())
			return o
		}

		It("prints the guide label", func() {
			Expect(newQuery("x", 7).run()).Should(Succeed())
			Expect(out.String()).Should(Equal("pH 7: Concentration 16.00\n"))
		})

		It("queries the y axis", func() {
			o := newQuery("y", 11)
			o.Format = printer.JSON
			Expect(o.run()).Should(Succeed())
			r := queryResult{}
			Expect(json.Unmarshal(out.Bytes(), &r)).Should(Succeed())
			Expect(r.Axis).Should(Equal("y"))
			Expect(r.Other).Should(BeNumerically("~", 5.5, 1e-9))
			Expect(r.Trigger).Should(Equal(plot.TriggerClick))
		})

		It("applies a template", func() {
			o := newQuery("x", 7)
			o.Template = `{{printf "%.1f" .Other}}`
			Expect(o.run()).Should(Succeed())
			Expect(out.String()).Should(Equal("16.0\n"))
		})

		It("fails outside the curve", func() {
			Expect(newQuery("x", 100).run()).Should(MatchError(ContainSubstring("outside the curve")))
		})

		It("rejects an unknown axis", func() {
			o := &queryOptions{Axis: "z"}
			Expect(o.validate()).ShouldNot(Succeed())
		})
	})

	Context("export", func() {
		It("writes charts and datasets", func() {
			png := filepath.Join(dir, "curve.png")
			yml := filepath.Join(dir, "points.yaml")
			o := &exportOptions{
				datasetOptions: datasetOptions{IOStreams: streams},
				Outputs:        []string{png, yml},
				Width:          8,
				Height:         5,
				Ticks:          5,
				LineStyle:      "sharp",
			}
			Expect(o.validate()).Should(Succeed())
			Expect(o.run()).Should(Succeed())

			data, err := os.ReadFile(png)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(data[:4]).Should(Equal([]byte("\x89PNG")))

			ds, err := dataset.Load(yml)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ds.Points).Should(Equal(dataset.Sample().Points))
			Expect(ds.LineStyle).Should(Equal(plot.LineStyleSharp))
			Expect(out.String()).Should(ContainSubstring(png))
		})

		It("validates outputs and sizes", func() {
			o := &exportOptions{Outputs: []string{"curve.txt"}, Width: 1, Height: 1, Ticks: 5}
			Expect(o.validate()).Should(MatchError(ContainSubstring("unsupported image format")))
			o = &exportOptions{Width: 0, Height: 1, Ticks: 5}
			Expect(o.validate()).ShouldNot(Succeed())
			o = &exportOptions{Width: 1, Height: 1, Ticks: 5, LineStyle: "wavy"}
			Expect(o.validate()).ShouldNot(Succeed())
		})

		It("fails on an empty dataset", func() {
			path := filepath.Join(dir, "empty.json")
			Expect(dataset.Save(path, &dataset.Dataset{})).Should(Succeed())
			o := &exportOptions{
				datasetOptions: datasetOptions{File: path, IOStreams: streams},
				Outputs:        []string{filepath.Join(dir, "empty.svg")},
				Width:          8,
				Height:         5,
				Ticks:          5,
			}
			Expect(o.run()).Should(MatchError(ContainSubstring("no points")))
		})
	})
})
