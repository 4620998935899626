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

package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/ed23x/gemini-koordinaten/pkg/plot"
	"github.com/ed23x/gemini-koordinaten/pkg/types"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
)

// Dataset is a point set with its axis labels and line style, in the same
// shape the web viewer exported.
type Dataset struct {
	Version    string         `json:"version,omitempty"`
	Points     []plot.Point   `json:"points"`
	XAxisLabel string         `json:"xAxisLabel,omitempty"`
	YAxisLabel string         `json:"yAxisLabel,omitempty"`
	LineStyle  plot.LineStyle `json:"lineStyle,omitempty"`
}

// Format is the encoding of a dataset file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const schema = `{
  "type": "object",
  "required": ["points"],
  "properties": {
    "version": {"type": "string"},
    "points": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["x", "y"],
        "properties": {
          "x": {"type": "number"},
          "y": {"type": "number"}
        }
      }
    },
    "xAxisLabel": {"type": "string"},
    "yAxisLabel": {"type": "string"},
    "lineStyle": {"type": "string", "enum": ["sharp", "smooth", "eckig", "gerundet"]}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// FormatFor returns the format implied by the file extension, JSON by default.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// IsDatasetFile reports whether path has a dataset file extension.
func IsDatasetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Sample returns the pH titration sample shown when no file is given.
func Sample() *Dataset {
	return &Dataset{
		Version: types.DatasetVersion,
		Points: []plot.Point{
			{X: 5, Y: 10},
			{X: 6, Y: 12},
			{X: 7.5, Y: 18},
			{X: 8, Y: 20},
			{X: 9, Y: 15},
		},
		XAxisLabel: types.DefaultXLabel,
		YAxisLabel: types.DefaultYLabel,
		LineStyle:  plot.LineStyleSmooth,
	}
}

// Load reads a JSON or YAML dataset file.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open dataset %s", path)
	}
	defer util.CloseQuietly(f)
	ds, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load dataset %s", path)
	}
	klog.V(1).Infof("loaded %d points from %s", len(ds.Points), path)
	return ds, nil
}

// Read decodes a dataset from r. JSON is accepted as a subset of YAML.
func Read(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode validates data against the dataset schema and decodes it. Legacy
// line style values are normalized.
func Decode(data []byte) (*Dataset, error) {
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid dataset")
	}
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(js))
	if err != nil {
		return nil, errors.Wrap(err, "invalid dataset")
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
		}
		return nil, errors.Errorf("invalid dataset:\n  %s", strings.Join(msgs, "\n  "))
	}

	ds := &Dataset{}
	if err = json.Unmarshal(js, ds); err != nil {
		return nil, errors.Wrap(err, "invalid dataset")
	}
	if err = util.CheckVersionConstraint(ds.Version, types.DatasetVersionConstraint); err != nil {
		return nil, errors.Wrap(err, "unsupported dataset version")
	}
	if ds.LineStyle, err = plot.ParseLineStyle(string(ds.LineStyle)); err != nil {
		return nil, err
	}
	return ds, nil
}

// Encode renders ds in the given format. The current dataset version is
// written when ds has none.
func Encode(ds *Dataset, format Format) ([]byte, error) {
	out := *ds
	if out.Version == "" {
		out.Version = types.DatasetVersion
	}
	if out.Points == nil {
		out.Points = []plot.Point{}
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode dataset")
	}
	if format == FormatYAML {
		if data, err = yaml.JSONToYAML(data); err != nil {
			return nil, errors.Wrap(err, "failed to encode dataset")
		}
		return data, nil
	}
	return append(data, '\n'), nil
}

// Save writes ds to path, choosing the format by extension.
func Save(path string, ds *Dataset) error {
	data, err := Encode(ds, FormatFor(path))
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write dataset %s", path)
	}
	klog.V(1).Infof("saved %d points to %s", len(ds.Points), path)
	return nil
}

// Labels returns the axis labels, falling back to the defaults.
func (d *Dataset) Labels() (string, string) {
	x, y := d.XAxisLabel, d.YAxisLabel
	if x == "" {
		x = types.DefaultXLabel
	}
	if y == "" {
		y = types.DefaultYLabel
	}
	return x, y
}
