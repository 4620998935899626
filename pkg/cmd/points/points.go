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
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/ed23x/gemini-koordinaten/pkg/cmd/view"
	"github.com/ed23x/gemini-koordinaten/pkg/dataset"
)

// NewPointsCmd creates the points command
func NewPointsCmd(streams genericiooptions.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Inspect, query and export point datasets.",
	}
	cmd.AddCommand(
		newDescribeCmd(streams),
		newQueryCmd(streams),
		newExportCmd(streams),
	)
	return cmd
}

// datasetOptions is embedded by the subcommands reading one dataset.
type datasetOptions struct {
	File string
	genericiooptions.IOStreams
}

func (o *datasetOptions) complete(args []string) {
	if len(args) > 0 {
		o.File = args[0]
	}
}

// load reads File, the built-in sample is used when no file is given.
func (o *datasetOptions) load() (*dataset.Dataset, error) {
	if o.File == "" {
		return dataset.Sample(), nil
	}
	return dataset.Load(o.File)
}

var fileCompletion = view.DatasetFileCompletion
