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

package version

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	cmdutil "k8s.io/kubectl/pkg/cmd/util"

	"github.com/ed23x/gemini-koordinaten/pkg/printer"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
	"github.com/ed23x/gemini-koordinaten/version"
)

type versionOptions struct {
	verbose bool
	format  printer.Format
	genericiooptions.IOStreams
}

// NewVersionCmd the version command
func NewVersionCmd(streams genericiooptions.IOStreams) *cobra.Command {
	o := &versionOptions{IOStreams: streams}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmdutil.CheckErr(o.run())
		},
	}
	cmd.Flags().BoolVar(&o.verbose, "verbose", false, "print detailed version info")
	printer.AddOutputFlag(cmd, &o.format)
	return cmd
}

func (o *versionOptions) run() error {
	v := util.GetVersionInfo()
	if !o.format.IsHumanReadable() {
		return printer.PrintObject(v, o.format, o.Out)
	}
	fmt.Fprintf(o.Out, "koordinaten: %s\n", v.Cli)
	fmt.Fprintf(o.Out, "dataset format: %s\n", v.Dataset)
	if o.verbose {
		fmt.Fprintf(o.Out, "  BuildDate: %s\n", version.BuildDate)
		fmt.Fprintf(o.Out, "  GitCommit: %s\n", version.GitCommit)
		fmt.Fprintf(o.Out, "  GoVersion: %s\n", v.Go)
		fmt.Fprintf(o.Out, "  Platform:  %s\n", v.Platform)
	}
	return nil
}
