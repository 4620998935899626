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

package cmd

import (
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	"k8s.io/klog/v2"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/ed23x/gemini-koordinaten/pkg/cmd/config"
	"github.com/ed23x/gemini-koordinaten/pkg/cmd/extract"
	"github.com/ed23x/gemini-koordinaten/pkg/cmd/points"
	"github.com/ed23x/gemini-koordinaten/pkg/cmd/version"
	"github.com/ed23x/gemini-koordinaten/pkg/cmd/view"
	"github.com/ed23x/gemini-koordinaten/pkg/types"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
)

const cliLong = `
	A command line tool for chart points: view them in an interactive
	coordinate system, read the curve at any axis value, export charts and
	extract points from chart images with the Gemini API.`

// NewDefaultCliCmd creates the root command with the standard streams.
func NewDefaultCliCmd() *cobra.Command {
	return NewCliCmd(genericiooptions.IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr})
}

func NewCliCmd(streams genericiooptions.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:          types.CliName,
		Short:        "Chart points in the terminal.",
		Long:         templates.LongDesc(cliLong),
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return util.InitConfig(viper.GetViper())
		},
	}

	// klog flags such as -v
	flags := cmd.PersistentFlags()
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	flags.AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		view.NewViewCmd(streams),
		points.NewPointsCmd(streams),
		extract.NewExtractCmd(streams),
		config.NewConfigCmd(streams),
		version.NewVersionCmd(streams),
	)
	return cmd
}
