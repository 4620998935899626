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

package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	cmdutil "k8s.io/kubectl/pkg/cmd/util"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/ed23x/gemini-koordinaten/pkg/printer"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
)

var (
	viewExample = templates.Examples(`
		# Show the effective configuration
		koordinaten config view

		# Show it as YAML
		koordinaten config view -o yaml`)

	setExample = templates.Examples(`
		# Use another Gemini model
		koordinaten config set model gemini-2.5-flash

		# Give up on slow requests after 30 seconds
		koordinaten config set timeout 30s

		# Start the viewer with the light theme
		koordinaten config set theme light`)
)

// NewConfigCmd creates the config command
func NewConfigCmd(streams genericiooptions.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and change the koordinaten configuration.",
	}
	cmd.AddCommand(newViewCmd(streams), newSetCmd(streams))
	return cmd
}

type viewOptions struct {
	format printer.Format
	config *viper.Viper
	genericiooptions.IOStreams
}

func newViewCmd(streams genericiooptions.IOStreams) *cobra.Command {
	o := &viewOptions{IOStreams: streams}
	cmd := &cobra.Command{
		Use:     "view",
		Short:   "Show the effective configuration, secrets are masked.",
		Example: viewExample,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			o.config = viper.GetViper()
			cmdutil.CheckErr(o.run())
		},
	}
	printer.AddOutputFlag(cmd, &o.format)
	return cmd
}

func (o *viewOptions) run() error {
	return printer.PrintValues(util.ConfigValues(o.config), o.format, o.Out)
}

type setOptions struct {
	key    string
	value  string
	config *viper.Viper
	genericiooptions.IOStreams
}

func newSetCmd(streams genericiooptions.IOStreams) *cobra.Command {
	o := &setOptions{IOStreams: streams}
	cmd := &cobra.Command{
		Use:     "set KEY VALUE",
		Short:   "Store a configuration value in the config file.",
		Example: setExample,
		Args:    cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return util.ConfigKeys, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			o.key, o.value = args[0], args[1]
			o.config = viper.GetViper()
			cmdutil.CheckErr(o.run())
		},
	}
	return cmd
}

func (o *setOptions) run() error {
	if err := util.SetConfigValue(o.config, o.key, o.value); err != nil {
		return err
	}
	value := o.value
	if util.SecretConfigKeys[o.key] {
		value = util.MaskSecret(value)
	}
	fmt.Fprintf(o.Out, "%s set to %s\n", o.key, value)
	return nil
}
