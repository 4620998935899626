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

package view

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	"k8s.io/klog/v2"
	cmdutil "k8s.io/kubectl/pkg/cmd/util"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/ed23x/gemini-koordinaten/pkg/cmd/view/chart/coordinatechart"
	"github.com/ed23x/gemini-koordinaten/pkg/dataset"
	"github.com/ed23x/gemini-koordinaten/pkg/plot"
	"github.com/ed23x/gemini-koordinaten/pkg/types"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
)

var viewExample = templates.Examples(`
	# Show the pH titration sample
	koordinaten view

	# Show a dataset exported from the web viewer
	koordinaten view koordinaten-daten.json

	# Override the axis labels and connect the points with straight lines
	koordinaten view points.yaml --x-label pH --y-label "Concentration" --line-style sharp

	# Reload the dataset whenever the file changes
	koordinaten view points.json --watch`)

type ViewOptions struct {
	File      string
	XLabel    string
	YLabel    string
	LineStyle string
	Theme     string
	Watch     bool

	// changed holds the flags given on the command line
	changed map[string]bool
	config  *viper.Viper
	genericiooptions.IOStreams
}

func NewViewCmd(streams genericiooptions.IOStreams) *cobra.Command {
	o := &ViewOptions{IOStreams: streams}
	cmd := &cobra.Command{
		Use:               "view [FILE]",
		Short:             "Show points in an interactive coordinate system.",
		Example:           viewExample,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: DatasetFileCompletion,
		Run: func(cmd *cobra.Command, args []string) {
			cmdutil.CheckErr(o.Complete(cmd, args))
			cmdutil.CheckErr(o.Validate())
			cmdutil.CheckErr(o.Run())
		},
	}
	cmd.Flags().StringVar(&o.XLabel, types.CfgKeyXLabel, "", "Label of the X axis, overrides the label stored in FILE")
	cmd.Flags().StringVar(&o.YLabel, types.CfgKeyYLabel, "", "Label of the Y axis, overrides the label stored in FILE")
	cmd.Flags().StringVar(&o.LineStyle, types.CfgKeyLineStyle, "", "How points are connected: sharp or smooth")
	cmd.Flags().StringVar(&o.Theme, types.CfgKeyTheme, "", "Color theme: dark or light")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false, "Reload FILE when it changes")
	return cmd
}

// DatasetFileCompletion completes dataset file names.
func DatasetFileCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}

func (o *ViewOptions) Complete(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		o.File = args[0]
	}
	o.config = viper.GetViper()
	o.changed = map[string]bool{}
	for _, name := range []string{types.CfgKeyXLabel, types.CfgKeyYLabel, types.CfgKeyLineStyle, types.CfgKeyTheme} {
		o.changed[name] = cmd.Flags().Changed(name)
	}
	if !o.changed[types.CfgKeyTheme] {
		o.Theme = o.config.GetString(types.CfgKeyTheme)
	}
	return nil
}

func (o *ViewOptions) Validate() error {
	if o.Watch && o.File == "" {
		return errors.New("--watch requires a FILE")
	}
	if o.Theme != "dark" && o.Theme != "light" {
		return errors.Errorf("invalid theme %q, must be dark or light", o.Theme)
	}
	if o.changed[types.CfgKeyLineStyle] {
		if _, err := plot.ParseLineStyle(o.LineStyle); err != nil {
			return err
		}
	}
	return nil
}

// load reads FILE, or the sample when no FILE is given, and applies the
// labels and line style from the flags and the config.
func (o *ViewOptions) load() (*dataset.Dataset, error) {
	ds := dataset.Sample()
	if o.File != "" {
		var err error
		if ds, err = dataset.Load(o.File); err != nil {
			return nil, err
		}
	}
	o.apply(ds)
	return ds, nil
}

func (o *ViewOptions) apply(ds *dataset.Dataset) {
	labelFrom := func(key, flag string, stored *string) {
		switch {
		case o.changed[key]:
			*stored = flag
		case *stored == "" && o.config != nil:
			*stored = o.config.GetString(key)
		}
	}
	labelFrom(types.CfgKeyXLabel, o.XLabel, &ds.XAxisLabel)
	labelFrom(types.CfgKeyYLabel, o.YLabel, &ds.YAxisLabel)

	style := ""
	switch {
	case o.changed[types.CfgKeyLineStyle]:
		style = o.LineStyle
	case o.File == "" && o.config != nil:
		style = o.config.GetString(types.CfgKeyLineStyle)
	}
	if style != "" {
		if ls, err := plot.ParseLineStyle(style); err == nil {
			ds.LineStyle = ls
		}
	}
}

func (o *ViewOptions) source() string {
	if o.File == "" {
		return "sample"
	}
	return filepath.Base(o.File)
}

func (o *ViewOptions) Run() error {
	ds, err := o.load()
	if err != nil {
		return err
	}
	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	m := newModel(ds, o.source(), coordinatechart.ThemeByName(o.Theme))
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithInput(o.In),
		tea.WithOutput(o.Out))

	if o.Watch {
		stop, err := watchFile(o.File, o.load, p.Send)
		if err != nil {
			return err
		}
		defer stop()
	}
	_, err = p.Run()
	return err
}

// redirectLogs sends klog output to the log file while the full screen
// program owns the terminal.
func redirectLogs() (func(), error) {
	path, err := util.GetCliLogFile()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", path)
	}
	klog.LogToStderr(false)
	klog.SetOutput(f)
	return func() {
		klog.Flush()
		klog.SetOutput(os.Stderr)
		klog.LogToStderr(true)
		util.CloseQuietly(f)
	}, nil
}
