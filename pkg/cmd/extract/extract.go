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

package extract

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	"k8s.io/klog/v2"
	cmdutil "k8s.io/kubectl/pkg/cmd/util"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/ed23x/gemini-koordinaten/pkg/dataset"
	extractor "github.com/ed23x/gemini-koordinaten/pkg/extract"
	"github.com/ed23x/gemini-koordinaten/pkg/plot"
	"github.com/ed23x/gemini-koordinaten/pkg/spinner"
	"github.com/ed23x/gemini-koordinaten/pkg/types"
	"github.com/ed23x/gemini-koordinaten/pkg/util"
	"github.com/ed23x/gemini-koordinaten/pkg/util/prompt"
)

const retryDelay = 2 * time.Second

var extractExample = templates.Examples(`
	# Extract the points of a photographed titration curve and print them as JSON
	koordinaten extract curve.jpg

	# Save the points of a scanned worksheet for the viewer
	koordinaten extract worksheet.pdf -o points.json --x-label Time --y-label Distance

	# Store the API key in the config file for later runs
	koordinaten extract curve.png --api-key "$GEMINI_API_KEY" --save-api-key`)

type ExtractOptions struct {
	Image      string
	Output     string
	XLabel     string
	YLabel     string
	Model      string
	APIKey     string
	SaveAPIKey bool
	Force      bool

	config *viper.Viper
	// newClient is replaced in tests
	newClient func(apiKey string, opts ...extractor.Option) *extractor.Client
	genericiooptions.IOStreams
}

func NewExtractCmd(streams genericiooptions.IOStreams) *cobra.Command {
	o := &ExtractOptions{IOStreams: streams, newClient: extractor.NewClient}
	cmd := &cobra.Command{
		Use:     "extract IMAGE",
		Short:   "Extract the points of a chart image or PDF with the Gemini API.",
		Example: extractExample,
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return []string{"png", "jpg", "jpeg", "gif", "webp", "pdf"}, cobra.ShellCompDirectiveFilterFileExt
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmdutil.CheckErr(o.Complete(cmd, args))
			cmdutil.CheckErr(o.Validate())
			cmdutil.CheckErr(o.Run(cmd.Context()))
		},
	}
	cmd.Flags().StringVarP(&o.Output, "output", "o", "", "Save the points to a JSON or YAML file instead of printing them")
	cmd.Flags().StringVar(&o.XLabel, types.CfgKeyXLabel, "", "Label of the X axis")
	cmd.Flags().StringVar(&o.YLabel, types.CfgKeyYLabel, "", "Label of the Y axis")
	cmd.Flags().StringVar(&o.Model, types.CfgKeyModel, "", "Gemini model used for the extraction")
	cmd.Flags().StringVar(&o.APIKey, types.CfgKeyAPIKey, "", "Gemini API key, defaults to the configured key or $KOORDINATEN_API_KEY")
	cmd.Flags().BoolVar(&o.SaveAPIKey, "save-api-key", false, "Store the API key in the config file")
	cmd.Flags().BoolVar(&o.Force, "force", false, "Overwrite the output file without asking")
	return cmd
}

// Complete fills unset flags from the config. The API key is prompted for
// when neither the flag nor the config provide one.
func (o *ExtractOptions) Complete(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		o.Image = args[0]
	}
	if o.config == nil {
		o.config = viper.GetViper()
	}
	fromConfig := func(v *string, key string) {
		if *v == "" {
			*v = o.config.GetString(key)
		}
	}
	fromConfig(&o.XLabel, types.CfgKeyXLabel)
	fromConfig(&o.YLabel, types.CfgKeyYLabel)
	fromConfig(&o.Model, types.CfgKeyModel)
	fromConfig(&o.APIKey, types.CfgKeyAPIKey)
	if o.APIKey != "" {
		return nil
	}
	key, err := prompt.NewSecretPrompt("Gemini API key", o.In).Run()
	if err != nil {
		return errors.Wrap(err, "an API key is required")
	}
	o.APIKey = key
	return nil
}

func (o *ExtractOptions) Validate() error {
	if o.Image == "" {
		return errors.New("an image or PDF file is required")
	}
	if o.APIKey == "" {
		return errors.New("an API key is required")
	}
	if o.Output != "" && !dataset.IsDatasetFile(o.Output) {
		return errors.Errorf("output %s must be a .json, .yaml or .yml file", o.Output)
	}
	return nil
}

func (o *ExtractOptions) client() *extractor.Client {
	return o.newClient(o.APIKey,
		extractor.WithModel(o.Model),
		extractor.WithEndpoint(o.config.GetString(types.CfgKeyEndpoint)),
		extractor.WithTimeout(util.GetDuration(o.config, types.CfgKeyTimeout, time.Minute)),
		extractor.WithRetry(o.config.GetInt(types.CfgKeyRetries), retryDelay),
	)
}

func (o *ExtractOptions) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if o.Output != "" && !o.Force {
		if _, err := os.Stat(o.Output); err == nil {
			if err = prompt.Confirm(fmt.Sprintf("%s exists, overwrite it? [y/N]", o.Output), o.In); err != nil {
				return err
			}
		}
	}
	img, err := extractor.LoadImage(o.Image)
	if err != nil {
		return err
	}

	s := spinner.New(o.ErrOut, spinner.WithMessage(fmt.Sprintf("Extracting points from %s", img.Name)))
	points, err := o.client().Extract(klog.NewContext(ctx, klog.Background()), img, o.XLabel, o.YLabel)
	if err != nil {
		s.Fail()
		return err
	}
	s.Success()

	if o.SaveAPIKey {
		if err = util.SetConfigValue(o.config, types.CfgKeyAPIKey, o.APIKey); err != nil {
			return err
		}
		fmt.Fprintf(o.ErrOut, "API key saved to %s\n", o.config.ConfigFileUsed())
	}

	ds := &dataset.Dataset{
		Version:    types.DatasetVersion,
		Points:     points,
		XAxisLabel: o.XLabel,
		YAxisLabel: o.YLabel,
		LineStyle:  plot.LineStyleSmooth,
	}
	if ls, err := plot.ParseLineStyle(o.config.GetString(types.CfgKeyLineStyle)); err == nil {
		ds.LineStyle = ls
	}
	if o.Output == "" {
		data, err := dataset.Encode(ds, dataset.FormatJSON)
		if err != nil {
			return err
		}
		_, err = o.Out.Write(data)
		return err
	}
	if err = dataset.Save(o.Output, ds); err != nil {
		return err
	}
	fmt.Fprintf(o.ErrOut, "%d points saved to %s\n", len(points), o.Output)
	return nil
}
