// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mondoo.com/datatable/apps/datatable/cmd/config"
	"go.mondoo.com/datatable/cli/reporter"
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("output", "o", "table", "Set output format: "+reporter.AllFormats())
	renderCmd.Flags().String("output-target", "", "Set the output file, writes to stdout if empty")
	renderCmd.Flags().Int("max-cell-width", 40, "Truncate cells of the terminal table to this width")
	renderCmd.Flags().String("asset-prefix", "", "Prefix for icon assets in html output")
	addStateFlags(renderCmd.Flags())
}

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Render a table in a given sort and search state",
	Long: `Render a YAML or JSON dataset as table, html, json or yaml.

The dataset declares its columns and rows:

  columns: [Name, Severity, Type]
  rows:
    - {Name: lodash, Severity: High, Type: npm}
`,
	Example: "  datatable render findings.yaml --sort Severity --order desc --search openssl -o html",
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("output", cmd.Flags().Lookup("output"))
		viper.BindPFlag("output-target", cmd.Flags().Lookup("output-target"))
		viper.BindPFlag("max-cell-width", cmd.Flags().Lookup("max-cell-width"))
		viper.BindPFlag("asset-prefix", cmd.Flags().Lookup("asset-prefix"))
		bindStateFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.ReadConfig()
		if err != nil {
			return err
		}

		handler, err := reporter.NewOutputHandler(reporter.HandlerConfig{
			Format:       conf.Output,
			OutputTarget: conf.OutputTarget,
			MaxCellWidth: conf.MaxCellWidth,
			AssetPrefix:  conf.AssetPrefix,
		})
		if err != nil {
			return err
		}

		v, err := loadView(afero.NewOsFs(), args[0], conf)
		if err != nil {
			return err
		}
		return handler.WriteView(cmd.Context(), v)
	},
}
