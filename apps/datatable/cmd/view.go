// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.mondoo.com/datatable/apps/datatable/cmd/config"
	"go.mondoo.com/datatable/cli/reporter"
	"go.mondoo.com/datatable/cli/tui"
)

func init() {
	rootCmd.AddCommand(viewCmd)
	addStateFlags(viewCmd.Flags())
}

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Browse a table interactively",
	Long: `Browse a YAML or JSON dataset in the terminal.

Click a column header or press 1-9 to sort, click it again to reverse the
order. Press / to search and x to clear the search.`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		bindStateFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.ReadConfig()
		if err != nil {
			return err
		}

		v, err := loadView(afero.NewOsFs(), args[0], conf)
		if err != nil {
			return err
		}

		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			log.Debug().Msg("no terminal detected, render static table")
			return reporter.NewReporter(reporter.Table).WriteView(cmd.Context(), v)
		}
		return tui.Run(cmd.Context(), v)
	},
}
