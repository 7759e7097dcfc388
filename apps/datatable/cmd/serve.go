// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mondoo.com/datatable/apps/datatable/cmd/config"
	"go.mondoo.com/datatable/internal/dataset"
	"go.mondoo.com/datatable/internal/web"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "localhost:8080", "Set the address to serve the table on")
	serveCmd.Flags().String("title", "", "Set the page title (default is the file name)")
	serveCmd.Flags().String("asset-prefix", "", "Prefix for icon assets")
}

var serveCmd = &cobra.Command{
	Use:   "serve FILE",
	Short: "Serve a table as html page",
	Long: `Serve a YAML or JSON dataset as html page. Sorting and searching is
encoded in the query parameters sort, order and q.`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("listen", cmd.Flags().Lookup("listen"))
		viper.BindPFlag("title", cmd.Flags().Lookup("title"))
		viper.BindPFlag("asset-prefix", cmd.Flags().Lookup("asset-prefix"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.ReadConfig()
		if err != nil {
			return err
		}

		ds, err := dataset.Load(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}
		// reject invalid datasets before the server starts
		if _, err := ds.View(); err != nil {
			return err
		}

		title := conf.Title
		if title == "" {
			title = filepath.Base(args[0])
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return web.Serve(ctx, conf.Listen, web.NewHandler(ds, title, conf.AssetPrefix))
	},
}
