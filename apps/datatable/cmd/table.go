// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mondoo.com/datatable"
	"go.mondoo.com/datatable/apps/datatable/cmd/config"
	"go.mondoo.com/datatable/internal/dataset"
)

// addStateFlags registers the flags for the initial sort and search state
func addStateFlags(flags *pflag.FlagSet) {
	flags.String("sort", "", "Set the column to sort by (default is the first column)")
	flags.String("order", "asc", "Set the sort order: asc, desc")
	flags.String("search", "", "Only show rows containing the search text")
}

func bindStateFlags(cmd *cobra.Command) {
	viper.BindPFlag("sort", cmd.Flags().Lookup("sort"))
	viper.BindPFlag("order", cmd.Flags().Lookup("order"))
	viper.BindPFlag("search", cmd.Flags().Lookup("search"))
}

// loadView reads the dataset at path and applies the configured table state
func loadView(fs afero.Fs, path string, conf *config.CliConfig) (*datatable.View, error) {
	ds, err := dataset.Load(fs, path)
	if err != nil {
		return nil, err
	}

	v, err := ds.View()
	if err != nil {
		return nil, err
	}

	column := conf.Sort
	if column == "" {
		column = v.OrderBy()
	}
	order := conf.Order
	if order == "" {
		order = datatable.Ascending
	}
	if err := v.SortBy(column, order); err != nil {
		return nil, err
	}
	v.SetSearch(conf.Search)

	log.Debug().
		Str("file", path).
		Int("rows", v.Len()).
		Str("sort", v.OrderBy()).
		Str("order", v.Order().String()).
		Msg("loaded table")
	return v, nil
}
