// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.mondoo.com/datatable"
)

func ReadConfig() (*CliConfig, error) {
	// load viper config into a struct
	var opts CliConfig
	// the first two hooks are viper's defaults
	err := viper.Unmarshal(&opts, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		orderDecodeHook,
	)))
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode into config struct")
	}

	return &opts, nil
}

type CliConfig struct {
	// Output format of the rendered table
	Output       string `json:"output,omitempty" mapstructure:"output"`
	OutputTarget string `json:"output-target,omitempty" mapstructure:"output-target"`
	MaxCellWidth int    `json:"max-cell-width,omitempty" mapstructure:"max-cell-width"`
	AssetPrefix  string `json:"asset-prefix,omitempty" mapstructure:"asset-prefix"`

	// Initial table state
	Sort   string          `json:"sort,omitempty" mapstructure:"sort"`
	Order  datatable.Order `json:"order,omitempty" mapstructure:"order"`
	Search string          `json:"search,omitempty" mapstructure:"search"`

	// Web server
	Listen string `json:"listen,omitempty" mapstructure:"listen"`
	Title  string `json:"title,omitempty" mapstructure:"title"`
}

// orderDecodeHook accepts all spellings of a sort order known to ParseOrder
func orderDecodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t != reflect.TypeOf(datatable.Order("")) {
		return data, nil
	}
	return datatable.ParseOrder(data.(string))
}
