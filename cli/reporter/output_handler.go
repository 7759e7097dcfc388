// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.mondoo.com/datatable"
)

type HandlerConfig struct {
	Format       string
	OutputTarget string
	MaxCellWidth int
	AssetPrefix  string
}

type OutputTarget byte

const (
	CLI OutputTarget = iota + 1
	LOCAL_FILE
)

type OutputHandler interface {
	WriteView(ctx context.Context, v *datatable.View) error
}

func NewOutputHandler(config HandlerConfig) (OutputHandler, error) {
	return NewOutputHandlerFs(afero.NewOsFs(), config)
}

// NewOutputHandlerFs creates an output handler, files are written to fs
func NewOutputHandlerFs(fs afero.Fs, config HandlerConfig) (OutputHandler, error) {
	format, ok := Formats[strings.ToLower(config.Format)]
	if !ok {
		return nil, errors.New("unknown output format '" + config.Format + "'. Available: " + AllFormats())
	}

	reporter := NewReporter(format)
	reporter.MaxCellWidth = config.MaxCellWidth
	reporter.AssetPrefix = config.AssetPrefix

	typ := determineOutputType(config.OutputTarget)
	switch typ {
	case LOCAL_FILE:
		return &localFileHandler{fs: fs, file: config.OutputTarget, reporter: reporter}, nil
	case CLI:
		fallthrough
	default:
		return reporter, nil
	}
}

// determines the output type based on the provided string. we fall back to CLI reporting
// if no target is given
func determineOutputType(target string) OutputTarget {
	if target == "" || target == "-" {
		return CLI
	}
	return LOCAL_FILE
}
