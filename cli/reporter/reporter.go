// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.mondoo.com/datatable"
	"go.mondoo.com/datatable/cli/components"
	"sigs.k8s.io/yaml"
)

type Reporter struct {
	Format Format
	// MaxCellWidth limits cell text in the terminal table
	MaxCellWidth int
	// AssetPrefix is prepended to icon assets in html output
	AssetPrefix string

	out io.Writer
}

func New(typ string) (*Reporter, error) {
	format, ok := Formats[strings.ToLower(typ)]
	if !ok {
		return nil, errors.New("unknown output format '" + typ + "'. Available: " + AllFormats())
	}
	return NewReporter(format), nil
}

func NewReporter(format Format) *Reporter {
	return &Reporter{
		Format: format,
		out:    os.Stdout,
	}
}

func (r *Reporter) WithOutput(out io.Writer) *Reporter {
	r.out = out
	return r
}

func (r *Reporter) WriteView(ctx context.Context, v *datatable.View) error {
	return r.Print(v, r.out)
}

func (r *Reporter) Print(v *datatable.View, out io.Writer) error {
	switch r.Format {
	case Table:
		opts := []components.DataTableOption{}
		if r.MaxCellWidth > 0 {
			opts = append(opts, components.WithMaxCellWidth(r.MaxCellWidth))
		}
		res, err := components.NewDataTable(opts...).Render(v)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, res)
		return err
	case HTML:
		renderer := components.NewHTMLTable()
		renderer.AssetPrefix = r.AssetPrefix
		res, err := renderer.Render(v)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, res)
		return err
	case YAML:
		raw, err := ViewToJSON(v)
		if err != nil {
			return err
		}
		res, err := yaml.JSONToYAML(raw)
		if err != nil {
			return err
		}
		_, err = out.Write(res)
		return err
	case JSON:
		raw, err := ViewToJSON(v)
		if err != nil {
			return err
		}
		_, err = out.Write(append(raw, '\n'))
		return err
	default:
		return errors.New("unknown reporter type, don't recognize this Format")
	}
}
