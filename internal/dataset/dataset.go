// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package dataset reads the columns and rows of a table from a YAML or
// JSON document.
//
//	columns: [Name, Severity, Type]
//	rows:
//	  - {Name: lodash, Severity: High, Type: npm}
//
// If no columns are declared, the keys of the first row define them in
// document order.
package dataset

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.mondoo.com/datatable"
	"gopkg.in/yaml.v3"
)

type Dataset struct {
	Columns []string
	Rows    []datatable.Row
}

// View creates a validated view on the dataset
func (d *Dataset) View() (*datatable.View, error) {
	return datatable.New(d.Columns, d.Rows)
}

func Load(fs afero.Fs, path string) (*Dataset, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read dataset")
	}

	res, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return res, nil
}

func Parse(data []byte) (*Dataset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("dataset is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Newf("line %d: dataset must be a mapping with columns and rows", root.Line)
	}

	res := &Dataset{}
	var columnsDeclared bool
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "columns":
			columns, err := parseColumns(value)
			if err != nil {
				return nil, err
			}
			res.Columns = columns
			columnsDeclared = true
		case "rows":
			rows, order, err := parseRows(value)
			if err != nil {
				return nil, err
			}
			res.Rows = rows
			if !columnsDeclared {
				res.Columns = order
			}
		default:
			return nil, errors.Newf("line %d: unknown field %q", key.Line, key.Value)
		}
	}

	return res, nil
}

func parseColumns(node *yaml.Node) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, errors.Newf("line %d: columns must be a list", node.Line)
	}
	res := make([]string, len(node.Content))
	for i, c := range node.Content {
		if c.Kind != yaml.ScalarNode {
			return nil, errors.Newf("line %d: column names must be strings", c.Line)
		}
		res[i] = c.Value
	}
	return res, nil
}

// parseRows returns the rows and the key order of the first row
func parseRows(node *yaml.Node) ([]datatable.Row, []string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, nil, errors.Newf("line %d: rows must be a list", node.Line)
	}

	var order []string
	rows := make([]datatable.Row, len(node.Content))
	for i, r := range node.Content {
		if r.Kind != yaml.MappingNode {
			return nil, nil, errors.Newf("line %d: row %d must be a mapping", r.Line, i)
		}

		row := make(datatable.Row, len(r.Content)/2)
		for j := 0; j+1 < len(r.Content); j += 2 {
			key, value := r.Content[j], r.Content[j+1]
			if i == 0 {
				order = append(order, key.Value)
			}
			v, ok, err := parseValue(value)
			if err != nil {
				return nil, nil, err
			}
			// null cells are left out and reported as missing by the view
			if ok {
				row[key.Value] = v
			}
		}
		rows[i] = row
	}
	return rows, order, nil
}

func parseValue(node *yaml.Node) (datatable.Value, bool, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return datatable.Value{}, false, errors.Newf("line %d: cell values must be strings or numbers", node.Line)
	}

	switch node.ShortTag() {
	case "!!null":
		return datatable.Value{}, false, nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			// yaml notations like 0x1F or .inf are kept as text
			return datatable.String(node.Value), true, nil
		}
		return datatable.Number(f), true, nil
	default:
		return datatable.String(node.Value), true, nil
	}
}
