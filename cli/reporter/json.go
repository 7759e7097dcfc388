// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reporter

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"go.mondoo.com/datatable"
)

type jsonSort struct {
	Column string          `json:"column"`
	Order  datatable.Order `json:"order"`
}

type jsonView struct {
	Columns []string        `json:"columns"`
	Sort    jsonSort        `json:"sort"`
	Search  string          `json:"search"`
	Total   int             `json:"total"`
	Rows    []datatable.Row `json:"rows"`
}

// ViewToJSON serializes the rows currently displayed by the view, in
// display order, together with the view state
func ViewToJSON(v *datatable.View) ([]byte, error) {
	if v == nil {
		return nil, errors.New("view cannot be empty")
	}

	res := jsonView{
		Columns: v.Columns(),
		Sort: jsonSort{
			Column: v.OrderBy(),
			Order:  v.Order(),
		},
		Search: v.Search(),
		Total:  v.Len(),
		Rows:   v.Rows(),
	}

	columns := v.Columns()
	for i := range res.Rows {
		row := make(datatable.Row, len(columns))
		for _, col := range columns {
			row[col] = res.Rows[i][col]
		}
		res.Rows[i] = row
	}

	return json.MarshalIndent(res, "", "  ")
}
