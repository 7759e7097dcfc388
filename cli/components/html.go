// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package components

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/url"

	"github.com/cockroachdb/errors"
	"go.mondoo.com/datatable"
)

//go:embed templates/datatable.html
var htmlTableTemplate string

var htmlTable = template.Must(template.New("datatable").Parse(htmlTableTemplate))

// Query parameters used by the HTML table to carry its UI state
const (
	QuerySearch = "q"
	QuerySort   = "sort"
	QueryOrder  = "order"
)

const defaultExportIcon = "assets/exportcsv.svg"

func NewHTMLTable() HTMLTable {
	return HTMLTable{
		ExportIcon: defaultExportIcon,
	}
}

// HTMLTable renders a view as HTML markup. Header clicks, search and clear
// are links/forms that encode the resulting UI state as query parameters
// relative to Action.
type HTMLTable struct {
	// Action is the URL path the links and search form point to
	Action string
	// AssetPrefix is prepended to icon asset paths
	AssetPrefix string
	ExportIcon  string
}

type htmlHeader struct {
	Label     string
	Href      string
	Active    bool
	Indicator string
	SortLabel string
	AriaSort  string
}

type htmlCell struct {
	Text string
	Icon string
}

type htmlTableData struct {
	Action     string
	Search     string
	SortColumn string
	Order      string
	ClearHref  string
	ExportIcon string
	Headers    []htmlHeader
	Rows       [][]htmlCell
}

func (h HTMLTable) Render(v *datatable.View) (string, error) {
	if v == nil {
		return "", errors.New("view cannot be empty")
	}

	data := htmlTableData{
		Action:     h.Action,
		Search:     v.Search(),
		SortColumn: v.OrderBy(),
		Order:      v.Order().String(),
		ClearHref:  h.href(v.OrderBy(), v.Order(), ""),
		ExportIcon: h.AssetPrefix + h.ExportIcon,
	}

	for _, header := range v.Headers() {
		hh := htmlHeader{
			Label:    header.Label,
			Href:     h.href(header.Name, header.NextOrder, v.Search()),
			Active:   header.Active,
			AriaSort: "none",
		}
		if header.Active {
			hh.Indicator = header.Direction.Indicator()
			hh.SortLabel = header.SortLabel()
			hh.AriaSort = ariaSort(header.Direction)
		}
		data.Headers = append(data.Headers, hh)
	}

	columns := v.Columns()
	rows := v.Rows()
	data.Rows = make([][]htmlCell, len(rows))
	for i := range rows {
		cells := make([]htmlCell, len(columns))
		for j, col := range columns {
			value := rows[i][col]
			cells[j] = htmlCell{Text: value.String()}
			if icon, ok := datatable.ResolveIcon(col, value); ok {
				cells[j].Icon = h.AssetPrefix + icon.Asset
			}
		}
		data.Rows[i] = cells
	}

	b := bytes.Buffer{}
	if err := htmlTable.Execute(&b, data); err != nil {
		return "", errors.Wrap(err, "failed to render html table")
	}
	return b.String(), nil
}

func (h HTMLTable) href(column string, order datatable.Order, search string) string {
	q := url.Values{}
	q.Set(QuerySort, column)
	q.Set(QueryOrder, order.String())
	if search != "" {
		q.Set(QuerySearch, search)
	}
	return h.Action + "?" + q.Encode()
}

func ariaSort(o datatable.Order) string {
	if o == datatable.Descending {
		return "descending"
	}
	return "ascending"
}
