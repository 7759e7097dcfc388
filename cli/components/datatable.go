// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package components

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"go.mondoo.com/cnquery/v9/cli/theme/colors"
	"go.mondoo.com/datatable"
)

const defaultMaxCellWidth = 40

type DataTableOption func(*DataTable)

// WithMaxCellWidth truncates cell text longer than w, 0 disables truncation
func WithMaxCellWidth(w int) DataTableOption {
	return func(d *DataTable) {
		d.MaxCellWidth = w
	}
}

// WithSummary enables the severity distribution below the table
func WithSummary(enabled bool) DataTableOption {
	return func(d *DataTable) {
		d.Summary = enabled
	}
}

// WithToolbar enables the search/clear/export line above the table
func WithToolbar(enabled bool) DataTableOption {
	return func(d *DataTable) {
		d.Toolbar = enabled
	}
}

func NewDataTable(opts ...DataTableOption) DataTable {
	d := DataTable{
		MaxCellWidth: defaultMaxCellWidth,
		Toolbar:      true,
		Summary:      true,
		indicator:    NewCvssIndicator(),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// DataTable is a component to print a sortable, searchable view on the CLI
type DataTable struct {
	MaxCellWidth int
	Toolbar      bool
	Summary      bool
	indicator    CvssIndicator
}

func (d DataTable) Render(v *datatable.View) (string, error) {
	if v == nil {
		return "", errors.New("view cannot be empty")
	}

	b := &strings.Builder{}
	if d.Toolbar {
		b.WriteString(d.toolbar(v))
		b.WriteString("\n\n")
	}

	table := tablewriter.NewWriter(b)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetRowLine(false)
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	headers := v.Headers()
	header := make([]string, len(headers))
	for i := range headers {
		header[i] = HeaderLabel(headers[i])
	}
	table.SetHeader(header)

	columns := v.Columns()
	rows := v.Rows()
	for i := range rows {
		line := make([]string, len(columns))
		for j, col := range columns {
			line[j] = d.Cell(col, rows[i][col])
		}
		table.Append(line)
	}
	table.Render()

	if len(rows) == 0 {
		b.WriteString(termenv.String("no matching rows").Foreground(colors.DefaultColorTheme.Disabled).String())
		b.WriteString("\n")
	} else if d.Summary {
		if bar := NewSeverityBar().Render(v); bar != "" {
			b.WriteString("\n")
			b.WriteString(bar)
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

// Cell renders one value with its icon, if the column has one
func (d DataTable) Cell(column string, value datatable.Value) string {
	text := value.String()
	if d.MaxCellWidth > 0 {
		text = truncate.StringWithTail(text, uint(d.MaxCellWidth), "…")
	}

	icon, ok := datatable.ResolveIcon(column, value)
	if !ok {
		return text
	}
	return d.indicator.RenderIcon(icon) + " " + text
}

// HeaderLabel renders the header text with the sort indicator for the
// active column
func HeaderLabel(h datatable.Header) string {
	if !h.Active {
		return h.Label
	}
	return h.Label + " " + h.Direction.Indicator()
}

func (d DataTable) toolbar(v *datatable.View) string {
	theme := colors.DefaultColorTheme

	search := v.Search()
	if search == "" {
		search = termenv.String("Search").Foreground(theme.Disabled).String()
	} else {
		search = fmt.Sprintf("%q", search)
	}

	visible := len(v.Rows())
	status := fmt.Sprintf("%d of %d rows, %s by %s", visible, v.Len(), v.Order().Label(), datatable.SplitCamelCase(v.OrderBy()))

	return "Search: " + search + "  " +
		termenv.String("Clear").Foreground(theme.Secondary).String() + "  " +
		termenv.String("[export csv]").Foreground(theme.Disabled).String() + "\n" +
		termenv.String(status).Foreground(theme.Secondary).String()
}
